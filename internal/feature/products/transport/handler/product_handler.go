package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"admin_backend/internal/api"
	"admin_backend/internal/feature/products/domain/entity"
	"admin_backend/internal/feature/products/transport/http/dto"
	"admin_backend/internal/feature/products/usecase"
	"admin_backend/internal/platform/logger"
	"admin_backend/internal/platform/metrics"
)

const resource = "product"

// ProductUsecase は商品管理のユースケースのインターフェースです。
type ProductUsecase interface {
	List(ctx context.Context) ([]entity.Product, error)
	Search(ctx context.Context, f entity.ProductFilter) ([]entity.Product, int64, entity.ProductFilter, error)
	Create(ctx context.Context, in entity.ProductInput) (*entity.Product, error)
	Register(ctx context.Context, in entity.ProductInput) (*entity.Product, error)
	UpdateByID(ctx context.Context, id uint, in entity.ProductInput) (*entity.Product, error)
	DeleteByID(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) (int64, error)
	ValidateField(field, value string, p usecase.Profile) string
	DefaultProfile() usecase.Profile
}

// OperationRecorder は操作結果をメトリクスとして記録します。
type OperationRecorder interface {
	RecordOperation(resource, operation, result string)
}

// ProductHandler は商品管理に関するHTTPリクエストを処理します。
type ProductHandler struct {
	uc      ProductUsecase
	log     *zap.Logger
	metrics OperationRecorder
}

// NewProductHandler は新しい ProductHandler を作成します。
func NewProductHandler(uc ProductUsecase, log *zap.Logger, rec OperationRecorder) *ProductHandler {
	return &ProductHandler{uc: uc, log: log, metrics: rec}
}

// List は GET /products を処理します。
func (h *ProductHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if !hasSearchQuery(c) {
		products, err := h.uc.List(ctx)
		if err != nil {
			logger.WithRequest(h.log, c).Error("list products failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.ListResponse{Products: dto.FromEntities(products)})
		return
	}

	f := entity.ProductFilter{
		Name:     c.Query("name"),
		Owner:    c.Query("owner"),
		Category: c.Query("category"),
		Page:     queryInt(c, "page"),
		Size:     queryInt(c, "size"),
	}
	products, total, f, err := h.uc.Search(ctx, f)
	if err != nil {
		logger.WithRequest(h.log, c).Error("search products failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{
		Products: dto.FromEntities(products),
		Total:    &total,
		Page:     f.Page,
		Size:     f.Size,
	})
}

// Action は POST /products を処理します。
func (h *ProductHandler) Action(c *gin.Context) {
	var req dto.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "action", "invalid request")
		return
	}

	switch req.Action {
	case "add":
		h.add(c, req.Data)
	case "delete":
		h.delete(c, req)
	case "deleteAll":
		h.deleteAll(c)
	default:
		h.badRequest(c, "action", "Unknown action")
	}
}

func (h *ProductHandler) add(c *gin.Context, data json.RawMessage) {
	var p dto.ProductPayload
	if !decodeData(data, &p) {
		h.badRequest(c, "add", "invalid request")
		return
	}
	product, err := h.uc.Create(c.Request.Context(), p.Input())
	if err != nil {
		h.fail(c, "add", err)
		return
	}
	h.record("add", http.StatusCreated)
	c.JSON(http.StatusCreated, dto.ProductResultResponse{
		Success: true,
		Message: "Product added successfully",
		Product: dto.FromEntity(*product),
	})
}

func (h *ProductHandler) delete(c *gin.Context, req dto.ActionRequest) {
	var d dto.DeleteData
	if !decodeData(req.Data, &d) {
		h.badRequest(c, "delete", "invalid request")
		return
	}
	if err := h.uc.DeleteByID(c.Request.Context(), api.First(d.ID, d.ProductID, req.ProductID)); err != nil {
		h.fail(c, "delete", err)
		return
	}
	h.record("delete", http.StatusOK)
	c.JSON(http.StatusOK, api.ResultResponse{Success: true, Message: "Product deleted successfully"})
}

func (h *ProductHandler) deleteAll(c *gin.Context) {
	n, err := h.uc.DeleteAll(c.Request.Context())
	if err != nil {
		h.fail(c, "deleteAll", err)
		return
	}
	logger.WithRequest(h.log, c).Info("all products deleted", zap.Int64("count", n))
	h.record("deleteAll", http.StatusOK)
	c.JSON(http.StatusOK, api.ResultResponse{Success: true, Message: "All products deleted successfully"})
}

// Update は PATCH /products を処理します。
func (h *ProductHandler) Update(c *gin.Context) {
	var p dto.ProductPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		h.badRequest(c, "update", "invalid request")
		return
	}
	id := p.TargetID()
	if id == 0 {
		h.badRequest(c, "update", "Invalid product ID")
		return
	}

	product, err := h.uc.UpdateByID(c.Request.Context(), id, p.Input())
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	h.record("update", http.StatusOK)
	c.JSON(http.StatusOK, dto.ProductResultResponse{
		Success: true,
		Message: "Product updated successfully",
		Product: dto.FromEntity(*product),
	})
}

// Register は POST /products/register を処理します。
func (h *ProductHandler) Register(c *gin.Context) {
	var p dto.ProductPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		h.badRequest(c, "register", "invalid request")
		return
	}
	product, err := h.uc.Register(c.Request.Context(), p.Input())
	if err != nil {
		h.fail(c, "register", err)
		return
	}
	h.record("register", http.StatusCreated)
	c.JSON(http.StatusCreated, dto.ProductResultResponse{
		Success: true,
		Message: "Product registered successfully",
		Product: dto.FromEntity(*product),
	})
}

// Validate は POST /products/validate を処理します。
func (h *ProductHandler) Validate(c *gin.Context) {
	var req dto.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.Fail("invalid request"))
		return
	}
	p := h.uc.DefaultProfile()
	if req.Profile != "" {
		p = usecase.ParseProfile(req.Profile)
	}
	msg := h.uc.ValidateField(req.Field, req.Value, p)
	c.JSON(http.StatusOK, api.FieldValidationResponse{Field: req.Field, Valid: msg == "", Message: msg})
}

func (h *ProductHandler) badRequest(c *gin.Context, op, msg string) {
	h.record(op, http.StatusBadRequest)
	c.JSON(http.StatusBadRequest, api.Fail(msg))
}

func (h *ProductHandler) fail(c *gin.Context, op string, err error) {
	status, body := api.MutationError(err, "Product not found")
	l := logger.WithRequest(h.log, c).With(zap.String("op", op), zap.Int("status", status))
	if status >= http.StatusInternalServerError {
		l.Error("product write failed", zap.Error(err))
	} else {
		l.Warn("product write rejected", zap.String("reason", err.Error()))
	}
	h.record(op, status)
	c.JSON(status, body)
}

func (h *ProductHandler) record(op string, status int) {
	if h.metrics != nil {
		h.metrics.RecordOperation(resource, op, metrics.ResultForStatus(status))
	}
}

func hasSearchQuery(c *gin.Context) bool {
	for _, k := range []string{"name", "owner", "category", "page", "size"} {
		if _, ok := c.GetQuery(k); ok {
			return true
		}
	}
	return false
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return 0
	}
	return n
}

func decodeData(data json.RawMessage, v any) bool {
	if len(data) == 0 || string(data) == "null" {
		return true
	}
	return json.Unmarshal(data, v) == nil
}

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
	"admin_backend/internal/feature/users/domain/entity"
	"admin_backend/internal/feature/users/transport/http/dto"
	"admin_backend/internal/feature/users/usecase"
	"admin_backend/internal/platform/logger"
	"admin_backend/internal/platform/metrics"
)

const resource = "user"

// UserUsecase はユーザー管理のユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	List(ctx context.Context) ([]entity.User, error)
	Search(ctx context.Context, f entity.UserFilter) ([]entity.User, int64, entity.UserFilter, error)
	Create(ctx context.Context, in entity.UserInput) (*entity.User, error)
	Register(ctx context.Context, in entity.UserInput) (*entity.User, error)
	UpdateByID(ctx context.Context, id uint, in entity.UserInput) (*entity.User, error)
	DeleteByID(ctx context.Context, id uint) error
	DeleteByEmail(ctx context.Context, email string) error
	DeleteAll(ctx context.Context) (int64, error)
	ValidateField(field, value string, p usecase.Profile) string
	DefaultProfile() usecase.Profile
}

// OperationRecorder は操作結果をメトリクスとして記録します。
type OperationRecorder interface {
	RecordOperation(resource, operation, result string)
}

// UserHandler はユーザー管理に関するHTTPリクエストを処理します。
type UserHandler struct {
	uc      UserUsecase
	log     *zap.Logger
	metrics OperationRecorder
}

// NewUserHandler は新しい UserHandler を作成します。
func NewUserHandler(uc UserUsecase, log *zap.Logger, rec OperationRecorder) *UserHandler {
	return &UserHandler{uc: uc, log: log, metrics: rec}
}

// List は GET /users を処理します。
// name / category / page / size のいずれかが指定された場合は検索とページングを行い、
// total / page / size も返します。
func (h *UserHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if !hasSearchQuery(c) {
		users, err := h.uc.List(ctx)
		if err != nil {
			logger.WithRequest(h.log, c).Error("list users failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.ListResponse{Users: dto.FromEntities(users)})
		return
	}

	f := entity.UserFilter{
		Name:     c.Query("name"),
		Category: c.Query("category"),
		Page:     queryInt(c, "page"),
		Size:     queryInt(c, "size"),
	}
	users, total, f, err := h.uc.Search(ctx, f)
	if err != nil {
		logger.WithRequest(h.log, c).Error("search users failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{
		Users: dto.FromEntities(users),
		Total: &total,
		Page:  f.Page,
		Size:  f.Size,
	})
}

// Action は POST /users を処理します。action により add / delete / deleteAll を振り分けます。
func (h *UserHandler) Action(c *gin.Context) {
	var req dto.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "action", "invalid request")
		return
	}

	switch req.Action {
	case "add":
		h.add(c, req.Data)
	case "delete":
		h.delete(c, req.Data)
	case "deleteAll":
		h.deleteAll(c)
	default:
		h.badRequest(c, "action", "Unknown action")
	}
}

func (h *UserHandler) add(c *gin.Context, data json.RawMessage) {
	var p dto.UserPayload
	if !decodeData(data, &p) {
		h.badRequest(c, "add", "invalid request")
		return
	}
	u, err := h.uc.Create(c.Request.Context(), p.Input())
	if err != nil {
		h.fail(c, "add", err)
		return
	}
	h.record("add", http.StatusCreated)
	c.JSON(http.StatusCreated, dto.UserResultResponse{
		Success: true,
		Message: "User added successfully",
		User:    dto.FromEntity(*u),
	})
}

func (h *UserHandler) delete(c *gin.Context, data json.RawMessage) {
	var d dto.DeleteData
	if !decodeData(data, &d) {
		h.badRequest(c, "delete", "invalid request")
		return
	}

	ctx := c.Request.Context()
	var err error
	if id := api.First(d.ID, d.UserID); id != 0 {
		err = h.uc.DeleteByID(ctx, id)
	} else {
		err = h.uc.DeleteByEmail(ctx, string(d.Email))
	}
	if err != nil {
		h.fail(c, "delete", err)
		return
	}
	h.record("delete", http.StatusOK)
	c.JSON(http.StatusOK, api.ResultResponse{Success: true, Message: "User deleted successfully"})
}

func (h *UserHandler) deleteAll(c *gin.Context) {
	n, err := h.uc.DeleteAll(c.Request.Context())
	if err != nil {
		h.fail(c, "deleteAll", err)
		return
	}
	logger.WithRequest(h.log, c).Info("all users deleted", zap.Int64("count", n))
	h.record("deleteAll", http.StatusOK)
	c.JSON(http.StatusOK, api.ResultResponse{Success: true, Message: "All users deleted successfully"})
}

// Update は PATCH /users を処理します。id（または userId）で指定したユーザーを全項目置き換えます。
func (h *UserHandler) Update(c *gin.Context) {
	var p dto.UserPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		h.badRequest(c, "update", "invalid request")
		return
	}
	id := p.TargetID()
	if id == 0 {
		h.badRequest(c, "update", "Invalid user ID")
		return
	}

	u, err := h.uc.UpdateByID(c.Request.Context(), id, p.Input())
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	h.record("update", http.StatusOK)
	c.JSON(http.StatusOK, dto.UserResultResponse{
		Success: true,
		Message: "User updated successfully",
		User:    dto.FromEntity(*u),
	})
}

// Register は POST /users/register を処理します。登録用の厳しいルールで検証します。
func (h *UserHandler) Register(c *gin.Context) {
	var p dto.UserPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		h.badRequest(c, "register", "invalid request")
		return
	}
	u, err := h.uc.Register(c.Request.Context(), p.Input())
	if err != nil {
		h.fail(c, "register", err)
		return
	}
	h.record("register", http.StatusCreated)
	c.JSON(http.StatusCreated, dto.UserResultResponse{
		Success: true,
		Message: "User registered successfully",
		User:    dto.FromEntity(*u),
	})
}

// Validate は POST /users/validate を処理します。フォームの項目単位チェック用です。
func (h *UserHandler) Validate(c *gin.Context) {
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

func (h *UserHandler) badRequest(c *gin.Context, op, msg string) {
	h.record(op, http.StatusBadRequest)
	c.JSON(http.StatusBadRequest, api.Fail(msg))
}

// fail writes the error response for a write operation and logs it.
func (h *UserHandler) fail(c *gin.Context, op string, err error) {
	status, body := api.MutationError(err, "User not found")
	l := logger.WithRequest(h.log, c).With(zap.String("op", op), zap.Int("status", status))
	if status >= http.StatusInternalServerError {
		l.Error("user write failed", zap.Error(err))
	} else {
		l.Warn("user write rejected", zap.String("reason", err.Error()))
	}
	h.record(op, status)
	c.JSON(status, body)
}

func (h *UserHandler) record(op string, status int) {
	if h.metrics != nil {
		h.metrics.RecordOperation(resource, op, metrics.ResultForStatus(status))
	}
}

func hasSearchQuery(c *gin.Context) bool {
	for _, k := range []string{"name", "category", "page", "size"} {
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

// decodeData decodes the data member of an action request. A missing member decodes to the zero value.
func decodeData(data json.RawMessage, v any) bool {
	if len(data) == 0 || string(data) == "null" {
		return true
	}
	return json.Unmarshal(data, v) == nil
}

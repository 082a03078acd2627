package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	producthandler "admin_backend/internal/feature/products/transport/handler"
	userhandler "admin_backend/internal/feature/users/transport/handler"
	"admin_backend/internal/platform/http/handler"
	"admin_backend/internal/platform/http/middleware"
	"admin_backend/internal/platform/metrics"
)

// Options はルーター全体に適用する横断的な設定です。ゼロ値の項目は無効になります。
type Options struct {
	Logger      *zap.Logger
	Metrics     *metrics.Collector
	Gatherer    prometheus.Gatherer
	ReadyChecks map[string]handler.Check

	CORSOrigins  []string
	RPS          float64
	Burst        int
	MaxInFlight  int64
	MaxBodyBytes int64
}

// NewRouter はユーザー・商品管理APIのルーティングを構築します。
func NewRouter(opt Options, users *userhandler.UserHandler, products *producthandler.ProductHandler) *gin.Engine {
	l := opt.Logger
	if l == nil {
		l = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(l, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(l, true))
	r.Use(corsMiddleware(opt.CORSOrigins))

	// 導通確認用 (制限の対象外)
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)
	r.GET("/readyz", handler.Ready(opt.ReadyChecks))
	if opt.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(opt.Gatherer)))
	}

	api := r.Group("/")
	if opt.Metrics != nil {
		api.Use(middleware.Metrics(opt.Metrics))
	}
	if opt.RPS > 0 {
		api.Use(middleware.RateLimitPerIP(rate.Limit(opt.RPS), max(1, opt.Burst)))
	}
	if opt.MaxInFlight > 0 {
		api.Use(middleware.ConcurrencyLimit(opt.MaxInFlight))
	}
	if opt.MaxBodyBytes > 0 {
		api.Use(middleware.MaxBodyBytes(opt.MaxBodyBytes))
	}
	{
		api.GET("/users", users.List)
		api.POST("/users", users.Action)
		api.PATCH("/users", users.Update)
		api.POST("/users/register", users.Register)
		api.POST("/users/validate", users.Validate)

		api.GET("/products", products.List)
		api.POST("/products", products.Action)
		api.PATCH("/products", products.Update)
		api.POST("/products/register", products.Register)
		api.POST("/products/validate", products.Validate)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.KeyRequestID)
	cfg.ExposeHeaders = []string{middleware.KeyRequestID}
	return cors.New(cfg)
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	redisv9 "github.com/redis/go-redis/v9"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"admin_backend/internal/app/di"
	"admin_backend/internal/app/router"
	"admin_backend/internal/platform/config"
	"admin_backend/internal/platform/db"
	"admin_backend/internal/platform/http/handler"
	"admin_backend/internal/platform/logger"
	"admin_backend/internal/platform/metrics"
	infraredis "admin_backend/internal/platform/redis"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, flush := logger.New(logger.Options{
		Level: cfg.Log.Level,
		JSON:  cfg.Log.JSON || cfg.IsProduction(),
		Rotate: logger.FileRotate{
			Enable:     cfg.Log.File != "",
			Filename:   cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			Compress:   true,
		},
	})
	defer flush()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// db
	gdb, err := db.Open(cfg.DBConfig())
	if err != nil {
		log.Fatal("db open failed", zap.String("driver", cfg.DB.Driver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			log.Error("failed to close db", zap.Error(err))
		}
	}()
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))
	if cfg.DB.AutoMigrate {
		if err := db.Migrate(gdb, di.Models()...); err != nil {
			log.Fatal("migration failed", zap.Error(err))
		}
	}

	// Redis
	var rdb *redisv9.Client
	if cfg.Redis.Enabled {
		if tmp, err := infraredis.NewRedisClient(context.Background(), cfg.Redis, log); err != nil {
			log.Warn("redis unavailable, running without cache")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Error("failed to close redis client", zap.Error(err))
				}
			}()
		}
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	col := metrics.NewCollector(reg)

	// Repository (Redisキャッシュでラップ)
	userRepo := di.NewUserRepository(gdb, rdb, cfg.Redis.TTL, col)
	productRepo := di.NewProductRepository(gdb, rdb, cfg.Redis.TTL, col)

	// Handler
	userH := di.NewUserHandler(userRepo, cfg.Validation.UserProfile, log, col)
	productH := di.NewProductHandler(productRepo, cfg.Validation.ProductProfile, log, col)

	// ルータ生成
	r := router.NewRouter(router.Options{
		Logger:       log,
		Metrics:      col,
		Gatherer:     reg,
		ReadyChecks:  readyChecks(gdb, rdb),
		CORSOrigins:  cfg.App.HTTP.CORSOrigins,
		RPS:          cfg.Limits.RPS,
		Burst:        cfg.Limits.Burst,
		MaxInFlight:  cfg.Limits.MaxInFlight,
		MaxBodyBytes: cfg.App.HTTP.MaxBodyBytes,
	}, userH, productH)

	srv := &http.Server{
		Addr:           cfg.App.HTTP.Addr,
		Handler:        r,
		ReadTimeout:    cfg.App.HTTP.ReadTimeout,
		WriteTimeout:   cfg.App.HTTP.WriteTimeout,
		IdleTimeout:    cfg.App.HTTP.IdleTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info("http starting", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("http stopped")
}

func readyChecks(gdb *gorm.DB, rdb *redisv9.Client) map[string]handler.Check {
	checks := map[string]handler.Check{
		"db": func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return infraredis.Ping(ctx, rdb) }
	}
	return checks
}

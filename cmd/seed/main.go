package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"admin_backend/internal/app/di"
	"admin_backend/internal/app/seed"
	productusecase "admin_backend/internal/feature/products/usecase"
	userusecase "admin_backend/internal/feature/users/usecase"
	"admin_backend/internal/platform/config"
	"admin_backend/internal/platform/db"
	"admin_backend/internal/platform/logger"
	"admin_backend/internal/shared/ratelimiter"
)

func main() {
	file := flag.String("file", "seed.json", "seed document to import")
	perSecond := flag.Int("rate", 50, "maximum records written per second (0 = unlimited)")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log, flush := logger.New(logger.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})
	defer flush()

	gdb, err := db.Open(cfg.DBConfig())
	if err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}
	defer func() { _ = db.Close(gdb) }()
	if err := db.Migrate(gdb, di.Models()...); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal("failed to open seed file", zap.Error(err))
	}
	defer func() { _ = f.Close() }()

	// キャッシュは経由せず、APIサーバー側はTTL経過で反映される
	users := userusecase.NewUserUsecase(di.NewUserRepository(gdb, nil, 0, nil), userusecase.ParseProfile(cfg.Validation.UserProfile))
	products := productusecase.NewProductUsecase(di.NewProductRepository(gdb, nil, 0, nil), productusecase.ParseProfile(cfg.Validation.ProductProfile))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	runner := seed.NewRunner(users, products, ratelimiter.New(*perSecond, time.Second), log)
	res, err := runner.Run(ctx, f)
	if err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	log.Info("seed ok",
		zap.Int("users_created", res.UsersCreated),
		zap.Int("products_created", res.ProductsCreated),
		zap.Int("skipped", res.Skipped),
	)
}

// Package redis はキャッシュ用のRedisクライアントを生成します。
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"admin_backend/internal/platform/config"
)

// pingTimeout は起動時の接続確認の上限時間です。
const pingTimeout = 5 * time.Second

// Pinger は接続確認に使うRedisクライアントの最小インターフェースです。
type Pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// Options は設定からクライアントオプションを組み立てます。
func Options(cfg config.Redis) *redis.Options {
	return &redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// NewRedisClient は新しいクライアントを作成し、接続を確認します。
func NewRedisClient(ctx context.Context, cfg config.Redis, log *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(Options(cfg))
	if err := Ping(ctx, rdb); err != nil {
		log.Error("redis connection failed", zap.String("address", cfg.Addr()), zap.Error(err))
		_ = rdb.Close()
		return nil, err
	}
	log.Info("redis connection successful", zap.String("address", cfg.Addr()))
	return rdb, nil
}

// Ping は pingTimeout 以内に応答があるかを確認します。
func Ping(ctx context.Context, p Pinger) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return p.Ping(ctx).Err()
}

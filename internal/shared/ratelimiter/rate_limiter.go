// Package ratelimiter paces repeated operations such as bulk imports.
package ratelimiter

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter は操作の頻度を制限するインターフェースです。
type Limiter interface {
	// Wait は次の操作が許可されるまで待機します。ctx が終了した場合はエラーを返します。
	Wait(ctx context.Context) error
}

// New は interval あたり limit 回までの操作を許可するLimiterを生成します。
// limit が0以下の場合は制限しません。
func New(limit int, interval time.Duration) Limiter {
	if limit <= 0 || interval <= 0 {
		return unlimited{}
	}
	return rate.NewLimiter(rate.Every(interval/time.Duration(limit)), limit)
}

type unlimited struct{}

func (unlimited) Wait(ctx context.Context) error {
	return ctx.Err()
}

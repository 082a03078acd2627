// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// checkTimeout は依存先1件あたりの確認時間の上限です。
const checkTimeout = 2 * time.Second

// Check は依存先(DB、Redisなど)の疎通を確認する関数です。
type Check func(ctx context.Context) error

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
func Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Ready は /readyz を処理するハンドラーを返します。
// すべての checks が成功すれば200、1件でも失敗すれば503を返します。
func Ready(checks map[string]Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")

		results := make(map[string]string, len(checks))
		status := http.StatusOK
		for name, check := range checks {
			ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
			err := check(ctx)
			cancel()
			if err != nil {
				results[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = "ok"
		}

		body := gin.H{"status": "ok", "checks": results}
		if status != http.StatusOK {
			body["status"] = "unavailable"
		}
		c.JSON(status, body)
	}
}

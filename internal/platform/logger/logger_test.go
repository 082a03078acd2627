package logger

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"admin_backend/internal/platform/http/middleware"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			l, flush := New(Options{Level: tt.level, JSON: true})
			defer flush()

			assert.True(t, l.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestNew_RotateWritesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	l, flush := New(Options{
		Level:  "info",
		JSON:   true,
		Rotate: FileRotate{Enable: true, Filename: path, MaxSizeMB: 1},
	})
	l.Info("user added", zap.Uint("id", 7))
	flush()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"user added"`)
	assert.Contains(t, string(b), `"id":7`)
}

func TestWithRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/users", func(c *gin.Context) {
		WithRequest(base, c).Info("listed")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set(middleware.KeyRequestID, "rid-1")
	req.RemoteAddr = "192.0.2.10:5555"
	r.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "rid-1", fields["request_id"])
	assert.Equal(t, "192.0.2.10", fields["client_ip"])
	assert.Equal(t, "/users", fields["route"])
}

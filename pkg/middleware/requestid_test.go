package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TestRequestID はRequestIDミドルウェアを検証する。
func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("ヘッダーが無い場合はUUIDを割り当てること", func(t *testing.T) {
		t.Parallel()

		var got string
		router := gin.New()
		router.Use(RequestID())
		router.GET("/", func(c *gin.Context) {
			got = GetRequestID(c)
			c.Status(http.StatusNoContent)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if _, err := uuid.Parse(got); err != nil {
			t.Errorf("リクエストIDがUUIDではない: %q", got)
		}
		if h := w.Header().Get("X-Request-ID"); h != got {
			t.Errorf("X-Request-ID = %q, want %q", h, got)
		}
	})

	t.Run("クライアントのリクエストIDを引き継ぐこと", func(t *testing.T) {
		t.Parallel()

		var got string
		router := gin.New()
		router.Use(RequestID())
		router.GET("/", func(c *gin.Context) {
			got = GetRequestID(c)
			c.Status(http.StatusNoContent)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "client-id-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got != "client-id-1" {
			t.Errorf("GetRequestID() = %q, want %q", got, "client-id-1")
		}
	})

	t.Run("ミドルウェア未適用の場合は空文字列を返すこと", func(t *testing.T) {
		t.Parallel()

		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		if got := GetRequestID(c); got != "" {
			t.Errorf("GetRequestID() = %q, want empty", got)
		}
	})
}

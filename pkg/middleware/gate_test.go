package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	// testToken はテスト用の認証トークン。
	testToken = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	// testLoginPage はテスト用のログインページ。
	testLoginPage = "<html>login</html>"
)

// newGateRouter はAccessGateを適用したテスト用ルーターを生成する。
func newGateRouter() *gin.Engine {
	router := gin.New()
	router.Use(AccessGate(testToken, func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(testLoginPage))
	}))
	router.GET("/secret", func(c *gin.Context) {
		c.String(http.StatusOK, "secret")
	})
	router.POST("/api/call", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	router.Any(LoginPath, func(c *gin.Context) {
		c.String(http.StatusOK, "login-handler")
	})
	return router
}

// TestAccessGate はAccessGateミドルウェアを検証する。
func TestAccessGate(t *testing.T) {
	t.Parallel()

	t.Run("有効なCookieがある場合は次のハンドラに進むこと", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.Header.Set("Cookie", "theme=dark; auth="+testToken)
		w := httptest.NewRecorder()

		newGateRouter().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}
		if w.Body.String() != "secret" {
			t.Errorf("body = %q, want %q", w.Body.String(), "secret")
		}
	})

	t.Run("Cookieが無い場合はログインページを200で返すこと", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		w := httptest.NewRecorder()

		newGateRouter().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}
		if w.Body.String() != testLoginPage {
			t.Errorf("body = %q, want %q", w.Body.String(), testLoginPage)
		}
		if got := w.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
			t.Errorf("Content-Type = %q, want %q", got, "text/html; charset=utf-8")
		}
	})

	t.Run("トークンが一致しない場合はログインページを返すこと", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.Header.Set("Cookie", "auth=wrong-token")
		w := httptest.NewRecorder()

		newGateRouter().ServeHTTP(w, req)

		if w.Body.String() != testLoginPage {
			t.Errorf("body = %q, want %q", w.Body.String(), testLoginPage)
		}
	})

	t.Run("=を含まないauth要素は認証されないこと", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.Header.Set("Cookie", "auth; other=1")
		w := httptest.NewRecorder()

		newGateRouter().ServeHTTP(w, req)

		if w.Body.String() != testLoginPage {
			t.Errorf("body = %q, want %q", w.Body.String(), testLoginPage)
		}
	})

	t.Run("Cookie名の大文字小文字を区別すること", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.Header.Set("Cookie", "AUTH="+testToken)
		w := httptest.NewRecorder()

		newGateRouter().ServeHTTP(w, req)

		if w.Body.String() != testLoginPage {
			t.Errorf("body = %q, want %q", w.Body.String(), testLoginPage)
		}
	})

	t.Run("未認証のAPI呼び出しもログインページを返すこと", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/api/call", nil)
		w := httptest.NewRecorder()

		newGateRouter().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}
		if w.Body.String() != testLoginPage {
			t.Errorf("body = %q, want %q", w.Body.String(), testLoginPage)
		}
	})

	t.Run("分割されたCookieヘッダーも結合して検証すること", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.Header.Add("Cookie", "theme=dark")
		req.Header.Add("Cookie", "auth="+testToken)
		w := httptest.NewRecorder()

		newGateRouter().ServeHTTP(w, req)

		if w.Body.String() != "secret" {
			t.Errorf("body = %q, want %q", w.Body.String(), "secret")
		}
	})

	t.Run("ログインパスは認証なしで到達できること", func(t *testing.T) {
		t.Parallel()

		for _, method := range []string{http.MethodGet, http.MethodPost} {
			req := httptest.NewRequest(method, LoginPath, nil)
			w := httptest.NewRecorder()

			newGateRouter().ServeHTTP(w, req)

			if w.Body.String() != "login-handler" {
				t.Errorf("%s body = %q, want %q", method, w.Body.String(), "login-handler")
			}
		}
	})

	t.Run("ログインパス配下のパスは保護されること", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/auth/extra", nil)
		w := httptest.NewRecorder()

		newGateRouter().ServeHTTP(w, req)

		if w.Body.String() != testLoginPage {
			t.Errorf("body = %q, want %q", w.Body.String(), testLoginPage)
		}
	})
}

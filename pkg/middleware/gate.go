package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/outbound/pkg/cookie"
	"github.com/nao1215/outbound/pkg/token"
)

const (
	// AuthCookieName は認証トークンを保持するCookieの名前。
	AuthCookieName = "auth"
	// LoginPath は認証なしで到達できる唯一のパス。
	LoginPath = "/auth"
)

// AccessGate は認証Cookieを検証するGinミドルウェアを返す。
//
// LoginPathへのリクエストはメソッドに関わらず素通しする。それ以外は
// "auth" Cookieの値がtokenと一致する場合のみ次のハンドラへ進む。
// 一致しない場合はdenyを呼び出して処理を中断する。denyは401ではなく
// 200でログインページを返すことを想定している。
func AccessGate(tok string, deny gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == LoginPath {
			c.Next()
			return
		}

		// HTTP/2では複数のCookieヘッダーに分割されることがある
		cookies := cookie.Parse(strings.Join(c.Request.Header.Values("Cookie"), "; "))
		if token.Equal(cookies[AuthCookieName], tok) {
			c.Next()
			return
		}

		deny(c)
		c.Abort()
	}
}

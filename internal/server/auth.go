package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/outbound/pkg/middleware"
)

// authCookieMaxAge は認証Cookieの有効期間（秒）。
const authCookieMaxAge = 86400

// loginFailedPath はパスワード不一致時のリダイレクト先。
const loginFailedPath = middleware.LoginPath + "?err=1"

// loginRequest はログインフォームの入力。フォームとJSONのどちらも受け付ける。
type loginRequest struct {
	Password string `form:"password" json:"password"`
}

// renderLogin はログインページを返すハンドラを返す。
func (s *Server) renderLogin(failed bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{"Failed": failed})
	}
}

// handleLoginPage はログインページを返すハンドラを返す。
// ログイン失敗時のリダイレクト（?err=1）ではエラーメッセージを表示する。
func (s *Server) handleLoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.renderLogin(c.Query("err") == "1")(c)
	}
}

// handleLogin はパスワードを検証して認証Cookieを発行するハンドラを返す。
// 試行回数の制限は行わない。
func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		// 解釈できないボディは空のパスワードとして扱う
		_ = c.ShouldBind(&req)

		if subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.SitePassword)) != 1 {
			c.Redirect(http.StatusSeeOther, loginFailedPath)
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middleware.AuthCookieName, s.cfg.AuthToken, authCookieMaxAge, "/", "", false, true)
		c.Redirect(http.StatusSeeOther, "/")
	}
}

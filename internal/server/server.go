package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/outbound/internal/config"
	"github.com/nao1215/outbound/internal/elevenlabs"
	"github.com/nao1215/outbound/pkg/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// callPlacer は外部APIへの発信を行う。
type callPlacer interface {
	OutboundCall(ctx context.Context, req elevenlabs.OutboundCallRequest) (*elevenlabs.OutboundCallResponse, error)
}

// Server はデモサイトのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// cfg は起動時に読み込んだ設定。
	cfg *config.Config
	// caller は発信APIのクライアント。
	caller callPlacer
}

// NewServer は新しいサーバーを生成する。
func NewServer(cfg *config.Config) (*Server, error) {
	caller := elevenlabs.NewClient(cfg.ElevenLabs.BaseURL, cfg.ElevenLabs.APIKey)
	return newServer(cfg, caller)
}

// newServer は発信クライアントを指定してサーバーを生成する。
func newServer(cfg *config.Config, caller callPlacer) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("テンプレートの読み込みに失敗: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	s := &Server{
		router: router,
		cfg:    cfg,
		caller: caller,
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.AccessGate(cfg.AuthToken, s.renderLogin(false)))
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.cfg.Port))
}

// Engine はGinエンジンを返す。マネージド関数環境のアダプタに渡すために使用する。
func (s *Server) Engine() *gin.Engine {
	return s.router
}

// setupRoutes はルーティングを設定する。
// AccessGateはグローバルに適用されるため、NoRouteの静的ファイルも保護される。
func (s *Server) setupRoutes() {
	// ログイン（認証不要）
	s.router.GET(middleware.LoginPath, s.handleLoginPage())
	s.router.HEAD(middleware.LoginPath, s.handleLoginPage())
	s.router.POST(middleware.LoginPath, s.handleLogin())

	api := s.router.Group("/api")
	{
		api.POST("/call", s.handleCall())
	}

	s.router.NoRoute(s.handleStatic())
}

// handleStatic は公開ディレクトリの静的ファイルを返すハンドラを返す。
// ディレクトリ一覧は返さない。
func (s *Server) handleStatic() gin.HandlerFunc {
	fileServer := http.FileServer(gin.Dir(s.cfg.PublicDir, false))
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}

// アウトバウンド発信デモサーバーのエントリポイント。
// 共通パスワードで保護した静的サイトと、ElevenLabs経由で発信するAPIを提供する。
// AWS_LAMBDA_FUNCTION_NAMEが設定されている場合はポートを開かず、Lambdaのハンドラとして動作する。
package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/nao1215/outbound/internal/config"
	"github.com/nao1215/outbound/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	s, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("サーバーの初期化に失敗: %v", err)
	}

	if cfg.Lambda {
		lambda.Start(ginadapter.New(s.Engine()).ProxyWithContext)
		return
	}

	log.Printf("Outbound demo running at http://localhost:%s", cfg.Port)
	if err := s.Run(); err != nil {
		log.Fatalf("サーバーの起動に失敗: %v", err)
	}
}

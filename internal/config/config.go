// Package config はデモサーバーの設定を環境変数から読み込む。
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/nao1215/outbound/internal/elevenlabs"
	"github.com/nao1215/outbound/pkg/token"
)

// defaultSitePassword はSITE_PASSWORDが未設定の場合のパスワード。
const defaultSitePassword = "simplifyai"

// Config はサーバーの設定。起動後は変更しない。
type Config struct {
	// Port はスタンドアロン起動時のリッスンポート。
	Port string
	// SitePassword はサイト全体を保護する共通パスワード。
	SitePassword string
	// AuthToken はSitePasswordから導出した認証Cookieの値。
	AuthToken string
	// PublicDir は静的ファイルのディレクトリ。
	PublicDir string
	// Lambda はマネージド関数環境で動作しているかどうか。
	Lambda bool
	// ElevenLabs は発信APIの設定。
	ElevenLabs ElevenLabsConfig
}

// ElevenLabsConfig はElevenLabs APIの設定。
type ElevenLabsConfig struct {
	BaseURL       string
	APIKey        string
	AgentID       string
	PhoneNumberID string
}

// Load は環境変数から設定を読み込み、認証トークンを導出する。
// マネージド関数環境以外では、カレントディレクトリの .env を先に読み込む。
func Load() (*Config, error) {
	lambda := os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
	if !lambda {
		if err := LoadDotEnv(); err != nil {
			log.Printf("%v", err)
		}
	}

	password := EnvOr("SITE_PASSWORD", defaultSitePassword)
	authToken, err := token.Derive(password)
	if err != nil {
		return nil, fmt.Errorf("認証トークンの導出に失敗: %w", err)
	}

	return &Config{
		Port:         EnvOr("PORT", "3000"),
		SitePassword: password,
		AuthToken:    authToken,
		PublicDir:    EnvOr("PUBLIC_DIR", "public"),
		Lambda:       lambda,
		ElevenLabs: ElevenLabsConfig{
			BaseURL:       EnvOr("ELEVENLABS_BASE_URL", elevenlabs.DefaultBaseURL),
			APIKey:        os.Getenv("ELEVENLABS_API_KEY"),
			AgentID:       os.Getenv("ELEVENLABS_AGENT_ID"),
			PhoneNumberID: os.Getenv("ELEVENLABS_PHONE_NUMBER_ID"),
		},
	}, nil
}

// LoadDotEnv はカレントディレクトリの .env を環境変数に読み込む。
// 既に設定済みの変数は上書きしない。ファイルが無い場合はエラーにしない。
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf(".envの読み込みに失敗: %w", err)
	}
	return nil
}

// EnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func EnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

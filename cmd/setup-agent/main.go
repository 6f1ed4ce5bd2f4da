// ElevenLabsにデモ用の発信エージェントを作成し、Twilioの電話番号をインポートする。
// 出力されるagent_idとphone_number_idをサーバーの
// ELEVENLABS_AGENT_ID / ELEVENLABS_PHONE_NUMBER_ID に設定する。
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nao1215/outbound/internal/config"
	"github.com/nao1215/outbound/internal/elevenlabs"
	"github.com/nao1215/outbound/pkg/httpclient"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// result はプロビジョニング結果。APIキーは含めない。
type result struct {
	AgentID       string `json:"agent_id"`
	PhoneNumberID string `json:"phone_number_id"`
	PhoneNumber   string `json:"phone_number"`
}

// credentials はプロビジョニングに必要な認証情報。
type credentials struct {
	apiKey      string
	twilioSID   string
	twilioToken string
	phoneNumber string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("setup-agent", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", "", "write the JSON result to this file")
	baseURL := fs.String("base-url", config.EnvOr("ELEVENLABS_BASE_URL", elevenlabs.DefaultBaseURL), "ElevenLabs API base URL")
	name := fs.String("name", defaultAgentName, "agent name")
	label := fs.String("label", defaultPhoneLabel, "label for the imported phone number")
	voiceID := fs.String("voice-id", defaultVoiceID, "TTS voice id")
	timeout := fs.Duration("timeout", 30*time.Second, "timeout for each API request (0 disables it)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}
	creds, err := loadCredentials()
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}

	client := elevenlabs.NewClient(*baseURL, creds.apiKey, httpclient.WithTimeout(*timeout))

	fmt.Fprintln(stderr, "エージェントを作成中...")
	agentID, err := client.CreateAgent(ctx, demoAgent(*name, *voiceID))
	if err != nil {
		printAPIError(stderr, err)
		return 1
	}
	fmt.Fprintf(stderr, "エージェントを作成: %s\n", agentID)

	fmt.Fprintln(stderr, "Twilioの電話番号をインポート中...")
	imported, err := client.ImportPhoneNumber(ctx, elevenlabs.PhoneNumberImport{
		Provider:    "twilio",
		PhoneNumber: creds.phoneNumber,
		Label:       *label,
		SID:         creds.twilioSID,
		Token:       creds.twilioToken,
		AgentID:     agentID,
	})
	if err != nil {
		printAPIError(stderr, err)
		return 1
	}
	fmt.Fprintf(stderr, "電話番号をインポート: %s\n", imported.ID)
	var indented bytes.Buffer
	if err := json.Indent(&indented, imported.Raw, "", "  "); err == nil {
		fmt.Fprintln(stderr, indented.String())
	}

	body, err := json.MarshalIndent(result{
		AgentID:       agentID,
		PhoneNumberID: imported.ID,
		PhoneNumber:   creds.phoneNumber,
	}, "", "  ")
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	body = append(body, '\n')

	if *out != "" {
		if err := os.WriteFile(*out, body, 0o600); err != nil {
			fmt.Fprintf(stderr, "%sへの書き込みに失敗: %v\n", *out, err)
			return 1
		}
	}
	_, _ = stdout.Write(body)
	return 0
}

// loadCredentials は環境変数から認証情報を読み込む。
func loadCredentials() (credentials, error) {
	c := credentials{
		apiKey:      os.Getenv("ELEVENLABS_API_KEY"),
		twilioSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
		twilioToken: os.Getenv("TWILIO_AUTH_TOKEN"),
		phoneNumber: os.Getenv("TWILIO_PHONE_NUMBER"),
	}
	var missing []string
	for _, kv := range [][2]string{
		{"ELEVENLABS_API_KEY", c.apiKey},
		{"TWILIO_ACCOUNT_SID", c.twilioSID},
		{"TWILIO_AUTH_TOKEN", c.twilioToken},
		{"TWILIO_PHONE_NUMBER", c.phoneNumber},
	} {
		if kv[1] == "" {
			missing = append(missing, kv[0])
		}
	}
	if len(missing) > 0 {
		return credentials{}, fmt.Errorf("必須の環境変数が設定されていない: %v", missing)
	}
	return c, nil
}

func printAPIError(w io.Writer, err error) {
	var apiErr *elevenlabs.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintf(w, "ERROR %d: %s\n", apiErr.StatusCode, string(apiErr.Body))
		return
	}
	fmt.Fprintf(w, "ERROR: %v\n", err)
}

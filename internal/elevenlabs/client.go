package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nao1215/outbound/pkg/httpclient"
)

// DefaultBaseURL はElevenLabs APIの既定のベースURL。
const DefaultBaseURL = "https://api.elevenlabs.io"

const (
	outboundCallPath = "/v1/convai/twilio/outbound-call"
	createAgentPath  = "/v1/convai/agents/create"
	phoneNumbersPath = "/v1/convai/phone-numbers"
)

// Client はElevenLabs APIクライアント。
type Client struct {
	// http はJSON通信用のHTTPクライアント。
	http *httpclient.Client
}

// NewClient は新しいElevenLabs APIクライアントを生成する。
// APIキーはすべてのリクエストに xi-api-key ヘッダーとして付与される。
func NewClient(baseURL, apiKey string, opts ...httpclient.Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	opts = append([]httpclient.Option{httpclient.WithHeader("xi-api-key", apiKey)}, opts...)
	return &Client{http: httpclient.New(baseURL, opts...)}
}

// OutboundCallRequest はTwilio経由の発信リクエスト。
type OutboundCallRequest struct {
	// AgentID は発信に使うエージェントのID。
	AgentID string `json:"agent_id"`
	// AgentPhoneNumberID は発信元として使うインポート済み電話番号のID。
	AgentPhoneNumberID string `json:"agent_phone_number_id"`
	// ToNumber は正規化済みの発信先番号。
	ToNumber string `json:"to_number"`
}

// OutboundCallResponse は発信APIの成功レスポンス。
// 各フィールドはAPIが返した値をそのまま保持する。省略された場合は空、
// 明示的にnullが返された場合は "null" になる。
type OutboundCallResponse struct {
	// ConversationID は会話ID。
	ConversationID json.RawMessage `json:"conversation_id"`
	// CallSID はTwilioの通話SID。
	CallSID json.RawMessage `json:"callSid"`
}

// OutboundCall はTwilio経由で発信する。リトライは行わない。
// レスポンスがnullの場合はエラーとし、オブジェクト以外のJSONは
// 識別子を含まない成功レスポンスとして扱う。
func (c *Client) OutboundCall(ctx context.Context, req OutboundCallRequest) (*OutboundCallResponse, error) {
	var raw json.RawMessage
	if err := c.post(ctx, outboundCallPath, req, &raw); err != nil {
		return nil, err
	}

	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return nil, errors.New("発信APIのレスポンスがnull")
	}

	var resp OutboundCallResponse
	if raw[0] == '{' {
		if err := json.Unmarshal(raw, &resp); err != nil {
			return nil, fmt.Errorf("発信APIのレスポンスを解釈できない: %w", err)
		}
	}
	return &resp, nil
}

// CreateAgent はエージェントを作成し、そのIDを返す。
func (c *Client) CreateAgent(ctx context.Context, agent Agent) (string, error) {
	var resp struct {
		AgentID string `json:"agent_id"`
	}
	if err := c.post(ctx, createAgentPath, agent, &resp); err != nil {
		return "", err
	}
	if resp.AgentID == "" {
		return "", errors.New("レスポンスにagent_idが含まれていない")
	}
	return resp.AgentID, nil
}

// ImportedPhoneNumber は電話番号インポートAPIの結果。
type ImportedPhoneNumber struct {
	// ID はインポートされた電話番号のID。
	ID string
	// Raw はAPIのレスポンスボディ。
	Raw json.RawMessage
}

// ImportPhoneNumber はTwilioの電話番号をインポートする。
func (c *Client) ImportPhoneNumber(ctx context.Context, number PhoneNumberImport) (*ImportedPhoneNumber, error) {
	var raw json.RawMessage
	if err := c.post(ctx, phoneNumbersPath, number, &raw); err != nil {
		return nil, err
	}

	var resp struct {
		PhoneNumberID string `json:"phone_number_id"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("電話番号インポートのレスポンスを解釈できない: %w", err)
	}
	if resp.PhoneNumberID == "" {
		return nil, errors.New("レスポンスにphone_number_idが含まれていない")
	}
	return &ImportedPhoneNumber{ID: resp.PhoneNumberID, Raw: raw}, nil
}

// post はJSONでPOSTし、2xx以外の応答を*APIErrorに変換する。
func (c *Client) post(ctx context.Context, path string, body, result any) error {
	err := c.http.PostJSON(ctx, path, body, result)
	if err == nil {
		return nil
	}

	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) {
		return fmt.Errorf("%s の呼び出しに失敗: %w", path, err)
	}

	// JSONでない、またはnullのボディはdetailを参照できないため通信エラーと同様に扱う
	errBody := bytes.TrimSpace(statusErr.Body)
	if !json.Valid(errBody) || isNull(errBody) {
		return fmt.Errorf("%s のエラーレスポンスを解釈できない: status=%d", path, statusErr.StatusCode)
	}

	// オブジェクト以外のJSON（文字列・配列等）はdetailを持たない
	var payload struct {
		Detail any `json:"detail"`
	}
	_ = json.Unmarshal(errBody, &payload)
	return &APIError{
		StatusCode: statusErr.StatusCode,
		Detail:     payload.Detail,
		Body:       statusErr.Body,
	}
}

// isNull はJSON値がnullかどうかを返す。
func isNull(raw []byte) bool {
	return string(raw) == "null"
}

package elevenlabs

import "fmt"

// APIError はElevenLabs APIが2xx以外で応答したことを表す。
type APIError struct {
	// StatusCode はAPIが返したHTTPステータスコード。
	StatusCode int
	// Detail はレスポンスのdetailフィールド。文字列の場合も構造化された値の場合もある。
	Detail any
	// Body は生のレスポンスボディ。
	Body []byte
}

// Error はエラーメッセージを返す。
func (e *APIError) Error() string {
	return fmt.Sprintf("ElevenLabs APIエラー: status=%d, body=%s", e.StatusCode, string(e.Body))
}

// HasDetail はdetailに意味のある値が入っているかを返す。
// nil、空文字列、0、falseは値が無いものとして扱う。
func (e *APIError) HasDetail() bool {
	switch d := e.Detail.(type) {
	case nil:
		return false
	case string:
		return d != ""
	case float64:
		return d != 0
	case bool:
		return d
	default:
		return true
	}
}

package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/outbound/internal/elevenlabs"
	"github.com/nao1215/outbound/pkg/httpclient"
	"github.com/nao1215/outbound/pkg/middleware"
	"github.com/nao1215/outbound/pkg/phone"
)

const (
	errPhoneNumberRequired = "Phone number is required"
	errCallFailed          = "Failed to initiate call"
)

// callRequest は発信APIの入力。
type callRequest struct {
	PhoneNumber string `form:"phoneNumber" json:"phoneNumber"`
}

// callResponse は発信成功時のレスポンス。
// 外部APIが識別子を返さなかった場合、そのフィールドは省略する。
// 明示的なnullはnullのまま返す。
type callResponse struct {
	Success        bool            `json:"success"`
	ConversationID json.RawMessage `json:"conversationId,omitempty"`
	CallSID        json.RawMessage `json:"callSid,omitempty"`
	CalledNumber   string          `json:"calledNumber"`
}

// handleCall は電話番号を正規化してElevenLabsに発信を依頼するハンドラを返す。
func (s *Server) handleCall() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req callRequest
		if err := c.ShouldBind(&req); err != nil || req.PhoneNumber == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errPhoneNumberRequired})
			return
		}

		normalized := phone.Normalize(req.PhoneNumber)
		requestID := middleware.GetRequestID(c)

		// クライアントが切断しても発信リクエストは中断しない
		ctx := httpclient.WithRequestID(context.WithoutCancel(c.Request.Context()), requestID)
		resp, err := s.caller.OutboundCall(ctx, elevenlabs.OutboundCallRequest{
			AgentID:            s.cfg.ElevenLabs.AgentID,
			AgentPhoneNumberID: s.cfg.ElevenLabs.PhoneNumberID,
			ToNumber:           normalized,
		})
		if err != nil {
			var apiErr *elevenlabs.APIError
			if errors.As(err, &apiErr) {
				log.Printf("ElevenLabs APIエラー: request_id=%s, status=%d, body=%s",
					requestID, apiErr.StatusCode, string(apiErr.Body))
				var message any = errCallFailed
				if apiErr.HasDetail() {
					message = apiErr.Detail
				}
				c.JSON(apiErr.StatusCode, gin.H{"error": message})
				return
			}
			log.Printf("発信エラー: request_id=%s, error=%v", requestID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errCallFailed})
			return
		}

		c.JSON(http.StatusOK, callResponse{
			Success:        true,
			ConversationID: resp.ConversationID,
			CallSID:        resp.CallSID,
			CalledNumber:   normalized,
		})
	}
}

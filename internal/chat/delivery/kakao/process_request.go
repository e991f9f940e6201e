package kakao

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgKakao "kakao-support-chatbot/pkg/kakao"
)

// WebhookRequest is the Kakao i Open Builder event body.
type WebhookRequest struct {
	UserRequest *UserRequest `json:"userRequest,omitempty"`
	Action      string       `json:"action,omitempty"`
	User        *User        `json:"user,omitempty"`
}

// UserRequest carries the user's utterance for message turns.
type UserRequest struct {
	Utterance string `json:"utterance"`
}

// User identifies the platform user.
type User struct {
	ID string `json:"id"`
}

var (
	errMissingBody      = errors.New("request body is required")
	errMissingUser      = errors.New("user information is required")
	errMissingUtterance = errors.New("utterance is required")
)

// Boundary rejection texts, answered as Kakao payloads so the platform
// renders something sensible even for malformed requests.
const (
	msgBadRequest  = "잘못된 요청입니다."
	msgNoUser      = "사용자 정보를 찾을 수 없습니다."
	msgNoUtterance = "메시지 내용을 확인할 수 없습니다."
	msgServerError = "죄송합니다. 처리 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
)

// processWebhookReq binds and validates a message-turn request. On
// failure it has already written the 400 response.
func (h *handler) processWebhookReq(c *gin.Context) (*WebhookRequest, error) {
	ctx := c.Request.Context()

	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "kakao webhook: failed to parse body: %v", err)
		c.JSON(http.StatusBadRequest, pkgKakao.NewTextResponse(msgBadRequest))
		return nil, errMissingBody
	}

	if req.User == nil || req.User.ID == "" {
		h.l.Warnf(ctx, "kakao webhook: missing user information")
		c.JSON(http.StatusBadRequest, pkgKakao.NewTextResponse(msgNoUser))
		return nil, errMissingUser
	}

	if req.UserRequest == nil || req.UserRequest.Utterance == "" {
		h.l.Warnf(ctx, "kakao webhook: missing utterance for user %s", req.User.ID)
		c.JSON(http.StatusBadRequest, pkgKakao.NewTextResponse(msgNoUtterance))
		return nil, errMissingUtterance
	}

	return &req, nil
}

// processEventReq binds and validates a lifecycle event request.
func (h *handler) processEventReq(c *gin.Context) (*WebhookRequest, error) {
	ctx := c.Request.Context()

	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "kakao event: failed to parse body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return nil, errMissingBody
	}

	if req.User == nil || req.User.ID == "" {
		h.l.Warnf(ctx, "kakao event: missing user information")
		c.JSON(http.StatusBadRequest, gin.H{"error": "user id is required"})
		return nil, errMissingUser
	}

	return &req, nil
}

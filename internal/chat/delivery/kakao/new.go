package kakao

import (
	"github.com/gin-gonic/gin"

	"kakao-support-chatbot/internal/chat"
	pkgLog "kakao-support-chatbot/pkg/log"
)

// Handler is the public interface for the Kakao webhook delivery layer.
type Handler interface {
	HandleWebhook(c *gin.Context)
	HandleFriendEvent(c *gin.Context)
	HandleChatroomEvent(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// New creates a new Kakao webhook handler.
func New(l pkgLog.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

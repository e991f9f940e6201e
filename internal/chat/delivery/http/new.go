package http

import (
	"github.com/gin-gonic/gin"

	"kakao-support-chatbot/internal/chat"
	pkgLog "kakao-support-chatbot/pkg/log"
)

// Handler is the public interface for the admin HTTP delivery layer.
type Handler interface {
	GetSession(c *gin.Context)
	UpdateSession(c *gin.Context)
	GetLogs(c *gin.Context)
	GetStats(c *gin.Context)
	SendMessage(c *gin.Context)
	Info(c *gin.Context)
}

type handler struct {
	l           pkgLog.Logger
	uc          chat.UseCase
	environment string
}

// New creates a new admin HTTP handler.
func New(l pkgLog.Logger, uc chat.UseCase, environment string) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		environment: environment,
	}
}

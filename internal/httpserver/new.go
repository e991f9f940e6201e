package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"kakao-support-chatbot/internal/chat"
	adminHTTP "kakao-support-chatbot/internal/chat/delivery/http"
	kakaoDelivery "kakao-support-chatbot/internal/chat/delivery/kakao"
	"kakao-support-chatbot/internal/middleware"
	"kakao-support-chatbot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Chat domain
	chatUC       chat.UseCase
	kakaoHandler kakaoDelivery.Handler
	adminHandler adminHTTP.Handler
	mw           middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ChatUseCase  chat.UseCase
	KakaoHandler kakaoDelivery.Handler
	AdminHandler adminHTTP.Handler
	Middleware   middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.Default(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		chatUC:       cfg.ChatUseCase,
		kakaoHandler: cfg.KakaoHandler,
		adminHandler: cfg.AdminHandler,
		mw:           cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	if srv.kakaoHandler == nil {
		return errors.New("kakao handler is required")
	}
	if srv.adminHandler == nil {
		return errors.New("admin handler is required")
	}
	return nil
}

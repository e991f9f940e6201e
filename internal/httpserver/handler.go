package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	adminHTTP "kakao-support-chatbot/internal/chat/delivery/http"
	"kakao-support-chatbot/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/health/detailed", srv.detailedHealthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	// Kakao skill webhook: the platform expects the response payload in
	// the webhook response body, rate-limited per client.
	webhook := srv.gin.Group("/kakao")
	webhook.Use(srv.mw.RateLimit())
	webhook.POST("/webhook", srv.kakaoHandler.HandleWebhook)
	webhook.POST("/friend", srv.kakaoHandler.HandleFriendEvent)
	webhook.POST("/chatroom", srv.kakaoHandler.HandleChatroomEvent)
	srv.l.Infof(ctx, "Kakao webhook routes registered under POST /kakao")

	// Admin API
	api := srv.gin.Group("/api/v1")
	adminHTTP.RegisterRoutes(api, srv.adminHandler)
	srv.l.Infof(ctx, "Admin routes registered under /api/v1")

	return nil
}

package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kakao-support-chatbot/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Kakao Support Chatbot API With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "kakao-support-chatbot"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// detailedHealthCheck reports the engine probe and session store counts
// alongside the basic status. Status degrades to "degraded" when the
// engine is unreachable; the endpoint itself still answers 200 so that
// dashboards can read the detail.
// @Summary Detailed Health Check
// @Description Check API health including the recommendation engine and session store
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Detailed health report"
// @Router /health/detailed [get]
func (srv HTTPServer) detailedHealthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	engineHealth := srv.chatUC.EngineHealth(ctx)
	stats, err := srv.chatUC.Stats(ctx)
	if err != nil {
		srv.l.Warnf(ctx, "health: stats unavailable: %v", err)
	}

	status := "healthy"
	if !engineHealth.Healthy() {
		status = "degraded"
	}

	response.OK(c, gin.H{
		"status":  status,
		"version": HealthVersion,
		"service": ServiceName,
		"engine":  engineHealth,
		"sessions": gin.H{
			"active": stats.ActiveSessions,
		},
	})
}

// readyCheck handles readiness check — ready only when the engine answers.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "Engine unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	engineHealth := srv.chatUC.EngineHealth(ctx)
	if !engineHealth.Healthy() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "not_ready",
			"service": ServiceName,
			"engine":  engineHealth,
		})
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

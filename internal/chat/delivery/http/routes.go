package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the admin API onto the given router group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/session/:userId", h.GetSession)
	rg.PUT("/session/:userId", h.UpdateSession)
	rg.GET("/logs/:userId", h.GetLogs)
	rg.GET("/stats", h.GetStats)
	rg.POST("/message/send", h.SendMessage)
	rg.GET("/info", h.Info)
}

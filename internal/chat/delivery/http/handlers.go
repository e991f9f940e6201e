package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"kakao-support-chatbot/internal/chat"
	"kakao-support-chatbot/internal/model"
	"kakao-support-chatbot/pkg/response"
)

// GetSession godoc
// @Summary     Get a user session
// @Description Returns the conversation session for a user, defaulting when absent.
// @Tags        Session
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/session/{userId} [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Param("userId")
	session, err := h.uc.GetSession(ctx, model.Scope{UserID: userID})
	if err != nil {
		h.l.Errorf(ctx, "admin: GetSession: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newSessionResp(session))
}

// UpdateSession godoc
// @Summary     Update a user session
// @Description Merge-updates a session; omitted fields are preserved.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       userId path string            true "User ID"
// @Param       body   body updateSessionReq  true "Fields to update"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/session/{userId} [PUT]
func (h *handler) UpdateSession(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Param("userId")

	var req updateSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	session, err := h.uc.UpdateSession(ctx, model.Scope{UserID: userID}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "admin: UpdateSession: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newSessionResp(session))
}

// GetLogs godoc
// @Summary     Get recent activity logs
// @Description Returns the newest activity entries for a user.
// @Tags        Session
// @Produce     json
// @Param       userId path  string true  "User ID"
// @Param       limit  query int    false "Max entries (default 20, cap 100)"
// @Success     200 {object} logsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/logs/{userId} [GET]
func (h *handler) GetLogs(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Param("userId")
	limit := parseLimit(c.Query("limit"))

	output, err := h.uc.RecentLogs(ctx, model.Scope{UserID: userID}, chat.RecentLogsInput{Limit: limit})
	if err != nil {
		h.l.Errorf(ctx, "admin: RecentLogs: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newLogsResp(output))
}

// GetStats godoc
// @Summary     Get session statistics
// @Description Returns best-effort total/active session counts.
// @Tags        Stats
// @Produce     json
// @Success     200 {object} model.SessionStats
// @Router      /api/v1/stats [GET]
func (h *handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "admin: Stats: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, stats)
}

// SendMessage godoc
// @Summary     Send a direct message
// @Description Pushes an administrator message to a user via the Kakao memo API.
// @Tags        Message
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "Recipient and message"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/message/send [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SendDirect(ctx, model.Scope{}, req.toInput()); err != nil {
		h.l.Errorf(ctx, "admin: SendDirect: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, nil)
}

// Info godoc
// @Summary     Service information
// @Description Returns service identity and uptime.
// @Tags        Stats
// @Produce     json
// @Success     200 {object} infoResp
// @Router      /api/v1/info [GET]
func (h *handler) Info(c *gin.Context) {
	response.OK(c, infoResp{
		Name:        ServiceName,
		Version:     ServiceVersion,
		Environment: h.environment,
		Uptime:      time.Since(startedAt).Round(time.Second).String(),
		Timestamp:   time.Now().UTC(),
	})
}

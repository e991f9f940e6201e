package http

import (
	"encoding/json"
	"strconv"
	"time"

	"kakao-support-chatbot/internal/chat"
	"kakao-support-chatbot/internal/model"
)

// Service identity reported by /api/v1/info.
const (
	ServiceName    = "kakao-support-chatbot"
	ServiceVersion = "1.0.0"
)

var startedAt = time.Now()

type updateSessionReq struct {
	Step            *string  `json:"step,omitempty"`
	Category        []string `json:"category,omitempty"`
	BusinessSummary *string  `json:"businessSummary,omitempty"`
}

func (r updateSessionReq) toInput() chat.UpdateSessionInput {
	input := chat.UpdateSessionInput{
		Category:        r.Category,
		BusinessSummary: r.BusinessSummary,
	}
	if r.Step != nil {
		step := model.SessionStep(*r.Step)
		input.Step = &step
	}
	return input
}

type sendMessageReq struct {
	UserID  string `json:"userId" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (r sendMessageReq) toInput() chat.SendDirectInput {
	return chat.SendDirectInput{
		UserID:  r.UserID,
		Message: r.Message,
	}
}

type sessionResp struct {
	UserID          string            `json:"userId"`
	Step            model.SessionStep `json:"step"`
	Category        []string          `json:"category"`
	BusinessSummary string            `json:"businessSummary,omitempty"`
	LastMessage     string            `json:"lastMessage,omitempty"`
	LastResponse    json.RawMessage   `json:"lastResponse,omitempty"`
	Timestamp       time.Time         `json:"timestamp"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func newSessionResp(s model.Session) sessionResp {
	return sessionResp{
		UserID:          s.UserID,
		Step:            s.Step,
		Category:        s.Category,
		BusinessSummary: s.BusinessSummary,
		LastMessage:     s.LastMessage,
		LastResponse:    s.LastResponse,
		Timestamp:       s.Timestamp,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

type logsResp struct {
	Logs  []model.ActivityEntry `json:"logs"`
	Count int                   `json:"count"`
}

func newLogsResp(o chat.RecentLogsOutput) logsResp {
	return logsResp{Logs: o.Logs, Count: o.Count}
}

type infoResp struct {
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	Environment string    `json:"environment"`
	Uptime      string    `json:"uptime"`
	Timestamp   time.Time `json:"timestamp"`
}

func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

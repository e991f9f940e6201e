package chat

import (
	"kakao-support-chatbot/internal/model"
	"kakao-support-chatbot/pkg/kakao"
)

// ProcessMessageInput is one inbound utterance.
type ProcessMessageInput struct {
	Utterance string
}

// ProcessMessageOutput carries the payload answered to the platform.
type ProcessMessageOutput struct {
	Response kakao.Response
}

// Lifecycle actions delivered by the platform.
const (
	LifecycleAdd    = "add"
	LifecycleDelete = "delete"
	LifecycleJoin   = "join"
	LifecycleLeave  = "leave"
)

// LifecycleInput is a friend or chatroom event.
type LifecycleInput struct {
	Action string
}

// LifecycleOutput carries the payload for events that answer with one;
// Response is nil for delete/leave, which only clear state.
type LifecycleOutput struct {
	Response *kakao.Response
}

// UpdateSessionInput is a partial session update from the admin surface.
// Nil fields are left untouched.
type UpdateSessionInput struct {
	Step            *model.SessionStep `json:"step,omitempty"`
	Category        []string           `json:"category,omitempty"`
	BusinessSummary *string            `json:"businessSummary,omitempty"`
}

// RecentLogsInput bounds an activity log query.
type RecentLogsInput struct {
	Limit int
}

// RecentLogsOutput is a newest-first page of activity entries.
type RecentLogsOutput struct {
	Logs  []model.ActivityEntry `json:"logs"`
	Count int                   `json:"count"`
}

// SendDirectInput is an administrator-initiated direct message.
type SendDirectInput struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of checking one utterance.
type ValidationResult struct {
	Valid   bool
	Message string
}

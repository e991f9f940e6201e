package repository

import (
	"context"

	"kakao-support-chatbot/internal/model"
)

// SessionRepository is the interface for session and activity log access.
// GetSession never fails visibly: backend errors degrade to a default
// session and are logged by the implementation.
type SessionRepository interface {
	GetSession(ctx context.Context, userID string) model.Session
	MergeSession(ctx context.Context, userID string, opt UpdateSessionOptions) (model.Session, error)
	ClearSession(ctx context.Context, userID string) error
	AppendLog(ctx context.Context, userID, action string, data any)
	RecentLogs(ctx context.Context, userID string, limit int) []model.ActivityEntry
	Stats(ctx context.Context) model.SessionStats
}

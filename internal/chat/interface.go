package chat

import (
	"context"

	"kakao-support-chatbot/internal/model"
	"kakao-support-chatbot/pkg/engine"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// ProcessMessage runs one conversational turn: command dispatch,
	// input validation, engine call, session update, translation.
	// Every failure mode still yields a well-formed Kakao payload.
	ProcessMessage(ctx context.Context, sc model.Scope, input ProcessMessageInput) (ProcessMessageOutput, error)

	// HandleLifecycle reacts to friend add/delete and chatroom join/leave events.
	HandleLifecycle(ctx context.Context, sc model.Scope, input LifecycleInput) (LifecycleOutput, error)

	// GetSession returns the user's session, defaulting when absent.
	GetSession(ctx context.Context, sc model.Scope) (model.Session, error)

	// UpdateSession merge-updates the user's session from the admin surface.
	UpdateSession(ctx context.Context, sc model.Scope, input UpdateSessionInput) (model.Session, error)

	// RecentLogs returns the newest activity entries for a user.
	RecentLogs(ctx context.Context, sc model.Scope, input RecentLogsInput) (RecentLogsOutput, error)

	// Stats returns best-effort session counts.
	Stats(ctx context.Context) (model.SessionStats, error)

	// SendDirect pushes an administrator message to a user via the
	// Kakao memo API, outside the webhook cycle.
	SendDirect(ctx context.Context, sc model.Scope, input SendDirectInput) error

	// EngineHealth probes the recommendation engine.
	EngineHealth(ctx context.Context) engine.HealthStatus
}

// RecommendationEngine is the remote engine surface the use case depends on.
type RecommendationEngine interface {
	Process(ctx context.Context, userID, message string, sess engine.SessionContext) (*engine.Result, error)
	Health(ctx context.Context) engine.HealthStatus
}

// DirectSender delivers administrator-initiated messages to users.
type DirectSender interface {
	SendToUser(ctx context.Context, userID, message string) error
}

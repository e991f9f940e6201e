package usecase

import (
	"context"

	"kakao-support-chatbot/internal/chat"
	"kakao-support-chatbot/internal/chat/repository"
	"kakao-support-chatbot/internal/model"
	"kakao-support-chatbot/pkg/engine"
)

const defaultLogLimit = 20

// GetSession returns the user's session for the admin surface.
func (uc *implUseCase) GetSession(ctx context.Context, sc model.Scope) (model.Session, error) {
	if sc.UserID == "" {
		return model.Session{}, chat.ErrMissingUserID
	}
	return uc.repo.GetSession(ctx, sc.UserID), nil
}

// UpdateSession merge-updates a session from the admin surface.
func (uc *implUseCase) UpdateSession(ctx context.Context, sc model.Scope, input chat.UpdateSessionInput) (model.Session, error) {
	if sc.UserID == "" {
		return model.Session{}, chat.ErrMissingUserID
	}

	return uc.repo.MergeSession(ctx, sc.UserID, repository.UpdateSessionOptions{
		Step:            input.Step,
		Category:        input.Category,
		BusinessSummary: input.BusinessSummary,
	})
}

// RecentLogs returns the newest activity entries for a user.
func (uc *implUseCase) RecentLogs(ctx context.Context, sc model.Scope, input chat.RecentLogsInput) (chat.RecentLogsOutput, error) {
	if sc.UserID == "" {
		return chat.RecentLogsOutput{}, chat.ErrMissingUserID
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLogLimit
	}

	logs := uc.repo.RecentLogs(ctx, sc.UserID, limit)
	return chat.RecentLogsOutput{Logs: logs, Count: len(logs)}, nil
}

// Stats returns best-effort session counts.
func (uc *implUseCase) Stats(ctx context.Context) (model.SessionStats, error) {
	return uc.repo.Stats(ctx), nil
}

// SendDirect pushes an administrator message through the Kakao memo API.
func (uc *implUseCase) SendDirect(ctx context.Context, sc model.Scope, input chat.SendDirectInput) error {
	if input.UserID == "" {
		return chat.ErrMissingUserID
	}
	if input.Message == "" {
		return chat.ErrMissingMessage
	}
	if uc.sender == nil {
		return chat.ErrSenderNotReady
	}

	if err := uc.sender.SendToUser(ctx, input.UserID, input.Message); err != nil {
		uc.l.Errorf(ctx, "chat: direct send to %s failed: %v", input.UserID, err)
		return err
	}

	uc.l.Infof(ctx, "chat: direct message sent to %s", input.UserID)
	return nil
}

// EngineHealth probes the recommendation engine.
func (uc *implUseCase) EngineHealth(ctx context.Context) engine.HealthStatus {
	return uc.engine.Health(ctx)
}

package memory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"kakao-support-chatbot/internal/chat/repository"
	"kakao-support-chatbot/internal/model"
)

// GetSession returns the stored session or a fresh default.
func (r *Repository) GetSession(ctx context.Context, userID string) model.Session {
	r.mu.RLock()
	session, ok := r.sessions[userID]
	r.mu.RUnlock()

	if !ok {
		return model.DefaultSession(userID)
	}
	return session
}

// MergeSession overwrites only the provided fields and stores the result.
func (r *Repository) MergeSession(ctx context.Context, userID string, opt repository.UpdateSessionOptions) (model.Session, error) {
	r.mu.Lock()
	session, ok := r.sessions[userID]
	if !ok {
		session = model.DefaultSession(userID)
	}
	opt.Apply(&session)
	session.UpdatedAt = time.Now().UTC()
	r.sessions[userID] = session
	r.mu.Unlock()

	r.AppendLog(ctx, userID, model.ActionSessionUpdate, opt.LogPayload())

	return session, nil
}

// ClearSession removes the session. Idempotent.
func (r *Repository) ClearSession(ctx context.Context, userID string) error {
	r.mu.Lock()
	delete(r.sessions, userID)
	r.mu.Unlock()

	r.AppendLog(ctx, userID, model.ActionSessionClear, nil)
	r.l.Infof(ctx, "session repo: cleared session for %s", userID)
	return nil
}

// AppendLog prepends an activity entry and trims to the bound.
func (r *Repository) AppendLog(ctx context.Context, userID, action string, data any) {
	entry := model.ActivityEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Timestamp: time.Now().UTC(),
	}
	if data != nil {
		if raw, err := json.Marshal(data); err == nil {
			entry.Data = raw
		}
	}

	r.mu.Lock()
	entries := append([]model.ActivityEntry{entry}, r.logs[userID]...)
	if len(entries) > model.MaxActivityEntries {
		entries = entries[:model.MaxActivityEntries]
	}
	r.logs[userID] = entries
	r.mu.Unlock()
}

// RecentLogs returns up to limit entries, newest first.
func (r *Repository) RecentLogs(ctx context.Context, userID string, limit int) []model.ActivityEntry {
	if limit <= 0 || limit > model.MaxActivityEntries {
		limit = model.MaxActivityEntries
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.logs[userID]
	if len(entries) > limit {
		entries = entries[:limit]
	}

	out := make([]model.ActivityEntry, len(entries))
	copy(out, entries)
	return out
}

// Stats counts stored sessions.
func (r *Repository) Stats(ctx context.Context) model.SessionStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.sessions)
	return model.SessionStats{TotalSessions: n, ActiveSessions: n}
}

// CleanupExpired removes sessions idle longer than maxAge and returns
// how many were swept. The caller owns the schedule.
func (r *Repository) CleanupExpired(maxAge time.Duration) int {
	cutoff := time.Now().UTC().Add(-maxAge)

	r.mu.Lock()
	defer r.mu.Unlock()

	swept := 0
	for userID, session := range r.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(r.sessions, userID)
			swept++
		}
	}
	return swept
}

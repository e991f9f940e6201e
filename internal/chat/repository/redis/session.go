package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"kakao-support-chatbot/internal/chat/repository"
	"kakao-support-chatbot/internal/model"
)

func sessionKey(userID string) string {
	return fmt.Sprintf("session:%s", userID)
}

func logsKey(userID string) string {
	return fmt.Sprintf("logs:%s", userID)
}

// GetSession loads the user's session. A missing key or any backend
// error yields a fresh default session; storage never fails a turn.
func (r *implRepository) GetSession(ctx context.Context, userID string) model.Session {
	raw, err := r.rdb.Get(ctx, sessionKey(userID)).Result()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			r.l.Errorf(ctx, "session repo: get %s failed: %v", userID, err)
		}
		return model.DefaultSession(userID)
	}

	var session model.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		r.l.Errorf(ctx, "session repo: decode session for %s failed: %v", userID, err)
		return model.DefaultSession(userID)
	}
	if session.UserID == "" {
		session.UserID = userID
	}
	return session
}

// MergeSession loads the current session, overwrites only the provided
// fields, refreshes UpdatedAt, persists with the retention TTL, and
// records a session_update entry. The merged session is returned even
// when the write fails.
func (r *implRepository) MergeSession(ctx context.Context, userID string, opt repository.UpdateSessionOptions) (model.Session, error) {
	session := r.GetSession(ctx, userID)
	opt.Apply(&session)
	session.UpdatedAt = time.Now().UTC()

	raw, err := json.Marshal(session)
	if err != nil {
		return session, fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.rdb.Set(ctx, sessionKey(userID), raw, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "session repo: persist %s failed: %v", userID, err)
		return session, fmt.Errorf("failed to persist session: %w", err)
	}

	r.AppendLog(ctx, userID, model.ActionSessionUpdate, opt.LogPayload())

	return session, nil
}

// ClearSession deletes the session key. Clearing an absent session is
// not an error.
func (r *implRepository) ClearSession(ctx context.Context, userID string) error {
	if err := r.rdb.Del(ctx, sessionKey(userID)).Err(); err != nil {
		r.l.Errorf(ctx, "session repo: clear %s failed: %v", userID, err)
		return fmt.Errorf("failed to clear session: %w", err)
	}

	r.AppendLog(ctx, userID, model.ActionSessionClear, nil)
	r.l.Infof(ctx, "session repo: cleared session for %s", userID)
	return nil
}

// AppendLog pushes an activity entry and trims the list to the newest
// bound. Failures are logged and swallowed; activity logging must not
// abort a turn.
func (r *implRepository) AppendLog(ctx context.Context, userID, action string, data any) {
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

	raw, err := json.Marshal(entry)
	if err != nil {
		r.l.Errorf(ctx, "session repo: marshal log entry for %s failed: %v", userID, err)
		return
	}

	key := logsKey(userID)
	if err := r.rdb.LPush(ctx, key, raw).Err(); err != nil {
		r.l.Errorf(ctx, "session repo: append log for %s failed: %v", userID, err)
		return
	}
	if err := r.rdb.LTrim(ctx, key, 0, int64(model.MaxActivityEntries-1)).Err(); err != nil {
		r.l.Errorf(ctx, "session repo: trim logs for %s failed: %v", userID, err)
	}
}

// RecentLogs returns up to limit entries, newest first.
func (r *implRepository) RecentLogs(ctx context.Context, userID string, limit int) []model.ActivityEntry {
	if limit <= 0 || limit > model.MaxActivityEntries {
		limit = model.MaxActivityEntries
	}

	raws, err := r.rdb.LRange(ctx, logsKey(userID), 0, int64(limit-1)).Result()
	if err != nil {
		r.l.Errorf(ctx, "session repo: read logs for %s failed: %v", userID, err)
		return []model.ActivityEntry{}
	}

	entries := make([]model.ActivityEntry, 0, len(raws))
	for _, raw := range raws {
		var entry model.ActivityEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			r.l.Warnf(ctx, "session repo: skip malformed log entry for %s: %v", userID, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Stats counts session keys. Best effort: errors yield zero counts.
func (r *implRepository) Stats(ctx context.Context) model.SessionStats {
	keys, err := r.rdb.Keys(ctx, "session:*").Result()
	if err != nil {
		r.l.Errorf(ctx, "session repo: stats failed: %v", err)
		return model.SessionStats{}
	}
	return model.SessionStats{
		TotalSessions:  len(keys),
		ActiveSessions: len(keys),
	}
}

package model

import (
	"encoding/json"
	"time"
)

// SessionStep is the current phase of a user's conversation.
type SessionStep string

const (
	StepWelcome   SessionStep = "welcome"
	StepCategory  SessionStep = "category"
	StepBusiness  SessionStep = "business"
	StepResult    SessionStep = "result"
	StepCompleted SessionStep = "completed"
)

// SessionTTL is the retention window after which an idle session expires.
const SessionTTL = 24 * time.Hour

// MaxActivityEntries bounds the per-user activity log.
const MaxActivityEntries = 100

// Session is the per-user conversation state persisted across turns.
// A session logically always exists: absence in the store is read as a
// fresh default session, never as an error.
type Session struct {
	UserID          string          `json:"userId"`
	Step            SessionStep     `json:"step"`
	Category        []string        `json:"category"`
	BusinessSummary string          `json:"businessSummary"`
	LastMessage     string          `json:"lastMessage"`
	LastResponse    json.RawMessage `json:"lastResponse,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// DefaultSession builds the state every unknown user starts from.
func DefaultSession(userID string) Session {
	now := time.Now().UTC()
	return Session{
		UserID:          userID,
		Step:            StepWelcome,
		Category:        []string{},
		BusinessSummary: "",
		LastMessage:     "",
		Timestamp:       now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ActivityEntry is one append-only record of a session action.
type ActivityEntry struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Action    string          `json:"action"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Activity log actions recorded by the session store.
const (
	ActionSessionUpdate = "session_update"
	ActionSessionClear  = "session_clear"
)

// SessionStats is a best-effort count of stored sessions.
type SessionStats struct {
	TotalSessions  int `json:"totalSessions"`
	ActiveSessions int `json:"activeSessions"`
}

package repository

import (
	"encoding/json"
	"time"

	"kakao-support-chatbot/internal/model"
)

// UpdateSessionOptions holds the partial state for a merge-update.
// Nil fields (and nil slices/raw messages) leave the stored value alone.
type UpdateSessionOptions struct {
	Step            *model.SessionStep
	Category        []string
	BusinessSummary *string
	LastMessage     *string
	LastResponse    json.RawMessage
	Timestamp       *time.Time
}

// Apply merges the provided fields into s. UpdatedAt is the store's
// concern and is not touched here.
func (o UpdateSessionOptions) Apply(s *model.Session) {
	if o.Step != nil {
		s.Step = *o.Step
	}
	if o.Category != nil {
		s.Category = o.Category
	}
	if o.BusinessSummary != nil {
		s.BusinessSummary = *o.BusinessSummary
	}
	if o.LastMessage != nil {
		s.LastMessage = *o.LastMessage
	}
	if o.LastResponse != nil {
		s.LastResponse = o.LastResponse
	}
	if o.Timestamp != nil {
		s.Timestamp = *o.Timestamp
	}
}

// LogPayload lists only the fields the update actually set, for the
// session_update activity entry.
func (o UpdateSessionOptions) LogPayload() map[string]any {
	payload := make(map[string]any)
	if o.Step != nil {
		payload["step"] = *o.Step
	}
	if o.Category != nil {
		payload["category"] = o.Category
	}
	if o.BusinessSummary != nil {
		payload["businessSummary"] = *o.BusinessSummary
	}
	if o.LastMessage != nil {
		payload["lastMessage"] = *o.LastMessage
	}
	if o.LastResponse != nil {
		payload["lastResponse"] = json.RawMessage(o.LastResponse)
	}
	if o.Timestamp != nil {
		payload["timestamp"] = *o.Timestamp
	}
	return payload
}

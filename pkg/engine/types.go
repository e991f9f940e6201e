package engine

import "time"

// Result tags emitted by the recommendation engine. Anything outside
// this set is handled by the translator's fallback.
const (
	TypeSupportPrograms   = "support_programs"
	TypeBusinessAnalysis  = "business_analysis"
	TypeCategorySelection = "category_selection"
	TypeNoResults         = "no_results"
	TypeError             = "error"
)

// Health status values reported by Health.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// SessionContext is the conversation context sent alongside each message.
type SessionContext struct {
	Category        []string  `json:"category"`
	BusinessSummary string    `json:"businessSummary"`
	LastInteraction time.Time `json:"lastInteraction"`
}

// ProcessRequest is the body for POST /api/process.
type ProcessRequest struct {
	UserID    string         `json:"userId"`
	Message   string         `json:"message"`
	Session   SessionContext `json:"session"`
	Timestamp time.Time      `json:"timestamp"`
}

// Result is the engine's answer, decoded at the network boundary.
type Result struct {
	Success bool       `json:"success"`
	Type    string     `json:"type"`
	Data    ResultData `json:"data"`
	Message string     `json:"message"`
	Error   string     `json:"error,omitempty"`
}

// ResultData carries the tag-specific payload fields. Only the fields
// relevant to the result's Type are populated.
type ResultData struct {
	Programs        []Program `json:"programs,omitempty"`
	Analysis        string    `json:"analysis,omitempty"`
	Recommendations []string  `json:"recommendations,omitempty"`
	Categories      []string  `json:"categories,omitempty"`
	UserInfo        *UserInfo `json:"userInfo,omitempty"`
}

// Program is a single recommended support program.
type Program struct {
	Name           string  `json:"name"`
	Summary        string  `json:"summary"`
	Analysis       string  `json:"analysis,omitempty"`
	Score          float64 `json:"score,omitempty"`
	URL            string  `json:"url,omitempty"`
	ApplicationURL string  `json:"applicationUrl,omitempty"`
	ImageURL       string  `json:"imageUrl,omitempty"`
}

// UserInfo is the engine's echo of the user profile it matched against.
type UserInfo struct {
	Categories      []string `json:"categories,omitempty"`
	BusinessSummary string   `json:"businessSummary,omitempty"`
}

// HealthStatus is the result of an engine health probe.
type HealthStatus struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Healthy reports whether the probe succeeded.
func (h HealthStatus) Healthy() bool {
	return h.Status == StatusHealthy
}

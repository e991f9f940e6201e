package memory

import (
	"sync"

	"kakao-support-chatbot/internal/model"
	pkgLog "kakao-support-chatbot/pkg/log"
)

// Repository is the in-process fallback session store, used when the
// Redis backend is unreachable at startup. Semantics match the Redis
// repository except there is no cross-process visibility and no
// automatic expiry; expiry is driven by CleanupExpired.
type Repository struct {
	l pkgLog.Logger

	mu       sync.RWMutex
	sessions map[string]model.Session
	logs     map[string][]model.ActivityEntry
}

// New creates an empty in-memory session repository.
func New(l pkgLog.Logger) *Repository {
	return &Repository{
		l:        l,
		sessions: make(map[string]model.Session),
		logs:     make(map[string][]model.ActivityEntry),
	}
}

package redis

import (
	"time"

	goredis "github.com/redis/go-redis/v9"

	pkgLog "kakao-support-chatbot/pkg/log"
)

type implRepository struct {
	l   pkgLog.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// New creates a Redis-backed session repository. Sessions expire after
// ttl via the store's own key expiry.
func New(l pkgLog.Logger, rdb *goredis.Client, ttl time.Duration) *implRepository {
	return &implRepository{
		l:   l,
		rdb: rdb,
		ttl: ttl,
	}
}

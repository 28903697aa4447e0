// README: Redis client for carts, ticket history, and bus GEO sets.
package infra

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis builds the shared Redis client. Cart and history values are
// small, so tight timeouts keep a slow Redis from stalling API requests.
func NewRedis(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
}

// README: Cart store; one JSON array per user key in Redis.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"citypass/internal/types"
)

const (
	cartKeyPrefix = "cart:user:%s"
	// Abandoned carts are dropped after a month.
	cartTTL = 30 * 24 * time.Hour
)

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

func (s *Store) Load(ctx context.Context, userID types.ID) ([]LineItem, error) {
	val, err := s.redis.Get(ctx, cartKey(userID)).Result()
	if err == redis.Nil {
		return []LineItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cart load: %w", err)
	}
	var items []LineItem
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("cart decode: %w", err)
	}
	return items, nil
}

func (s *Store) Save(ctx context.Context, userID types.ID, items []LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cart encode: %w", err)
	}
	return s.redis.Set(ctx, cartKey(userID), raw, cartTTL).Err()
}

func (s *Store) Delete(ctx context.Context, userID types.ID) error {
	return s.redis.Del(ctx, cartKey(userID)).Err()
}

func cartKey(userID types.ID) string {
	return fmt.Sprintf(cartKeyPrefix, string(userID))
}

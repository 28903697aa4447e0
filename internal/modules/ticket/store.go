// README: Ticket history store; one JSON array per user key in Redis.
package ticket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"citypass/internal/types"
)

const historyKeyPrefix = "tickets:history:%s"

type Store struct {
	redis *redis.Client
}

func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

func (s *Store) Load(ctx context.Context, userID types.ID) ([]Ticket, error) {
	val, err := s.redis.Get(ctx, historyKey(userID)).Result()
	if err == redis.Nil {
		return []Ticket{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ticket history load: %w", err)
	}
	var tickets []Ticket
	if err := json.Unmarshal([]byte(val), &tickets); err != nil {
		return nil, fmt.Errorf("ticket history decode: %w", err)
	}
	return tickets, nil
}

func (s *Store) Save(ctx context.Context, userID types.ID, tickets []Ticket) error {
	raw, err := json.Marshal(tickets)
	if err != nil {
		return fmt.Errorf("ticket history encode: %w", err)
	}
	return s.redis.Set(ctx, historyKey(userID), raw, 0).Err()
}

func historyKey(userID types.ID) string {
	return fmt.Sprintf(historyKeyPrefix, string(userID))
}

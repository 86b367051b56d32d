package storage

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"board-api/domain"
)

// boardKey is the fixed key the whole aggregate lives under.
const boardKey = "board:state"

// Store persists the board aggregate as a single JSON document in
// Redis. Every save is a full-document overwrite; there are no partial
// updates and no schema version field.
type Store struct {
	client *redis.Client
	key    string
}

// New creates a Store using the provided Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client, key: boardKey}
}

// Load reads the board document. ok is false when no document exists.
// A document that does not parse is reported as an error; callers
// treat it as unreadable and fall back to the seed state.
func (s *Store) Load(ctx context.Context) (domain.BoardState, bool, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return domain.BoardState{}, false, nil
		}
		return domain.BoardState{}, false, fmt.Errorf("read board document: %w", err)
	}
	var state domain.BoardState
	if err := sonic.ConfigStd.Unmarshal(data, &state); err != nil {
		return domain.BoardState{}, false, fmt.Errorf("decode board document: %w", err)
	}
	return state, true, nil
}

// Save overwrites the board document with the given state.
func (s *Store) Save(ctx context.Context, state domain.BoardState) error {
	data, err := sonic.ConfigStd.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode board document: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write board document: %w", err)
	}
	return nil
}

package social

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrStateNotFound is returned when a callback presents a state nonce
// that was never issued or has already been consumed.
var ErrStateNotFound = errors.New("oauth state not found or expired")

const stateKeyPrefix = "oauth:state:"

// StateStore issues single-use CSRF nonces for the OAuth dance. Each
// nonce remembers which provider it was issued for and expires after the
// configured TTL.
type StateStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStateStore creates a state store over the shared Redis client.
func NewStateStore(client *redis.Client, ttl time.Duration) *StateStore {
	return &StateStore{client: client, ttl: ttl}
}

// Issue creates a fresh nonce bound to the given provider.
func (s *StateStore) Issue(ctx context.Context, provider string) (string, error) {
	state := uuid.NewString()
	if err := s.client.Set(ctx, stateKeyPrefix+state, provider, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store oauth state: %w", err)
	}
	return state, nil
}

// Consume validates and deletes a nonce, returning the provider it was
// issued for. A nonce can only be consumed once.
func (s *StateStore) Consume(ctx context.Context, state string) (string, error) {
	provider, err := s.client.GetDel(ctx, stateKeyPrefix+state).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrStateNotFound
	}
	if err != nil {
		return "", fmt.Errorf("consume oauth state: %w", err)
	}
	return provider, nil
}

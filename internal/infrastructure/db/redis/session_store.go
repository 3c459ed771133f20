package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mociber/booking-api/internal/core/domain"
)

// SessionStore keeps the identity behind each session token in Redis.
// Key format: session:<session_id>. Entries expire with the session TTL and
// survive process restarts, so a restart never logs customers out.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Put stores the identity under the session ID with the given TTL.
func (s *SessionStore) Put(ctx context.Context, sessionID string, identity domain.Identity, ttl time.Duration) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.client.Set(ctx, s.key(sessionID), payload, ttl).Err()
}

// Get returns the identity for a session ID, or domain.ErrSessionNotFound
// when the session is absent or expired.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (domain.Identity, error) {
	payload, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Identity{}, domain.ErrSessionNotFound
		}
		return domain.Identity{}, fmt.Errorf("session lookup: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return domain.Identity{}, fmt.Errorf("decode session: %w", err)
	}
	return identity, nil
}

// Delete revokes the session. Deleting an absent session is not an error.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

func (s *SessionStore) key(sessionID string) string {
	return "session:" + sessionID
}

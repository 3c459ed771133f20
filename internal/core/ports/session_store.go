package ports

import (
	"context"
	"time"

	"github.com/mociber/booking-api/internal/core/domain"
)

// SessionStore holds the identity behind each issued session token. Entries
// survive process restarts; deleting one revokes the session immediately.
type SessionStore interface {
	Put(ctx context.Context, sessionID string, identity domain.Identity, ttl time.Duration) error
	// Get returns domain.ErrSessionNotFound when the session does not exist
	// or has expired.
	Get(ctx context.Context, sessionID string) (domain.Identity, error)
	Delete(ctx context.Context, sessionID string) error
}

package ports

import (
	"context"
	"time"

	"github.com/mociber/booking-api/internal/core/domain"
)

// RequestRepository defines persistence operations for service requests.
type RequestRepository interface {
	Insert(ctx context.Context, r *domain.ServiceRequest) error
	// CountRecent returns how many requests with the given phone number and
	// service type were created at or after the since threshold.
	CountRecent(ctx context.Context, phoneNumber, serviceType string, since time.Time) (int64, error)
}

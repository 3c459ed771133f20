package ports

import (
	"context"

	"github.com/mociber/booking-api/internal/core/domain"
)

// AccountRepository defines the interface for login-record persistence.
type AccountRepository interface {
	FindByEmailOrPhone(ctx context.Context, emailOrPhone string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

package ports

import (
	"context"

	"github.com/mociber/booking-api/internal/core/domain"
)

// LoginResult carries the session token and the identity it belongs to.
type LoginResult struct {
	Token    string
	Identity domain.Identity
}

// SignUpResult reports a created account. LoggedIn is false when the account
// was written but the follow-up login did not produce a session; the caller
// must still treat sign-up as successful and prompt a manual login.
type SignUpResult struct {
	Identity domain.Identity
	Token    string
	LoggedIn bool
}

// AuthService implements credential verification and account creation.
// Login fails uniformly with domain.ErrInvalidCredentials for a missing
// account, a wrong secret, or a lookup error.
type AuthService interface {
	Login(ctx context.Context, emailOrPhone, password string) (*LoginResult, error)
	SignUp(ctx context.Context, name, emailOrPhone, password string) (*SignUpResult, error)
	Logout(ctx context.Context, token string) error
}

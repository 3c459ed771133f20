package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mociber/booking-api/internal/core/domain"
	"github.com/mociber/booking-api/internal/core/ports"
)

// AuthService implements login, sign-up, and logout over the account
// repository and the session store.
type AuthService struct {
	accounts   ports.AccountRepository
	sessions   ports.SessionStore
	jwtSecret  string
	sessionTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	sessions ports.SessionStore,
	jwtSecret string,
	sessionTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		accounts:   accounts,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Login verifies the credential pair and establishes a session. Every failure
// mode collapses to domain.ErrInvalidCredentials: the caller cannot tell a
// missing account from a wrong password from a lookup error.
func (s *AuthService) Login(ctx context.Context, emailOrPhone, password string) (*ports.LoginResult, error) {
	if emailOrPhone == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmailOrPhone(ctx, emailOrPhone)
	if err != nil {
		s.logger.Debug().Err(err).Msg("account lookup failed")
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	identity := account.Identity()
	token, err := s.openSession(ctx, identity)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to open session")
		return nil, domain.ErrInvalidCredentials
	}

	return &ports.LoginResult{Token: token, Identity: identity}, nil
}

// SignUp inserts a new account and then attempts a login with the same
// credentials. A duplicate identifier surfaces as domain.ErrAccountExists.
// When the account was written but the follow-up login fails, sign-up still
// succeeds with LoggedIn=false.
func (s *AuthService) SignUp(ctx context.Context, name, emailOrPhone, password string) (*ports.SignUpResult, error) {
	if name == "" || emailOrPhone == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Name:         name,
		EmailOrPhone: emailOrPhone,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	login, err := s.Login(ctx, emailOrPhone, password)
	if err != nil {
		s.logger.Warn().Err(err).Str("email_or_phone", emailOrPhone).Msg("post-signup login failed")
		return &ports.SignUpResult{Identity: created.Identity()}, nil
	}

	return &ports.SignUpResult{
		Identity: login.Identity,
		Token:    login.Token,
		LoggedIn: true,
	}, nil
}

// Logout revokes the session behind the token. An unparsable token is treated
// as already logged out.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	sid, err := s.sessionID(token)
	if err != nil || sid == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sid)
}

// openSession stores the identity under a fresh session ID and returns the
// signed token carrying it.
func (s *AuthService) openSession(ctx context.Context, identity domain.Identity) (string, error) {
	sid := uuid.NewString()
	if err := s.sessions.Put(ctx, sid, identity, s.sessionTTL); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sid":            sid,
		"name":           identity.Name,
		"email_or_phone": identity.EmailOrPhone,
		"exp":            time.Now().Add(s.sessionTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) sessionID(token string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return "", err
	}
	sid, _ := claims["sid"].(string)
	return sid, nil
}

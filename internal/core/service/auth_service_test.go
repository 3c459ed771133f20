package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mociber/booking-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	byIdentifier map[string]*domain.Account
	findErr      error // if set, FindByEmailOrPhone returns this error
	createErr    error // if set, Create returns this error
	nextID       int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byIdentifier: make(map[string]*domain.Account)}
}

func (r *stubAccountRepo) FindByEmailOrPhone(_ context.Context, emailOrPhone string) (*domain.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.byIdentifier[emailOrPhone]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.byIdentifier[account.EmailOrPhone]; exists {
		return nil, domain.ErrAccountExists
	}
	r.nextID++
	clone := *account
	clone.ID = fmt.Sprintf("acc_%d", r.nextID)
	r.byIdentifier[account.EmailOrPhone] = &clone
	copied := clone
	return &copied, nil
}

type stubSessionStore struct {
	sessions map[string]domain.Identity
	putErr   error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Identity)}
}

func (s *stubSessionStore) Put(_ context.Context, sid string, identity domain.Identity, _ time.Duration) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.sessions[sid] = identity
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, sid string) (domain.Identity, error) {
	identity, ok := s.sessions[sid]
	if !ok {
		return domain.Identity{}, domain.ErrSessionNotFound
	}
	return identity, nil
}

func (s *stubSessionStore) Delete(_ context.Context, sid string) error {
	delete(s.sessions, sid)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func seedAccount(t *testing.T, repo *stubAccountRepo, identifier, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	repo.byIdentifier[identifier] = &domain.Account{
		ID:           "acc_seed",
		Name:         "Asha",
		EmailOrPhone: identifier,
		PasswordHash: string(hash),
	}
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	sessions := newStubSessionStore()
	seedAccount(t, repo, "9000000001", "secret123")
	svc := NewAuthService(repo, sessions, "test-secret", time.Hour, discardLogger)

	result, err := svc.Login(context.Background(), "9000000001", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token == "" {
		t.Error("token must be set")
	}
	if result.Identity.Name != "Asha" || result.Identity.EmailOrPhone != "9000000001" {
		t.Errorf("identity fields must match the stored account: %+v", result.Identity)
	}
	if len(sessions.sessions) != 1 {
		t.Errorf("expected 1 stored session, got %d", len(sessions.sessions))
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	cases := []struct {
		name  string
		setup func(*stubAccountRepo)
		pass  string
	}{
		{"unknown account", func(r *stubAccountRepo) {}, "secret123"},
		{"wrong password", func(r *stubAccountRepo) { seedAccount(t, r, "9000000001", "secret123") }, "wrong"},
		{"lookup error", func(r *stubAccountRepo) { r.findErr = errors.New("timeout") }, "secret123"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newStubAccountRepo()
			tc.setup(repo)
			svc := NewAuthService(repo, newStubSessionStore(), "test-secret", time.Hour, discardLogger)

			_, err := svc.Login(context.Background(), "9000000001", tc.pass)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("every failure mode must map to ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthService_Login_EmptyInputs(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), newStubSessionStore(), "test-secret", time.Hour, discardLogger)
	if _, err := svc.Login(context.Background(), "", "x"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Error("empty identifier must fail")
	}
	if _, err := svc.Login(context.Background(), "x", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Error("empty password must fail")
	}
}

// ---------------------------------------------------------------------------
// SignUp tests
// ---------------------------------------------------------------------------

func TestAuthService_SignUp_CreatesAccountAndSession(t *testing.T) {
	repo := newStubAccountRepo()
	sessions := newStubSessionStore()
	svc := NewAuthService(repo, sessions, "test-secret", time.Hour, discardLogger)

	result, err := svc.SignUp(context.Background(), "Ravi", "9000000002", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.LoggedIn || result.Token == "" {
		t.Errorf("expected active session after sign-up: %+v", result)
	}
	if result.Identity.Name != "Ravi" {
		t.Errorf("unexpected identity: %+v", result.Identity)
	}

	stored := repo.byIdentifier["9000000002"]
	if stored == nil {
		t.Fatal("account not stored")
	}
	if stored.PasswordHash == "secret123" {
		t.Error("secret must not be stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")) != nil {
		t.Error("stored hash must verify the original secret")
	}
}

func TestAuthService_SignUp_DuplicateIdentifier(t *testing.T) {
	repo := newStubAccountRepo()
	seedAccount(t, repo, "9000000001", "other")
	svc := NewAuthService(repo, newStubSessionStore(), "test-secret", time.Hour, discardLogger)

	_, err := svc.SignUp(context.Background(), "Asha", "9000000001", "secret123")
	if !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestAuthService_SignUp_PostSignupLoginFailureStillSucceeds(t *testing.T) {
	repo := newStubAccountRepo()
	sessions := newStubSessionStore()
	sessions.putErr = errors.New("redis down")
	svc := NewAuthService(repo, sessions, "test-secret", time.Hour, discardLogger)

	result, err := svc.SignUp(context.Background(), "Ravi", "9000000002", "secret123")
	if err != nil {
		t.Fatalf("sign-up must succeed even when the follow-up login fails: %v", err)
	}
	if result.LoggedIn || result.Token != "" {
		t.Errorf("no session expected: %+v", result)
	}
	if repo.byIdentifier["9000000002"] == nil {
		t.Error("account must still be stored")
	}
}

// ---------------------------------------------------------------------------
// Logout tests
// ---------------------------------------------------------------------------

func TestAuthService_Logout_RevokesSession(t *testing.T) {
	repo := newStubAccountRepo()
	sessions := newStubSessionStore()
	seedAccount(t, repo, "9000000001", "secret123")
	svc := NewAuthService(repo, sessions, "test-secret", time.Hour, discardLogger)

	result, err := svc.Login(context.Background(), "9000000001", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("expected 1 session before logout")
	}

	if err := svc.Logout(context.Background(), result.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Error("session must be deleted on logout")
	}
}

func TestAuthService_Logout_GarbageTokenIsNoop(t *testing.T) {
	svc := NewAuthService(newStubAccountRepo(), newStubSessionStore(), "test-secret", time.Hour, discardLogger)
	if err := svc.Logout(context.Background(), "not-a-token"); err != nil {
		t.Fatalf("garbage token must be treated as already logged out: %v", err)
	}
}

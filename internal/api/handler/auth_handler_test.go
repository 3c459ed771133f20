package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mociber/booking-api/internal/core/domain"
	"github.com/mociber/booking-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, emailOrPhone, password string) (*ports.LoginResult, error)
	signUpFn func(ctx context.Context, name, emailOrPhone, password string) (*ports.SignUpResult, error)
	logoutFn func(ctx context.Context, token string) error
}

func (s *stubAuthService) Login(ctx context.Context, emailOrPhone, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, emailOrPhone, password)
}

func (s *stubAuthService) SignUp(ctx context.Context, name, emailOrPhone, password string) (*ports.SignUpResult, error) {
	return s.signUpFn(ctx, name, emailOrPhone, password)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	if s.logoutFn != nil {
		return s.logoutFn(ctx, token)
	}
	return nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, emailOrPhone, password string) (*ports.LoginResult, error) {
			if emailOrPhone != "9000000001" || password != "secret123" {
				t.Fatalf("unexpected args: %s %s", emailOrPhone, password)
			}
			return &ports.LoginResult{
				Token:    "token123",
				Identity: domain.Identity{ID: "acc_1", Name: "Asha", EmailOrPhone: "9000000001"},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email_or_phone":"9000000001","password":"secret123"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("token missing from response: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Asha" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, emailOrPhone, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email_or_phone":"x","password":"y"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid credentials") {
		t.Fatalf("failure must be reported uniformly: %s", rec.Body.String())
	}
}

func TestAuthHandler_SignUp_LoggedIn(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, name, emailOrPhone, password string) (*ports.SignUpResult, error) {
			return &ports.SignUpResult{
				Identity: domain.Identity{ID: "acc_2", Name: name, EmailOrPhone: emailOrPhone},
				Token:    "token456",
				LoggedIn: true,
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"name":"Ravi","email_or_phone":"9000000002","password":"secret123"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SignUp(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["token"] != "token456" {
		t.Fatalf("expected session token: %+v", resp)
	}
	if msg, _ := resp["message"].(string); !strings.Contains(msg, "logged in") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestAuthHandler_SignUp_CreatedWithoutSession(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, name, emailOrPhone, password string) (*ports.SignUpResult, error) {
			return &ports.SignUpResult{
				Identity: domain.Identity{ID: "acc_2", Name: name, EmailOrPhone: emailOrPhone},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"name":"Ravi","email_or_phone":"9000000002","password":"secret123"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.SignUp(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("sign-up without a session is still created, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if _, hasToken := resp["token"]; hasToken {
		t.Fatalf("no token expected: %+v", resp)
	}
	if msg, _ := resp["message"].(string); !strings.Contains(msg, "login to continue") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestAuthHandler_SignUp_Conflict(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, name, emailOrPhone, password string) (*ports.SignUpResult, error) {
			return nil, domain.ErrAccountExists
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"name":"Ravi","email_or_phone":"9000000002","password":"secret123"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.SignUp(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_SignUp_ValidationRejectsShortPassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, name, emailOrPhone, password string) (*ports.SignUpResult, error) {
			t.Fatal("service must not be called for an invalid draft")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"name":"Ravi","email_or_phone":"9000000002","password":"abc"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.SignUp(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newTestEcho()
	var revoked string
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, token string) error {
			revoked = token
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer token123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if revoked != "token123" {
		t.Fatalf("expected token to be revoked, got %q", revoked)
	}
}

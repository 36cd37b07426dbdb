package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/clubops/clubledger/internal/adapter/http/dto"
	"github.com/clubops/clubledger/internal/domain"
	"github.com/clubops/clubledger/internal/infrastructure/auth"
	"github.com/clubops/clubledger/internal/infrastructure/metrics"
	"github.com/clubops/clubledger/internal/usecase"
)

type userServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateUserInput) (*domain.User, error)
	authFn   func(ctx context.Context, input usecase.AuthenticateInput) (*domain.User, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
}

func (s *userServiceStub) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *userServiceStub) Authenticate(ctx context.Context, input usecase.AuthenticateInput) (*domain.User, error) {
	return s.authFn(ctx, input)
}

func (s *userServiceStub) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func loginRequest(t *testing.T, email, password string) *http.Request {
	t.Helper()

	body, err := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	return httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
}

func TestAuthHandler_Login(t *testing.T) {
	user := &domain.User{ID: "u-1", Email: "treasurer@club.example", Role: domain.RoleTreasurer}
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	m := metrics.New(prometheus.NewRegistry())

	h := NewAuthHandler(&userServiceStub{
		authFn: func(ctx context.Context, input usecase.AuthenticateInput) (*domain.User, error) {
			if input.Password == "correct horse battery" {
				return user, nil
			}
			return nil, domain.ErrUnauthorized
		},
	}, jwtManager, m)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Login(rec, loginRequest(t, user.Email, "correct horse battery"))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp dto.LoginResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Token == "" {
			t.Error("expected a token in the response")
		}
		if resp.User.ID != "u-1" {
			t.Errorf("expected user u-1, got %s", resp.User.ID)
		}
	})

	t.Run("wrong credentials are rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Login(rec, loginRequest(t, user.Email, "wrong"))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("attempts are counted by outcome", func(t *testing.T) {
		if got := promtestutil.ToFloat64(m.AuthAttempts.WithLabelValues("success")); got != 1 {
			t.Errorf("expected 1 successful attempt, got %v", got)
		}
		if got := promtestutil.ToFloat64(m.AuthAttempts.WithLabelValues("failure")); got != 1 {
			t.Errorf("expected 1 failed attempt, got %v", got)
		}
	})
}

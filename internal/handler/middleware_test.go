package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/listkeep/backend/internal/config"
	"github.com/listkeep/backend/internal/service"
)

func TestAuthMiddlewareMissingToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/todos", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareNonBearerHeader(t *testing.T) {
	env := newTestEnv(t)

	w := env.doWithAuthHeader(t, http.MethodGet, "/todos", "Basic dXNlcjpwYXNz")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareMalformedToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/todos", "not.a.jwt", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareWrongSignature(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@x.com", "secret12")

	otherSvc, err := service.NewAuthService(env.userRepo, config.AuthConfig{
		JWTSecret:  "a-different-secret",
		TokenTTL:   "168h",
		BcryptCost: "4",
	})
	if err != nil {
		t.Fatalf("NewAuthService error: %v", err)
	}
	_, token, err := otherSvc.Login(context.Background(), "a@x.com", "secret12")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	w := env.do(t, http.MethodGet, "/todos", token, "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for wrong signature, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@x.com", "secret12")

	expiredSvc, err := service.NewAuthService(env.userRepo, config.AuthConfig{
		JWTSecret:  "handler-test-secret",
		TokenTTL:   "-1h",
		BcryptCost: "4",
	})
	if err != nil {
		t.Fatalf("NewAuthService error: %v", err)
	}
	_, token, err := expiredSvc.Login(context.Background(), "a@x.com", "secret12")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	w := env.do(t, http.MethodGet, "/todos", token, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "log in again") {
		t.Fatalf("expected re-login message, got %s", w.Body.String())
	}
}

func TestAuthMiddlewareValidTokenBindsIdentity(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.register(t, "a@x.com", "secret12")

	w := env.do(t, http.MethodGet, "/auth/me", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var env2 struct {
		Data struct {
			User struct {
				ID    int64  `json:"id"`
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	decodeJSON(t, w, &env2)
	if env2.Data.User.ID != user.ID || env2.Data.User.Email != user.Email {
		t.Fatalf("bound identity mismatch: got %+v want %+v", env2.Data.User, user)
	}
}

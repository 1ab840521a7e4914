package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
	"github.com/RichardBobik/eye-know-api-2/internal/core/ports"
)

type stubSessionStore struct {
	sessions map[string]string
	err      error
}

func (s *stubSessionStore) Set(_ context.Context, token, userID string, _ time.Duration) error {
	s.sessions[token] = userID
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	userID, ok := s.sessions[token]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return userID, nil
}

type captureRecorder struct {
	events []domain.AuthEvent
}

func (r *captureRecorder) Record(event domain.AuthEvent) {
	r.events = append(r.events, event)
}

func gateRequest(t *testing.T, store *stubSessionStore, audit ports.AuditRecorder, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(store, audit, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, called
}

func TestAuthGate_ValidToken(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]string{"tok123": "user_1"}}
	audit := &captureRecorder{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "tok123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(store, audit, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		if c.Get(UserIDKey) != "user_1" {
			t.Fatalf("user id not injected")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(audit.events) != 0 {
		t.Fatalf("allow must not be audited as a denial: %+v", audit.events)
	}
}

func TestAuthGate_BearerPrefixAccepted(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]string{"tok123": "user_1"}}

	rec, called := gateRequest(t, store, &captureRecorder{}, "Bearer tok123")
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthGate_MissingHeader(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]string{}}
	audit := &captureRecorder{}

	rec, called := gateRequest(t, store, audit, "")
	if called {
		t.Fatalf("next must not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no token provided") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if len(audit.events) != 1 || audit.events[0].Type != domain.AuditGateDenied {
		t.Fatalf("expected one gate_denied event, got %+v", audit.events)
	}
}

func TestAuthGate_InvalidToken(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]string{}}
	audit := &captureRecorder{}

	rec, called := gateRequest(t, store, audit, "garbage-token")
	if called {
		t.Fatalf("next must not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid token") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if len(audit.events) != 1 || audit.events[0].Detail != "invalid token" {
		t.Fatalf("expected one gate_denied event, got %+v", audit.events)
	}
}

func TestAuthGate_DenialCarriesRequestID(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]string{}}
	audit := &captureRecorder{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	// The RequestID middleware exposes the id on the response header.
	c.Response().Header().Set(echo.HeaderXRequestID, "req-42")

	mw := Auth(store, audit, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("next must not be called")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(audit.events) != 1 || audit.events[0].RequestID != "req-42" {
		t.Fatalf("expected denial tagged with request id, got %+v", audit.events)
	}
}

func TestAuthGate_StoreFailureIsNot401(t *testing.T) {
	store := &stubSessionStore{err: domain.ErrStoreUnavailable}

	rec, called := gateRequest(t, store, &captureRecorder{}, "tok123")
	if called {
		t.Fatalf("next must not be called")
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for store outage, got %d", rec.Code)
	}
}

func TestAuthGate_NilRecorder(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]string{}}

	rec, called := gateRequest(t, store, nil, "garbage-token")
	if called {
		t.Fatalf("next must not be called")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestExtractToken(t *testing.T) {
	if got := ExtractToken("tok123"); got != "tok123" {
		t.Fatalf("raw token: got %q", got)
	}
	if got := ExtractToken("Bearer tok123"); got != "tok123" {
		t.Fatalf("bearer token: got %q", got)
	}
	if got := ExtractToken("bearer tok123"); got != "tok123" {
		t.Fatalf("lowercase bearer: got %q", got)
	}
}

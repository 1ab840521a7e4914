package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
)

func TestProfileHandler_Get(t *testing.T) {
	e := newEcho()
	profile := &stubProfileService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != "user_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.User{ID: id, Email: "a@b.com", Name: "Ann", Entries: 3}, nil
		},
	}
	h := NewProfileHandler(profile)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("user_1")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "user_1" || resp["name"] != "Ann" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProfileHandler_Get_NotFound(t *testing.T) {
	e := newEcho()
	profile := &stubProfileService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewProfileHandler(profile)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}

func TestProfileHandler_Update(t *testing.T) {
	e := newEcho()
	profile := &stubProfileService{
		updateFn: func(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.User, error) {
			if patch.Name != "Ann" || patch.Age != 30 || patch.Pet != "cat" {
				t.Fatalf("unexpected patch: %+v", patch)
			}
			return &domain.User{ID: id, Name: patch.Name, Age: patch.Age, Pet: patch.Pet}, nil
		},
	}
	h := NewProfileHandler(profile)

	body := strings.NewReader(`{"formInput":{"name":"Ann","age":30,"pet":"cat"}}`)
	req := httptest.NewRequest(http.MethodPut, "/", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("user_1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "Ann" || resp["pet"] != "cat" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProfileHandler_Update_MissingName(t *testing.T) {
	e := newEcho()
	h := NewProfileHandler(&stubProfileService{
		updateFn: func(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.User, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"formInput":{"age":30}}`)
	req := httptest.NewRequest(http.MethodPut, "/", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("user_1")

	err := h.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bsak/authsvc/internal/handler"
	"github.com/bsak/authsvc/internal/service"
)

const testJWTSecret = "test-secret-for-handler-tests"

func TestRequireBearer_ValidToken(t *testing.T) {
	tokens := service.NewTokenService(testJWTSecret, time.Hour)
	token, err := tokens.Generate("b.bartek@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var gotSubject string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject = handler.SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPatch, "/auths/change-password", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.RequireBearer(tokens, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotSubject != "b.bartek@example.com" {
		t.Fatalf("expected subject b.bartek@example.com, got %q", gotSubject)
	}
}

func TestRequireBearer_MissingHeader(t *testing.T) {
	tokens := service.NewTokenService(testJWTSecret, time.Hour)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodPatch, "/auths/change-password", nil)
	w := httptest.NewRecorder()

	handler.RequireBearer(tokens, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireBearer_MissingPrefix(t *testing.T) {
	tokens := service.NewTokenService(testJWTSecret, time.Hour)
	token, err := tokens.Generate("b.bartek@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodPatch, "/auths/change-password", nil)
	req.Header.Set("Authorization", token) // no "Bearer " prefix
	w := httptest.NewRecorder()

	handler.RequireBearer(tokens, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireBearer_TamperedToken(t *testing.T) {
	tokens := service.NewTokenService(testJWTSecret, time.Hour)
	token, err := tokens.Generate("b.bartek@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	tampered := token[:len(token)-1] + "X"

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodPatch, "/auths/change-password", nil)
	req.Header.Set("Authorization", "Bearer "+tampered)
	w := httptest.NewRecorder()

	handler.RequireBearer(tokens, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireBearer_ExpiredToken(t *testing.T) {
	expired := service.NewTokenService(testJWTSecret, -time.Second)
	token, err := expired.Generate("b.bartek@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	tokens := service.NewTokenService(testJWTSecret, time.Hour)
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodPatch, "/auths/change-password", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.RequireBearer(tokens, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	handler.SecurityHeaders(inner).ServeHTTP(w, req)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected nosniff, got %q", got)
	}
	if got := w.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("expected no-store, got %q", got)
	}
}

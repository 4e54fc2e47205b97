package httpx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "fitfusion/internal/platform/errors"
	"fitfusion/internal/platform/httpx"
	"fitfusion/internal/platform/id"
)

type staticTokens struct{ token string }

func (s staticTokens) Token(context.Context) (string, error) {
	if s.token == "" {
		return "", apperrors.ErrNotLoggedIn
	}
	return s.token, nil
}

func newClient(t *testing.T, url, token string, policy httpx.AuthErrorPolicy) *httpx.Client {
	t.Helper()
	return httpx.New(url, 5*time.Second, staticTokens{token: token}, policy, id.UUID{}, nil)
}

func TestBearerHeaderAttachedWhenTokenPresent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, "t1", httpx.AuthErrorPolicy{})
	if err := c.Get(context.Background(), "/ping", nil, nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "Bearer t1" {
		t.Fatalf("authorization header = %q", got)
	}
}

func TestNoBearerHeaderWithoutToken(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, "", httpx.AuthErrorPolicy{})
	if err := c.Get(context.Background(), "/ping", nil, nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "" {
		t.Fatalf("request must go out unauthenticated, got %q", got)
	}
}

func TestAuthErrorNotifiesButKeepsSessionByDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer srv.Close()

	var notified *httpx.APIError
	cleared := false
	policy := httpx.AuthErrorPolicy{
		Notify: func(e *httpx.APIError) { notified = e },
		Clear:  func(context.Context) error { cleared = true; return nil },
	}
	c := newClient(t, srv.URL, "stale", policy)

	err := c.Get(context.Background(), "/users/1/plans", nil, nil)
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if notified == nil || notified.Status != http.StatusForbidden || notified.Message != "token expired" {
		t.Fatalf("diagnostic not surfaced: %+v", notified)
	}
	if cleared {
		t.Fatalf("default policy must not clear the session")
	}
}

func TestAuthErrorClearsSessionWhenPolicyEnabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	cleared := false
	policy := httpx.AuthErrorPolicy{
		ClearSession: true,
		Clear:        func(context.Context) error { cleared = true; return nil },
	}
	c := newClient(t, srv.URL, "stale", policy)

	if err := c.Get(context.Background(), "/whoami", nil, nil); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if !cleared {
		t.Fatalf("policy with ClearSession must wipe credentials")
	}
}

func TestBusinessErrorCarriesBackendMessageVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"update your preferences first"}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, "t1", httpx.AuthErrorPolicy{})
	err := c.Post(context.Background(), "/users/1/generate-plan", nil, nil)
	apiErr := &httpx.APIError{}
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "update your preferences first" {
		t.Fatalf("backend message mangled: %q", apiErr.Message)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Fatalf("status = %d", apiErr.Status)
	}
}

func TestMalformedBodyIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, "t1", httpx.AuthErrorPolicy{})
	out := struct {
		ID int64 `json:"id"`
	}{}
	err := c.Get(context.Background(), "/users/1", nil, &out)
	if !errors.Is(err, apperrors.ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

package out_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	out "fitfusion/internal/modules/auth/adapter/out"
	"fitfusion/internal/modules/auth/domain"
	apperrors "fitfusion/internal/platform/errors"
	"fitfusion/internal/platform/httpx"
	"fitfusion/internal/platform/id"
)

func newAPI(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *out.HTTPAuthAPI) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := httpx.New(srv.URL, 5*time.Second, nil, httpx.AuthErrorPolicy{}, id.UUID{}, nil)
	return srv, out.NewHTTPAuthAPI(client).(*out.HTTPAuthAPI)
}

func TestLoginDecodesTokenAndIdentity(t *testing.T) {
	_, api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body := struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email != "a@b.com" {
			t.Errorf("bad request body: %+v err=%v", body, err)
		}
		_, _ = w.Write([]byte(`{"token":"t1","user":{"id":1,"name":"Root","email":"a@b.com","role":"ROLE_ADMIN"}}`))
	})

	creds, err := api.Login(context.Background(), "a@b.com", "x")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if creds.Token != "t1" || creds.Session.Role != domain.RoleAdmin || creds.Session.UserID != 1 {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestRegisterNormalizesBareRole(t *testing.T) {
	_, api := newAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"token":"t2","user":{"id":5,"name":"N","email":"n@b.com","role":"USER"}}`))
	})

	creds, err := api.Register(context.Background(), "N", "n@b.com", "pw")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if creds.Session.Role != domain.RoleUser {
		t.Fatalf("role = %s", creds.Session.Role)
	}
}

func TestMissingTokenOrUserFailsFast(t *testing.T) {
	_, api := newAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"id":1,"email":"a@b.com"}}`))
	})

	if _, err := api.Login(context.Background(), "a@b.com", "x"); !errors.Is(err, apperrors.ErrDecode) {
		t.Fatalf("login without token = %v, want ErrDecode", err)
	}
}

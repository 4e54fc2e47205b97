package usecase_test

import (
	"context"
	"errors"
	"testing"

	authout "fitfusion/internal/modules/auth/adapter/out"
	"fitfusion/internal/modules/auth/domain"
	authdto "fitfusion/internal/modules/auth/dto"
	"fitfusion/internal/modules/auth/service"
	"fitfusion/internal/modules/auth/usecase"
	apperrors "fitfusion/internal/platform/errors"
)

type fakeAuthAPI struct {
	creds domain.Credentials
	err   error
}

func (f *fakeAuthAPI) Login(context.Context, string, string) (domain.Credentials, error) {
	return f.creds, f.err
}

func (f *fakeAuthAPI) Register(context.Context, string, string, string) (domain.Credentials, error) {
	return f.creds, f.err
}

func adminCreds() domain.Credentials {
	return domain.Credentials{
		Token: "t1",
		Session: domain.Session{
			UserID: 1,
			Name:   "Root",
			Email:  "a@b.com",
			Role:   domain.RoleAdmin,
		},
	}
}

func TestLoginPersistsCredentialsAndResolvesAdminHome(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := authout.NewFileCredentialStore(t.TempDir())
	uc := usecase.NewInteractor(&fakeAuthAPI{creds: adminCreds()}, store, service.NewSessionStore(store))

	if uc.IsAuthenticated(ctx) {
		t.Fatalf("must start logged out")
	}

	identity, err := uc.Login(ctx, authdto.LoginInput{Email: "a@b.com", Password: "x"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !identity.Admin || identity.UserID != 1 {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if !uc.IsAuthenticated(ctx) {
		t.Fatalf("authenticated must hold immediately after login")
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load persisted credentials: %v", err)
	}
	if loaded.Token != "t1" || loaded.Session.Role != domain.RoleAdmin {
		t.Fatalf("persisted credentials diverge: %+v", loaded)
	}
	if got := domain.DefaultRoute(loaded.Session); got != domain.RouteAdminHome {
		t.Fatalf("default redirect = %s, want %s", got, domain.RouteAdminHome)
	}
}

func TestLogoutClearsBothViewsOfTheSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := authout.NewFileCredentialStore(t.TempDir())
	uc := usecase.NewInteractor(&fakeAuthAPI{creds: adminCreds()}, store, service.NewSessionStore(store))

	if _, err := uc.Login(ctx, authdto.LoginInput{Email: "a@b.com", Password: "x"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := uc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if uc.IsAuthenticated(ctx) {
		t.Fatalf("authenticated must drop immediately after logout")
	}
	if _, err := uc.Current(ctx); !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Fatalf("current after logout = %v, want ErrNotLoggedIn", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Fatalf("durable store must be cleared, got %v", err)
	}
}

func TestLoginFailurePropagatesBackendErrorUnchanged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	backendErr := errors.New("invalid credentials")
	store := authout.NewFileCredentialStore(t.TempDir())
	uc := usecase.NewInteractor(&fakeAuthAPI{err: backendErr}, store, service.NewSessionStore(store))

	if _, err := uc.Login(ctx, authdto.LoginInput{Email: "a@b.com", Password: "bad"}); !errors.Is(err, backendErr) {
		t.Fatalf("backend error mangled: %v", err)
	}
	if uc.IsAuthenticated(ctx) {
		t.Fatalf("failed login must not authenticate")
	}
}

func TestMissingFieldsRejectedBeforeAnyRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := &fakeAuthAPI{err: errors.New("must not be called")}
	store := authout.NewFileCredentialStore(t.TempDir())
	uc := usecase.NewInteractor(api, store, service.NewSessionStore(store))

	if _, err := uc.Login(ctx, authdto.LoginInput{Email: "", Password: "x"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("empty email: %v", err)
	}
	if _, err := uc.Register(ctx, authdto.RegisterInput{Name: "", Email: "a@b.com", Password: "x"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("empty name: %v", err)
	}
}

func TestRefreshReconcilesExternalStorageChanges(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := authout.NewFileCredentialStore(t.TempDir())
	uc := usecase.NewInteractor(&fakeAuthAPI{creds: adminCreds()}, store, service.NewSessionStore(store))

	if _, err := uc.Login(ctx, authdto.LoginInput{Email: "a@b.com", Password: "x"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	// Another process wiping the state dir is observed on the next refresh.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := uc.Refresh(ctx); !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Fatalf("refresh after external clear = %v, want ErrNotLoggedIn", err)
	}
}

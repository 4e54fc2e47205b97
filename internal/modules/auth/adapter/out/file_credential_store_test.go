package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	out "fitfusion/internal/modules/auth/adapter/out"
	"fitfusion/internal/modules/auth/domain"
	apperrors "fitfusion/internal/platform/errors"
)

func sampleCreds() domain.Credentials {
	return domain.Credentials{
		Token: "t1",
		Session: domain.Session{
			UserID: 7,
			Name:   "Asha",
			Email:  "asha@example.com",
			Role:   domain.RoleUser,
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := out.NewFileCredentialStore(t.TempDir())

	if err := store.Save(ctx, sampleCreds()); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != sampleCreds() {
		t.Fatalf("round trip diverged: %+v", loaded)
	}
	token, err := store.Token(ctx)
	if err != nil || token != "t1" {
		t.Fatalf("token source: %q %v", token, err)
	}
}

func TestLoadWithoutCredentialsIsNotLoggedIn(t *testing.T) {
	t.Parallel()
	store := out.NewFileCredentialStore(t.TempDir())
	if _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Fatalf("load = %v, want ErrNotLoggedIn", err)
	}
}

func TestClearRemovesBothEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	store := out.NewFileCredentialStore(dir)

	if err := store.Save(ctx, sampleCreds()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	for _, name := range []string{"token", "identity.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Fatalf("%s must be removed, stat err = %v", name, err)
		}
	}
	// Clearing an already-clean store is a no-op.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestTokenWithoutIdentityIsDecodeErrorNotHalfSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	store := out.NewFileCredentialStore(dir)

	if err := store.Save(ctx, sampleCreds()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, "identity.json")); err != nil {
		t.Fatalf("remove identity: %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, apperrors.ErrDecode) {
		t.Fatalf("load = %v, want ErrDecode", err)
	}
}

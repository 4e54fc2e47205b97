package out

import (
	"context"

	"fitfusion/internal/modules/auth/domain"
)

// CredentialStore is the durable side of the session: a token entry and an
// identity entry, written together and cleared together. Load returns
// apperrors.ErrNotLoggedIn when no credentials are stored.
type CredentialStore interface {
	Save(ctx context.Context, creds domain.Credentials) error
	Load(ctx context.Context) (domain.Credentials, error)
	Clear(ctx context.Context) error
}

// AuthAPI is the backend's authentication surface.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.Credentials, error)
	Register(ctx context.Context, name, email, password string) (domain.Credentials, error)
}

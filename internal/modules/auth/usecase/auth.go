package usecase

import (
	"context"
	"fmt"
	"strings"

	"fitfusion/internal/modules/auth/domain"
	authdto "fitfusion/internal/modules/auth/dto"
	authin "fitfusion/internal/modules/auth/port/in"
	authout "fitfusion/internal/modules/auth/port/out"
	"fitfusion/internal/modules/auth/service"
	apperrors "fitfusion/internal/platform/errors"
)

type Interactor struct {
	api     authout.AuthAPI
	store   authout.CredentialStore
	session *service.SessionStore
}

func NewInteractor(api authout.AuthAPI, store authout.CredentialStore, session *service.SessionStore) authin.Usecase {
	return &Interactor{api: api, store: store, session: session}
}

func (i *Interactor) Login(ctx context.Context, input authdto.LoginInput) (authdto.IdentityOutput, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return authdto.IdentityOutput{}, fmt.Errorf("%w: email and password are required", apperrors.ErrInvalidInput)
	}
	creds, err := i.api.Login(ctx, input.Email, input.Password)
	if err != nil {
		return authdto.IdentityOutput{}, err
	}
	return i.establish(ctx, creds)
}

func (i *Interactor) Register(ctx context.Context, input authdto.RegisterInput) (authdto.IdentityOutput, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return authdto.IdentityOutput{}, fmt.Errorf("%w: name, email and password are required", apperrors.ErrInvalidInput)
	}
	creds, err := i.api.Register(ctx, input.Name, input.Email, input.Password)
	if err != nil {
		return authdto.IdentityOutput{}, err
	}
	return i.establish(ctx, creds)
}

// establish persists credentials and updates the in-memory store, keeping
// the two views of the session from diverging.
func (i *Interactor) establish(ctx context.Context, creds domain.Credentials) (authdto.IdentityOutput, error) {
	if err := creds.Validate(); err != nil {
		return authdto.IdentityOutput{}, fmt.Errorf("%w: %v", apperrors.ErrDecode, err)
	}
	if err := i.store.Save(ctx, creds); err != nil {
		return authdto.IdentityOutput{}, fmt.Errorf("persist credentials: %w", err)
	}
	i.session.SetIdentity(creds.Session)
	return identityOutput(creds.Session, true), nil
}

// Logout clears durable storage and in-memory state. Terminal for the
// session; navigation back to login is the caller's side effect.
func (i *Interactor) Logout(ctx context.Context) error {
	if err := i.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	i.session.Clear()
	return nil
}

func (i *Interactor) Current(_ context.Context) (authdto.IdentityOutput, error) {
	sess, ok := i.session.Current()
	if !ok {
		return authdto.IdentityOutput{}, apperrors.ErrNotLoggedIn
	}
	return identityOutput(sess, true), nil
}

func (i *Interactor) Refresh(ctx context.Context) (authdto.IdentityOutput, error) {
	i.session.RefreshFromStorage(ctx)
	return i.Current(ctx)
}

func (i *Interactor) IsAuthenticated(ctx context.Context) bool {
	_, err := i.store.Load(ctx)
	return err == nil
}

func (i *Interactor) IsAdmin(_ context.Context) bool {
	sess, ok := i.session.Current()
	return ok && sess.Role.IsAdmin()
}

func identityOutput(sess domain.Session, authenticated bool) authdto.IdentityOutput {
	return authdto.IdentityOutput{
		UserID:        sess.UserID,
		Name:          sess.Name,
		Email:         sess.Email,
		Role:          string(sess.Role),
		Admin:         sess.Role.IsAdmin(),
		Authenticated: authenticated,
	}
}

package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fitfusion/internal/modules/auth/domain"
	authout "fitfusion/internal/modules/auth/port/out"
	apperrors "fitfusion/internal/platform/errors"
)

const (
	tokenFile    = "token"
	identityFile = "identity.json"
)

// FileCredentialStore keeps the bearer token and the identity record as two
// entries under the state dir, mirroring the two storage keys the session
// depends on. Both are written together and removed together.
type FileCredentialStore struct {
	dir string
}

func NewFileCredentialStore(stateDir string) *FileCredentialStore {
	return &FileCredentialStore{dir: stateDir}
}

func (s *FileCredentialStore) Save(_ context.Context, creds domain.Credentials) error {
	if err := creds.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	identity, err := json.MarshalIndent(creds.Session, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(creds.Token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, identityFile), identity, 0o600); err != nil {
		// Leave no half-session behind.
		_ = os.Remove(filepath.Join(s.dir, tokenFile))
		return fmt.Errorf("write identity: %w", err)
	}
	return nil
}

func (s *FileCredentialStore) Load(_ context.Context) (domain.Credentials, error) {
	token, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Credentials{}, apperrors.ErrNotLoggedIn
		}
		return domain.Credentials{}, fmt.Errorf("read token: %w", err)
	}
	payload, err := os.ReadFile(filepath.Join(s.dir, identityFile))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Credentials{}, fmt.Errorf("%w: token present without identity", apperrors.ErrDecode)
		}
		return domain.Credentials{}, fmt.Errorf("read identity: %w", err)
	}
	sess := domain.Session{}
	if err := json.Unmarshal(payload, &sess); err != nil {
		return domain.Credentials{}, fmt.Errorf("%w: decode identity: %v", apperrors.ErrDecode, err)
	}
	creds := domain.Credentials{Token: string(token), Session: sess}
	if err := creds.Validate(); err != nil {
		return domain.Credentials{}, fmt.Errorf("%w: %v", apperrors.ErrDecode, err)
	}
	return creds, nil
}

func (s *FileCredentialStore) Clear(_ context.Context) error {
	for _, name := range []string{tokenFile, identityFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("clear %s: %w", name, err)
		}
	}
	return nil
}

// Token implements httpx.TokenSource over the stored credentials.
func (s *FileCredentialStore) Token(ctx context.Context) (string, error) {
	creds, err := s.Load(ctx)
	if err != nil {
		return "", err
	}
	return creds.Token, nil
}

var _ authout.CredentialStore = (*FileCredentialStore)(nil)

package out

import (
	"context"
	"fmt"

	"fitfusion/internal/modules/auth/domain"
	authout "fitfusion/internal/modules/auth/port/out"
	apperrors "fitfusion/internal/platform/errors"
	"fitfusion/internal/platform/httpx"
)

type HTTPAuthAPI struct {
	client *httpx.Client
}

func NewHTTPAuthAPI(client *httpx.Client) authout.AuthAPI {
	return &HTTPAuthAPI{client: client}
}

type userPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *userPayload `json:"user"`
}

func (a *HTTPAuthAPI) Login(ctx context.Context, email, password string) (domain.Credentials, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	resp := authResponse{}
	if err := a.client.Post(ctx, "/auth/login", body, &resp); err != nil {
		return domain.Credentials{}, err
	}
	return resp.credentials()
}

func (a *HTTPAuthAPI) Register(ctx context.Context, name, email, password string) (domain.Credentials, error) {
	body := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Name: name, Email: email, Password: password}

	resp := authResponse{}
	if err := a.client.Post(ctx, "/auth/register", body, &resp); err != nil {
		return domain.Credentials{}, err
	}
	return resp.credentials()
}

// credentials fails fast when the backend omits the token or the identity
// instead of defaulting either one.
func (r authResponse) credentials() (domain.Credentials, error) {
	if r.Token == "" || r.User == nil {
		return domain.Credentials{}, fmt.Errorf("%w: auth response missing token or user", apperrors.ErrDecode)
	}
	return domain.Credentials{
		Token: r.Token,
		Session: domain.Session{
			UserID: r.User.ID,
			Name:   r.User.Name,
			Email:  r.User.Email,
			Role:   domain.NormalizeRole(r.User.Role),
		},
	}, nil
}

package in

import (
	"context"

	authdto "fitfusion/internal/modules/auth/dto"
	authin "fitfusion/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (authdto.IdentityOutput, error) {
	return h.usecase.Login(ctx, authdto.LoginInput{Email: email, Password: password})
}

func (h CLIHandler) Register(ctx context.Context, name, email, password string) (authdto.IdentityOutput, error) {
	return h.usecase.Register(ctx, authdto.RegisterInput{Name: name, Email: email, Password: password})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (authdto.IdentityOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) IsAuthenticated(ctx context.Context) bool {
	return h.usecase.IsAuthenticated(ctx)
}

func (h CLIHandler) IsAdmin(ctx context.Context) bool {
	return h.usecase.IsAdmin(ctx)
}

package in

import (
	"context"

	"fitfusion/internal/modules/auth/dto"
)

type Usecase interface {
	Login(ctx context.Context, input dto.LoginInput) (dto.IdentityOutput, error)
	Register(ctx context.Context, input dto.RegisterInput) (dto.IdentityOutput, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (dto.IdentityOutput, error)
	Refresh(ctx context.Context) (dto.IdentityOutput, error)
	IsAuthenticated(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
}

package in

import (
	"context"

	"fitfusion/internal/modules/prefs/dto"
)

type Usecase interface {
	Get(ctx context.Context, userID int64) (dto.GetOutput, error)
	Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error)
	Profile(ctx context.Context, userID int64) (dto.ProfileOutput, error)
	UpdateProfile(ctx context.Context, input dto.UpdateProfileInput) (dto.ProfileOutput, error)
}

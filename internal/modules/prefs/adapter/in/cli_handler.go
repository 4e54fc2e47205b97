package in

import (
	"context"

	"fitfusion/internal/modules/prefs/domain"
	prefsdto "fitfusion/internal/modules/prefs/dto"
	prefsin "fitfusion/internal/modules/prefs/port/in"
)

type CLIHandler struct {
	usecase prefsin.Usecase
}

func NewCLIHandler(usecase prefsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context, userID int64) (prefsdto.GetOutput, error) {
	return h.usecase.Get(ctx, userID)
}

func (h CLIHandler) Submit(ctx context.Context, userID int64, draft domain.Draft) (prefsdto.SubmitOutput, error) {
	return h.usecase.Submit(ctx, prefsdto.SubmitInput{UserID: userID, Draft: draft})
}

func (h CLIHandler) Profile(ctx context.Context, userID int64) (prefsdto.ProfileOutput, error) {
	return h.usecase.Profile(ctx, userID)
}

func (h CLIHandler) UpdateProfile(ctx context.Context, userID int64, update domain.ProfileUpdate) (prefsdto.ProfileOutput, error) {
	return h.usecase.UpdateProfile(ctx, prefsdto.UpdateProfileInput{UserID: userID, Update: update})
}

package usecase

import (
	"context"
	"fmt"

	"fitfusion/internal/modules/prefs/domain"
	prefsdto "fitfusion/internal/modules/prefs/dto"
	prefsin "fitfusion/internal/modules/prefs/port/in"
	prefsout "fitfusion/internal/modules/prefs/port/out"
	"fitfusion/internal/modules/prefs/service"
	apperrors "fitfusion/internal/platform/errors"
)

type Interactor struct {
	svc      *service.PrefsService
	api      prefsout.PreferenceAPI
	profiles prefsout.ProfileAPI
}

func NewInteractor(svc *service.PrefsService, api prefsout.PreferenceAPI, profiles prefsout.ProfileAPI) prefsin.Usecase {
	return &Interactor{svc: svc, api: api, profiles: profiles}
}

func (i *Interactor) Get(ctx context.Context, userID int64) (prefsdto.GetOutput, error) {
	if userID == 0 {
		return prefsdto.GetOutput{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	prefs, found, err := i.api.Get(ctx, userID)
	if err != nil {
		return prefsdto.GetOutput{}, err
	}
	return prefsdto.GetOutput{Found: found, Preferences: prefs}, nil
}

// Submit performs, in order: merge profile, save preferences, request plan
// generation. A rejected generation leaves the saved preferences in place
// and is reported as a PlanGenerationError so the wizard can stay put.
func (i *Interactor) Submit(ctx context.Context, input prefsdto.SubmitInput) (prefsdto.SubmitOutput, error) {
	if input.UserID == 0 {
		return prefsdto.SubmitOutput{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	if !input.Draft.OnFinalStep() {
		return prefsdto.SubmitOutput{}, domain.ErrNotOnFinalStep
	}

	payload, err := i.svc.Payload(ctx, input.UserID, input.Draft)
	if err != nil {
		return prefsdto.SubmitOutput{}, err
	}
	if err := i.api.Save(ctx, input.UserID, payload); err != nil {
		return prefsdto.SubmitOutput{}, fmt.Errorf("save preferences: %w", err)
	}
	if err := i.api.GeneratePlan(ctx, input.UserID); err != nil {
		return prefsdto.SubmitOutput{}, &domain.PlanGenerationError{Cause: err}
	}
	return prefsdto.SubmitOutput{PlanRequested: true}, nil
}

func (i *Interactor) Profile(ctx context.Context, userID int64) (prefsdto.ProfileOutput, error) {
	if userID == 0 {
		return prefsdto.ProfileOutput{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	profile, err := i.profiles.Profile(ctx, userID)
	if err != nil {
		return prefsdto.ProfileOutput{}, err
	}
	return prefsdto.ProfileOutput{Profile: profile}, nil
}

// UpdateProfile mirrors the server's edit rules client side so a bad
// request never leaves the terminal: the name is mandatory and a password
// change needs the current password plus a new one of at least six
// characters.
func (i *Interactor) UpdateProfile(ctx context.Context, input prefsdto.UpdateProfileInput) (prefsdto.ProfileOutput, error) {
	if input.UserID == 0 {
		return prefsdto.ProfileOutput{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	if input.Update.Name == "" {
		return prefsdto.ProfileOutput{}, fmt.Errorf("%w: name is required", apperrors.ErrInvalidInput)
	}
	if input.Update.NewPassword != "" {
		if input.Update.CurrentPassword == "" {
			return prefsdto.ProfileOutput{}, fmt.Errorf("%w: current password is required to change the password", apperrors.ErrInvalidInput)
		}
		if len(input.Update.NewPassword) < 6 {
			return prefsdto.ProfileOutput{}, fmt.Errorf("%w: new password must be at least 6 characters", apperrors.ErrInvalidInput)
		}
	}
	updated, err := i.profiles.UpdateProfile(ctx, input.UserID, input.Update)
	if err != nil {
		return prefsdto.ProfileOutput{}, err
	}
	return prefsdto.ProfileOutput{Profile: updated}, nil
}

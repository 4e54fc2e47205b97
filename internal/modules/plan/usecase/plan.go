package usecase

import (
	"context"
	"fmt"

	"fitfusion/internal/modules/plan/domain"
	plandto "fitfusion/internal/modules/plan/dto"
	planin "fitfusion/internal/modules/plan/port/in"
	planout "fitfusion/internal/modules/plan/port/out"
	"fitfusion/internal/modules/plan/service"
	apperrors "fitfusion/internal/platform/errors"
)

type Interactor struct {
	svc         *service.PlanService
	completions planout.CompletionAPI
}

func NewInteractor(svc *service.PlanService, completions planout.CompletionAPI) planin.Usecase {
	return &Interactor{svc: svc, completions: completions}
}

func (i *Interactor) List(ctx context.Context, userID int64) (plandto.ListOutput, error) {
	if userID == 0 {
		return plandto.ListOutput{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	bundles, err := i.svc.List(ctx, userID)
	if err != nil {
		return plandto.ListOutput{}, err
	}
	return plandto.ListOutput{Bundles: bundles}, nil
}

func (i *Interactor) ListCached(ctx context.Context, userID int64) (plandto.ListOutput, error) {
	bundles, err := i.svc.ListCached(ctx, userID)
	if err != nil {
		return plandto.ListOutput{}, err
	}
	return plandto.ListOutput{Bundles: bundles, Cached: true}, nil
}

func (i *Interactor) Get(ctx context.Context, bundleID int64) (plandto.BundleOutput, error) {
	if bundleID == 0 {
		return plandto.BundleOutput{}, fmt.Errorf("%w: bundle id is required", apperrors.ErrInvalidInput)
	}
	bundle, err := i.svc.Get(ctx, bundleID)
	if err != nil {
		return plandto.BundleOutput{}, err
	}
	return plandto.BundleOutput{Bundle: bundle}, nil
}

func (i *Interactor) Completions(ctx context.Context, userID, bundleID int64) ([]domain.Completion, error) {
	return i.completions.List(ctx, userID, bundleID)
}

// ToggleCompletion synchronizes a per-exercise checkmark immediately:
// present on the server means delete, absent means create. There is no
// local-only completion state.
func (i *Interactor) ToggleCompletion(ctx context.Context, input plandto.ToggleCompletionInput) (plandto.ToggleCompletionOutput, error) {
	if input.UserID == 0 || input.Completion.PlanBundleID == 0 {
		return plandto.ToggleCompletionOutput{}, fmt.Errorf("%w: user and bundle ids are required", apperrors.ErrInvalidInput)
	}
	existing, err := i.completions.List(ctx, input.UserID, input.Completion.PlanBundleID)
	if err != nil {
		return plandto.ToggleCompletionOutput{}, err
	}
	key := input.Completion.Key()
	for _, c := range existing {
		if c.Key() == key {
			if err := i.completions.Delete(ctx, input.UserID, key); err != nil {
				return plandto.ToggleCompletionOutput{}, err
			}
			return plandto.ToggleCompletionOutput{Completed: false}, nil
		}
	}
	if err := i.completions.Create(ctx, input.UserID, input.Completion); err != nil {
		return plandto.ToggleCompletionOutput{}, err
	}
	return plandto.ToggleCompletionOutput{Completed: true}, nil
}

func (i *Interactor) Stats(ctx context.Context, input plandto.StatsInput) (domain.Stats, error) {
	if input.UserID == 0 {
		return domain.Stats{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	period := input.Period
	if period == "" {
		period = "week"
	}
	return i.svc.Stats(ctx, input.UserID, period)
}

package in

import (
	"context"

	"fitfusion/internal/modules/plan/domain"
	plandto "fitfusion/internal/modules/plan/dto"
	planin "fitfusion/internal/modules/plan/port/in"
)

type CLIHandler struct {
	usecase planin.Usecase
}

func NewCLIHandler(usecase planin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, userID int64, cached bool) (plandto.ListOutput, error) {
	if cached {
		return h.usecase.ListCached(ctx, userID)
	}
	return h.usecase.List(ctx, userID)
}

func (h CLIHandler) Get(ctx context.Context, bundleID int64) (plandto.BundleOutput, error) {
	return h.usecase.Get(ctx, bundleID)
}

func (h CLIHandler) Completions(ctx context.Context, userID, bundleID int64) ([]domain.Completion, error) {
	return h.usecase.Completions(ctx, userID, bundleID)
}

func (h CLIHandler) ToggleCompletion(ctx context.Context, userID int64, completion domain.Completion) (plandto.ToggleCompletionOutput, error) {
	return h.usecase.ToggleCompletion(ctx, plandto.ToggleCompletionInput{UserID: userID, Completion: completion})
}

func (h CLIHandler) Stats(ctx context.Context, userID int64, period string) (domain.Stats, error) {
	return h.usecase.Stats(ctx, plandto.StatsInput{UserID: userID, Period: period})
}

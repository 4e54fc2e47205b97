package in

import (
	"context"

	"fitfusion/internal/modules/plan/domain"
	"fitfusion/internal/modules/plan/dto"
)

type Usecase interface {
	List(ctx context.Context, userID int64) (dto.ListOutput, error)
	ListCached(ctx context.Context, userID int64) (dto.ListOutput, error)
	Get(ctx context.Context, bundleID int64) (dto.BundleOutput, error)
	Completions(ctx context.Context, userID, bundleID int64) ([]domain.Completion, error)
	ToggleCompletion(ctx context.Context, input dto.ToggleCompletionInput) (dto.ToggleCompletionOutput, error)
	Stats(ctx context.Context, input dto.StatsInput) (domain.Stats, error)
}

package out

import (
	"context"

	"fitfusion/internal/modules/catalog/domain"
)

type ExerciseAPI interface {
	List(ctx context.Context) ([]domain.Exercise, error)
	Get(ctx context.Context, exerciseID int64) (domain.Exercise, error)
	ByName(ctx context.Context, name string) (domain.Exercise, error)
}

// CatalogProjector is the local read-model for exercises and foods. Exercise
// lookups are keyed by slug so a cached read matches regardless of how the
// name was typed.
type CatalogProjector interface {
	UpsertExercises(ctx context.Context, exercises []domain.Exercise) error
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	ExerciseBySlug(ctx context.Context, slug string) (domain.Exercise, error)
	UpsertFoods(ctx context.Context, foods []domain.Food) error
	ListFoods(ctx context.Context) ([]domain.Food, error)
}

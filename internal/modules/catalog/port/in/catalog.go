package in

import (
	"context"

	"fitfusion/internal/modules/catalog/domain"
)

type Usecase interface {
	Exercises(ctx context.Context) ([]domain.Exercise, error)
	Exercise(ctx context.Context, exerciseID int64) (domain.Exercise, error)
	ExerciseByName(ctx context.Context, name string) (domain.Exercise, error)
	Foods(ctx context.Context) ([]domain.Food, error)
}

package in

import (
	"context"

	"fitfusion/internal/modules/catalog/domain"
	catalogin "fitfusion/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Exercises(ctx context.Context) ([]domain.Exercise, error) {
	return h.usecase.Exercises(ctx)
}

func (h CLIHandler) Exercise(ctx context.Context, exerciseID int64) (domain.Exercise, error) {
	return h.usecase.Exercise(ctx, exerciseID)
}

func (h CLIHandler) ExerciseByName(ctx context.Context, name string) (domain.Exercise, error) {
	return h.usecase.ExerciseByName(ctx, name)
}

func (h CLIHandler) Foods(ctx context.Context) ([]domain.Food, error) {
	return h.usecase.Foods(ctx)
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"fitfusion/internal/modules/catalog/domain"
	catalogin "fitfusion/internal/modules/catalog/port/in"
	"fitfusion/internal/modules/catalog/service"
	apperrors "fitfusion/internal/platform/errors"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Exercises(ctx context.Context) ([]domain.Exercise, error) {
	return i.svc.Exercises(ctx)
}

func (i *Interactor) Exercise(ctx context.Context, exerciseID int64) (domain.Exercise, error) {
	if exerciseID == 0 {
		return domain.Exercise{}, fmt.Errorf("%w: exercise id is required", apperrors.ErrInvalidInput)
	}
	return i.svc.Exercise(ctx, exerciseID)
}

func (i *Interactor) ExerciseByName(ctx context.Context, name string) (domain.Exercise, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Exercise{}, fmt.Errorf("%w: exercise name is required", apperrors.ErrInvalidInput)
	}
	return i.svc.ExerciseByName(ctx, name)
}

func (i *Interactor) Foods(ctx context.Context) ([]domain.Food, error) {
	return i.svc.Foods(ctx)
}

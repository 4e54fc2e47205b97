package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"fitfusion/internal/modules/catalog/domain"
	catalogout "fitfusion/internal/modules/catalog/port/out"
	apperrors "fitfusion/internal/platform/errors"
	"fitfusion/internal/platform/slug"
)

// CatalogService serves exercise and food reads, refreshing the local
// projection on every successful fetch and falling back to it when the
// backend is unreachable.
type CatalogService struct {
	api       catalogout.ExerciseAPI
	projector catalogout.CatalogProjector
	log       *zap.Logger
}

func NewCatalogService(api catalogout.ExerciseAPI, projector catalogout.CatalogProjector, log *zap.Logger) *CatalogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogService{api: api, projector: projector, log: log}
}

func (s *CatalogService) Exercises(ctx context.Context) ([]domain.Exercise, error) {
	exercises, err := s.api.List(ctx)
	if err != nil {
		if cached, ok := s.cachedExercises(ctx); ok {
			s.log.Warn("serving cached exercises", zap.Error(err))
			return cached, nil
		}
		return nil, err
	}
	if s.projector != nil {
		if perr := s.projector.UpsertExercises(ctx, exercises); perr != nil {
			s.log.Warn("project exercises", zap.Error(perr))
		}
	}
	return exercises, nil
}

func (s *CatalogService) Exercise(ctx context.Context, exerciseID int64) (domain.Exercise, error) {
	return s.api.Get(ctx, exerciseID)
}

// ExerciseByName resolves a detail lookup. A missing exercise stays missing;
// only transport failures fall back to the projection.
func (s *CatalogService) ExerciseByName(ctx context.Context, name string) (domain.Exercise, error) {
	exercise, err := s.api.ByName(ctx, name)
	if err == nil {
		if s.projector != nil {
			if perr := s.projector.UpsertExercises(ctx, []domain.Exercise{exercise}); perr != nil {
				s.log.Warn("project exercise", zap.String("name", name), zap.Error(perr))
			}
		}
		return exercise, nil
	}
	if errors.Is(err, apperrors.ErrNotFound) || s.projector == nil {
		return domain.Exercise{}, err
	}
	cached, cerr := s.projector.ExerciseBySlug(ctx, slug.Make(name))
	if cerr != nil {
		return domain.Exercise{}, err
	}
	s.log.Warn("serving cached exercise", zap.String("name", name), zap.Error(err))
	return cached, nil
}

// Foods reads the local projection. The nutrition catalog has no public
// listing endpoint; the projection is fed by admin content management.
func (s *CatalogService) Foods(ctx context.Context) ([]domain.Food, error) {
	if s.projector == nil {
		return nil, nil
	}
	return s.projector.ListFoods(ctx)
}

func (s *CatalogService) cachedExercises(ctx context.Context) ([]domain.Exercise, bool) {
	if s.projector == nil {
		return nil, false
	}
	cached, err := s.projector.ListExercises(ctx)
	if err != nil || len(cached) == 0 {
		return nil, false
	}
	return cached, true
}

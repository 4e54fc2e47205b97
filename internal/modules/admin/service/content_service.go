package service

import (
	"context"

	"go.uber.org/zap"

	admindto "fitfusion/internal/modules/admin/dto"
	adminout "fitfusion/internal/modules/admin/port/out"
	catalogdomain "fitfusion/internal/modules/catalog/domain"
)

// ContentService wraps catalog management, mirroring every successful read
// or write into the local catalog projection. Projection failures are
// logged, never surfaced; the server copy is authoritative.
type ContentService struct {
	api  adminout.ContentAPI
	sink adminout.CatalogSink
	log  *zap.Logger
}

func NewContentService(api adminout.ContentAPI, sink adminout.CatalogSink, log *zap.Logger) *ContentService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContentService{api: api, sink: sink, log: log}
}

func (s *ContentService) ListExercises(ctx context.Context) ([]catalogdomain.Exercise, error) {
	exercises, err := s.api.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	s.projectExercises(ctx, exercises)
	return exercises, nil
}

func (s *ContentService) CreateExercise(ctx context.Context, exercise catalogdomain.Exercise) (catalogdomain.Exercise, error) {
	saved, err := s.api.CreateExercise(ctx, exercise)
	if err != nil {
		return catalogdomain.Exercise{}, err
	}
	s.projectExercises(ctx, []catalogdomain.Exercise{saved})
	return saved, nil
}

func (s *ContentService) UpdateExercise(ctx context.Context, exercise catalogdomain.Exercise) (catalogdomain.Exercise, error) {
	saved, err := s.api.UpdateExercise(ctx, exercise)
	if err != nil {
		return catalogdomain.Exercise{}, err
	}
	s.projectExercises(ctx, []catalogdomain.Exercise{saved})
	return saved, nil
}

func (s *ContentService) DeleteExercise(ctx context.Context, exerciseID int64) error {
	return s.api.DeleteExercise(ctx, exerciseID)
}

func (s *ContentService) BulkCreateExercises(ctx context.Context, exercises []catalogdomain.Exercise) (admindto.BulkExercisesResult, error) {
	result, err := s.api.BulkCreateExercises(ctx, exercises)
	if err != nil {
		return admindto.BulkExercisesResult{}, err
	}
	s.projectExercises(ctx, result.Exercises)
	return result, nil
}

func (s *ContentService) ListFoods(ctx context.Context) ([]catalogdomain.Food, error) {
	foods, err := s.api.ListFoods(ctx)
	if err != nil {
		return nil, err
	}
	s.projectFoods(ctx, foods)
	return foods, nil
}

func (s *ContentService) CreateFood(ctx context.Context, food catalogdomain.Food) (catalogdomain.Food, error) {
	saved, err := s.api.CreateFood(ctx, food)
	if err != nil {
		return catalogdomain.Food{}, err
	}
	s.projectFoods(ctx, []catalogdomain.Food{saved})
	return saved, nil
}

func (s *ContentService) UpdateFood(ctx context.Context, food catalogdomain.Food) (catalogdomain.Food, error) {
	saved, err := s.api.UpdateFood(ctx, food)
	if err != nil {
		return catalogdomain.Food{}, err
	}
	s.projectFoods(ctx, []catalogdomain.Food{saved})
	return saved, nil
}

func (s *ContentService) DeleteFood(ctx context.Context, foodID int64) error {
	return s.api.DeleteFood(ctx, foodID)
}

func (s *ContentService) BulkCreateFoods(ctx context.Context, foods []catalogdomain.Food) (admindto.BulkFoodsResult, error) {
	result, err := s.api.BulkCreateFoods(ctx, foods)
	if err != nil {
		return admindto.BulkFoodsResult{}, err
	}
	s.projectFoods(ctx, result.Foods)
	return result, nil
}

func (s *ContentService) projectExercises(ctx context.Context, exercises []catalogdomain.Exercise) {
	if s.sink == nil || len(exercises) == 0 {
		return
	}
	if err := s.sink.UpsertExercises(ctx, exercises); err != nil {
		s.log.Warn("project exercises", zap.Int("count", len(exercises)), zap.Error(err))
	}
}

func (s *ContentService) projectFoods(ctx context.Context, foods []catalogdomain.Food) {
	if s.sink == nil || len(foods) == 0 {
		return
	}
	if err := s.sink.UpsertFoods(ctx, foods); err != nil {
		s.log.Warn("project foods", zap.Int("count", len(foods)), zap.Error(err))
	}
}

package service_test

import (
	"context"
	"errors"
	"testing"

	admindto "fitfusion/internal/modules/admin/dto"
	"fitfusion/internal/modules/admin/service"
	catalogdomain "fitfusion/internal/modules/catalog/domain"
)

type stubContentAPI struct {
	exercises []catalogdomain.Exercise
	foods     []catalogdomain.Food
}

func (s *stubContentAPI) ListExercises(context.Context) ([]catalogdomain.Exercise, error) {
	return s.exercises, nil
}

func (s *stubContentAPI) CreateExercise(_ context.Context, e catalogdomain.Exercise) (catalogdomain.Exercise, error) {
	e.ID = int64(len(s.exercises) + 1)
	s.exercises = append(s.exercises, e)
	return e, nil
}

func (s *stubContentAPI) UpdateExercise(_ context.Context, e catalogdomain.Exercise) (catalogdomain.Exercise, error) {
	return e, nil
}

func (s *stubContentAPI) DeleteExercise(context.Context, int64) error { return nil }

func (s *stubContentAPI) BulkCreateExercises(_ context.Context, exercises []catalogdomain.Exercise) (admindto.BulkExercisesResult, error) {
	return admindto.BulkExercisesResult{
		BulkResult: admindto.BulkResult{Count: len(exercises)},
		Exercises:  exercises,
	}, nil
}

func (s *stubContentAPI) ListFoods(context.Context) ([]catalogdomain.Food, error) {
	return s.foods, nil
}

func (s *stubContentAPI) CreateFood(_ context.Context, food catalogdomain.Food) (catalogdomain.Food, error) {
	return food, nil
}

func (s *stubContentAPI) UpdateFood(_ context.Context, food catalogdomain.Food) (catalogdomain.Food, error) {
	return food, nil
}

func (s *stubContentAPI) DeleteFood(context.Context, int64) error { return nil }

func (s *stubContentAPI) BulkCreateFoods(_ context.Context, foods []catalogdomain.Food) (admindto.BulkFoodsResult, error) {
	return admindto.BulkFoodsResult{
		BulkResult: admindto.BulkResult{Count: len(foods)},
		Foods:      foods,
	}, nil
}

type recordingSink struct {
	exercises []catalogdomain.Exercise
	foods     []catalogdomain.Food
	err       error
}

func (r *recordingSink) UpsertExercises(_ context.Context, exercises []catalogdomain.Exercise) error {
	if r.err != nil {
		return r.err
	}
	r.exercises = append(r.exercises, exercises...)
	return nil
}

func (r *recordingSink) UpsertFoods(_ context.Context, foods []catalogdomain.Food) error {
	if r.err != nil {
		return r.err
	}
	r.foods = append(r.foods, foods...)
	return nil
}

func TestMutationsFeedTheCatalogProjection(t *testing.T) {
	t.Parallel()
	sink := &recordingSink{}
	svc := service.NewContentService(&stubContentAPI{}, sink, nil)

	if _, err := svc.CreateExercise(context.Background(), catalogdomain.Exercise{Name: "Row"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.BulkCreateFoods(context.Background(), []catalogdomain.Food{{ID: 1, Name: "Oats"}, {ID: 2, Name: "Tofu"}}); err != nil {
		t.Fatalf("bulk foods: %v", err)
	}

	if len(sink.exercises) != 1 || sink.exercises[0].Name != "Row" {
		t.Fatalf("exercise not projected: %+v", sink.exercises)
	}
	if len(sink.foods) != 2 {
		t.Fatalf("foods not projected: %+v", sink.foods)
	}
}

func TestProjectionFailureDoesNotFailTheOperation(t *testing.T) {
	t.Parallel()
	sink := &recordingSink{err: errors.New("disk full")}
	svc := service.NewContentService(&stubContentAPI{exercises: []catalogdomain.Exercise{{ID: 1, Name: "Squat"}}}, sink, nil)

	exercises, err := svc.ListExercises(context.Background())
	if err != nil {
		t.Fatalf("list must survive a projection failure: %v", err)
	}
	if len(exercises) != 1 {
		t.Fatalf("unexpected exercises: %+v", exercises)
	}
}

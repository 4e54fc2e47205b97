package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"fitfusion/internal/modules/catalog/domain"
	"fitfusion/internal/modules/catalog/service"
	apperrors "fitfusion/internal/platform/errors"
	"fitfusion/internal/platform/slug"
)

type fakeExerciseAPI struct {
	exercises []domain.Exercise
	err       error
}

func (f *fakeExerciseAPI) List(context.Context) ([]domain.Exercise, error) {
	return f.exercises, f.err
}

func (f *fakeExerciseAPI) Get(_ context.Context, exerciseID int64) (domain.Exercise, error) {
	if f.err != nil {
		return domain.Exercise{}, f.err
	}
	for _, e := range f.exercises {
		if e.ID == exerciseID {
			return e, nil
		}
	}
	return domain.Exercise{}, fmt.Errorf("%w: exercise %d", apperrors.ErrNotFound, exerciseID)
}

func (f *fakeExerciseAPI) ByName(_ context.Context, name string) (domain.Exercise, error) {
	if f.err != nil {
		return domain.Exercise{}, f.err
	}
	key := slug.Make(name)
	for _, e := range f.exercises {
		if slug.Make(e.Name) == key {
			return e, nil
		}
	}
	return domain.Exercise{}, fmt.Errorf("%w: exercise %q", apperrors.ErrNotFound, name)
}

type memCatalog struct {
	exercises map[string]domain.Exercise
	foods     []domain.Food
}

func newMemCatalog() *memCatalog {
	return &memCatalog{exercises: map[string]domain.Exercise{}}
}

func (m *memCatalog) UpsertExercises(_ context.Context, exercises []domain.Exercise) error {
	for _, e := range exercises {
		m.exercises[slug.Make(e.Name)] = e
	}
	return nil
}

func (m *memCatalog) ListExercises(context.Context) ([]domain.Exercise, error) {
	out := []domain.Exercise{}
	for _, e := range m.exercises {
		out = append(out, e)
	}
	return out, nil
}

func (m *memCatalog) ExerciseBySlug(_ context.Context, key string) (domain.Exercise, error) {
	e, ok := m.exercises[key]
	if !ok {
		return domain.Exercise{}, fmt.Errorf("%w: exercise %q", apperrors.ErrNotFound, key)
	}
	return e, nil
}

func (m *memCatalog) UpsertFoods(_ context.Context, foods []domain.Food) error {
	m.foods = foods
	return nil
}

func (m *memCatalog) ListFoods(context.Context) ([]domain.Food, error) {
	return m.foods, nil
}

func TestExerciseByNameFallsBackToProjectionOnTransportFailure(t *testing.T) {
	t.Parallel()
	projection := newMemCatalog()
	bench := domain.Exercise{ID: 1, Name: "Bench Press", MuscleGroup: "chest"}

	online := service.NewCatalogService(&fakeExerciseAPI{exercises: []domain.Exercise{bench}}, projection, nil)
	if _, err := online.ExerciseByName(context.Background(), "bench PRESS"); err != nil {
		t.Fatalf("online lookup: %v", err)
	}

	offline := service.NewCatalogService(&fakeExerciseAPI{err: errors.New("dial tcp: connection refused")}, projection, nil)
	got, err := offline.ExerciseByName(context.Background(), "Bench Press!")
	if err != nil {
		t.Fatalf("offline lookup: %v", err)
	}
	if got.ID != bench.ID {
		t.Fatalf("got %+v, want cached bench press", got)
	}
}

func TestExerciseByNameNotFoundIsNotMaskedByTheCache(t *testing.T) {
	t.Parallel()
	projection := newMemCatalog()
	_ = projection.UpsertExercises(context.Background(), []domain.Exercise{{ID: 1, Name: "Deadlift"}})

	// The live backend no longer carries the entry; the stale cached copy
	// must not resurrect it.
	svc := service.NewCatalogService(&fakeExerciseAPI{exercises: nil}, projection, nil)
	if _, err := svc.ExerciseByName(context.Background(), "Deadlift"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestExercisesServeCacheWhenBackendIsDown(t *testing.T) {
	t.Parallel()
	projection := newMemCatalog()
	seed := []domain.Exercise{{ID: 1, Name: "Squat"}, {ID: 2, Name: "Lunge"}}

	online := service.NewCatalogService(&fakeExerciseAPI{exercises: seed}, projection, nil)
	if _, err := online.Exercises(context.Background()); err != nil {
		t.Fatalf("online list: %v", err)
	}

	offline := service.NewCatalogService(&fakeExerciseAPI{err: errors.New("unreachable")}, projection, nil)
	got, err := offline.Exercises(context.Background())
	if err != nil {
		t.Fatalf("offline list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("cached list has %d entries, want 2", len(got))
	}
}

func TestFoodsReadTheProjection(t *testing.T) {
	t.Parallel()
	projection := newMemCatalog()
	_ = projection.UpsertFoods(context.Background(), []domain.Food{{ID: 4, Name: "Paneer", IsVeg: true}})

	svc := service.NewCatalogService(&fakeExerciseAPI{}, projection, nil)
	foods, err := svc.Foods(context.Background())
	if err != nil {
		t.Fatalf("foods: %v", err)
	}
	if len(foods) != 1 || foods[0].Name != "Paneer" {
		t.Fatalf("unexpected foods: %+v", foods)
	}
}

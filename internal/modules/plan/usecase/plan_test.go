package usecase_test

import (
	"context"
	"testing"

	"fitfusion/internal/modules/plan/domain"
	plandto "fitfusion/internal/modules/plan/dto"
	"fitfusion/internal/modules/plan/service"
	"fitfusion/internal/modules/plan/usecase"
)

type fakePlanAPI struct {
	bundles []domain.Bundle
	stats   domain.Stats
	period  string
}

func (f *fakePlanAPI) List(context.Context, int64) ([]domain.Bundle, error) {
	return f.bundles, nil
}

func (f *fakePlanAPI) Get(_ context.Context, bundleID int64) (domain.Bundle, error) {
	for _, b := range f.bundles {
		if b.ID == bundleID {
			return b, nil
		}
	}
	return domain.Bundle{}, nil
}

func (f *fakePlanAPI) Stats(_ context.Context, _ int64, period string) (domain.Stats, error) {
	f.period = period
	return f.stats, nil
}

type memProjector struct {
	byID map[int64]domain.Bundle
}

func newMemProjector() *memProjector {
	return &memProjector{byID: map[int64]domain.Bundle{}}
}

func (m *memProjector) Upsert(_ context.Context, bundle domain.Bundle) error {
	m.byID[bundle.ID] = bundle
	return nil
}

func (m *memProjector) ListByUser(_ context.Context, userID int64) ([]domain.Bundle, error) {
	out := []domain.Bundle{}
	for _, b := range m.byID {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeCompletionAPI struct {
	completions []domain.Completion
}

func (f *fakeCompletionAPI) List(_ context.Context, _, bundleID int64) ([]domain.Completion, error) {
	out := []domain.Completion{}
	for _, c := range f.completions {
		if c.PlanBundleID == bundleID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCompletionAPI) Create(_ context.Context, _ int64, completion domain.Completion) error {
	f.completions = append(f.completions, completion)
	return nil
}

func (f *fakeCompletionAPI) Delete(_ context.Context, _ int64, key domain.CompletionKey) error {
	kept := f.completions[:0]
	for _, c := range f.completions {
		if c.Key() != key {
			kept = append(kept, c)
		}
	}
	f.completions = kept
	return nil
}

func TestListRefreshesTheLocalReadModel(t *testing.T) {
	t.Parallel()
	api := &fakePlanAPI{bundles: []domain.Bundle{
		{ID: 1, UserID: 7, Status: domain.StatusActive},
		{ID: 2, UserID: 7, Status: domain.StatusCompleted},
	}}
	projector := newMemProjector()
	uc := usecase.NewInteractor(service.NewPlanService(api, projector, nil), &fakeCompletionAPI{})

	out, err := uc.List(context.Background(), 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out.Bundles) != 2 || out.Cached {
		t.Fatalf("unexpected list output: %+v", out)
	}

	cached, err := uc.ListCached(context.Background(), 7)
	if err != nil {
		t.Fatalf("list cached: %v", err)
	}
	if len(cached.Bundles) != 2 || !cached.Cached {
		t.Fatalf("read model not refreshed: %+v", cached)
	}
}

func TestToggleCompletionCreatesThenDeletes(t *testing.T) {
	t.Parallel()
	completions := &fakeCompletionAPI{}
	uc := usecase.NewInteractor(service.NewPlanService(&fakePlanAPI{}, nil, nil), completions)

	input := plandto.ToggleCompletionInput{
		UserID: 7,
		Completion: domain.Completion{
			PlanBundleID:  3,
			WeekNumber:    1,
			DayNumber:     2,
			ExerciseName:  "Bench Press",
			SetsCompleted: 3,
			RepsCompleted: 10,
		},
	}

	out, err := uc.ToggleCompletion(context.Background(), input)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !out.Completed || len(completions.completions) != 1 {
		t.Fatalf("first toggle must create: %+v n=%d", out, len(completions.completions))
	}

	out, err = uc.ToggleCompletion(context.Background(), input)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if out.Completed || len(completions.completions) != 0 {
		t.Fatalf("second toggle must delete: %+v n=%d", out, len(completions.completions))
	}
}

func TestStatsDefaultsToWeekPeriod(t *testing.T) {
	t.Parallel()
	api := &fakePlanAPI{stats: domain.Stats{WorkoutsCompleted: 4}}
	uc := usecase.NewInteractor(service.NewPlanService(api, nil, nil), &fakeCompletionAPI{})

	stats, err := uc.Stats(context.Background(), plandto.StatsInput{UserID: 7})
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.WorkoutsCompleted != 4 {
		t.Fatalf("stats lost: %+v", stats)
	}
	if api.period != "week" {
		t.Fatalf("default period = %q", api.period)
	}
}

package out_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	out "fitfusion/internal/modules/plan/adapter/out"
	"fitfusion/internal/modules/plan/domain"
	"fitfusion/internal/platform/clock"
)

// tickingClock hands out strictly increasing timestamps so ordering by
// fetch time is observable in tests.
type tickingClock struct {
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.now = c.now.Add(time.Minute)
	return c.now
}

func newProjector(t *testing.T) *out.SQLiteBundleProjector {
	t.Helper()
	return newProjectorWithClock(t, clock.SystemClock{})
}

func newProjectorWithClock(t *testing.T, clk clock.Clock) *out.SQLiteBundleProjector {
	t.Helper()
	projector, err := out.NewSQLiteBundleProjector(filepath.Join(t.TempDir(), "fitfusion.db"), clk)
	if err != nil {
		t.Fatalf("open projector: %v", err)
	}
	t.Cleanup(func() { _ = projector.Close() })
	return projector
}

func TestUpsertAndListRoundTrip(t *testing.T) {
	projector := newProjector(t)
	ctx := context.Background()

	bundle := domain.Bundle{
		ID:        11,
		UserID:    7,
		Status:    domain.StatusActive,
		StartDate: "2026-08-01",
		CreatedAt: domain.LocalTime{Time: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
		WorkoutPlan: &domain.WorkoutPlan{
			ID:         3,
			TotalWeeks: 4,
			Summary:    "upper/lower split",
		},
	}
	if err := projector.Upsert(ctx, bundle); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	bundles, err := projector.ListByUser(ctx, 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bundles) != 1 {
		t.Fatalf("got %d bundles, want 1", len(bundles))
	}
	got := bundles[0]
	if got.ID != 11 || got.Status != domain.StatusActive || got.WorkoutPlan == nil || got.WorkoutPlan.Summary != "upper/lower split" {
		t.Fatalf("round trip lost data: %+v", got)
	}
}

func TestUpsertReplacesExistingBundle(t *testing.T) {
	projector := newProjector(t)
	ctx := context.Background()

	bundle := domain.Bundle{ID: 11, UserID: 7, Status: domain.StatusActive}
	if err := projector.Upsert(ctx, bundle); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	bundle.Status = domain.StatusCompleted
	if err := projector.Upsert(ctx, bundle); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	bundles, err := projector.ListByUser(ctx, 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bundles) != 1 || bundles[0].Status != domain.StatusCompleted {
		t.Fatalf("upsert did not replace: %+v", bundles)
	}
}

func TestListByUserIsScopedToTheUser(t *testing.T) {
	projector := newProjector(t)
	ctx := context.Background()

	for _, b := range []domain.Bundle{
		{ID: 1, UserID: 7, Status: domain.StatusActive},
		{ID: 2, UserID: 8, Status: domain.StatusActive},
	} {
		if err := projector.Upsert(ctx, b); err != nil {
			t.Fatalf("upsert %d: %v", b.ID, err)
		}
	}

	bundles, err := projector.ListByUser(ctx, 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bundles) != 1 || bundles[0].ID != 1 {
		t.Fatalf("listing leaked another user's bundles: %+v", bundles)
	}
}

func TestListOrdersByMostRecentFetch(t *testing.T) {
	projector := newProjectorWithClock(t, &tickingClock{now: time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)})
	ctx := context.Background()

	for _, id := range []int64{3, 1, 2} {
		if err := projector.Upsert(ctx, domain.Bundle{ID: id, UserID: 7, Status: domain.StatusActive}); err != nil {
			t.Fatalf("upsert %d: %v", id, err)
		}
	}

	bundles, err := projector.ListByUser(ctx, 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bundles) != 3 || bundles[0].ID != 2 || bundles[1].ID != 1 || bundles[2].ID != 3 {
		t.Fatalf("unexpected order: %+v", bundles)
	}
}

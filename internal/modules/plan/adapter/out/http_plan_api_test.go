package out_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	out "fitfusion/internal/modules/plan/adapter/out"
	"fitfusion/internal/modules/plan/domain"
	"fitfusion/internal/platform/httpx"
	"fitfusion/internal/platform/id"
)

func newPlanAPI(t *testing.T, handler http.HandlerFunc) *out.HTTPPlanAPI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := httpx.New(srv.URL, 5*time.Second, nil, httpx.AuthErrorPolicy{}, id.UUID{}, nil)
	return out.NewHTTPPlanAPI(client)
}

func TestListDecodesZonelessServerTimestamps(t *testing.T) {
	api := newPlanAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/7/plans" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{
			"id": 1,
			"userId": 7,
			"status": "active",
			"startDate": "2024-01-15",
			"createdAt": "2024-01-15T10:30:00",
			"workoutPlan": {"id": 2, "totalWeeks": 4, "frequencyPerWeek": 5, "summary": "push/pull/legs"}
		}]`))
	})

	bundles, err := api.List(context.Background(), 7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(bundles) != 1 {
		t.Fatalf("got %d bundles, want 1", len(bundles))
	}
	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	if !bundles[0].CreatedAt.Equal(want) {
		t.Fatalf("createdAt = %v, want %v", bundles[0].CreatedAt, want)
	}
}

func TestStatsSendsThePeriodQuery(t *testing.T) {
	api := newPlanAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/7/stats" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("period"); got != "month" {
			t.Errorf("period = %q", got)
		}
		_, _ = w.Write([]byte(`{"workoutsCompleted":12,"caloriesBurned":3400,"minutesExercised":280,"period":"month"}`))
	})

	stats, err := api.Stats(context.Background(), 7, "month")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.WorkoutsCompleted != 12 || stats.Period != "month" {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestDeleteCompletionIdentifiesTheSlotByQuery(t *testing.T) {
	api := newPlanAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/users/7/workout-completions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("planBundleId") != "3" || q.Get("weekNumber") != "1" || q.Get("dayNumber") != "2" || q.Get("exerciseName") != "Incline Bench Press" {
			t.Errorf("unexpected query: %v", q)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	err := api.DeleteCompletion(context.Background(), 7, domain.CompletionKey{
		PlanBundleID: 3,
		WeekNumber:   1,
		DayNumber:    2,
		ExerciseName: "Incline Bench Press",
	})
	if err != nil {
		t.Fatalf("delete completion: %v", err)
	}
}

func TestListCompletionsFiltersByBundle(t *testing.T) {
	api := newPlanAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("planBundleId"); got != "3" {
			t.Errorf("planBundleId = %q", got)
		}
		_, _ = w.Write([]byte(`[{"id":9,"planBundleId":3,"weekNumber":1,"dayNumber":2,"exerciseName":"Squat"}]`))
	})

	completions, err := api.ListCompletions(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("list completions: %v", err)
	}
	if len(completions) != 1 || completions[0].ExerciseName != "Squat" {
		t.Fatalf("unexpected completions: %+v", completions)
	}
}

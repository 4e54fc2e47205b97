package out_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	out "fitfusion/internal/modules/catalog/adapter/out"
	"fitfusion/internal/platform/httpx"
	"fitfusion/internal/platform/id"
)

func newExerciseAPI(t *testing.T, handler http.HandlerFunc) *out.HTTPExerciseAPI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := httpx.New(srv.URL, 5*time.Second, nil, httpx.AuthErrorPolicy{}, id.UUID{}, nil)
	return out.NewHTTPExerciseAPI(client)
}

func TestByNameEscapesTheName(t *testing.T) {
	api := newExerciseAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/exercises/by-name/Farmer%27s%20Walk" {
			t.Errorf("path = %s", r.URL.EscapedPath())
		}
		_, _ = w.Write([]byte(`{"id":2,"name":"Farmer's Walk","muscleGroup":"full_body","difficulty":"INTERMEDIATE"}`))
	})

	exercise, err := api.ByName(context.Background(), "Farmer's Walk")
	if err != nil {
		t.Fatalf("by-name: %v", err)
	}
	if exercise.ID != 2 || exercise.MuscleGroup != "full_body" {
		t.Fatalf("unexpected exercise: %+v", exercise)
	}
}

func TestListDecodesTheCatalog(t *testing.T) {
	api := newExerciseAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/exercises" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":1,"name":"Squat","videoUrl":"https://example.com/squat"}]`))
	})

	exercises, err := api.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(exercises) != 1 || exercises[0].VideoURL != "https://example.com/squat" {
		t.Fatalf("unexpected exercises: %+v", exercises)
	}
}

package out

import (
	"context"
	"fmt"
	"net/url"

	"fitfusion/internal/modules/catalog/domain"
	catalogout "fitfusion/internal/modules/catalog/port/out"
	"fitfusion/internal/platform/httpx"
)

type HTTPExerciseAPI struct {
	client *httpx.Client
}

func NewHTTPExerciseAPI(client *httpx.Client) *HTTPExerciseAPI {
	return &HTTPExerciseAPI{client: client}
}

func (a *HTTPExerciseAPI) List(ctx context.Context) ([]domain.Exercise, error) {
	exercises := []domain.Exercise{}
	if err := a.client.Get(ctx, "/exercises", nil, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (a *HTTPExerciseAPI) Get(ctx context.Context, exerciseID int64) (domain.Exercise, error) {
	exercise := domain.Exercise{}
	if err := a.client.Get(ctx, fmt.Sprintf("/exercises/%d", exerciseID), nil, &exercise); err != nil {
		return domain.Exercise{}, err
	}
	return exercise, nil
}

// ByName escapes the name so entries like "Farmer's Walk" resolve.
func (a *HTTPExerciseAPI) ByName(ctx context.Context, name string) (domain.Exercise, error) {
	exercise := domain.Exercise{}
	path := "/exercises/by-name/" + url.PathEscape(name)
	if err := a.client.Get(ctx, path, nil, &exercise); err != nil {
		return domain.Exercise{}, err
	}
	return exercise, nil
}

var _ catalogout.ExerciseAPI = (*HTTPExerciseAPI)(nil)

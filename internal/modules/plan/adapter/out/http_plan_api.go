package out

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"fitfusion/internal/modules/plan/domain"
	planout "fitfusion/internal/modules/plan/port/out"
	"fitfusion/internal/platform/httpx"
)

type HTTPPlanAPI struct {
	client *httpx.Client
}

func NewHTTPPlanAPI(client *httpx.Client) *HTTPPlanAPI {
	return &HTTPPlanAPI{client: client}
}

func (a *HTTPPlanAPI) List(ctx context.Context, userID int64) ([]domain.Bundle, error) {
	bundles := []domain.Bundle{}
	if err := a.client.Get(ctx, fmt.Sprintf("/users/%d/plans", userID), nil, &bundles); err != nil {
		return nil, err
	}
	return bundles, nil
}

func (a *HTTPPlanAPI) Get(ctx context.Context, bundleID int64) (domain.Bundle, error) {
	bundle := domain.Bundle{}
	if err := a.client.Get(ctx, fmt.Sprintf("/users/plans/%d", bundleID), nil, &bundle); err != nil {
		return domain.Bundle{}, err
	}
	return bundle, nil
}

func (a *HTTPPlanAPI) Stats(ctx context.Context, userID int64, period string) (domain.Stats, error) {
	stats := domain.Stats{}
	query := url.Values{"period": []string{period}}
	if err := a.client.Get(ctx, fmt.Sprintf("/users/%d/stats", userID), query, &stats); err != nil {
		return domain.Stats{}, err
	}
	return stats, nil
}

func (a *HTTPPlanAPI) ListCompletions(ctx context.Context, userID, bundleID int64) ([]domain.Completion, error) {
	completions := []domain.Completion{}
	query := url.Values{"planBundleId": []string{strconv.FormatInt(bundleID, 10)}}
	if err := a.client.Get(ctx, fmt.Sprintf("/users/%d/workout-completions", userID), query, &completions); err != nil {
		return nil, err
	}
	return completions, nil
}

func (a *HTTPPlanAPI) CreateCompletion(ctx context.Context, userID int64, completion domain.Completion) error {
	return a.client.Post(ctx, fmt.Sprintf("/users/%d/workout-completions", userID), completion, nil)
}

func (a *HTTPPlanAPI) DeleteCompletion(ctx context.Context, userID int64, key domain.CompletionKey) error {
	query := url.Values{
		"planBundleId": []string{strconv.FormatInt(key.PlanBundleID, 10)},
		"weekNumber":   []string{strconv.Itoa(key.WeekNumber)},
		"dayNumber":    []string{strconv.Itoa(key.DayNumber)},
		"exerciseName": []string{key.ExerciseName},
	}
	return a.client.Delete(ctx, fmt.Sprintf("/users/%d/workout-completions", userID), query)
}

var _ planout.PlanAPI = (*HTTPPlanAPI)(nil)

// completionAPI adapts the method names to the CompletionAPI port.
type completionAPI struct {
	api *HTTPPlanAPI
}

func NewHTTPCompletionAPI(api *HTTPPlanAPI) planout.CompletionAPI {
	return completionAPI{api: api}
}

func (c completionAPI) List(ctx context.Context, userID, bundleID int64) ([]domain.Completion, error) {
	return c.api.ListCompletions(ctx, userID, bundleID)
}

func (c completionAPI) Create(ctx context.Context, userID int64, completion domain.Completion) error {
	return c.api.CreateCompletion(ctx, userID, completion)
}

func (c completionAPI) Delete(ctx context.Context, userID int64, key domain.CompletionKey) error {
	return c.api.DeleteCompletion(ctx, userID, key)
}

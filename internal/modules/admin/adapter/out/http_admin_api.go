package out

import (
	"context"
	"fmt"

	"fitfusion/internal/modules/admin/domain"
	admindto "fitfusion/internal/modules/admin/dto"
	adminout "fitfusion/internal/modules/admin/port/out"
	catalogdomain "fitfusion/internal/modules/catalog/domain"
	"fitfusion/internal/platform/httpx"
)

// HTTPAdminAPI talks to the /admin surface. The server enforces the admin
// role on every route; the client guard only spares users the round trip.
type HTTPAdminAPI struct {
	client *httpx.Client
}

func NewHTTPAdminAPI(client *httpx.Client) *HTTPAdminAPI {
	return &HTTPAdminAPI{client: client}
}

func (a *HTTPAdminAPI) Stats(ctx context.Context) (domain.DashboardStats, error) {
	stats := domain.DashboardStats{}
	if err := a.client.Get(ctx, "/admin/stats", nil, &stats); err != nil {
		return domain.DashboardStats{}, err
	}
	return stats, nil
}

func (a *HTTPAdminAPI) Engagement(ctx context.Context) (domain.Engagement, error) {
	engagement := domain.Engagement{}
	if err := a.client.Get(ctx, "/admin/analytics/user-engagement", nil, &engagement); err != nil {
		return domain.Engagement{}, err
	}
	return engagement, nil
}

func (a *HTTPAdminAPI) PopularExercises(ctx context.Context) ([]domain.PopularExercise, error) {
	popular := []domain.PopularExercise{}
	if err := a.client.Get(ctx, "/admin/analytics/popular-exercises", nil, &popular); err != nil {
		return nil, err
	}
	return popular, nil
}

func (a *HTTPAdminAPI) ListUsers(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if err := a.client.Get(ctx, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (a *HTTPAdminAPI) GetUser(ctx context.Context, userID int64) (domain.User, error) {
	user := domain.User{}
	if err := a.client.Get(ctx, fmt.Sprintf("/admin/users/%d", userID), nil, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (a *HTTPAdminAPI) SetRole(ctx context.Context, userID int64, role string) (domain.User, error) {
	body := map[string]string{"role": role}
	user := domain.User{}
	if err := a.client.Put(ctx, fmt.Sprintf("/admin/users/%d/role", userID), body, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (a *HTTPAdminAPI) DeleteUser(ctx context.Context, userID int64) error {
	return a.client.Delete(ctx, fmt.Sprintf("/admin/users/%d", userID), nil)
}

func (a *HTTPAdminAPI) ListExercises(ctx context.Context) ([]catalogdomain.Exercise, error) {
	exercises := []catalogdomain.Exercise{}
	if err := a.client.Get(ctx, "/admin/exercises", nil, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (a *HTTPAdminAPI) CreateExercise(ctx context.Context, exercise catalogdomain.Exercise) (catalogdomain.Exercise, error) {
	saved := catalogdomain.Exercise{}
	if err := a.client.Post(ctx, "/admin/exercises", exercise, &saved); err != nil {
		return catalogdomain.Exercise{}, err
	}
	return saved, nil
}

func (a *HTTPAdminAPI) UpdateExercise(ctx context.Context, exercise catalogdomain.Exercise) (catalogdomain.Exercise, error) {
	saved := catalogdomain.Exercise{}
	if err := a.client.Put(ctx, fmt.Sprintf("/admin/exercises/%d", exercise.ID), exercise, &saved); err != nil {
		return catalogdomain.Exercise{}, err
	}
	return saved, nil
}

func (a *HTTPAdminAPI) DeleteExercise(ctx context.Context, exerciseID int64) error {
	return a.client.Delete(ctx, fmt.Sprintf("/admin/exercises/%d", exerciseID), nil)
}

func (a *HTTPAdminAPI) BulkCreateExercises(ctx context.Context, exercises []catalogdomain.Exercise) (admindto.BulkExercisesResult, error) {
	result := admindto.BulkExercisesResult{}
	if err := a.client.Post(ctx, "/admin/exercises/bulk", exercises, &result); err != nil {
		return admindto.BulkExercisesResult{}, err
	}
	return result, nil
}

func (a *HTTPAdminAPI) ListFoods(ctx context.Context) ([]catalogdomain.Food, error) {
	foods := []catalogdomain.Food{}
	if err := a.client.Get(ctx, "/admin/food-items", nil, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (a *HTTPAdminAPI) CreateFood(ctx context.Context, food catalogdomain.Food) (catalogdomain.Food, error) {
	saved := catalogdomain.Food{}
	if err := a.client.Post(ctx, "/admin/food-items", food, &saved); err != nil {
		return catalogdomain.Food{}, err
	}
	return saved, nil
}

func (a *HTTPAdminAPI) UpdateFood(ctx context.Context, food catalogdomain.Food) (catalogdomain.Food, error) {
	saved := catalogdomain.Food{}
	if err := a.client.Put(ctx, fmt.Sprintf("/admin/food-items/%d", food.ID), food, &saved); err != nil {
		return catalogdomain.Food{}, err
	}
	return saved, nil
}

func (a *HTTPAdminAPI) DeleteFood(ctx context.Context, foodID int64) error {
	return a.client.Delete(ctx, fmt.Sprintf("/admin/food-items/%d", foodID), nil)
}

func (a *HTTPAdminAPI) BulkCreateFoods(ctx context.Context, foods []catalogdomain.Food) (admindto.BulkFoodsResult, error) {
	result := admindto.BulkFoodsResult{}
	if err := a.client.Post(ctx, "/admin/food-items/bulk", foods, &result); err != nil {
		return admindto.BulkFoodsResult{}, err
	}
	return result, nil
}

func (a *HTTPAdminAPI) Status(ctx context.Context) (domain.RAGStatus, error) {
	status := domain.RAGStatus{}
	if err := a.client.Get(ctx, "/admin/rag/status", nil, &status); err != nil {
		return domain.RAGStatus{}, err
	}
	return status, nil
}

func (a *HTTPAdminAPI) Reindex(ctx context.Context, mode string) (domain.ReindexResult, error) {
	body := map[string]string{"mode": mode}
	result := domain.ReindexResult{}
	if err := a.client.Post(ctx, "/admin/rag/reindex", body, &result); err != nil {
		return domain.ReindexResult{}, err
	}
	return result, nil
}

var (
	_ adminout.DashboardAPI = (*HTTPAdminAPI)(nil)
	_ adminout.UserAdminAPI = (*HTTPAdminAPI)(nil)
	_ adminout.ContentAPI   = (*HTTPAdminAPI)(nil)
	_ adminout.RAGAPI       = (*HTTPAdminAPI)(nil)
)

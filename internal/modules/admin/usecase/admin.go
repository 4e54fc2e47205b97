package usecase

import (
	"context"
	"fmt"
	"strings"

	"fitfusion/internal/modules/admin/domain"
	admindto "fitfusion/internal/modules/admin/dto"
	adminin "fitfusion/internal/modules/admin/port/in"
	adminout "fitfusion/internal/modules/admin/port/out"
	"fitfusion/internal/modules/admin/service"
	catalogdomain "fitfusion/internal/modules/catalog/domain"
	apperrors "fitfusion/internal/platform/errors"
)

type Interactor struct {
	dashboard adminout.DashboardAPI
	users     adminout.UserAdminAPI
	content   *service.ContentService
	rag       adminout.RAGAPI
}

func NewInteractor(dashboard adminout.DashboardAPI, users adminout.UserAdminAPI, content *service.ContentService, rag adminout.RAGAPI) adminin.Usecase {
	return &Interactor{dashboard: dashboard, users: users, content: content, rag: rag}
}

func (i *Interactor) Stats(ctx context.Context) (domain.DashboardStats, error) {
	return i.dashboard.Stats(ctx)
}

func (i *Interactor) Engagement(ctx context.Context) (domain.Engagement, error) {
	return i.dashboard.Engagement(ctx)
}

func (i *Interactor) PopularExercises(ctx context.Context) ([]domain.PopularExercise, error) {
	return i.dashboard.PopularExercises(ctx)
}

func (i *Interactor) ListUsers(ctx context.Context) ([]domain.User, error) {
	return i.users.ListUsers(ctx)
}

func (i *Interactor) GetUser(ctx context.Context, userID int64) (domain.User, error) {
	if userID == 0 {
		return domain.User{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	return i.users.GetUser(ctx, userID)
}

// SetRole accepts the server's bare role spellings. Anything else is
// rejected locally rather than bounced off the backend.
func (i *Interactor) SetRole(ctx context.Context, input admindto.SetRoleInput) (domain.User, error) {
	if input.UserID == 0 {
		return domain.User{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	role := strings.ToUpper(strings.TrimSpace(input.Role))
	if role != "USER" && role != "ADMIN" {
		return domain.User{}, fmt.Errorf("%w: role must be USER or ADMIN", apperrors.ErrInvalidInput)
	}
	return i.users.SetRole(ctx, input.UserID, role)
}

func (i *Interactor) DeleteUser(ctx context.Context, userID int64) error {
	if userID == 0 {
		return fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	return i.users.DeleteUser(ctx, userID)
}

func (i *Interactor) ListExercises(ctx context.Context) ([]catalogdomain.Exercise, error) {
	return i.content.ListExercises(ctx)
}

func (i *Interactor) CreateExercise(ctx context.Context, exercise catalogdomain.Exercise) (catalogdomain.Exercise, error) {
	if strings.TrimSpace(exercise.Name) == "" {
		return catalogdomain.Exercise{}, fmt.Errorf("%w: exercise name is required", apperrors.ErrInvalidInput)
	}
	return i.content.CreateExercise(ctx, exercise)
}

func (i *Interactor) UpdateExercise(ctx context.Context, exercise catalogdomain.Exercise) (catalogdomain.Exercise, error) {
	if exercise.ID == 0 {
		return catalogdomain.Exercise{}, fmt.Errorf("%w: exercise id is required", apperrors.ErrInvalidInput)
	}
	return i.content.UpdateExercise(ctx, exercise)
}

func (i *Interactor) DeleteExercise(ctx context.Context, exerciseID int64) error {
	if exerciseID == 0 {
		return fmt.Errorf("%w: exercise id is required", apperrors.ErrInvalidInput)
	}
	return i.content.DeleteExercise(ctx, exerciseID)
}

func (i *Interactor) BulkCreateExercises(ctx context.Context, exercises []catalogdomain.Exercise) (admindto.BulkExercisesResult, error) {
	if len(exercises) == 0 {
		return admindto.BulkExercisesResult{}, fmt.Errorf("%w: nothing to import", apperrors.ErrInvalidInput)
	}
	return i.content.BulkCreateExercises(ctx, exercises)
}

func (i *Interactor) ListFoods(ctx context.Context) ([]catalogdomain.Food, error) {
	return i.content.ListFoods(ctx)
}

func (i *Interactor) CreateFood(ctx context.Context, food catalogdomain.Food) (catalogdomain.Food, error) {
	if strings.TrimSpace(food.Name) == "" {
		return catalogdomain.Food{}, fmt.Errorf("%w: food name is required", apperrors.ErrInvalidInput)
	}
	return i.content.CreateFood(ctx, food)
}

func (i *Interactor) UpdateFood(ctx context.Context, food catalogdomain.Food) (catalogdomain.Food, error) {
	if food.ID == 0 {
		return catalogdomain.Food{}, fmt.Errorf("%w: food id is required", apperrors.ErrInvalidInput)
	}
	return i.content.UpdateFood(ctx, food)
}

func (i *Interactor) DeleteFood(ctx context.Context, foodID int64) error {
	if foodID == 0 {
		return fmt.Errorf("%w: food id is required", apperrors.ErrInvalidInput)
	}
	return i.content.DeleteFood(ctx, foodID)
}

func (i *Interactor) BulkCreateFoods(ctx context.Context, foods []catalogdomain.Food) (admindto.BulkFoodsResult, error) {
	if len(foods) == 0 {
		return admindto.BulkFoodsResult{}, fmt.Errorf("%w: nothing to import", apperrors.ErrInvalidInput)
	}
	return i.content.BulkCreateFoods(ctx, foods)
}

func (i *Interactor) RAGStatus(ctx context.Context) (domain.RAGStatus, error) {
	return i.rag.Status(ctx)
}

// Reindex defaults to a full rebuild when no mode is given.
func (i *Interactor) Reindex(ctx context.Context, mode string) (domain.ReindexResult, error) {
	if mode == "" {
		mode = domain.ReindexFull
	}
	if mode != domain.ReindexFull && mode != domain.ReindexIncremental {
		return domain.ReindexResult{}, fmt.Errorf("%w: reindex mode must be full or incremental", apperrors.ErrInvalidInput)
	}
	return i.rag.Reindex(ctx, mode)
}

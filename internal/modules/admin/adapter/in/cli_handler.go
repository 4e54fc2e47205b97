package in

import (
	"context"

	"fitfusion/internal/modules/admin/domain"
	admindto "fitfusion/internal/modules/admin/dto"
	adminin "fitfusion/internal/modules/admin/port/in"
	catalogdomain "fitfusion/internal/modules/catalog/domain"
)

type CLIHandler struct {
	usecase adminin.Usecase
}

func NewCLIHandler(usecase adminin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Stats(ctx context.Context) (domain.DashboardStats, error) {
	return h.usecase.Stats(ctx)
}

func (h CLIHandler) Engagement(ctx context.Context) (domain.Engagement, error) {
	return h.usecase.Engagement(ctx)
}

func (h CLIHandler) PopularExercises(ctx context.Context) ([]domain.PopularExercise, error) {
	return h.usecase.PopularExercises(ctx)
}

func (h CLIHandler) ListUsers(ctx context.Context) ([]domain.User, error) {
	return h.usecase.ListUsers(ctx)
}

func (h CLIHandler) GetUser(ctx context.Context, userID int64) (domain.User, error) {
	return h.usecase.GetUser(ctx, userID)
}

func (h CLIHandler) SetRole(ctx context.Context, userID int64, role string) (domain.User, error) {
	return h.usecase.SetRole(ctx, admindto.SetRoleInput{UserID: userID, Role: role})
}

func (h CLIHandler) DeleteUser(ctx context.Context, userID int64) error {
	return h.usecase.DeleteUser(ctx, userID)
}

func (h CLIHandler) ListExercises(ctx context.Context) ([]catalogdomain.Exercise, error) {
	return h.usecase.ListExercises(ctx)
}

func (h CLIHandler) CreateExercise(ctx context.Context, exercise catalogdomain.Exercise) (catalogdomain.Exercise, error) {
	return h.usecase.CreateExercise(ctx, exercise)
}

func (h CLIHandler) UpdateExercise(ctx context.Context, exercise catalogdomain.Exercise) (catalogdomain.Exercise, error) {
	return h.usecase.UpdateExercise(ctx, exercise)
}

func (h CLIHandler) DeleteExercise(ctx context.Context, exerciseID int64) error {
	return h.usecase.DeleteExercise(ctx, exerciseID)
}

func (h CLIHandler) BulkCreateExercises(ctx context.Context, exercises []catalogdomain.Exercise) (admindto.BulkExercisesResult, error) {
	return h.usecase.BulkCreateExercises(ctx, exercises)
}

func (h CLIHandler) ListFoods(ctx context.Context) ([]catalogdomain.Food, error) {
	return h.usecase.ListFoods(ctx)
}

func (h CLIHandler) CreateFood(ctx context.Context, food catalogdomain.Food) (catalogdomain.Food, error) {
	return h.usecase.CreateFood(ctx, food)
}

func (h CLIHandler) UpdateFood(ctx context.Context, food catalogdomain.Food) (catalogdomain.Food, error) {
	return h.usecase.UpdateFood(ctx, food)
}

func (h CLIHandler) DeleteFood(ctx context.Context, foodID int64) error {
	return h.usecase.DeleteFood(ctx, foodID)
}

func (h CLIHandler) BulkCreateFoods(ctx context.Context, foods []catalogdomain.Food) (admindto.BulkFoodsResult, error) {
	return h.usecase.BulkCreateFoods(ctx, foods)
}

func (h CLIHandler) RAGStatus(ctx context.Context) (domain.RAGStatus, error) {
	return h.usecase.RAGStatus(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context, mode string) (domain.ReindexResult, error) {
	return h.usecase.Reindex(ctx, mode)
}

package in

import (
	"context"

	"fitfusion/internal/modules/admin/domain"
	admindto "fitfusion/internal/modules/admin/dto"
	catalogdomain "fitfusion/internal/modules/catalog/domain"
)

type Usecase interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
	Engagement(ctx context.Context) (domain.Engagement, error)
	PopularExercises(ctx context.Context) ([]domain.PopularExercise, error)

	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, userID int64) (domain.User, error)
	SetRole(ctx context.Context, input admindto.SetRoleInput) (domain.User, error)
	DeleteUser(ctx context.Context, userID int64) error

	ListExercises(ctx context.Context) ([]catalogdomain.Exercise, error)
	CreateExercise(ctx context.Context, exercise catalogdomain.Exercise) (catalogdomain.Exercise, error)
	UpdateExercise(ctx context.Context, exercise catalogdomain.Exercise) (catalogdomain.Exercise, error)
	DeleteExercise(ctx context.Context, exerciseID int64) error
	BulkCreateExercises(ctx context.Context, exercises []catalogdomain.Exercise) (admindto.BulkExercisesResult, error)

	ListFoods(ctx context.Context) ([]catalogdomain.Food, error)
	CreateFood(ctx context.Context, food catalogdomain.Food) (catalogdomain.Food, error)
	UpdateFood(ctx context.Context, food catalogdomain.Food) (catalogdomain.Food, error)
	DeleteFood(ctx context.Context, foodID int64) error
	BulkCreateFoods(ctx context.Context, foods []catalogdomain.Food) (admindto.BulkFoodsResult, error)

	RAGStatus(ctx context.Context) (domain.RAGStatus, error)
	Reindex(ctx context.Context, mode string) (domain.ReindexResult, error)
}

package out

import (
	"context"

	"fitfusion/internal/modules/admin/domain"
	admindto "fitfusion/internal/modules/admin/dto"
	catalogdomain "fitfusion/internal/modules/catalog/domain"
)

type DashboardAPI interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
	Engagement(ctx context.Context) (domain.Engagement, error)
	PopularExercises(ctx context.Context) ([]domain.PopularExercise, error)
}

type UserAdminAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, userID int64) (domain.User, error)
	SetRole(ctx context.Context, userID int64, role string) (domain.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// ContentAPI manages the exercise and food catalogs. Every mutation also
// triggers a reindex on the server side.
type ContentAPI interface {
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
}

type RAGAPI interface {
	Status(ctx context.Context) (domain.RAGStatus, error)
	Reindex(ctx context.Context, mode string) (domain.ReindexResult, error)
}

// CatalogSink receives fetched catalog content so offline browsing stays
// fresh after an admin edits it.
type CatalogSink interface {
	UpsertExercises(ctx context.Context, exercises []catalogdomain.Exercise) error
	UpsertFoods(ctx context.Context, foods []catalogdomain.Food) error
}

package out

import (
	"context"

	"fitfusion/internal/modules/plan/domain"
)

type PlanAPI interface {
	List(ctx context.Context, userID int64) ([]domain.Bundle, error)
	Get(ctx context.Context, bundleID int64) (domain.Bundle, error)
	Stats(ctx context.Context, userID int64, period string) (domain.Stats, error)
}

type CompletionAPI interface {
	List(ctx context.Context, userID, bundleID int64) ([]domain.Completion, error)
	Create(ctx context.Context, userID int64, completion domain.Completion) error
	Delete(ctx context.Context, userID int64, key domain.CompletionKey) error
}

// BundleProjector is the local read-model: the last fetched bundles, kept so
// dashboards and the TUI can render without the backend. Advisory only; the
// server stays authoritative.
type BundleProjector interface {
	Upsert(ctx context.Context, bundle domain.Bundle) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Bundle, error)
}

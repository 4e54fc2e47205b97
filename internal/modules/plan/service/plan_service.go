package service

import (
	"context"

	"go.uber.org/zap"

	"fitfusion/internal/modules/plan/domain"
	planout "fitfusion/internal/modules/plan/port/out"
)

type PlanService struct {
	api       planout.PlanAPI
	projector planout.BundleProjector
	log       *zap.Logger
}

func NewPlanService(api planout.PlanAPI, projector planout.BundleProjector, log *zap.Logger) *PlanService {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlanService{api: api, projector: projector, log: log}
}

// List fetches the user's bundles and refreshes the local read-model. A
// failed projection never fails the fetch.
func (s *PlanService) List(ctx context.Context, userID int64) ([]domain.Bundle, error) {
	bundles, err := s.api.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.project(ctx, bundles...)
	return bundles, nil
}

func (s *PlanService) Get(ctx context.Context, bundleID int64) (domain.Bundle, error) {
	bundle, err := s.api.Get(ctx, bundleID)
	if err != nil {
		return domain.Bundle{}, err
	}
	s.project(ctx, bundle)
	return bundle, nil
}

func (s *PlanService) ListCached(ctx context.Context, userID int64) ([]domain.Bundle, error) {
	if s.projector == nil {
		return nil, nil
	}
	return s.projector.ListByUser(ctx, userID)
}

func (s *PlanService) Stats(ctx context.Context, userID int64, period string) (domain.Stats, error) {
	return s.api.Stats(ctx, userID, period)
}

func (s *PlanService) project(ctx context.Context, bundles ...domain.Bundle) {
	if s.projector == nil {
		return
	}
	for _, bundle := range bundles {
		if err := s.projector.Upsert(ctx, bundle); err != nil {
			s.log.Warn("project bundle", zap.Int64("bundle_id", bundle.ID), zap.Error(err))
		}
	}
}

package dto

import "fitfusion/internal/modules/plan/domain"

type BundleOutput struct {
	Bundle domain.Bundle
}

type ListOutput struct {
	Bundles []domain.Bundle
	Cached  bool
}

type ToggleCompletionInput struct {
	UserID     int64
	Completion domain.Completion
}

type ToggleCompletionOutput struct {
	// Completed reports the state after the toggle.
	Completed bool
}

type StatsInput struct {
	UserID int64
	Period string
}

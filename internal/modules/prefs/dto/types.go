package dto

import "fitfusion/internal/modules/prefs/domain"

type GetOutput struct {
	Found       bool
	Preferences domain.Preferences
}

type SubmitInput struct {
	UserID int64
	Draft  domain.Draft
}

type SubmitOutput struct {
	PlanRequested bool
}

type ProfileOutput struct {
	Profile domain.Profile
}

type UpdateProfileInput struct {
	UserID int64
	Update domain.ProfileUpdate
}

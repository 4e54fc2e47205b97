package service

import (
	"context"
	"fmt"

	"fitfusion/internal/modules/prefs/domain"
	prefsout "fitfusion/internal/modules/prefs/port/out"
)

type PrefsService struct {
	profiles prefsout.ProfileAPI
}

func NewPrefsService(profiles prefsout.ProfileAPI) *PrefsService {
	return &PrefsService{profiles: profiles}
}

// Payload merges the user's personal metrics into the wizard draft, producing
// the exact record the preference endpoint accepts.
func (s *PrefsService) Payload(ctx context.Context, userID int64, draft domain.Draft) (domain.Preferences, error) {
	profile, err := s.profiles.Profile(ctx, userID)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("fetch profile: %w", err)
	}
	prefs := draft.Preferences
	prefs.Age = profile.Age
	prefs.Weight = profile.Weight
	prefs.Height = profile.Height
	prefs.Gender = profile.Gender
	if prefs.Gender == "" {
		prefs.Gender = "male"
	}
	return prefs, nil
}

package out

import (
	"context"
	"errors"
	"fmt"

	"fitfusion/internal/modules/prefs/domain"
	prefsout "fitfusion/internal/modules/prefs/port/out"
	apperrors "fitfusion/internal/platform/errors"
	"fitfusion/internal/platform/httpx"
)

type HTTPPreferenceAPI struct {
	client *httpx.Client
}

func NewHTTPPreferenceAPI(client *httpx.Client) *HTTPPreferenceAPI {
	return &HTTPPreferenceAPI{client: client}
}

func (a *HTTPPreferenceAPI) Get(ctx context.Context, userID int64) (domain.Preferences, bool, error) {
	prefs := domain.Preferences{}
	err := a.client.Get(ctx, fmt.Sprintf("/users/%d/preferences", userID), nil, &prefs)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Preferences{}, false, nil
		}
		return domain.Preferences{}, false, err
	}
	// The endpoint answers an empty body before the first save.
	if prefs.Goal == "" && prefs.DietaryPreference == "" {
		return domain.Preferences{}, false, nil
	}
	return prefs, true, nil
}

func (a *HTTPPreferenceAPI) Save(ctx context.Context, userID int64, prefs domain.Preferences) error {
	return a.client.Post(ctx, fmt.Sprintf("/users/%d/preferences", userID), prefs, nil)
}

func (a *HTTPPreferenceAPI) GeneratePlan(ctx context.Context, userID int64) error {
	return a.client.Post(ctx, fmt.Sprintf("/users/%d/generate-plan", userID), nil, nil)
}

// Profile implements the ProfileAPI port against the user record endpoint.
func (a *HTTPPreferenceAPI) Profile(ctx context.Context, userID int64) (domain.Profile, error) {
	var profile domain.Profile
	if err := a.client.Get(ctx, fmt.Sprintf("/users/%d", userID), nil, &profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

// UpdateProfile sends the edit as the server expects it: metrics always,
// the password pair only when a change is requested.
func (a *HTTPPreferenceAPI) UpdateProfile(ctx context.Context, userID int64, update domain.ProfileUpdate) (domain.Profile, error) {
	payload := struct {
		Name            string  `json:"name"`
		Age             int     `json:"age,omitempty"`
		Weight          float64 `json:"weight,omitempty"`
		Height          float64 `json:"height,omitempty"`
		Gender          string  `json:"gender,omitempty"`
		CurrentPassword string  `json:"currentPassword,omitempty"`
		NewPassword     string  `json:"newPassword,omitempty"`
	}{
		Name:            update.Name,
		Age:             update.Age,
		Weight:          update.Weight,
		Height:          update.Height,
		Gender:          update.Gender,
		CurrentPassword: update.CurrentPassword,
		NewPassword:     update.NewPassword,
	}
	var updated domain.Profile
	if err := a.client.Put(ctx, fmt.Sprintf("/users/%d", userID), payload, &updated); err != nil {
		return domain.Profile{}, err
	}
	return updated, nil
}

var (
	_ prefsout.PreferenceAPI = (*HTTPPreferenceAPI)(nil)
	_ prefsout.ProfileAPI    = (*HTTPPreferenceAPI)(nil)
)

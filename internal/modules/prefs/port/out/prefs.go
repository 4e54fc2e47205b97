package out

import (
	"context"

	"fitfusion/internal/modules/prefs/domain"
)

type PreferenceAPI interface {
	// Get returns found=false when the user has never saved preferences.
	Get(ctx context.Context, userID int64) (domain.Preferences, bool, error)
	Save(ctx context.Context, userID int64, prefs domain.Preferences) error
	GeneratePlan(ctx context.Context, userID int64) error
}

// ProfileAPI is the user-record surface: read at submit time to merge the
// personal metrics, and writable from the profile screen.
type ProfileAPI interface {
	Profile(ctx context.Context, userID int64) (domain.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, update domain.ProfileUpdate) (domain.Profile, error)
}

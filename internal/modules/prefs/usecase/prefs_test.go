package usecase_test

import (
	"context"
	"errors"
	"testing"

	"fitfusion/internal/modules/prefs/domain"
	prefsdto "fitfusion/internal/modules/prefs/dto"
	"fitfusion/internal/modules/prefs/service"
	"fitfusion/internal/modules/prefs/usecase"
	apperrors "fitfusion/internal/platform/errors"
)

type fakeProfileAPI struct {
	profile    domain.Profile
	err        error
	lastUpdate *domain.ProfileUpdate
}

func (f *fakeProfileAPI) Profile(context.Context, int64) (domain.Profile, error) {
	return f.profile, f.err
}

func (f *fakeProfileAPI) UpdateProfile(_ context.Context, _ int64, update domain.ProfileUpdate) (domain.Profile, error) {
	if f.err != nil {
		return domain.Profile{}, f.err
	}
	f.lastUpdate = &update
	f.profile.Name = update.Name
	f.profile.Age = update.Age
	f.profile.Weight = update.Weight
	f.profile.Height = update.Height
	f.profile.Gender = update.Gender
	return f.profile, nil
}

type fakePreferenceAPI struct {
	stored      *domain.Preferences
	saveErr     error
	generateErr error
	generated   int
}

func (f *fakePreferenceAPI) Get(context.Context, int64) (domain.Preferences, bool, error) {
	if f.stored == nil {
		return domain.Preferences{}, false, nil
	}
	return *f.stored, true, nil
}

func (f *fakePreferenceAPI) Save(_ context.Context, _ int64, prefs domain.Preferences) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.stored = &prefs
	return nil
}

func (f *fakePreferenceAPI) GeneratePlan(context.Context, int64) error {
	if f.generateErr != nil {
		return f.generateErr
	}
	f.generated++
	return nil
}

func finalStepDraft() domain.Draft {
	draft := domain.NewDraft()
	draft.ToggleMuscle("Chest")
	for !draft.OnFinalStep() {
		if err := draft.Advance(); err != nil {
			panic(err)
		}
	}
	return draft
}

func TestSubmitSavesThenGeneratesInOrder(t *testing.T) {
	t.Parallel()
	api := &fakePreferenceAPI{}
	profiles := &fakeProfileAPI{profile: domain.Profile{Age: 30, Gender: "female"}}
	uc := usecase.NewInteractor(service.NewPrefsService(profiles), api, profiles)

	out, err := uc.Submit(context.Background(), prefsdto.SubmitInput{UserID: 7, Draft: finalStepDraft()})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !out.PlanRequested || api.generated != 1 {
		t.Fatalf("plan generation not requested: %+v generated=%d", out, api.generated)
	}
	if api.stored == nil || api.stored.Age != 30 || api.stored.Gender != "female" {
		t.Fatalf("profile metrics not merged into payload: %+v", api.stored)
	}
	if api.stored.Goal != "weight_loss" {
		t.Fatalf("draft fields lost: %+v", api.stored)
	}
}

func TestGenerationFailureLeavesSavedPreferencesInPlace(t *testing.T) {
	t.Parallel()
	backendErr := errors.New("update your preferences first")
	api := &fakePreferenceAPI{generateErr: backendErr}
	profiles := &fakeProfileAPI{}
	uc := usecase.NewInteractor(service.NewPrefsService(profiles), api, profiles)

	_, err := uc.Submit(context.Background(), prefsdto.SubmitInput{UserID: 7, Draft: finalStepDraft()})

	genErr := &domain.PlanGenerationError{}
	if !errors.As(err, &genErr) {
		t.Fatalf("expected PlanGenerationError, got %v", err)
	}
	if genErr.Error() != "update your preferences first" {
		t.Fatalf("backend message mangled: %q", genErr.Error())
	}
	// The preference draft stays retrievable server-side: no rollback.
	got, err := uc.Get(context.Background(), 7)
	if err != nil || !got.Found {
		t.Fatalf("saved preferences must remain retrievable: %+v %v", got, err)
	}
}

func TestSaveFailureIsNotAGenerationError(t *testing.T) {
	t.Parallel()
	api := &fakePreferenceAPI{saveErr: errors.New("boom")}
	profiles := &fakeProfileAPI{}
	uc := usecase.NewInteractor(service.NewPrefsService(profiles), api, profiles)

	_, err := uc.Submit(context.Background(), prefsdto.SubmitInput{UserID: 7, Draft: finalStepDraft()})
	if err == nil {
		t.Fatalf("expected error")
	}
	genErr := &domain.PlanGenerationError{}
	if errors.As(err, &genErr) {
		t.Fatalf("save failure must not masquerade as generation failure: %v", err)
	}
	if api.generated != 0 {
		t.Fatalf("generation must not run after a failed save")
	}
}

func TestSubmitRejectedOffTheFinalStep(t *testing.T) {
	t.Parallel()
	profiles := &fakeProfileAPI{}
	uc := usecase.NewInteractor(service.NewPrefsService(profiles), &fakePreferenceAPI{}, profiles)

	_, err := uc.Submit(context.Background(), prefsdto.SubmitInput{UserID: 7, Draft: domain.NewDraft()})
	if !errors.Is(err, domain.ErrNotOnFinalStep) {
		t.Fatalf("submit off final step = %v", err)
	}
}

func TestProfileReturnsTheStoredRecord(t *testing.T) {
	t.Parallel()
	profiles := &fakeProfileAPI{profile: domain.Profile{ID: 7, Name: "Dana", Email: "dana@example.com", Age: 28}}
	uc := usecase.NewInteractor(service.NewPrefsService(profiles), &fakePreferenceAPI{}, profiles)

	out, err := uc.Profile(context.Background(), 7)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if out.Profile.Name != "Dana" || out.Profile.Age != 28 {
		t.Fatalf("unexpected profile: %+v", out.Profile)
	}

	if _, err := uc.Profile(context.Background(), 0); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("missing user id = %v", err)
	}
}

func TestUpdateProfileValidatesBeforeCallingTheBackend(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		update domain.ProfileUpdate
	}{
		{"missing name", domain.ProfileUpdate{Age: 30}},
		{"new password without current", domain.ProfileUpdate{Name: "Dana", NewPassword: "longenough"}},
		{"short new password", domain.ProfileUpdate{Name: "Dana", CurrentPassword: "old", NewPassword: "tiny"}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			profiles := &fakeProfileAPI{}
			uc := usecase.NewInteractor(service.NewPrefsService(profiles), &fakePreferenceAPI{}, profiles)

			_, err := uc.UpdateProfile(context.Background(), prefsdto.UpdateProfileInput{UserID: 7, Update: tc.update})
			if !errors.Is(err, apperrors.ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
			if profiles.lastUpdate != nil {
				t.Fatalf("backend must not see a rejected update: %+v", profiles.lastUpdate)
			}
		})
	}
}

func TestUpdateProfileReturnsTheUpdatedRecord(t *testing.T) {
	t.Parallel()
	profiles := &fakeProfileAPI{profile: domain.Profile{ID: 7, Name: "Dana", Age: 28, Weight: 60}}
	uc := usecase.NewInteractor(service.NewPrefsService(profiles), &fakePreferenceAPI{}, profiles)

	out, err := uc.UpdateProfile(context.Background(), prefsdto.UpdateProfileInput{
		UserID: 7,
		Update: domain.ProfileUpdate{Name: "Dana R", Age: 29, Weight: 58.5, Height: 170, Gender: "female"},
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if out.Profile.Name != "Dana R" || out.Profile.Age != 29 || out.Profile.Weight != 58.5 {
		t.Fatalf("updated record not returned: %+v", out.Profile)
	}
	if profiles.lastUpdate == nil || profiles.lastUpdate.Gender != "female" {
		t.Fatalf("update not forwarded: %+v", profiles.lastUpdate)
	}
}

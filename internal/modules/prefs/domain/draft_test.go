package domain_test

import (
	"errors"
	"reflect"
	"testing"

	"fitfusion/internal/modules/prefs/domain"
)

func TestStepSequenceIsLinear(t *testing.T) {
	t.Parallel()
	draft := domain.NewDraft()
	if draft.Step != domain.StepGoals {
		t.Fatalf("wizard must start on goals, got %v", draft.Step)
	}
	if err := draft.Retreat(); !errors.Is(err, domain.ErrAlreadyOnFirstStep) {
		t.Fatalf("retreat on first step = %v", err)
	}
	if err := draft.Advance(); err != nil {
		t.Fatalf("advance to muscles: %v", err)
	}
	if err := draft.Advance(); err != nil {
		t.Fatalf("advance to diet: %v", err)
	}
	if !draft.OnFinalStep() {
		t.Fatalf("diet must be the final step")
	}
	if err := draft.Advance(); !errors.Is(err, domain.ErrAlreadyOnFinalStep) {
		t.Fatalf("advance on final step = %v", err)
	}
	if err := draft.Retreat(); err != nil {
		t.Fatalf("retreat from final step: %v", err)
	}
	if draft.Step != domain.StepMuscles {
		t.Fatalf("retreat landed on %v", draft.Step)
	}
}

func TestToggleTwiceRestoresTheSet(t *testing.T) {
	t.Parallel()
	draft := domain.NewDraft()

	draft.ToggleMuscle("Chest")
	draft.ToggleMuscle("Chest")
	if len(draft.TargetMuscles) != 0 {
		t.Fatalf("double toggle on empty set must yield empty, got %v", draft.TargetMuscles)
	}

	draft.ToggleMuscle("Chest")
	draft.ToggleMuscle("Back")
	draft.ToggleMuscle("Chest")
	if !reflect.DeepEqual(draft.TargetMuscles, []string{"Back"}) {
		t.Fatalf("interleaved toggles = %v, want [Back]", draft.TargetMuscles)
	}
}

func TestToggleIsOrderIndependent(t *testing.T) {
	t.Parallel()
	a := domain.NewDraft()
	a.ToggleEquipment("dumbbells")
	a.ToggleEquipment("barbell")
	a.ToggleEquipment("bands")

	b := domain.NewDraft()
	b.ToggleEquipment("bands")
	b.ToggleEquipment("dumbbells")
	b.ToggleEquipment("barbell")

	if !reflect.DeepEqual(a.EquipmentList, b.EquipmentList) {
		t.Fatalf("insertion order leaked: %v vs %v", a.EquipmentList, b.EquipmentList)
	}
}

func TestDefaultsMatchProduct(t *testing.T) {
	t.Parallel()
	draft := domain.NewDraft()
	if draft.Goal != "weight_loss" || draft.ExperienceLevel != "beginner" || draft.WorkoutLocation != "gym" {
		t.Fatalf("unexpected defaults: %+v", draft.Preferences)
	}
	if draft.DurationWeeks != 4 || draft.FrequencyPerWeek != 5 || draft.DietaryPreference != "non_veg" {
		t.Fatalf("unexpected defaults: %+v", draft.Preferences)
	}
}

func TestDraftFromSeedsStoredValuesAndKeepsDefaultsForGaps(t *testing.T) {
	t.Parallel()
	stored := domain.Preferences{
		Goal:          "strength",
		TargetMuscles: []string{"Chest", "Back"},
	}
	draft := domain.DraftFrom(stored)
	if draft.Goal != "strength" {
		t.Fatalf("stored goal not seeded: %s", draft.Goal)
	}
	if draft.ExperienceLevel != "beginner" || draft.DurationWeeks != 4 {
		t.Fatalf("gaps must keep defaults: %+v", draft.Preferences)
	}
	if !reflect.DeepEqual(draft.TargetMuscles, []string{"Chest", "Back"}) {
		t.Fatalf("stored muscles not seeded: %v", draft.TargetMuscles)
	}

	// Seeded slices are copies; editing the draft must not alias storage.
	draft.ToggleMuscle("Chest")
	if !reflect.DeepEqual(stored.TargetMuscles, []string{"Chest", "Back"}) {
		t.Fatalf("draft edit leaked into stored preferences: %v", stored.TargetMuscles)
	}
}

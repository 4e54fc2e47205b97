package domain

import (
	"errors"
	"sort"
)

var (
	ErrAlreadyOnFinalStep = errors.New("already on the final step")
	ErrAlreadyOnFirstStep = errors.New("already on the first step")
	ErrNotOnFinalStep     = errors.New("submit is only reachable from the final step")
)

// Step is one screen of the preference wizard. Transitions are linear:
// goals -> muscles -> diet.
type Step int

const (
	StepGoals Step = iota
	StepMuscles
	StepDiet
	stepCount
)

func (s Step) Title() string {
	switch s {
	case StepGoals:
		return "Fitness Goals"
	case StepMuscles:
		return "Target Muscles"
	case StepDiet:
		return "Diet & Health"
	default:
		return "Unknown"
	}
}

// Mode gates the post-first-plan flow: view renders the saved preferences
// read-only, edit re-enters the step sequence.
type Mode int

const (
	ModeView Mode = iota
	ModeEdit
)

// Preferences is the full attribute record the backend accepts. Personal
// metrics come from the profile at submit time, not from the wizard.
type Preferences struct {
	Age               int      `json:"age,omitempty"`
	Weight            float64  `json:"weight,omitempty"`
	Height            float64  `json:"height,omitempty"`
	Gender            string   `json:"gender,omitempty"`
	Goal              string   `json:"goal"`
	ExperienceLevel   string   `json:"experienceLevel"`
	WorkoutLocation   string   `json:"workoutLocation"`
	DurationWeeks     int      `json:"durationWeeks"`
	FrequencyPerWeek  int      `json:"frequencyPerWeek"`
	EquipmentList     []string `json:"equipmentList"`
	TargetMuscles     []string `json:"targetMuscleGroups"`
	DietaryPreference string   `json:"dietaryPreference"`
	Allergies         []string `json:"allergies"`
	MedicalConditions []string `json:"medicalConditions"`
	ExcludedFoods     []string `json:"excludedFoods"`
}

// Draft is the in-memory wizard state. It exists only for the wizard's
// lifetime and is never persisted before an explicit submit.
type Draft struct {
	Preferences
	Step Step
	Mode Mode
}

// NewDraft seeds an edit-mode draft with the product defaults.
func NewDraft() Draft {
	return Draft{
		Preferences: Preferences{
			Goal:              "weight_loss",
			ExperienceLevel:   "beginner",
			WorkoutLocation:   "gym",
			DurationWeeks:     4,
			FrequencyPerWeek:  5,
			DietaryPreference: "non_veg",
			EquipmentList:     []string{},
			TargetMuscles:     []string{},
			Allergies:         []string{},
			MedicalConditions: []string{},
			ExcludedFoods:     []string{},
		},
		Step: StepGoals,
		Mode: ModeEdit,
	}
}

// DraftFrom seeds a draft with previously stored preferences, falling back
// to defaults for any field the server left empty.
func DraftFrom(stored Preferences) Draft {
	draft := NewDraft()
	if stored.Goal != "" {
		draft.Goal = stored.Goal
	}
	if stored.ExperienceLevel != "" {
		draft.ExperienceLevel = stored.ExperienceLevel
	}
	if stored.WorkoutLocation != "" {
		draft.WorkoutLocation = stored.WorkoutLocation
	}
	if stored.DurationWeeks > 0 {
		draft.DurationWeeks = stored.DurationWeeks
	}
	if stored.FrequencyPerWeek > 0 {
		draft.FrequencyPerWeek = stored.FrequencyPerWeek
	}
	if stored.DietaryPreference != "" {
		draft.DietaryPreference = stored.DietaryPreference
	}
	if len(stored.EquipmentList) > 0 {
		draft.EquipmentList = append([]string{}, stored.EquipmentList...)
	}
	if len(stored.TargetMuscles) > 0 {
		draft.TargetMuscles = append([]string{}, stored.TargetMuscles...)
	}
	if len(stored.Allergies) > 0 {
		draft.Allergies = append([]string{}, stored.Allergies...)
	}
	if len(stored.MedicalConditions) > 0 {
		draft.MedicalConditions = append([]string{}, stored.MedicalConditions...)
	}
	if len(stored.ExcludedFoods) > 0 {
		draft.ExcludedFoods = append([]string{}, stored.ExcludedFoods...)
	}
	return draft
}

// Advance moves to the next step. Fields are not validated before
// advancing; the backend rejects unusable drafts at submit.
func (d *Draft) Advance() error {
	if d.Step >= stepCount-1 {
		return ErrAlreadyOnFinalStep
	}
	d.Step++
	return nil
}

func (d *Draft) Retreat() error {
	if d.Step <= StepGoals {
		return ErrAlreadyOnFirstStep
	}
	d.Step--
	return nil
}

func (d *Draft) OnFinalStep() bool {
	return d.Step == stepCount-1
}

// ToggleEquipment flips membership of value in the equipment list. Toggling
// twice restores the original set regardless of order.
func (d *Draft) ToggleEquipment(value string) {
	d.EquipmentList = toggle(d.EquipmentList, value)
}

// ToggleMuscle flips membership of value in the target-muscle list.
func (d *Draft) ToggleMuscle(value string) {
	d.TargetMuscles = toggle(d.TargetMuscles, value)
}

func toggle(values []string, value string) []string {
	set := make(map[string]struct{}, len(values)+1)
	for _, v := range values {
		set[v] = struct{}{}
	}
	if _, ok := set[value]; ok {
		delete(set, value)
	} else {
		set[value] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// LocalTime decodes the backend's timestamps. The server serializes them
// zone-less ("2024-01-15T10:30:00", no offset); cached copies round-trip
// through RFC 3339. Both spellings must parse.
type LocalTime struct {
	time.Time
}

const localTimeLayout = "2006-01-02T15:04:05.999999999"

func (t *LocalTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.Parse(localTimeLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q", raw)
	}
	t.Time = parsed
	return nil
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339Nano))
}

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
	StatusRestored  Status = "restored"
)

// WorkoutPlan is a read-only projection of the generated workout. PlanJSON
// stays opaque; only the envelope fields are modeled.
type WorkoutPlan struct {
	ID               int64           `json:"id"`
	TotalWeeks       int             `json:"totalWeeks"`
	FrequencyPerWeek int             `json:"frequencyPerWeek"`
	Summary          string          `json:"summary"`
	PlanJSON         json.RawMessage `json:"planJson"`
}

type DietPlan struct {
	ID                 int64           `json:"id"`
	TotalDailyCalories int             `json:"totalDailyCalories"`
	TotalDailyProtein  int             `json:"totalDailyProtein"`
	Summary            string          `json:"summary"`
	PlanJSON           json.RawMessage `json:"planJson"`
}

// Bundle is the server-owned plan package. The client never mutates it
// except through completion calls, which synchronize immediately.
type Bundle struct {
	ID                    int64           `json:"id"`
	UserID                int64           `json:"userId"`
	Status                Status          `json:"status"`
	StartDate             string          `json:"startDate"`
	AllowedChangeDeadline string          `json:"allowedChangeDeadline"`
	CreatedAt             LocalTime       `json:"createdAt"`
	PreferencesSnapshot   json.RawMessage `json:"preferencesSnapshot"`
	WorkoutPlan           *WorkoutPlan    `json:"workoutPlan"`
	DietPlan              *DietPlan       `json:"dietPlan"`
}

// Completion records one checked-off exercise within a bundle.
type Completion struct {
	ID              int64  `json:"id"`
	PlanBundleID    int64  `json:"planBundleId"`
	WeekNumber      int    `json:"weekNumber"`
	DayNumber       int    `json:"dayNumber"`
	ExerciseName    string `json:"exerciseName"`
	SetsCompleted   int    `json:"setsCompleted"`
	RepsCompleted   int    `json:"repsCompleted"`
	DurationMinutes int    `json:"durationMinutes"`
	CaloriesBurned  int    `json:"caloriesBurned"`
}

// Key identifies a completion slot independent of its server id.
func (c Completion) Key() CompletionKey {
	return CompletionKey{
		PlanBundleID: c.PlanBundleID,
		WeekNumber:   c.WeekNumber,
		DayNumber:    c.DayNumber,
		ExerciseName: c.ExerciseName,
	}
}

type CompletionKey struct {
	PlanBundleID int64
	WeekNumber   int
	DayNumber    int
	ExerciseName string
}

// Stats is the aggregate the dashboard renders.
type Stats struct {
	WorkoutsCompleted int64  `json:"workoutsCompleted"`
	CaloriesBurned    int64  `json:"caloriesBurned"`
	MinutesExercised  int64  `json:"minutesExercised"`
	Period            string `json:"period"`
}

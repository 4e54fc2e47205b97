package domain

import (
	"encoding/json"
	"fmt"
)

// PlannedExercise is one prescribed movement inside a training day. The
// generator is not strict about field names, so alternates are folded into
// the canonical ones on decode.
type PlannedExercise struct {
	Name  string `json:"name"`
	Sets  int    `json:"sets"`
	Reps  string `json:"reps"`
	Rest  string `json:"rest"`
	Notes string `json:"notes"`
}

type TrainingDay struct {
	DayNumber int               `json:"day_number"`
	Focus     string            `json:"focus"`
	Exercises []PlannedExercise `json:"exercises"`
}

type TrainingWeek struct {
	WeekNumber int           `json:"week_number"`
	Days       []TrainingDay `json:"days"`
}

type Schedule struct {
	Weeks []TrainingWeek `json:"weeks"`
}

func (e *PlannedExercise) UnmarshalJSON(data []byte) error {
	raw := struct {
		Name         string          `json:"name"`
		ExerciseName string          `json:"exercise_name"`
		Sets         int             `json:"sets"`
		Reps         json.RawMessage `json:"reps"`
		Repetitions  json.RawMessage `json:"repetitions"`
		Rest         string          `json:"rest"`
		RestPeriod   string          `json:"rest_period"`
		RestSeconds  int             `json:"rest_seconds"`
		Notes        string          `json:"notes"`
	}{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Name = raw.Name
	if e.Name == "" {
		e.Name = raw.ExerciseName
	}
	e.Sets = raw.Sets
	e.Reps = flexString(raw.Reps)
	if e.Reps == "" {
		e.Reps = flexString(raw.Repetitions)
	}
	e.Rest = raw.Rest
	if e.Rest == "" {
		e.Rest = raw.RestPeriod
	}
	if e.Rest == "" && raw.RestSeconds > 0 {
		e.Rest = fmt.Sprintf("%ds", raw.RestSeconds)
	}
	e.Notes = raw.Notes
	return nil
}

// flexString accepts both "8-12" and a bare number for rep counts.
func flexString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return fmt.Sprintf("%d", n)
	}
	return ""
}

// ParseSchedule decodes the generated workout body. An empty or absent body
// yields an empty schedule, not an error; the envelope stays renderable.
func ParseSchedule(raw json.RawMessage) (Schedule, error) {
	schedule := Schedule{}
	if len(raw) == 0 {
		return schedule, nil
	}
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return Schedule{}, fmt.Errorf("decode workout schedule: %w", err)
	}
	return schedule, nil
}

// Week returns the schedule for weekNumber, tolerating generators that omit
// week_number by falling back to positional order.
func (s Schedule) Week(weekNumber int) (TrainingWeek, bool) {
	for _, w := range s.Weeks {
		if w.WeekNumber == weekNumber {
			return w, true
		}
	}
	if weekNumber >= 1 && weekNumber <= len(s.Weeks) {
		return s.Weeks[weekNumber-1], true
	}
	return TrainingWeek{}, false
}

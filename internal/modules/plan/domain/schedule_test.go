package domain_test

import (
	"encoding/json"
	"testing"

	"fitfusion/internal/modules/plan/domain"
)

func TestParseScheduleFoldsAlternateFieldNames(t *testing.T) {
	t.Parallel()
	raw := json.RawMessage(`{
		"weeks": [
			{"week_number": 1, "days": [
				{"day_number": 1, "focus": "push", "exercises": [
					{"exercise_name": "Bench Press", "sets": 4, "repetitions": "8-12", "rest_seconds": 90},
					{"name": "Overhead Press", "sets": 3, "reps": 10, "rest": "60s"}
				]}
			]}
		]
	}`)

	schedule, err := domain.ParseSchedule(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	week, ok := schedule.Week(1)
	if !ok || len(week.Days) != 1 {
		t.Fatalf("week 1 missing: %+v", schedule)
	}
	exercises := week.Days[0].Exercises
	if len(exercises) != 2 {
		t.Fatalf("got %d exercises", len(exercises))
	}
	if exercises[0].Name != "Bench Press" || exercises[0].Reps != "8-12" || exercises[0].Rest != "90s" {
		t.Fatalf("alternate names not folded: %+v", exercises[0])
	}
	if exercises[1].Reps != "10" {
		t.Fatalf("numeric reps not folded: %+v", exercises[1])
	}
}

func TestParseScheduleEmptyBody(t *testing.T) {
	t.Parallel()
	schedule, err := domain.ParseSchedule(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(schedule.Weeks) != 0 {
		t.Fatalf("unexpected weeks: %+v", schedule)
	}
}

func TestWeekFallsBackToPositionalOrder(t *testing.T) {
	t.Parallel()
	schedule := domain.Schedule{Weeks: []domain.TrainingWeek{
		{Days: []domain.TrainingDay{{DayNumber: 1}}},
		{Days: []domain.TrainingDay{{DayNumber: 1}, {DayNumber: 2}}},
	}}

	week, ok := schedule.Week(2)
	if !ok || len(week.Days) != 2 {
		t.Fatalf("positional fallback failed: %+v ok=%v", week, ok)
	}
	if _, ok := schedule.Week(3); ok {
		t.Fatalf("week 3 must not exist")
	}
}

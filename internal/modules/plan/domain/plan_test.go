package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"fitfusion/internal/modules/plan/domain"
)

func TestLocalTimeAcceptsServerAndCachedSpellings(t *testing.T) {
	t.Parallel()
	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	for _, raw := range []string{
		`"2024-01-15T10:30:00"`,
		`"2024-01-15T10:30:00.5"`,
		`"2024-01-15T10:30:00Z"`,
	} {
		var got domain.LocalTime
		if err := json.Unmarshal([]byte(raw), &got); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if !got.Truncate(time.Second).Equal(want) {
			t.Fatalf("unmarshal %s = %v, want %v", raw, got, want)
		}
	}

	var zero domain.LocalTime
	if err := json.Unmarshal([]byte(`""`), &zero); err != nil || !zero.IsZero() {
		t.Fatalf("empty timestamp: got %v, err %v", zero, err)
	}

	var bad domain.LocalTime
	if err := json.Unmarshal([]byte(`"15/01/2024"`), &bad); err == nil {
		t.Fatal("expected an error for an unrecognized layout")
	}
}

func TestLocalTimeRoundTripsThroughTheCache(t *testing.T) {
	t.Parallel()
	in := domain.LocalTime{Time: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out domain.LocalTime
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
	if !out.Equal(in.Time) {
		t.Fatalf("round trip changed the instant: %v != %v", out, in)
	}
}

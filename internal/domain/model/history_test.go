package model

import (
	"testing"
	"time"
)

func TestFixedIntervalPlanner(t *testing.T) {
	planner := DefaultPlanner()

	if got := planner.NextMileage(35000); got != 45000 {
		t.Fatalf("NextMileage = %d, want 45000", got)
	}

	from := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	want := time.Date(2024, time.July, 15, 10, 0, 0, 0, time.UTC)
	if got := planner.NextDate(from); !got.Equal(want) {
		t.Fatalf("NextDate = %v, want %v", got, want)
	}
}

func TestFixedIntervalPlannerCustomSteps(t *testing.T) {
	planner := FixedIntervalPlanner{MileageStep: 5000, MonthsAhead: 3}

	if got := planner.NextMileage(0); got != 5000 {
		t.Fatalf("NextMileage = %d, want 5000", got)
	}

	from := time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC)
	if got := planner.NextDate(from); got.Year() != 2025 || got.Month() != time.March {
		t.Fatalf("NextDate = %v, want March 2025", got)
	}
}

package puzzle

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC; DateKey normalizes.
	loc := time.FixedZone("UTC-5", -5*3600)
	got := DateKey(time.Date(2024, 7, 9, 23, 30, 0, 0, loc))
	if got != "2024-07-10" {
		t.Fatalf("DateKey: got %s, want 2024-07-10", got)
	}
}

func TestDailyIndexIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, 7, 10, 0, 1, 0, 0, time.UTC)
	night := time.Date(2024, 7, 10, 23, 59, 0, 0, time.UTC)
	if DailyIndex(morning, 39) != DailyIndex(night, 39) {
		t.Fatal("same calendar day must select the same index")
	}
	if PuzzleNumber(morning) != PuzzleNumber(night) {
		t.Fatal("same calendar day must yield the same puzzle number")
	}
}

func TestDailyIndexAdvancesDaily(t *testing.T) {
	day := time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)
	if PuzzleNumber(next) != PuzzleNumber(day)+1 {
		t.Fatalf("puzzle number must advance by 1 per day: %d then %d",
			PuzzleNumber(day), PuzzleNumber(next))
	}
	if DailyIndex(next, 1000) != (DailyIndex(day, 1000)+1)%1000 {
		t.Fatal("daily index must advance by 1 per day (mod dataset size)")
	}
}

func TestPuzzleNumberStartsAtOne(t *testing.T) {
	if got := PuzzleNumber(launch); got != 1 {
		t.Fatalf("launch day must be puzzle #1, got %d", got)
	}
}

func TestDailyIndexBounds(t *testing.T) {
	if got := DailyIndex(time.Now(), 0); got != 0 {
		t.Fatalf("empty dataset must pin index to 0, got %d", got)
	}
	for _, n := range []int{1, 7, 39} {
		if idx := DailyIndex(time.Now(), n); idx < 0 || idx >= n {
			t.Fatalf("index %d out of range for dataset size %d", idx, n)
		}
	}
}

func TestRandomIndexBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		if idx := RandomIndex(7); idx < 0 || idx >= 7 {
			t.Fatalf("random index %d out of range", idx)
		}
	}
	if RandomIndex(0) != 0 {
		t.Fatal("empty dataset must pin index to 0")
	}
}

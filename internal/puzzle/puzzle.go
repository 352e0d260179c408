// internal/puzzle/puzzle.go
//
// Puzzle selection for the two modes:
//   - Daily: deterministic date → index derivation so every player sees the
//     same puzzle on the same calendar day. Dates are compared as UTC
//     calendar-day strings, never timestamps, so time-of-day and timezone
//     offsets inside a day cannot change the selection.
//   - Practice: uniformly random index, reselected on every restart.
package puzzle

import (
	"crypto/rand"
	"math/big"
	"time"
)

// launch is day 1 of the daily puzzle. Changing it renumbers every puzzle.
var launch = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DaysSince returns the whole calendar days elapsed between launch and t,
// both truncated to UTC midnight. Negative before launch.
func DaysSince(t time.Time) int {
	return daysBetween(launch, t)
}

func daysBetween(a, b time.Time) int {
	au := a.UTC()
	bu := b.UTC()
	start := time.Date(au.Year(), au.Month(), au.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(bu.Year(), bu.Month(), bu.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// DailyIndex returns the dataset index for t's calendar day.
func DailyIndex(t time.Time, datasetLen int) int {
	if datasetLen <= 0 {
		return 0
	}
	d := DaysSince(t)
	if d < 0 {
		d = -d
	}
	return d % datasetLen
}

// PuzzleNumber is the human-facing daily puzzle number (launch day is #1).
func PuzzleNumber(t time.Time) int {
	return DaysSince(t) + 1
}

// RandomIndex returns a uniformly random dataset index for practice mode.
func RandomIndex(datasetLen int) int {
	if datasetLen <= 0 {
		return 0
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(datasetLen)))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken;
		// a fixed index keeps practice mode playable.
		return 0
	}
	return int(n.Int64())
}

package compare

import (
	"reflect"
	"testing"
)

func states(slots []Slot) []SlotState {
	out := make([]SlotState, len(slots))
	for i, s := range slots {
		out[i] = s.State
	}
	return out
}

func TestScoreWordExactAndAbsent(t *testing.T) {
	got := states(ScoreWord("craze", "crane"))
	want := []SlotState{StateCorrect, StateCorrect, StateCorrect, StateAbsent, StateCorrect}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("craze vs crane: got %v, want %v", got, want)
	}
}

func TestScoreWordDuplicateLetters(t *testing.T) {
	// Solution has two L's; the guess has three. The positional match at
	// index 2 and one present at index 0 consume both; the third L must be
	// absent.
	got := states(ScoreWord("lolly", "alloy"))
	want := []SlotState{StatePresent, StatePresent, StateCorrect, StateAbsent, StateCorrect}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("lolly vs alloy: got %v, want %v", got, want)
	}
}

func TestScoreWordMultisetConservation(t *testing.T) {
	cases := []struct {
		guess, solution string
	}{
		{"lolly", "alloy"},
		{"eerie", "crane"},
		{"aaaaa", "alloy"},
		{"llama", "lolly"},
	}
	for _, tc := range cases {
		slots := ScoreWord(tc.guess, tc.solution)
		credited := make(map[string]int)
		for _, s := range slots {
			if s.State == StateCorrect || s.State == StatePresent {
				credited[s.Value]++
			}
		}
		available := make(map[string]int)
		for _, r := range tc.solution {
			available[string(r)]++
		}
		for letter, n := range credited {
			if n > available[letter] {
				t.Errorf("%s vs %s: letter %q credited %d times but occurs %d times",
					tc.guess, tc.solution, letter, n, available[letter])
			}
		}
	}
}

func TestScoreWordDeterministic(t *testing.T) {
	a := ScoreWord("lolly", "alloy")
	b := ScoreWord("lolly", "alloy")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("ScoreWord is not deterministic: %v vs %v", a, b)
	}
}

func TestScoreFlagSwappedColors(t *testing.T) {
	solution := FlagAttrs{Primary: "red", Secondary: "white", Pattern: "stripes"}
	guess := FlagAttrs{Primary: "white", Secondary: "red", Pattern: "stripes"}

	slots := ScoreFlag(guess, solution)
	want := map[string]SlotState{
		KeyPrimary:   StatePresent, // white is the solution's secondary
		KeySecondary: StatePresent, // red is the solution's primary
		KeyTertiary:  StateCorrect, // both unset
		KeyPattern:   StateCorrect,
	}
	for _, s := range slots {
		if s.State != want[s.Key] {
			t.Errorf("slot %s: got %s, want %s", s.Key, s.State, want[s.Key])
		}
	}
	if AllCorrect(slots) {
		t.Fatal("swapped colors must not be a win")
	}
}

func TestScoreFlagPatternHasNoPresent(t *testing.T) {
	solution := FlagAttrs{Primary: "red", Secondary: "white", Pattern: "cross"}
	guess := FlagAttrs{Primary: "red", Secondary: "white", Pattern: "stripes"}
	for _, s := range ScoreFlag(guess, solution) {
		if s.Key == KeyPattern && s.State != StateAbsent {
			t.Fatalf("wrong pattern must be absent, got %s", s.State)
		}
	}
}

func TestScoreFlagTertiaryAgainstSet(t *testing.T) {
	solution := FlagAttrs{Primary: "green", Secondary: "white", Tertiary: "red", Pattern: "vertical-stripes"}
	guess := FlagAttrs{Primary: "green", Secondary: "red", Tertiary: "white", Pattern: "vertical-stripes"}
	slots := ScoreFlag(guess, solution)
	for _, s := range slots {
		switch s.Key {
		case KeyPrimary, KeyPattern:
			if s.State != StateCorrect {
				t.Errorf("slot %s: got %s, want correct", s.Key, s.State)
			}
		case KeySecondary, KeyTertiary:
			if s.State != StatePresent {
				t.Errorf("slot %s: got %s, want present", s.Key, s.State)
			}
		}
	}
}

func TestAllCorrect(t *testing.T) {
	win := ScoreWord("crane", "crane")
	if !AllCorrect(win) {
		t.Fatal("identical guess must be a win")
	}
	if AllCorrect(nil) {
		t.Fatal("empty slot list must not be a win")
	}
}

func TestMergeBestPriority(t *testing.T) {
	states := map[string]SlotState{}

	MergeBest(states, []Slot{{Value: "a", State: StateAbsent}})
	if states["a"] != StateAbsent {
		t.Fatalf("want absent, got %s", states["a"])
	}

	MergeBest(states, []Slot{{Value: "a", State: StatePresent}})
	if states["a"] != StatePresent {
		t.Fatalf("absent must upgrade to present, got %s", states["a"])
	}

	MergeBest(states, []Slot{{Value: "a", State: StateCorrect}})
	if states["a"] != StateCorrect {
		t.Fatalf("present must upgrade to correct, got %s", states["a"])
	}

	// Never downgrade.
	MergeBest(states, []Slot{{Value: "a", State: StateAbsent}})
	if states["a"] != StateCorrect {
		t.Fatalf("correct must never downgrade, got %s", states["a"])
	}
}

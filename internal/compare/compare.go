// internal/compare/compare.go
//
// Pure comparison logic shared by both game variants.
// Responsibilities:
//   - Score a word guess against a solution word (classic two-pass algorithm).
//   - Score a flag guess against a solution's attribute set.
//   - Merge per-slot feedback into the cumulative "best state seen" map that
//     drives keyboards and legends.
//
// Everything here is deterministic and side-effect free; callers own all
// state. Duplicate letters and overlapping colors are handled with multiset
// semantics: a value is never credited more times than it occurs in the
// solution.
package compare

// SlotState is the evaluation state of a single slot of a guess.
type SlotState string

const (
	StateEmpty   SlotState = "empty"   // no value entered
	StateFilled  SlotState = "filled"  // value entered, not yet evaluated
	StateCorrect SlotState = "correct" // exact match at this slot
	StatePresent SlotState = "present" // value elsewhere in the solution
	StateAbsent  SlotState = "absent"  // value not in the solution at all
)

// Attribute keys for the flag variant. The word variant leaves Slot.Key empty
// and relies on position.
const (
	KeyPrimary   = "primaryColor"
	KeySecondary = "secondaryColor"
	KeyTertiary  = "tertiaryColor"
	KeyPattern   = "pattern"
)

// Slot is one independently-evaluated attribute of a guess: a letter position
// or a color/pattern field.
type Slot struct {
	Key   string    `json:"key,omitempty"`
	Value string    `json:"value"`
	State SlotState `json:"state"`
}

// FlagAttrs is the comparable attribute vector of a flag. Tertiary is ""
// when the flag has no third color; two empty tertiaries compare as correct.
type FlagAttrs struct {
	Primary   string `json:"primaryColor"`
	Secondary string `json:"secondaryColor"`
	Tertiary  string `json:"tertiaryColor,omitempty"`
	Pattern   string `json:"pattern"`
}

// ScoreWord evaluates guess against solution using the standard two-pass
// algorithm.
//
// Pass 1 marks exact positional matches as correct and counts the remaining
// solution letters. Pass 2 resolves the rest: present while the letter still
// has unconsumed occurrences, absent otherwise. A repeated guess letter is
// therefore credited at most as many times as it occurs in the solution.
//
// Inputs are assumed to be equal-length and lowercased by the validator.
func ScoreWord(guess, solution string) []Slot {
	guessRunes := []rune(guess)
	solutionRunes := []rune(solution)
	n := len(guessRunes)
	res := make([]Slot, n)

	// Unconsumed occurrences of each non-hit solution letter.
	remaining := make(map[rune]int, n)

	for i := 0; i < n; i++ {
		res[i].Value = string(guessRunes[i])
		if i < len(solutionRunes) && guessRunes[i] == solutionRunes[i] {
			res[i].State = StateCorrect
		} else if i < len(solutionRunes) {
			remaining[solutionRunes[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i].State == StateCorrect {
			continue
		}
		if remaining[guessRunes[i]] > 0 {
			res[i].State = StatePresent
			remaining[guessRunes[i]]--
		} else {
			res[i].State = StateAbsent
		}
	}
	return res
}

// ScoreFlag evaluates a flag guess attribute-by-attribute against the
// solution's attribute set. Color slots are compared against the whole set
// (correct at the matching position, present at any other), the pattern slot
// is positional only: a flag has exactly one pattern, so present is
// impossible there.
func ScoreFlag(guess, solution FlagAttrs) []Slot {
	return []Slot{
		{Key: KeyPrimary, Value: guess.Primary, State: colorState(guess.Primary, solution.Primary, solution.Secondary, solution.Tertiary)},
		{Key: KeySecondary, Value: guess.Secondary, State: colorState(guess.Secondary, solution.Secondary, solution.Primary, solution.Tertiary)},
		{Key: KeyTertiary, Value: guess.Tertiary, State: colorState(guess.Tertiary, solution.Tertiary, solution.Primary, solution.Secondary)},
		{Key: KeyPattern, Value: guess.Pattern, State: exactState(guess.Pattern, solution.Pattern)},
	}
}

// colorState compares one color slot: correct on positional match, present if
// the color appears in either of the other two solution slots. An empty guess
// color only matches an empty solution slot (absent tertiary vs absent
// tertiary is correct).
func colorState(value, atSlot, otherA, otherB string) SlotState {
	if value == atSlot {
		return StateCorrect
	}
	if value != "" && (value == otherA || value == otherB) {
		return StatePresent
	}
	return StateAbsent
}

func exactState(value, want string) SlotState {
	if value == want {
		return StateCorrect
	}
	return StateAbsent
}

// AllCorrect reports whether every slot evaluated correct, the win condition.
func AllCorrect(slots []Slot) bool {
	for _, s := range slots {
		if s.State != StateCorrect {
			return false
		}
	}
	return len(slots) > 0
}

// MergeBest folds newly-evaluated slots into the cumulative per-value state
// map, upgrading only: correct > present > absent. Empty values are skipped.
func MergeBest(states map[string]SlotState, slots []Slot) {
	for _, s := range slots {
		if s.Value == "" {
			continue
		}
		cur, ok := states[s.Value]
		switch {
		case !ok || cur == StateEmpty || cur == StateFilled:
			states[s.Value] = s.State
		case cur != StateCorrect && s.State == StateCorrect:
			states[s.Value] = s.State
		case cur == StateAbsent && s.State == StatePresent:
			states[s.Value] = s.State
		}
	}
}

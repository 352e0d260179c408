// internal/engine/types.go
//
// Core type definitions for the game engine:
//   - Variant / GameState enums.
//   - Attempt (one row of the grid) and the draft guess.
//   - HintState, Stats, GameConfig.
//   - Snapshot, the read-only view handed to presentation code.
package engine

import (
	"github.com/wherethephoque/phoquedle/internal/compare"
)

// Variant selects which ruleset the engine runs.
type Variant string

const (
	VariantWord Variant = "word"
	VariantFlag Variant = "flag"
)

// GameState is the session lifecycle state.
type GameState string

const (
	StateLoading GameState = "loading"
	StatePlaying GameState = "playing"
	StateWon     GameState = "won"
	StateLost    GameState = "lost"
)

// Attempt is one row of the attempt grid: the ordered slots, the raw guess
// word (word variant only), and whether the row has been submitted.
type Attempt struct {
	Slots       []compare.Slot `json:"slots"`
	Word        string         `json:"word,omitempty"`
	IsSubmitted bool           `json:"isSubmitted"`
}

// flagDraft is the in-progress flag guess. "" means unset; primary,
// secondary and pattern are mandatory for submission, tertiary is optional.
type flagDraft struct {
	Primary   string
	Secondary string
	Tertiary  string
	Pattern   string
}

func (d flagDraft) isComplete() bool {
	return d.Primary != "" && d.Secondary != "" && d.Pattern != ""
}

func (d flagDraft) attrs() compare.FlagAttrs {
	return compare.FlagAttrs{
		Primary:   d.Primary,
		Secondary: d.Secondary,
		Tertiary:  d.Tertiary,
		Pattern:   d.Pattern,
	}
}

// HintState tracks the hint ladder progress for the current session.
type HintState struct {
	HintsUsed     int      `json:"hintsUsed"`
	MaxHints      int      `json:"maxHints"`
	HintHistory   []string `json:"hintHistory"`
	AutoTriggered []int    `json:"autoHintsTriggered"`
	LatestHint    string   `json:"latestHint,omitempty"`
}

// Stats is the aggregate play record. Mutated only at game-terminal
// transitions and persisted in the settings record.
type Stats struct {
	GamesPlayed       int         `json:"gamesPlayed"`
	GamesWon          int         `json:"gamesWon"`
	CurrentStreak     int         `json:"currentStreak"`
	MaxStreak         int         `json:"maxStreak"`
	GuessDistribution map[int]int `json:"guessDistribution"`
}

// GameConfig is the recognized game configuration. AnimationSpeed, Theme and
// Difficulty are presentation passthrough: the core persists them untouched
// and never branches on them.
type GameConfig struct {
	MaxAttempts    int    `json:"maxAttempts"`
	WordLength     int    `json:"wordLength"`
	HardMode       bool   `json:"hardMode"`
	AnimationSpeed int    `json:"animationSpeed"`
	Theme          string `json:"theme"`
	Difficulty     string `json:"difficulty"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		MaxAttempts:    6,
		WordLength:     5,
		AnimationSpeed: 300,
		Theme:          "auto",
		Difficulty:     "medium",
	}
}

// RevealedSolution is the solution metadata exposed once a session ends.
type RevealedSolution struct {
	Word      string `json:"word,omitempty"`
	Name      string `json:"name,omitempty"`
	Emoji     string `json:"emoji,omitempty"`
	Continent string `json:"continent,omitempty"`
}

// Snapshot is a copy of the externally visible session state. Callers may
// only read snapshots and invoke the documented operations; there is no way
// to mutate engine state through one.
type Snapshot struct {
	Variant      Variant                              `json:"variant"`
	State        GameState                            `json:"state"`
	Grid         []Attempt                            `json:"attemptGrid"`
	CurrentRow   int                                  `json:"currentRowIndex"`
	DraftWord    string                               `json:"draftWord,omitempty"`
	MaxAttempts  int                                  `json:"maxAttempts"`
	WordLength   int                                  `json:"wordLength,omitempty"`
	IsDailyMode  bool                                 `json:"isDailyMode"`
	PuzzleNumber int                                  `json:"puzzleNumber,omitempty"`
	InputStates  map[string]compare.SlotState         `json:"inputStates"`
	Hints        HintState                            `json:"hintState"`
	Stats        Stats                                `json:"stats"`
	Config       GameConfig                           `json:"config"`
	Solution     *RevealedSolution                    `json:"solution,omitempty"`
}

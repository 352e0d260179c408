// internal/engine/engine.go
//
// The game state machine. One Engine owns one session at a time plus the
// durable statistics, and is the only writer of any of that state; callers
// read Snapshot() and invoke the documented operations.
//
// Lifecycle: loading → playing → won/lost. A new session (practice restart
// or next calendar day) re-enters playing with a fresh puzzle, grid and
// hint state.
//
// All operations run to completion synchronously; persistence writes are
// best-effort and never surface to the player.
package engine

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/wherethephoque/phoquedle/internal/compare"
	"github.com/wherethephoque/phoquedle/internal/dataset"
	"github.com/wherethephoque/phoquedle/internal/puzzle"
	"github.com/wherethephoque/phoquedle/internal/storage"
)

// Engine is the state-owning game controller.
type Engine struct {
	variant Variant
	cfg     GameConfig
	words   *dataset.WordList
	flags   *dataset.FlagSet
	store   storage.Store
	log     zerolog.Logger
	now     func() time.Time // injectable clock

	state        GameState
	solutionWord string
	solutionFlag dataset.Flag
	grid         []Attempt
	currentRow   int
	draftWord    string
	draftFlag    flagDraft
	inputStates  map[string]compare.SlotState
	hints        HintState
	stats        Stats
	isDaily      bool
	puzzleNumber int
	dailyDate    string
}

// New constructs an Engine in the loading state. The dataset matching the
// variant must be non-nil and non-empty; without data there is nothing to
// select a puzzle from.
func New(variant Variant, cfg GameConfig, words *dataset.WordList, flags *dataset.FlagSet, store storage.Store, logger zerolog.Logger) (*Engine, error) {
	switch variant {
	case VariantWord:
		if words == nil || words.Len() == 0 {
			return nil, errors.New("engine: word variant requires a non-empty word list")
		}
	case VariantFlag:
		if flags == nil || flags.Len() == 0 {
			return nil, errors.New("engine: flag variant requires a non-empty flag set")
		}
	default:
		return nil, errors.New("engine: unknown variant " + string(variant))
	}
	if store == nil {
		return nil, errors.New("engine: storage is required")
	}
	normalizeConfig(&cfg)
	e := &Engine{
		variant:     variant,
		cfg:         cfg,
		words:       words,
		flags:       flags,
		store:       store,
		log:         logger,
		now:         time.Now,
		state:       StateLoading,
		inputStates: make(map[string]compare.SlotState),
		stats:       Stats{GuessDistribution: make(map[int]int)},
	}
	return e, nil
}

// normalizeConfig fills unset fields from the defaults.
func normalizeConfig(cfg *GameConfig) {
	def := DefaultConfig()
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.WordLength <= 0 {
		cfg.WordLength = def.WordLength
	}
	if cfg.Theme == "" {
		cfg.Theme = def.Theme
	}
	if cfg.Difficulty == "" {
		cfg.Difficulty = def.Difficulty
	}
	if cfg.AnimationSpeed <= 0 {
		cfg.AnimationSpeed = def.AnimationSpeed
	}
}

// Init loads persisted settings, then loads (or resumes) today's daily
// puzzle. Call exactly once before any other operation.
func (e *Engine) Init(ctx context.Context) {
	e.loadSettings(ctx)
	e.LoadDaily(ctx)
}

// ------------------------------ selection ----------------------------------

func (e *Engine) datasetLen() int {
	if e.variant == VariantWord {
		return e.words.Len()
	}
	return e.flags.Len()
}

// solutionID is the stable identifier of the current solution: the word
// itself, or the flag's dataset id.
func (e *Engine) solutionID() string {
	if e.variant == VariantWord {
		return e.solutionWord
	}
	return e.solutionFlag.ID
}

func (e *Engine) solutionAttrs() compare.FlagAttrs {
	return compare.FlagAttrs{
		Primary:   e.solutionFlag.PrimaryColor,
		Secondary: e.solutionFlag.SecondaryColor,
		Tertiary:  e.solutionFlag.TertiaryColor,
		Pattern:   e.solutionFlag.Pattern,
	}
}

// reset starts a fresh session on the solution at index.
func (e *Engine) reset(daily bool, index, number int, date string) {
	if e.variant == VariantWord {
		e.solutionWord = e.words.Solution(index)
	} else {
		e.solutionFlag = e.flags.At(index)
	}
	e.grid = e.emptyGrid()
	e.currentRow = 0
	e.draftWord = ""
	e.draftFlag = flagDraft{}
	e.inputStates = make(map[string]compare.SlotState)
	e.hints = HintState{MaxHints: maxHints}
	e.state = StatePlaying
	e.isDaily = daily
	e.puzzleNumber = number
	e.dailyDate = date
}

// emptyGrid builds maxAttempts untouched rows.
func (e *Engine) emptyGrid() []Attempt {
	grid := make([]Attempt, e.cfg.MaxAttempts)
	for i := range grid {
		grid[i] = e.emptyRow()
	}
	return grid
}

func (e *Engine) emptyRow() Attempt {
	if e.variant == VariantWord {
		return Attempt{Slots: make([]compare.Slot, e.cfg.WordLength)}
	}
	return Attempt{Slots: []compare.Slot{
		{Key: compare.KeyPrimary, State: compare.StateEmpty},
		{Key: compare.KeySecondary, State: compare.StateEmpty},
		{Key: compare.KeyTertiary, State: compare.StateEmpty},
		{Key: compare.KeyPattern, State: compare.StateEmpty},
	}}
}

// LoadDaily selects today's deterministic puzzle and, if the stored daily
// record is for the same calendar day and solution, resumes it; otherwise a
// fresh record is persisted immediately.
func (e *Engine) LoadDaily(ctx context.Context) {
	now := e.now()
	today := puzzle.DateKey(now)
	e.reset(true, puzzle.DailyIndex(now, e.datasetLen()), puzzle.PuzzleNumber(now), today)

	if rec, ok := e.loadDailyRecord(ctx); ok && e.restorable(rec, today) {
		e.grid = rec.Grid
		e.currentRow = rec.CurrentRow
		e.hints = rec.Hints
		if e.hints.MaxHints <= 0 {
			e.hints.MaxHints = maxHints
		}
		e.state = rec.GameState
		e.inputStates = rebuildInputStates(rec.Grid)
		// The record may hold a half-typed current row; the draft does not
		// survive a restart, so blank the row to match.
		if e.currentRow < len(e.grid) && !e.grid[e.currentRow].IsSubmitted {
			e.grid[e.currentRow] = e.emptyRow()
		}
		return
	}
	e.saveDaily(ctx)
}

// restorable sanity-checks a stored record against today's selection.
// Anything off (rolled date, different solution, inconsistent shape) means
// start fresh rather than propagate a corrupt session.
func (e *Engine) restorable(rec dailyRecord, today string) bool {
	if rec.Date != today {
		return false
	}
	if deobfuscate(rec.SolutionID) != e.solutionID() {
		return false
	}
	if len(rec.Grid) != e.cfg.MaxAttempts {
		return false
	}
	if rec.CurrentRow < 0 || rec.CurrentRow > e.cfg.MaxAttempts {
		return false
	}
	switch rec.GameState {
	case StatePlaying:
		// A playing session must have a row left to play.
		if rec.CurrentRow >= e.cfg.MaxAttempts {
			return false
		}
	case StateWon, StateLost:
	default:
		return false
	}
	// Every row before the current one is submitted, none at or after it.
	for i, attempt := range rec.Grid {
		if attempt.IsSubmitted != (i < rec.CurrentRow) {
			return false
		}
	}
	return true
}

// StartPractice abandons the current session for a randomly selected
// practice puzzle. The daily record is left untouched: it is only ever
// written while in daily mode.
func (e *Engine) StartPractice() {
	e.reset(false, puzzle.RandomIndex(e.datasetLen()), 0, "")
}

// CheckForNewDay rolls over to the new daily puzzle when the calendar day
// has changed since the daily record was written. Safe to call on every
// visibility/focus event: when the date is unchanged it is a no-op.
func (e *Engine) CheckForNewDay(ctx context.Context) {
	today := puzzle.DateKey(e.now())
	if e.isDaily {
		if e.dailyDate == today {
			return
		}
		e.LoadDaily(ctx)
		return
	}
	// Practice mode: only roll when the stored record is stale or missing,
	// so a same-day focus event never yanks the player out of practice.
	if rec, ok := e.loadDailyRecord(ctx); ok && rec.Date == today {
		return
	}
	e.LoadDaily(ctx)
}

// ------------------------------- input -------------------------------------

// AddLetter appends one letter to the word draft.
func (e *Engine) AddLetter(letter string) ActionResult {
	if e.state != StatePlaying {
		return failure(ErrGameNotActive)
	}
	if e.variant != VariantWord {
		return failure(ErrInvalidValue)
	}
	l := strings.ToLower(strings.TrimSpace(letter))
	if len(l) != 1 || l[0] < 'a' || l[0] > 'z' {
		return failure(ErrInvalidValue)
	}
	if len(e.draftWord) >= e.cfg.WordLength {
		return failure(ErrRowFull)
	}
	e.draftWord += l
	e.syncCurrentRow()
	return success("")
}

// RemoveLetter removes the last letter of the word draft.
func (e *Engine) RemoveLetter() ActionResult {
	if e.state != StatePlaying {
		return failure(ErrGameNotActive)
	}
	if e.variant != VariantWord {
		return failure(ErrInvalidValue)
	}
	if e.draftWord == "" {
		return failure(ErrNoLettersToRemove)
	}
	e.draftWord = e.draftWord[:len(e.draftWord)-1]
	e.syncCurrentRow()
	return success("")
}

// SetColor sets the primary, secondary or tertiary color of the flag draft.
func (e *Engine) SetColor(position, color string) ActionResult {
	if e.state != StatePlaying {
		return failure(ErrGameNotActive)
	}
	if e.variant != VariantFlag || !dataset.IsColor(color) {
		return failure(ErrInvalidValue)
	}
	switch position {
	case "primary":
		e.draftFlag.Primary = color
	case "secondary":
		e.draftFlag.Secondary = color
	case "tertiary":
		e.draftFlag.Tertiary = color
	default:
		return failure(ErrInvalidValue)
	}
	e.syncCurrentRow()
	return success("")
}

// SetPattern sets the pattern of the flag draft.
func (e *Engine) SetPattern(pattern string) ActionResult {
	if e.state != StatePlaying {
		return failure(ErrGameNotActive)
	}
	if e.variant != VariantFlag || !dataset.IsPattern(pattern) {
		return failure(ErrInvalidValue)
	}
	e.draftFlag.Pattern = pattern
	e.syncCurrentRow()
	return success("")
}

// ClearAttribute unsets one flag draft attribute (a compare.Key* constant).
func (e *Engine) ClearAttribute(key string) ActionResult {
	if e.state != StatePlaying {
		return failure(ErrGameNotActive)
	}
	if e.variant != VariantFlag {
		return failure(ErrInvalidValue)
	}
	var field *string
	switch key {
	case compare.KeyPrimary:
		field = &e.draftFlag.Primary
	case compare.KeySecondary:
		field = &e.draftFlag.Secondary
	case compare.KeyTertiary:
		field = &e.draftFlag.Tertiary
	case compare.KeyPattern:
		field = &e.draftFlag.Pattern
	default:
		return failure(ErrInvalidValue)
	}
	if *field == "" {
		return failure(ErrAttributeNotSet)
	}
	*field = ""
	e.syncCurrentRow()
	return success("")
}

// syncCurrentRow mirrors the draft into the grid's current row so the board
// can render live input. The row stays unsubmitted.
func (e *Engine) syncCurrentRow() {
	if e.currentRow >= len(e.grid) {
		return
	}
	row := e.emptyRow()
	if e.variant == VariantWord {
		for i, r := range e.draftWord {
			row.Slots[i] = compare.Slot{Value: string(r), State: compare.StateFilled}
		}
	} else {
		values := []string{e.draftFlag.Primary, e.draftFlag.Secondary, e.draftFlag.Tertiary, e.draftFlag.Pattern}
		for i, v := range values {
			if v != "" {
				row.Slots[i].Value = v
				row.Slots[i].State = compare.StateFilled
			}
		}
	}
	e.grid[e.currentRow] = row
}

// ------------------------------ submission ---------------------------------

// SubmitGuess validates, evaluates and commits the current draft.
// On success it advances the row, updates the legend map, transitions the
// session state, maintains statistics on terminal transitions, fires
// automatic hints while still playing, and persists the daily record in
// daily mode. The returned message is the canonical win message or the
// wrong-guess acknowledgment for this row.
func (e *Engine) SubmitGuess(ctx context.Context) ActionResult {
	if tag := e.validateSubmission(); tag != "" {
		return failure(tag)
	}

	var slots []compare.Slot
	var word string
	if e.variant == VariantWord {
		word = strings.ToLower(e.draftWord)
		slots = compare.ScoreWord(word, e.solutionWord)
	} else {
		slots = compare.ScoreFlag(e.draftFlag.attrs(), e.solutionAttrs())
	}

	e.grid[e.currentRow] = Attempt{Slots: slots, Word: word, IsSubmitted: true}
	compare.MergeBest(e.inputStates, slots)

	isCorrect := compare.AllCorrect(slots)
	priorWrong := e.currentRow
	e.currentRow++
	e.draftWord = ""
	e.draftFlag = flagDraft{}

	isGameOver := isCorrect || e.currentRow >= e.cfg.MaxAttempts
	switch {
	case isCorrect:
		e.state = StateWon
	case isGameOver:
		e.state = StateLost
	default:
		e.state = StatePlaying
	}

	if isGameOver {
		e.updateStats(ctx, isCorrect)
	} else {
		e.autoTriggerHints()
	}
	if e.isDaily {
		e.saveDaily(ctx)
	}

	if isCorrect {
		return success(winMessage(e.variant))
	}
	return success(lossMessage(priorWrong))
}

// updateStats applies a terminal transition to the aggregate statistics and
// persists the settings record.
func (e *Engine) updateStats(ctx context.Context, won bool) {
	e.stats.GamesPlayed++
	if won {
		e.stats.GamesWon++
		e.stats.CurrentStreak++
		if e.stats.CurrentStreak > e.stats.MaxStreak {
			e.stats.MaxStreak = e.stats.CurrentStreak
		}
		e.stats.GuessDistribution[e.currentRow]++
	} else {
		e.stats.CurrentStreak = 0
	}
	e.saveSettings(ctx)
}

// ------------------------------ config -------------------------------------

// UpdateConfig replaces the game configuration and rebuilds the session
// around it. Refused while a daily game is in progress: a half-played daily
// grid cannot be resized without corrupting the shared puzzle record. After
// a finished daily the rebuild switches to practice, so the day's answer
// can never be replayed and its record stays completed.
func (e *Engine) UpdateConfig(ctx context.Context, cfg GameConfig) ActionResult {
	if e.isDaily && e.state == StatePlaying && e.currentRow > 0 {
		return failure(ErrGameNotActive)
	}
	normalizeConfig(&cfg)
	e.cfg = cfg
	switch {
	case e.state == StateLoading:
	case e.isDaily && (e.state == StateWon || e.state == StateLost):
		e.StartPractice()
	default:
		e.grid = e.emptyGrid()
		e.currentRow = 0
		e.draftWord = ""
		e.draftFlag = flagDraft{}
		e.inputStates = make(map[string]compare.SlotState)
		e.hints = HintState{MaxHints: maxHints}
		e.state = StatePlaying
		if e.isDaily {
			e.saveDaily(ctx)
		}
	}
	e.saveSettings(ctx)
	return success("")
}

// ------------------------------ snapshot -----------------------------------

// Snapshot returns a deep copy of the externally visible session state.
func (e *Engine) Snapshot() Snapshot {
	grid := make([]Attempt, len(e.grid))
	for i, attempt := range e.grid {
		slots := make([]compare.Slot, len(attempt.Slots))
		copy(slots, attempt.Slots)
		grid[i] = Attempt{Slots: slots, Word: attempt.Word, IsSubmitted: attempt.IsSubmitted}
	}
	inputs := make(map[string]compare.SlotState, len(e.inputStates))
	for k, v := range e.inputStates {
		inputs[k] = v
	}
	hints := e.hints
	hints.HintHistory = append([]string(nil), e.hints.HintHistory...)
	hints.AutoTriggered = append([]int(nil), e.hints.AutoTriggered...)
	stats := e.stats
	stats.GuessDistribution = make(map[int]int, len(e.stats.GuessDistribution))
	for k, v := range e.stats.GuessDistribution {
		stats.GuessDistribution[k] = v
	}

	snap := Snapshot{
		Variant:      e.variant,
		State:        e.state,
		Grid:         grid,
		CurrentRow:   e.currentRow,
		DraftWord:    e.draftWord,
		MaxAttempts:  e.cfg.MaxAttempts,
		IsDailyMode:  e.isDaily,
		PuzzleNumber: e.puzzleNumber,
		InputStates:  inputs,
		Hints:        hints,
		Stats:        stats,
		Config:       e.cfg,
	}
	if e.variant == VariantWord {
		snap.WordLength = e.cfg.WordLength
	}
	if e.state == StateWon || e.state == StateLost {
		if e.variant == VariantWord {
			snap.Solution = &RevealedSolution{Word: e.solutionWord}
		} else {
			snap.Solution = &RevealedSolution{
				Name:      e.solutionFlag.Name,
				Emoji:     e.solutionFlag.Emoji,
				Continent: e.solutionFlag.Continent,
			}
		}
	}
	return snap
}

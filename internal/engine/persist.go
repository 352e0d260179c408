// internal/engine/persist.go
//
// Persistence records and their (de)serialization.
//
// Two records live in the blob store:
//   - settings: aggregate statistics + game config, written after every
//     statistics-affecting transition.
//   - daily: snapshot of the in-progress daily puzzle, written after every
//     submission while in daily mode and read once at startup.
//
// Storage failures are logged and swallowed; they never surface to the
// player. Malformed blobs are treated as absent.
package engine

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/wherethephoque/phoquedle/internal/compare"
)

const (
	settingsKey = "phoquedle:settings"
	dailyKey    = "phoquedle:daily"
)

// settingsRecord is the durable statistics + config blob.
type settingsRecord struct {
	Stats  Stats      `json:"stats"`
	Config GameConfig `json:"config"`
}

// dailyRecord is the durable daily-progress snapshot.
type dailyRecord struct {
	Date         string    `json:"date"`
	PuzzleNumber int       `json:"puzzleNumber"`
	SolutionID   string    `json:"solutionId"` // obfuscated, see obfuscate()
	Completed    bool      `json:"completed"`
	Grid         []Attempt `json:"attemptGrid"`
	CurrentRow   int       `json:"currentRowIndex"`
	Hints        HintState `json:"hintState"`
	GameState    GameState `json:"gameState"`
}

// saveSettings writes the settings record, best effort.
func (e *Engine) saveSettings(ctx context.Context) {
	blob, err := json.Marshal(settingsRecord{Stats: e.stats, Config: e.cfg})
	if err != nil {
		e.log.Warn().Err(err).Msg("marshal settings record")
		return
	}
	if err := e.store.Set(ctx, settingsKey, string(blob)); err != nil {
		e.log.Warn().Err(err).Msg("persist settings record")
	}
}

// loadSettings merges a previously saved settings record, if any. Malformed
// or missing blobs leave the defaults in place.
func (e *Engine) loadSettings(ctx context.Context) {
	blob, ok, err := e.store.Get(ctx, settingsKey)
	if err != nil {
		e.log.Warn().Err(err).Msg("read settings record")
		return
	}
	if !ok {
		return
	}
	var rec settingsRecord
	if err := json.Unmarshal([]byte(blob), &rec); err != nil {
		e.log.Warn().Err(err).Msg("unparseable settings record, starting fresh")
		return
	}
	e.stats = rec.Stats
	if e.stats.GuessDistribution == nil {
		e.stats.GuessDistribution = make(map[int]int)
	}
	if rec.Config.MaxAttempts > 0 {
		// Old or hand-edited blobs may lack fields; never adopt a config
		// that would shape a degenerate grid.
		normalizeConfig(&rec.Config)
		e.cfg = rec.Config
	}
}

// saveDaily writes the daily-progress record, best effort. Only meaningful
// while in daily mode; callers guard on that.
func (e *Engine) saveDaily(ctx context.Context) {
	rec := dailyRecord{
		Date:         e.dailyDate,
		PuzzleNumber: e.puzzleNumber,
		SolutionID:   obfuscate(e.solutionID()),
		Completed:    e.state == StateWon || e.state == StateLost,
		Grid:         e.grid,
		CurrentRow:   e.currentRow,
		Hints:        e.hints,
		GameState:    e.state,
	}
	blob, err := json.Marshal(rec)
	if err != nil {
		e.log.Warn().Err(err).Msg("marshal daily record")
		return
	}
	if err := e.store.Set(ctx, dailyKey, string(blob)); err != nil {
		e.log.Warn().Err(err).Msg("persist daily record")
	}
}

// loadDailyRecord reads and validates the stored daily record. Returns
// (zero, false) for missing or malformed blobs.
func (e *Engine) loadDailyRecord(ctx context.Context) (dailyRecord, bool) {
	blob, ok, err := e.store.Get(ctx, dailyKey)
	if err != nil {
		e.log.Warn().Err(err).Msg("read daily record")
		return dailyRecord{}, false
	}
	if !ok {
		return dailyRecord{}, false
	}
	var rec dailyRecord
	if err := json.Unmarshal([]byte(blob), &rec); err != nil {
		e.log.Warn().Err(err).Msg("unparseable daily record, starting fresh")
		return dailyRecord{}, false
	}
	return rec, true
}

// rebuildInputStates re-derives the cumulative best-state map from the
// submitted rows of a restored grid, instead of persisting it separately.
func rebuildInputStates(grid []Attempt) map[string]compare.SlotState {
	states := make(map[string]compare.SlotState)
	for _, attempt := range grid {
		if attempt.IsSubmitted {
			compare.MergeBest(states, attempt.Slots)
		}
	}
	return states
}

// obfuscate shifts the base64 encoding of s so the solution id in the blob
// store does not spoil the answer on casual inspection. This is obscurity,
// not security; the engine is client-resident.
func obfuscate(s string) string {
	b64 := base64.StdEncoding.EncodeToString([]byte(s))
	out := make([]byte, len(b64))
	for i := 0; i < len(b64); i++ {
		out[i] = b64[i] + 3
	}
	return string(out)
}

// deobfuscate reverses obfuscate. Malformed input decodes to "", which
// callers treat as an absent id.
func deobfuscate(s string) string {
	in := []byte(s)
	for i := range in {
		in[i] -= 3
	}
	raw, err := base64.StdEncoding.DecodeString(string(in))
	if err != nil {
		return ""
	}
	return string(raw)
}

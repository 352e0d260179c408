// internal/engine/validate.go
//
// Guess validation. Runs before every submission, never mutates state, and
// reports failures as tags from the closed enumeration. An "" tag means the
// draft is submittable.
package engine

import (
	"strings"

	"github.com/wherethephoque/phoquedle/internal/compare"
)

// validateSubmission checks the current draft for completeness, legality and
// novelty. A rejected submission never consumes an attempt.
func (e *Engine) validateSubmission() ErrorTag {
	if e.state != StatePlaying {
		return ErrGameNotActive
	}
	if e.variant == VariantWord {
		return e.validateWordDraft()
	}
	return e.validateFlagDraft()
}

func (e *Engine) validateWordDraft() ErrorTag {
	guess := strings.ToLower(e.draftWord)
	if len(guess) != e.cfg.WordLength {
		return ErrIncomplete
	}
	if !e.words.IsValidGuess(guess) {
		return ErrDictionaryInvalid
	}
	for _, attempt := range e.submittedAttempts() {
		if attempt.Word == guess {
			return ErrAlreadyTried
		}
	}
	if e.cfg.HardMode {
		if tag := e.checkHardMode(guess); tag != "" {
			return tag
		}
	}
	return ""
}

func (e *Engine) validateFlagDraft() ErrorTag {
	if !e.draftFlag.isComplete() {
		return ErrIncomplete
	}
	candidate := e.draftFlag.attrs()
	for _, attempt := range e.submittedAttempts() {
		if attrsOf(attempt) == candidate {
			return ErrAlreadyTried
		}
	}
	return ""
}

// checkHardMode enforces the hard-mode rule: every letter revealed correct
// must be reused at the same position, and every letter revealed present
// must appear somewhere in the guess.
func (e *Engine) checkHardMode(guess string) ErrorTag {
	for _, attempt := range e.submittedAttempts() {
		for i, slot := range attempt.Slots {
			switch slot.State {
			case compare.StateCorrect:
				if i >= len(guess) || string(guess[i]) != slot.Value {
					return ErrHardModeViolation
				}
			case compare.StatePresent:
				if !strings.Contains(guess, slot.Value) {
					return ErrHardModeViolation
				}
			}
		}
	}
	return ""
}

// submittedAttempts returns the rows already played this session.
func (e *Engine) submittedAttempts() []Attempt {
	var out []Attempt
	for _, attempt := range e.grid {
		if attempt.IsSubmitted {
			out = append(out, attempt)
		}
	}
	return out
}

// attrsOf reconstructs the attribute vector of a submitted flag row.
func attrsOf(attempt Attempt) compare.FlagAttrs {
	var attrs compare.FlagAttrs
	for _, slot := range attempt.Slots {
		switch slot.Key {
		case compare.KeyPrimary:
			attrs.Primary = slot.Value
		case compare.KeySecondary:
			attrs.Secondary = slot.Value
		case compare.KeyTertiary:
			attrs.Tertiary = slot.Value
		case compare.KeyPattern:
			attrs.Pattern = slot.Value
		}
	}
	return attrs
}

// internal/engine/hints.go
//
// Hint ladder: a fixed ordered sequence of exactly maxHints hints, shared by
// the manual path (RequestHint) and the automatic path (fired after crossing
// failed-guess thresholds). Both paths draw from the same sequence, so a
// manual hint advances what the next automatic trigger would reveal.
package engine

import (
	"context"
	"fmt"

	"github.com/wherethephoque/phoquedle/internal/dataset"
)

// maxHints is the ladder length. Requesting a fourth hint fails.
const maxHints = 3

// autoHintThresholds are the failed-guess counts that unlock the next hint
// without a user request. Each fires at most once per session.
var autoHintThresholds = []int{2, 4, 5}

// hintText resolves rung `index` of the ladder for the current solution.
func (e *Engine) hintText(index int) (string, bool) {
	if e.variant == VariantFlag {
		switch index {
		case 0:
			return fmt.Sprintf("This flag is from %s", e.solutionFlag.Continent), true
		case 1:
			if sub, ok := dataset.Subregion(e.solutionFlag.Continent, e.solutionFlag.Name); ok {
				return fmt.Sprintf("This flag is from %s", sub), true
			}
			return fmt.Sprintf("This flag is from %s", e.solutionFlag.Continent), true
		case 2:
			return fmt.Sprintf("The country name starts with %q", firstLetter(e.solutionFlag.Name)), true
		}
		return "", false
	}

	word := e.solutionWord
	switch index {
	case 0:
		return fmt.Sprintf("The word contains the letter %q", string(word[len(word)/2])), true
	case 1:
		return fmt.Sprintf("The word ends with %q", string(word[len(word)-1])), true
	case 2:
		return fmt.Sprintf("The word starts with %q", string(word[0])), true
	}
	return "", false
}

func firstLetter(name string) string {
	for _, r := range name {
		return string(r)
	}
	return ""
}

// RequestHint grants the next hint on user request. Allowed only while the
// game is playing and hints remain. In daily mode the updated hint state is
// persisted so a resumed session does not re-offer spent hints.
func (e *Engine) RequestHint(ctx context.Context) ActionResult {
	if e.state != StatePlaying {
		return failure(ErrGameNotActive)
	}
	if e.hints.HintsUsed >= e.hints.MaxHints {
		return failure(ErrNoMoreHints)
	}
	res := e.grantHint()
	if e.isDaily {
		e.saveDaily(ctx)
	}
	return res
}

// AcknowledgeHint clears the latest-hint marker after the UI has shown it.
func (e *Engine) AcknowledgeHint() {
	e.hints.LatestHint = ""
}

// grantHint appends the next ladder hint to the history.
func (e *Engine) grantHint() ActionResult {
	text, ok := e.hintText(e.hints.HintsUsed)
	if !ok {
		return failure(ErrNoMoreHints)
	}
	e.hints.HintsUsed++
	e.hints.HintHistory = append(e.hints.HintHistory, text)
	e.hints.LatestHint = text
	res := success("")
	res.Hint = text
	return res
}

// autoTriggerHints fires any newly crossed thresholds after a wrong guess.
// A threshold fires at most once, and crossing several in one submission
// can never push HintsUsed past MaxHints.
func (e *Engine) autoTriggerHints() {
	for _, threshold := range autoHintThresholds {
		if e.currentRow < threshold || e.autoTriggered(threshold) {
			continue
		}
		if e.hints.HintsUsed >= e.hints.MaxHints {
			break
		}
		e.grantHint()
		e.hints.AutoTriggered = append(e.hints.AutoTriggered, threshold)
	}
}

func (e *Engine) autoTriggered(threshold int) bool {
	for _, t := range e.hints.AutoTriggered {
		if t == threshold {
			return true
		}
	}
	return false
}

// internal/engine/messages.go
//
// User-facing result messages returned from SubmitGuess. Wrong guesses get a
// fixed rotation of acknowledgment messages indexed by how many wrong
// guesses came before; the rotation clamps to its final message once
// exhausted rather than cycling.
package engine

const (
	winMessageFlag = "Correct! You found the flag!"
	winMessageWord = "Correct! You found the word!"
)

var lossMessages = []string{
	"Good guess!",
	"Not quite, keep going!",
	"Getting warmer?",
	"Running out of rows...",
	"Last chance!",
}

// winMessage returns the canonical win message for the variant.
func winMessage(v Variant) string {
	if v == VariantWord {
		return winMessageWord
	}
	return winMessageFlag
}

// lossMessage returns the acknowledgment for a wrong guess, indexed by the
// number of prior wrong guesses and clamped to the last entry.
func lossMessage(priorWrong int) string {
	if priorWrong >= len(lossMessages) {
		priorWrong = len(lossMessages) - 1
	}
	if priorWrong < 0 {
		priorWrong = 0
	}
	return lossMessages[priorWrong]
}

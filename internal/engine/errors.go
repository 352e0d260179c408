// internal/engine/errors.go
//
// Closed error enumeration for engine operations. Every operation returns an
// ActionResult: success (optionally with a user-facing message) or failure
// with one of these tags. Nothing here is fatal; display text for tags is
// resolved at the presentation boundary, not in the core.
package engine

// ErrorTag identifies a recoverable validation failure.
type ErrorTag string

const (
	ErrGameNotActive     ErrorTag = "game_not_active"
	ErrIncomplete        ErrorTag = "incomplete"
	ErrAlreadyTried      ErrorTag = "already_tried"
	ErrDictionaryInvalid ErrorTag = "dictionary_invalid"
	ErrNoLettersToRemove ErrorTag = "no_letters_to_remove"
	ErrAttributeNotSet   ErrorTag = "attribute_not_set"
	ErrRowFull           ErrorTag = "row_full"
	ErrInvalidValue      ErrorTag = "invalid_value"
	ErrNoMoreHints       ErrorTag = "no_more_hints"
	ErrHardModeViolation ErrorTag = "hard_mode_violation"
)

// ActionResult is the tagged outcome of an engine operation.
type ActionResult struct {
	OK      bool     `json:"ok"`
	Error   ErrorTag `json:"error,omitempty"`
	Message string   `json:"message,omitempty"`
	Hint    string   `json:"hint,omitempty"`
}

func success(message string) ActionResult {
	return ActionResult{OK: true, Message: message}
}

func failure(tag ErrorTag) ActionResult {
	return ActionResult{Error: tag}
}

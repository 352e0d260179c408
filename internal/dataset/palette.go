// internal/dataset/palette.go
//
// The closed vocabularies for flag attributes. Guess input is validated
// against these so the grid never holds a value the comparator (or the
// legend) does not understand.
package dataset

var colors = map[string]struct{}{
	"red": {}, "blue": {}, "white": {}, "green": {}, "yellow": {}, "black": {},
	"orange": {}, "purple": {}, "pink": {}, "brown": {}, "gray": {},
}

var patterns = map[string]struct{}{
	"stripes": {}, "horizontal-stripes": {}, "vertical-stripes": {}, "cross": {},
	"circle": {}, "stars": {}, "symbol": {}, "diamond": {}, "triangle": {},
	"complex": {}, "solid": {}, "diagonal": {},
}

// IsColor reports whether s is a recognized flag color.
func IsColor(s string) bool {
	_, ok := colors[s]
	return ok
}

// IsPattern reports whether s is a recognized flag pattern.
func IsPattern(s string) bool {
	_, ok := patterns[s]
	return ok
}

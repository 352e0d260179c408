// internal/dataset/words.go
//
// Word list management for the word variant.
//
// Word Lists:
//   - "solutions": canonical answers (eligible daily/practice solutions).
//   - "valid": additional accepted guesses (solutions are always accepted).
//
// Loading behavior (LoadWords):
//  1. If WORDS_SOLUTIONS_FILE and WORDS_VALID_FILE are both set,
//     load solutions from the first and extra guesses from the second.
//  2. If only WORDS_VALID_FILE is set, use that file for both.
//  3. Otherwise fall back to the embedded defaults.
//
// Constraints:
//   - Words are normalized to lowercase and filtered to the requested length
//     and to ASCII a-z.
//   - An empty solutions list is a fatal configuration error.
package dataset

import (
	"bufio"
	_ "embed"
	"errors"
	"os"
	"strings"
)

//go:embed solutions.txt
var embeddedSolutions string

//go:embed valid.txt
var embeddedValid string

// WordList holds the solution list and the combined guess dictionary.
type WordList struct {
	solutions []string
	validSet  map[string]struct{} // solutions ∪ valid
	length    int
}

// LoadWords builds a WordList from environment-provided files or the
// embedded defaults. length is the accepted word length (letters per word).
func LoadWords(length int) (*WordList, error) {
	var solutions, valid []string

	solutionsPath := os.Getenv("WORDS_SOLUTIONS_FILE")
	validPath := os.Getenv("WORDS_VALID_FILE")

	switch {
	case solutionsPath != "" && validPath != "":
		var err error
		solutions, err = readWordFile(solutionsPath)
		if err != nil {
			return nil, err
		}
		valid, err = readWordFile(validPath)
		if err != nil {
			return nil, err
		}

	case solutionsPath == "" && validPath != "":
		var err error
		valid, err = readWordFile(validPath)
		if err != nil {
			return nil, err
		}
		solutions = valid

	default:
		solutions = strings.Split(embeddedSolutions, "\n")
		valid = strings.Split(embeddedValid, "\n")
	}

	return NewWordList(solutions, valid, length)
}

// NewWordList builds a WordList from explicit slices. Words of the wrong
// length or with non a-z characters are dropped.
func NewWordList(solutions, valid []string, length int) (*WordList, error) {
	w := &WordList{length: length, validSet: make(map[string]struct{})}
	for _, raw := range solutions {
		word := strings.TrimSpace(strings.ToLower(raw))
		if len(word) == length && isAlpha(word) {
			w.solutions = append(w.solutions, word)
			w.validSet[word] = struct{}{}
		}
	}
	for _, raw := range valid {
		word := strings.TrimSpace(strings.ToLower(raw))
		if len(word) == length && isAlpha(word) {
			w.validSet[word] = struct{}{}
		}
	}
	if len(w.solutions) == 0 {
		return nil, errors.New("dataset: solutions list is empty")
	}
	return w, nil
}

// Len reports the number of solution words.
func (w *WordList) Len() int { return len(w.solutions) }

// Solution returns the solution word at index i.
func (w *WordList) Solution(i int) string { return w.solutions[i] }

// Length is the accepted word length.
func (w *WordList) Length() int { return w.length }

// IsValidGuess reports whether word is in the combined dictionary.
func (w *WordList) IsValidGuess(word string) bool {
	_, ok := w.validSet[strings.ToLower(word)]
	return ok
}

// Stats returns counts of loaded words: (solutions, valid guesses).
func (w *WordList) Stats() (solutionCount, validCount int) {
	return len(w.solutions), len(w.validSet)
}

// readWordFile loads one candidate word per line; NewWordList normalizes
// and filters.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

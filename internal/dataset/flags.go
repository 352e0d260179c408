// internal/dataset/flags.go
//
// Flag records for the flag variant, embedded as JSON. Each record carries
// the comparable attribute vector (two or three colors plus a pattern) and
// the descriptive metadata used by hints and results.
package dataset

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
)

//go:embed flags.json
var embeddedFlags []byte

// Flag is one country flag described by its dominant colors and pattern.
// TertiaryColor is "" for two-color flags.
type Flag struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	TertiaryColor  string `json:"tertiaryColor,omitempty"`
	Pattern        string `json:"pattern"`
	Continent      string `json:"continent"`
	Emoji          string `json:"emoji"`
}

// FlagSet is the ordered flag collection with an id index.
type FlagSet struct {
	flags []Flag
	byID  map[string]int
}

// LoadFlags parses the embedded flag dataset.
func LoadFlags() (*FlagSet, error) {
	var flags []Flag
	if err := json.Unmarshal(embeddedFlags, &flags); err != nil {
		return nil, fmt.Errorf("dataset: parse flags: %w", err)
	}
	return NewFlagSet(flags)
}

// NewFlagSet builds a FlagSet from explicit records.
func NewFlagSet(flags []Flag) (*FlagSet, error) {
	if len(flags) == 0 {
		return nil, errors.New("dataset: flag list is empty")
	}
	byID := make(map[string]int, len(flags))
	for i, f := range flags {
		if f.ID == "" || f.PrimaryColor == "" || f.SecondaryColor == "" || f.Pattern == "" {
			return nil, fmt.Errorf("dataset: flag %q missing required attributes", f.Name)
		}
		byID[f.ID] = i
	}
	return &FlagSet{flags: flags, byID: byID}, nil
}

// Len reports the number of flags.
func (s *FlagSet) Len() int { return len(s.flags) }

// At returns the flag at index i.
func (s *FlagSet) At(i int) Flag { return s.flags[i] }

// ByID looks a flag up by its dataset id.
func (s *FlagSet) ByID(id string) (Flag, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Flag{}, false
	}
	return s.flags[i], true
}

// All returns the full record list (read-only by convention).
func (s *FlagSet) All() []Flag { return s.flags }

// Package scan runs a repeat search over every record of a FASTA file and hands the
// results to a sink.
package scan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dasnellings/statRepeats/alphabet"
	"github.com/dasnellings/statRepeats/estimate"
	"github.com/dasnellings/statRepeats/motif"
	"github.com/dasnellings/statRepeats/search"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings configures a run.
type Settings struct {
	Input     string
	MinLength int // 0 uses the suggested length of each record
	Mode      search.Mode
	Alphabet  alphabet.Kind
	Rules     string   // complement rule file, replaces the built in complements
	Groups    []string // protein reduction groups

	MaxGap int // -1 for no limit
	Motif  string

	Probability bool
	PValue      float64

	Exclude       int // runs of ExcludeLetter at least this long are removed, 0 disables
	ExcludeLetter byte

	PrintInstances bool
	Combined       string // search all records as one sequence with this header

	Coefficients estimate.Coefficients // optional exact values for the estimators
	Verbose      int
}

// DefaultSettings returns Settings for a direct repeat search of DNA.
func DefaultSettings() Settings {
	return Settings{
		Mode:          search.MathematicalRepeat,
		Alphabet:      alphabet.DNA,
		MaxGap:        -1,
		PValue:        0.05,
		ExcludeLetter: 'N',
	}
}

// Validate checks everything that does not depend on the records.
func (s Settings) Validate() error {
	switch {
	case s.Input == "":
		return fmt.Errorf("%w: no input file", ErrInvalidSettings)
	case s.MinLength < 0:
		return fmt.Errorf("%w: minimal fragment length %d is negative", ErrInvalidSettings, s.MinLength)
	case s.Mode < search.MathematicalRepeat || s.Mode > search.BiologicalPalindrome:
		return fmt.Errorf("%w: unknown search mode %v", ErrInvalidSettings, s.Mode)
	case s.MaxGap < -1:
		return fmt.Errorf("%w: max gap %d is negative", ErrInvalidSettings, s.MaxGap)
	case s.Exclude < 0:
		return fmt.Errorf("%w: exclude threshold %d is negative", ErrInvalidSettings, s.Exclude)
	case s.Exclude > 0 && s.ExcludeLetter == 0:
		return fmt.Errorf("%w: no letter to exclude", ErrInvalidSettings)
	case s.Probability && (s.PValue <= 0 || s.PValue > 1):
		return fmt.Errorf("%w: p-value %g is outside (0, 1]", ErrInvalidSettings, s.PValue)
	case s.Alphabet == alphabet.Protein && !s.Mode.IsMathematical():
		return fmt.Errorf("%w: complementary search types can not be used with proteins", ErrInvalidSettings)
	case s.Alphabet == alphabet.Protein && s.Rules != "":
		return fmt.Errorf("%w: proteins do not take a complement rule file", ErrInvalidSettings)
	case s.Alphabet != alphabet.Protein && len(s.Groups) > 0:
		return fmt.Errorf("%w: protein groups need the protein alphabet", ErrInvalidSettings)
	case s.Alphabet == alphabet.Generic && s.Rules == "":
		return fmt.Errorf("%w: a generic alphabet needs a complement rule file", ErrInvalidSettings)
	}
	if _, err := alphabet.NewReduction(s.Groups); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if _, err := motif.Compile(s.Motif, nil); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// baseAlphabet returns the complement table shared by every record. Proteins get theirs
// per record from ForProteins.
func (s Settings) baseAlphabet() (*alphabet.Alphabet, error) {
	if s.Rules != "" {
		return alphabet.LoadRules(s.Rules)
	}
	if s.Alphabet == alphabet.Protein {
		return nil, nil
	}
	return alphabet.New(s.Alphabet)
}

func (s Settings) alphabetName() string {
	switch {
	case s.Rules != "":
		return "generic (" + s.Rules + ")"
	case s.Alphabet == alphabet.Protein:
		return "protein"
	default:
		return strings.ToUpper(s.Alphabet.String())
	}
}

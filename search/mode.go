// Package search lays out the text a suffix array is built over for each search mode and
// decides which suffix pairs of that text are repeats.
package search

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Mode selects what counts as a repeat. Mathematical modes compare letters as they are,
// biological modes compare a word against the complement of another.
type Mode int

const (
	MathematicalRepeat     Mode = iota // dn: direct repeats
	BiologicalRepeat                   // dc: direct complementary repeats
	MathematicalPalindrome             // in: inverted repeats
	BiologicalPalindrome               // ic: inverted complementary repeats
)

var modeCodes = []string{"dn", "dc", "in", "ic"}

var modeNames = []string{"mathematical repeat", "biological repeat", "mathematical palindrome", "biological palindrome"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeCodes) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeCodes[m]
}

// Name is the long human readable name of m.
func (m Mode) Name() string {
	if m < 0 || int(m) >= len(modeNames) {
		return m.String()
	}
	return modeNames[m]
}

func (m Mode) IsRepeat() bool {
	return m == MathematicalRepeat || m == BiologicalRepeat
}

func (m Mode) IsMathematical() bool {
	return m == MathematicalRepeat || m == MathematicalPalindrome
}

// ParseMode accepts the two letter codes dn, dc, in and ic, or an unambiguous prefix of a
// long name, case insensitively.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, code := range modeCodes {
		if s == code {
			return Mode(i), nil
		}
	}
	found := -1
	if len(s) > 0 {
		for i, name := range modeNames {
			if strings.HasPrefix(name, s) || strings.HasPrefix(strings.ReplaceAll(name, " ", "-"), s) {
				if found != -1 {
					return 0, fmt.Errorf("%w: search mode %q is ambiguous", ErrInvalidArgument, s)
				}
				found = i
			}
		}
	}
	if found == -1 {
		return 0, fmt.Errorf("%w: unknown search mode %q, expected one of %s", ErrInvalidArgument, s, strings.Join(modeCodes, ", "))
	}
	return Mode(found), nil
}

// Package motif turns a motif mask into the regular expression a repeat must contain,
// along with the factors that scale the chance expectation for that restriction.
package motif

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dasnellings/statRepeats/alphabet"
)

var ErrInvalidMask = errors.New("motif mask is not correct")

// Motif is a compiled mask. Size counts mask positions and Multiplier counts how many
// alphabet words of length Size the mask admits once the free '.' positions are removed.
type Motif struct {
	Mask       string
	Regexp     *regexp.Regexp
	Multiplier int
	Size       int
}

// Compile parses a mask of letters, '.', [...] classes and [^...] negated classes. Letters
// are upper cased. An empty mask gives a nil Motif.
func Compile(mask string, a *alphabet.Alphabet) (*Motif, error) {
	if mask == "" {
		return nil, nil
	}
	m := strings.ToUpper(mask)
	answer := &Motif{Mask: m, Multiplier: 1}
	var re strings.Builder
	var j, inAlphabet int
	var negated bool
	for i := 0; i < len(m); i++ {
		switch {
		case m[i] == '.':
			re.WriteByte('.')
			answer.Size++
		case isLetter(m[i]):
			re.WriteByte(m[i])
			answer.Size++
		case m[i] == '[':
			negated = i+1 < len(m) && m[i+1] == '^'
			j = i + 1
			if negated {
				j++
			}
			inAlphabet = 0
			start := j
			for ; j < len(m) && m[j] != ']'; j++ {
				if !isLetter(m[j]) {
					return nil, fmt.Errorf("%w: %q has %q inside a class", ErrInvalidMask, mask, m[j])
				}
				if a == nil || a.Contains(m[j]) {
					inAlphabet++
				}
			}
			if j == len(m) || j == start {
				return nil, fmt.Errorf("%w: %q has an empty or unterminated class", ErrInvalidMask, mask)
			}
			if negated {
				re.WriteString("[^" + m[start:j] + "]")
			} else {
				re.WriteString("[" + m[start:j] + "]")
			}
			if inAlphabet != 0 {
				if negated {
					answer.Multiplier *= alphabetSize(a) - inAlphabet
				} else {
					answer.Multiplier *= inAlphabet
				}
			}
			answer.Size++
			i = j
		default:
			return nil, fmt.Errorf("%w: %q has unexpected %q", ErrInvalidMask, mask, m[i])
		}
	}
	var err error
	answer.Regexp, err = regexp.Compile(re.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMask, err)
	}
	return answer, nil
}

func alphabetSize(a *alphabet.Alphabet) int {
	if a == nil {
		return 0
	}
	return a.Size
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// Match reports whether the motif occurs anywhere in word. A nil Motif matches everything.
func (m *Motif) Match(word []byte) bool {
	if m == nil {
		return true
	}
	return m.Regexp.Match(word)
}

func (m *Motif) String() string {
	if m == nil {
		return ""
	}
	return m.Mask
}

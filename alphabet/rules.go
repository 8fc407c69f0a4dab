package alphabet

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// LoadRules reads a complement rule file: whitespace separated letters taken two at a time,
// each pair mapping a letter to its complement. Letters are upper cased. The alphabet size
// is the number of pairs.
func LoadRules(file string) (*Alphabet, error) {
	input := fileio.EasyOpen(file)
	var letters []byte
	var line string
	var done bool
	for line, done = fileio.EasyNextRealLine(input); !done; line, done = fileio.EasyNextRealLine(input) {
		for _, r := range line {
			if !unicode.IsSpace(r) {
				letters = append(letters, byte(unicode.ToUpper(r)))
			}
		}
	}
	err := input.Close()
	exception.PanicOnErr(err)
	return ParseRules(file, letters)
}

// ParseRules builds a generic alphabet from letters read in pairs. source names the
// origin of the letters in error messages.
func ParseRules(source string, letters []byte) (*Alphabet, error) {
	if len(letters)%2 != 0 {
		return nil, fmt.Errorf("%w: %s must hold an even number of letters, found %d", ErrInvalidArgument, source, len(letters))
	}
	a := &Alphabet{Kind: Generic}
	for i := 0; i < len(letters); i += 2 {
		a.set(letters[i], letters[i+1])
	}
	if a.Size == 0 {
		return nil, fmt.Errorf("%w: %s holds no complement rules", ErrInvalidArgument, source)
	}
	return a, nil
}

// RulesString is the inverse of LoadRules for a in the same pair format.
func RulesString(a *Alphabet) string {
	var sb strings.Builder
	for _, c := range a.Letters() {
		sb.WriteByte(c)
		sb.WriteByte(' ')
		sb.WriteByte(a.complement[c])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Package alphabet describes the letters a sequence is searched over and how each letter
// pairs with its complement.
package alphabet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vertgenlab/gonomics/dna"
)

var ErrInvalidArgument = errors.New("invalid argument")

type Kind int

const (
	DNA Kind = iota
	RNA
	Protein
	Generic
)

func (k Kind) String() string {
	switch k {
	case DNA:
		return "dna"
	case RNA:
		return "rna"
	case Protein:
		return "protein"
	case Generic:
		return "generic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts dna, rna, protein (or proteins) and generic.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "dna":
		return DNA, nil
	case "rna":
		return RNA, nil
	case "protein", "proteins":
		return Protein, nil
	case "generic":
		return Generic, nil
	}
	return DNA, fmt.Errorf("%w: unknown alphabet %q", ErrInvalidArgument, s)
}

// Alphabet is a set of letters with a complement for each. A letter is in the alphabet
// when it has a nonzero complement.
type Alphabet struct {
	Kind Kind
	Size int

	complement [256]byte
	ambiguous  [256]byte // complements for letters outside the alphabet
}

const proteinLetters = "ACDEFGHIKLMNPQRSTVWY"

// iupac ambiguity codes as A=1 C=2 G=4 T=8 masks.
var iupac = map[byte]byte{
	'R': 1 | 4, 'Y': 2 | 8, 'S': 2 | 4, 'W': 1 | 8, 'K': 4 | 8, 'M': 1 | 2,
	'B': 2 | 4 | 8, 'D': 1 | 4 | 8, 'H': 1 | 2 | 8, 'V': 1 | 2 | 4, 'N': 1 | 2 | 4 | 8,
}

// New returns one of the built in alphabets. Generic alphabets come from a rule file.
func New(kind Kind) (*Alphabet, error) {
	a := &Alphabet{Kind: kind}
	switch kind {
	case DNA:
		var b dna.Base
		for _, c := range "ACGT" {
			b = dna.StringToBase(string(c))
			a.set(byte(c), byte(dna.BaseToRune(dna.ComplementSingleBase(b))))
		}
		a.ambiguous = ambiguityComplements()
	case RNA:
		a.set('A', 'U')
		a.set('U', 'A')
		a.set('C', 'G')
		a.set('G', 'C')
	case Protein:
		for i := 0; i < len(proteinLetters); i++ {
			a.set(proteinLetters[i], proteinLetters[i])
		}
	default:
		return nil, fmt.Errorf("%w: %s alphabets are read from a complement rule file", ErrInvalidArgument, kind)
	}
	return a, nil
}

func ambiguityComplements() [256]byte {
	var answer [256]byte
	swap := func(mask byte) byte {
		// A<->T and C<->G
		return (mask&1)<<3 | (mask&8)>>3 | (mask&2)<<1 | (mask&4)>>1
	}
	for code, mask := range iupac {
		for other, otherMask := range iupac {
			if otherMask == swap(mask) {
				answer[code] = other
			}
		}
	}
	return answer
}

func (a *Alphabet) set(letter, complement byte) {
	a.complement[letter] = complement
	a.Size++
}

// Contains reports whether c is a letter of the alphabet.
func (a *Alphabet) Contains(c byte) bool {
	return a.complement[c] != 0
}

// Complement returns the complement of c. Letters outside the alphabet complement to
// their ambiguity partner when one is known and to themselves otherwise. 0x00 stays 0x00.
func (a *Alphabet) Complement(c byte) byte {
	switch {
	case c == 0:
		return 0
	case a.complement[c] != 0:
		return a.complement[c]
	case a.ambiguous[c] != 0:
		return a.ambiguous[c]
	default:
		return c
	}
}

// ComplementSeq returns the letter by letter complement of seq.
func (a *Alphabet) ComplementSeq(seq []byte) []byte {
	answer := make([]byte, len(seq))
	for i := range seq {
		answer[i] = a.Complement(seq[i])
	}
	return answer
}

// Letters returns the alphabet in byte order.
func (a *Alphabet) Letters() []byte {
	var answer []byte
	for i := range a.complement {
		if a.complement[i] != 0 {
			answer = append(answer, byte(i))
		}
	}
	return answer
}

// Clone returns an independent copy of a.
func (a *Alphabet) Clone() *Alphabet {
	answer := *a
	return &answer
}

// NonAlphabet counts the letters of seq outside the alphabet, ignoring 0x00 separators,
// and returns the distinct offending letters in byte order.
func (a *Alphabet) NonAlphabet(seq []byte) (count int, letters []byte) {
	var seen [256]bool
	for _, c := range seq {
		if c != 0 && !a.Contains(c) {
			seen[c] = true
			count++
		}
	}
	for i := range seen {
		if seen[i] {
			letters = append(letters, byte(i))
		}
	}
	return count, letters
}

func (a *Alphabet) String() string {
	return fmt.Sprintf("%s alphabet of %d letters %s", a.Kind, a.Size, a.Letters())
}

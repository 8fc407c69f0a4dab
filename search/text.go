package search

import (
	"fmt"

	"github.com/dasnellings/statRepeats/alphabet"
)

// Text is the byte string indexed for one sequence. Direct repeats use "\0 seq \0", every
// other mode appends a mirror of the sequence: "\0 seq \0 mirror \0". The mirror is the
// complement for dc, the reverse for in and the reverse complement for ic.
//
// Sequence position i sits at text position i+1 and Median is the separator between the
// sequence and its mirror.
type Text struct {
	Bytes  []byte
	SeqLen int
	Median int
	Mode   Mode
}

// NewText lays out seq for mode. a supplies complements and may be nil for mathematical modes.
func NewText(seq []byte, mode Mode, a *alphabet.Alphabet) (*Text, error) {
	n := len(seq)
	if mode < MathematicalRepeat || mode > BiologicalPalindrome {
		return nil, fmt.Errorf("%w: unknown search mode %v", ErrInvalidArgument, mode)
	}
	if !mode.IsMathematical() {
		if a == nil {
			return nil, fmt.Errorf("%w: %s needs a complement alphabet", ErrInvalidArgument, mode.Name())
		}
		if a.Kind == alphabet.Protein {
			return nil, fmt.Errorf("%w: complementary search types can not be used with proteins", ErrInvalidArgument)
		}
	}

	t := &Text{SeqLen: n, Mode: mode}
	if mode == MathematicalRepeat {
		t.Bytes = make([]byte, n+2)
		copy(t.Bytes[1:], seq)
		return t, nil
	}

	t.Median = n + 1
	t.Bytes = make([]byte, 2*n+3)
	copy(t.Bytes[1:], seq)
	mirror := t.Bytes[n+2 : 2*n+2]
	var c byte
	for i := 0; i < n; i++ {
		switch mode {
		case BiologicalRepeat:
			mirror[i] = a.Complement(seq[i])
		case MathematicalPalindrome:
			mirror[i] = seq[n-1-i]
		case BiologicalPalindrome:
			c = seq[n-1-i]
			mirror[i] = a.Complement(c)
		}
	}
	return t, nil
}

// Word returns the length letters starting at sequence position pos.
func (t *Text) Word(pos, length int) []byte {
	return t.Bytes[pos+1 : pos+1+length]
}

// Counterpart returns the word a repeat of the word at pos pairs with: the word itself for
// dn, its complement for dc, its reverse for in and its reverse complement for ic.
func (t *Text) Counterpart(pos, length int) []byte {
	switch t.Mode {
	case BiologicalRepeat:
		start := t.Median + 1 + pos
		return t.Bytes[start : start+length]
	case MathematicalPalindrome, BiologicalPalindrome:
		start := t.Median + 1 + t.SeqLen - pos - length
		return t.Bytes[start : start+length]
	default:
		return t.Word(pos, length)
	}
}

// Canonical names the repeat class of the word at pos: the smaller of the word and its
// counterpart, so a word and its counterpart are counted together.
func (t *Text) Canonical(pos, length int) string {
	w, c := t.Word(pos, length), t.Counterpart(pos, length)
	if string(c) < string(w) {
		return string(c)
	}
	return string(w)
}

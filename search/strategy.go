package search

import "regexp"

// Strategy decides which pairs of text positions sharing a common prefix are repeats.
// x and y are text positions, results are sequence positions.
type Strategy interface {
	// IsResult reports whether the suffixes at x and y matching for length letters form a
	// repeat for this mode whose words contain motif. A nil motif accepts every word.
	IsResult(x, y, length int, motif *regexp.Regexp) bool
	// UpdateRepeatLocations maps an accepted pair to sequence positions pos1 <= pos2.
	UpdateRepeatLocations(x, y, length int) (pos1, pos2 int)
	// Complement returns the counterpart of the word at sequence position pos.
	Complement(pos, length int) []byte
	// IncludePalindromes reports whether a word pairing with itself is a result.
	IncludePalindromes() bool
}

// NewStrategy returns the Strategy for t.Mode.
func NewStrategy(t *Text) Strategy {
	switch t.Mode {
	case BiologicalRepeat:
		return complementRepeat{t}
	case MathematicalPalindrome, BiologicalPalindrome:
		return palindrome{t}
	default:
		return directRepeat{t}
	}
}

func motifIn(t *Text, x, y, length int, motif *regexp.Regexp) bool {
	if motif == nil {
		return true
	}
	return motif.Match(t.Bytes[x:x+length]) || motif.Match(t.Bytes[y:y+length])
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

type directRepeat struct {
	*Text
}

func (s directRepeat) IsResult(x, y, length int, motif *regexp.Regexp) bool {
	return motif == nil || motif.Match(s.Bytes[x:x+length])
}

func (s directRepeat) UpdateRepeatLocations(x, y, length int) (int, int) {
	return ordered(x-1, y-1)
}

func (s directRepeat) Complement(pos, length int) []byte {
	return s.Counterpart(pos, length)
}

func (s directRepeat) IncludePalindromes() bool {
	return false
}

// complementRepeat pairs a word in the sequence with the complement copy of a later word,
// read from the mirror half.
type complementRepeat struct {
	*Text
}

func (s complementRepeat) IsResult(x, y, length int, motif *regexp.Regexp) bool {
	m := s.Median
	if (x < m && y > m && y-m > x) || (y < m && x > m && x-m > y) {
		return motifIn(s.Text, x, y, length, motif)
	}
	return false
}

func (s complementRepeat) UpdateRepeatLocations(x, y, length int) (int, int) {
	if y > x {
		y -= s.Median
	} else {
		x -= s.Median
	}
	return ordered(x-1, y-1)
}

func (s complementRepeat) Complement(pos, length int) []byte {
	return s.Counterpart(pos, length)
}

func (s complementRepeat) IncludePalindromes() bool {
	return false
}

// palindrome pairs a word with the reflection of a word at the same or a later position,
// read from the mirror half. A word reflecting onto itself is a palindrome centre.
type palindrome struct {
	*Text
}

func (s palindrome) IsResult(x, y, length int, motif *regexp.Regexp) bool {
	m := s.Median
	if (x < m && y > m && m+1 >= x+length+(y-m)) || (y < m && x > m && m+1 >= y+length+(x-m)) {
		return motifIn(s.Text, x, y, length, motif)
	}
	return false
}

func (s palindrome) UpdateRepeatLocations(x, y, length int) (int, int) {
	m := s.Median
	if y > m {
		y = 2*m - y - length + 1
	} else {
		x = 2*m - x - length + 1
	}
	return ordered(x-1, y-1)
}

func (s palindrome) Complement(pos, length int) []byte {
	return s.Counterpart(pos, length)
}

func (s palindrome) IncludePalindromes() bool {
	return true
}

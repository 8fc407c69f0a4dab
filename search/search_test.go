package search

import (
	"errors"
	"math/rand"
	"regexp"
	"testing"

	"github.com/dasnellings/statRepeats/alphabet"
	"github.com/vertgenlab/gonomics/dna"
)

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"dn":                      MathematicalRepeat,
		"DC":                      BiologicalRepeat,
		"in":                      MathematicalPalindrome,
		"Ic":                      BiologicalPalindrome,
		"biological-p":            BiologicalPalindrome,
		"mathematical repeat":     MathematicalRepeat,
		"mathematical-palindrome": MathematicalPalindrome,
	}
	for s, expected := range tests {
		if m, err := ParseMode(s); err != nil || m != expected {
			t.Errorf("%s: expected %v got %v (%v)", s, expected, m, err)
		}
	}
	for _, s := range []string{"", "xx", "bio", "mathematical"} {
		if _, err := ParseMode(s); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%q: expected invalid argument, got %v", s, err)
		}
	}
}

func TestNewTextLayout(t *testing.T) {
	a, _ := alphabet.New(alphabet.DNA)
	tests := []struct {
		mode     Mode
		expected string
	}{
		{MathematicalRepeat, "\x00AACG\x00"},
		{BiologicalRepeat, "\x00AACG\x00TTGC\x00"},
		{MathematicalPalindrome, "\x00AACG\x00GCAA\x00"},
		{BiologicalPalindrome, "\x00AACG\x00CGTT\x00"},
	}
	for _, test := range tests {
		text, err := NewText([]byte("AACG"), test.mode, a)
		if err != nil {
			t.Fatal(err)
		}
		if string(text.Bytes) != test.expected {
			t.Errorf("%v: expected %q got %q", test.mode, test.expected, text.Bytes)
		}
		if test.mode != MathematicalRepeat && text.Median != 5 {
			t.Errorf("%v: expected median 5 got %d", test.mode, text.Median)
		}
	}
}

func TestNewTextErrors(t *testing.T) {
	p, _ := alphabet.New(alphabet.Protein)
	for _, mode := range []Mode{BiologicalRepeat, BiologicalPalindrome} {
		if _, err := NewText([]byte("ACDE"), mode, p); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%v with proteins: expected invalid argument, got %v", mode, err)
		}
		if _, err := NewText([]byte("ACGT"), mode, nil); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%v without alphabet: expected invalid argument, got %v", mode, err)
		}
	}
	if _, err := NewText([]byte("ACDE"), MathematicalPalindrome, p); err != nil {
		t.Errorf("inverted repeats of proteins should be allowed, got %v", err)
	}
}

func TestCounterpartMatchesGonomics(t *testing.T) {
	a, _ := alphabet.New(alphabet.DNA)
	r := rand.New(rand.NewSource(3))
	seq := make([]byte, 200)
	for i := range seq {
		seq[i] = "ACGT"[r.Intn(4)]
	}
	text, err := NewText(seq, BiologicalPalindrome, a)
	if err != nil {
		t.Fatal(err)
	}
	for _, pos := range []int{0, 17, 100, 190} {
		expected := dna.BasesToString(dna.ReverseComplementAndCopy(dna.StringToBases(string(seq[pos : pos+10]))))
		if string(text.Counterpart(pos, 10)) != expected {
			t.Errorf("reverse complement at %d: expected %s got %s", pos, expected, text.Counterpart(pos, 10))
		}
	}
	whole := dna.BasesToString(dna.ReverseComplementAndCopy(dna.StringToBases(string(seq))))
	if string(text.Bytes[text.Median+1:len(text.Bytes)-1]) != whole {
		t.Errorf("mirror half is not the reverse complement")
	}
}

func TestCanonical(t *testing.T) {
	a, _ := alphabet.New(alphabet.DNA)
	text, _ := NewText([]byte("TTGAAC"), BiologicalRepeat, a)
	if text.Canonical(0, 3) != "AAC" {
		t.Errorf("expected AAC got %s", text.Canonical(0, 3))
	}
	inv, _ := NewText([]byte("TTGAAC"), MathematicalPalindrome, nil)
	if inv.Canonical(0, 3) != "GTT" || string(inv.Word(3, 3)) != "AAC" {
		t.Errorf("expected GTT and AAC got %s and %s", inv.Canonical(0, 3), inv.Word(3, 3))
	}
}

func TestDirectRepeat(t *testing.T) {
	text, _ := NewText([]byte("ACGTACGT"), MathematicalRepeat, nil)
	s := NewStrategy(text)
	if !s.IsResult(1, 5, 4, nil) {
		t.Errorf("ACGT at 0 and 4 should be a repeat")
	}
	if p1, p2 := s.UpdateRepeatLocations(5, 1, 4); p1 != 0 || p2 != 4 {
		t.Errorf("expected (0, 4) got (%d, %d)", p1, p2)
	}
	if s.IncludePalindromes() {
		t.Errorf("direct repeats have no palindromes")
	}
	if s.IsResult(1, 5, 4, regexp.MustCompile("TT")) {
		t.Errorf("motif TT is not in ACGT")
	}
}

func TestComplementRepeatOrientation(t *testing.T) {
	a, _ := alphabet.New(alphabet.DNA)
	// AAC at 0 and TTG at 4 are complements, so TTG also sits at 0 in the mirror
	text, _ := NewText([]byte("AACTTTGC"), BiologicalRepeat, a)
	s := NewStrategy(text)
	m := text.Median
	seqX, mirrorY := 1+4, m+1+0
	if string(text.Bytes[seqX:seqX+3]) != string(text.Bytes[mirrorY:mirrorY+3]) {
		t.Fatalf("test layout is wrong: %q", text.Bytes)
	}
	forward := s.IsResult(seqX, mirrorY, 3, nil)
	backward := s.IsResult(m+1+4, 1, 3, nil)
	if forward == backward {
		t.Errorf("exactly one orientation of a complementary pair should be accepted, got %v and %v", forward, backward)
	}
	var p1, p2 int
	if forward {
		p1, p2 = s.UpdateRepeatLocations(seqX, mirrorY, 3)
	} else {
		p1, p2 = s.UpdateRepeatLocations(m+1+4, 1, 3)
	}
	if p1 != 0 || p2 != 4 {
		t.Errorf("expected (0, 4) got (%d, %d)", p1, p2)
	}
	if string(s.Complement(0, 3)) != "TTG" {
		t.Errorf("expected complement TTG got %s", s.Complement(0, 3))
	}
}

func TestPalindromeCentre(t *testing.T) {
	a, _ := alphabet.New(alphabet.DNA)
	text, _ := NewText([]byte("AATT"), BiologicalPalindrome, a)
	s := NewStrategy(text)
	if !s.IncludePalindromes() {
		t.Errorf("palindromes pair with themselves")
	}
	if !s.IsResult(1, 6, 4, nil) {
		t.Errorf("AATT is its own reverse complement")
	}
	if p1, p2 := s.UpdateRepeatLocations(1, 6, 4); p1 != 0 || p2 != 0 {
		t.Errorf("expected (0, 0) got (%d, %d)", p1, p2)
	}
	if p1, p2 := s.UpdateRepeatLocations(6, 1, 4); p1 != 0 || p2 != 0 {
		t.Errorf("expected (0, 0) got (%d, %d)", p1, p2)
	}
}

func TestInvertedRepeat(t *testing.T) {
	// ACG at 0 reads GCA reversed, found at 6
	text, _ := NewText([]byte("ACGTTTGCAA"), MathematicalPalindrome, nil)
	s := NewStrategy(text)
	m := text.Median
	// ACG at sequence 0 against ACG at mirror 1, which reflects onto sequence 10-1-3 = 6
	x, y := 1, m+1+1
	if string(text.Bytes[x:x+3]) != string(text.Bytes[y:y+3]) {
		t.Fatalf("test layout is wrong: %q", text.Bytes)
	}
	if !s.IsResult(x, y, 3, nil) || !s.IsResult(y, x, 3, nil) {
		t.Errorf("ACG at 0 and GCA at 6 form an inverted repeat")
	}
	if p1, p2 := s.UpdateRepeatLocations(x, y, 3); p1 != 0 || p2 != 6 {
		t.Errorf("expected (0, 6) got (%d, %d)", p1, p2)
	}
	// the reflected pair, GCA at 6 against GCA at mirror 7, is the same repeat seen backwards
	if s.IsResult(7, m+1+7, 3, nil) {
		t.Errorf("the reflected pair should be rejected")
	}
	if string(s.Complement(0, 3)) != "GCA" {
		t.Errorf("expected GCA got %s", s.Complement(0, 3))
	}
	if !s.IsResult(x, y, 3, regexp.MustCompile("C.")) || s.IsResult(x, y, 3, regexp.MustCompile("T")) {
		t.Errorf("motif checks failed")
	}
}

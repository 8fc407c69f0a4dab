package motif

import (
	"errors"
	"testing"

	"github.com/dasnellings/statRepeats/alphabet"
)

var compileTests = []struct {
	mask       string
	regexp     string
	multiplier int
	size       int
}{
	{"A.C", "A.C", 1, 3},
	{"acg", "ACG", 1, 3},
	{"[AG]T", "[AG]T", 2, 2},
	{"[^A]CC", "[^A]CC", 3, 3},
	{"[AGX][^CT]", "[AGX][^CT]", 4, 2},
	{"G[XZ]", "G[XZ]", 1, 2},
}

func TestCompile(t *testing.T) {
	dna, _ := alphabet.New(alphabet.DNA)
	for _, test := range compileTests {
		m, err := Compile(test.mask, dna)
		if err != nil {
			t.Errorf("%s: %v", test.mask, err)
			continue
		}
		if m.Regexp.String() != test.regexp || m.Multiplier != test.multiplier || m.Size != test.size {
			t.Errorf("%s: expected (%s, %d, %d) got (%s, %d, %d)", test.mask, test.regexp, test.multiplier, test.size, m.Regexp, m.Multiplier, m.Size)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	dna, _ := alphabet.New(alphabet.DNA)
	for _, mask := range []string{"A-C", "[]A", "[AC", "[A1]", "[^]", "A*"} {
		if _, err := Compile(mask, dna); !errors.Is(err, ErrInvalidMask) {
			t.Errorf("%s: expected an invalid mask error, got %v", mask, err)
		}
	}
	m, err := Compile("", dna)
	if m != nil || err != nil {
		t.Errorf("an empty mask should give no motif")
	}
	if !m.Match([]byte("ACGT")) {
		t.Errorf("no motif should match everything")
	}
}

func TestMatch(t *testing.T) {
	m, err := Compile("A.C", nil)
	if err != nil {
		t.Fatal(err)
	}
	for word, expected := range map[string]bool{"AGC": true, "TTATCG": true, "ACG": false, "CCA": false} {
		if m.Match([]byte(word)) != expected {
			t.Errorf("%s: expected match %v", word, expected)
		}
	}
}

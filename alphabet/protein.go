package alphabet

import (
	"bytes"
	"fmt"
	"strings"
)

// Group is a class of amino acids that can be collapsed into one symbol.
type Group struct {
	Name    string
	Letters string
	Symbol  byte
}

var Groups = []Group{
	{Name: "aliphatic", Letters: "IVL", Symbol: '0'},
	{Name: "sulphur", Letters: "MC", Symbol: '1'},
	{Name: "tiny", Letters: "AGCS", Symbol: '2'},
	{Name: "aromatic", Letters: "FYWH", Symbol: '3'},
	{Name: "hydrophobic", Letters: "ACTKHWYFMILV", Symbol: '4'},
	{Name: "charged", Letters: "DEHKR", Symbol: '5'},
	{Name: "positive", Letters: "HKR", Symbol: '6'},
	{Name: "polar", Letters: "NQSTCDEHKRYW", Symbol: '7'},
	{Name: "acidic", Letters: "NQ", Symbol: '8'},
	{Name: "small", Letters: "VPAGCTSDN", Symbol: '9'},
	{Name: "hydroxylic", Letters: "ST", Symbol: '@'},
}

func GroupByName(name string) (Group, bool) {
	for _, g := range Groups {
		if g.Name == strings.ToLower(name) {
			return g, true
		}
	}
	return Group{}, false
}

// Reduction maps the letters of the selected groups onto their group symbols.
type Reduction struct {
	Groups []Group
	// Reduce is how many letters the alphabet loses, the sum of group size - 1.
	Reduce  int
	mapping [256]byte
}

// NewReduction selects groups by name. A letter may belong to at most one selected group.
func NewReduction(names []string) (*Reduction, error) {
	r := &Reduction{}
	for i := range r.mapping {
		r.mapping[i] = byte(i)
	}
	var c byte
	for _, name := range names {
		g, found := GroupByName(name)
		if !found {
			return nil, fmt.Errorf("%w: unknown protein group %q", ErrInvalidArgument, name)
		}
		for i := 0; i < len(g.Letters); i++ {
			c = g.Letters[i]
			if r.mapping[c] != c {
				return nil, fmt.Errorf("%w: letter %c is mapped more than once", ErrInvalidArgument, c)
			}
			r.mapping[c] = g.Symbol
		}
		r.Groups = append(r.Groups, g)
		r.Reduce += len(g.Letters) - 1
	}
	return r, nil
}

// Apply rewrites seq in place.
func (r *Reduction) Apply(seq []byte) {
	if r == nil || len(r.Groups) == 0 {
		return
	}
	for i := range seq {
		seq[i] = r.mapping[seq[i]]
	}
}

// ForProteins returns the protein alphabet fitted to seq: U and O join when seq holds
// them and each reduction group becomes a single symbol.
func ForProteins(seq []byte, r *Reduction) *Alphabet {
	a, _ := New(Protein)
	for _, c := range []byte("UO") {
		if bytes.IndexByte(seq, c) != -1 {
			a.set(c, c)
		}
	}
	if r != nil {
		for _, g := range r.Groups {
			a.complement[g.Symbol] = g.Symbol
		}
		a.Size -= r.Reduce
	}
	return a
}

// Describe lists the symbols in use, one line per group.
func (r *Reduction) Describe() string {
	var sb strings.Builder
	for _, g := range r.Groups {
		fmt.Fprintf(&sb, "Symbol %c is used for %s amino acids.\n", g.Symbol, g.Name)
	}
	return sb.String()
}

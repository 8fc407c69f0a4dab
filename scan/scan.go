package scan

import (
	"bytes"
	"fmt"
	"log"
	"regexp"

	"github.com/dasnellings/statRepeats/alphabet"
	"github.com/dasnellings/statRepeats/estimate"
	"github.com/dasnellings/statRepeats/factors"
	"github.com/dasnellings/statRepeats/filter"
	"github.com/dasnellings/statRepeats/motif"
	"github.com/dasnellings/statRepeats/records"
	"github.com/dasnellings/statRepeats/repeats"
	"github.com/dasnellings/statRepeats/search"
	"github.com/dasnellings/statRepeats/sink"
)

// Probability estimation is only tuned for alphabets in this range.
const (
	minEstimatedAlphabet = 4
	maxEstimatedAlphabet = 22
)

type scanner struct {
	Settings
	base      *alphabet.Alphabet
	reduction *alphabet.Reduction
	factory   estimate.Factory
	factors   *factors.Factors
	out       sink.Sink
}

// Run searches every record of s.Input and writes the results to out. out is closed
// before Run returns, even on error.
func Run(s Settings, out sink.Sink) (err error) {
	if err = s.Validate(); err != nil {
		return err
	}
	sc := scanner{Settings: s, factors: factors.New(nil), out: out}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	if sc.base, err = s.baseAlphabet(); err != nil {
		return err
	}
	if s.Alphabet == alphabet.Protein {
		if sc.reduction, err = alphabet.NewReduction(s.Groups); err != nil {
			return err
		}
	}
	if s.Probability {
		if sc.factory, err = estimate.FactoryFor(s.Mode); err != nil {
			return err
		}
		if s.Coefficients != nil {
			sc.factory = estimate.WithCoefficients(sc.factory, s.Coefficients)
		}
	}

	if err = out.Start(sc.header()); err != nil {
		return err
	}

	reader := records.GoReadToChan(s.Input, s.Combined != "")
	for r := range reader {
		if s.Verbose > 0 {
			log.Printf("Processing %s: %d letters", r.Name, len(r.Seq))
		}
		if err = sc.record(r); err != nil {
			for range reader {
			}
			return fmt.Errorf("%s: %w", r.Name, err)
		}
	}
	return nil
}

func (sc *scanner) header() sink.Header {
	h := sink.Header{
		Input:          sc.Input,
		MinLength:      sc.MinLength,
		Alphabet:       sc.alphabetName(),
		Probability:    sc.Probability,
		PValue:         sc.PValue,
		PrintInstances: sc.PrintInstances,
		Mode:           sc.Mode,
		Motif:          sc.Motif,
		Combined:       sc.Combined,
	}
	if sc.reduction != nil {
		h.Groups = sc.reduction.Describe()
	}
	return h
}

// record searches one record and reports it to the sink.
func (sc *scanner) record(r records.Record) error {
	seq := bytes.ToUpper(r.Seq)
	excluded := alphabet.ExcludeRuns(seq, sc.ExcludeLetter, sc.Exclude)
	if sc.MaxGap > len(seq) {
		return fmt.Errorf("%w: max gap %d is greater than the sequence length %d", ErrInvalidSettings, sc.MaxGap, len(seq))
	}

	a := sc.base
	if sc.Alphabet == alphabet.Protein {
		sc.reduction.Apply(seq)
		a = alphabet.ForProteins(seq, sc.reduction)
	}
	nonAlphabet, letters := a.NonAlphabet(seq)

	info := sink.RecordInfo{
		Name:          r.Name,
		Version:       r.Version,
		Index:         r.Index,
		AlphabetSize:  a.Size,
		NonAlphabet:   nonAlphabet,
		Letters:       letters,
		Exclude:       sc.Exclude > 0,
		ExcludeLetter: sc.ExcludeLetter,
		Excluded:      excluded,
	}
	if sc.Combined != "" {
		info.Name, info.Version = records.ParseSequenceName(sc.Combined)
	}
	skip, err := sc.out.BeginRecord(info)
	if err != nil || skip {
		return err
	}

	seqLen := len(seq) - excluded
	minLength, err := sc.minLength(info.Name, seqLen, a.Size)
	if err != nil {
		return err
	}
	text, err := search.NewText(seq, sc.Mode, a)
	if err != nil {
		return err
	}
	m, err := motif.Compile(sc.Motif, a)
	if err != nil {
		return err
	}
	var re *regexp.Regexp
	if m != nil {
		re = m.Regexp
	}
	p := repeats.NewParams(text, minLength, sc.MaxGap, re)

	var passed filter.Set
	if sc.Probability {
		if sc.Mode != search.BiologicalRepeat && (a.Size < minEstimatedAlphabet || a.Size > maxEstimatedAlphabet) {
			log.Printf("WARNING: alphabet of %s has %d letters, probability estimation is not performed", info.Name, a.Size)
			return sc.out.AfterEverySequence(nil)
		}
		if passed, err = sc.significant(text, p, seqLen, a.Size, m); err != nil {
			return err
		}
	}

	var counts []int
	var outErr error
	err = repeats.Enumerate(p, func(e repeats.Event) {
		if passed != nil && !passed.Contains(text.Canonical(e.Pos1, e.Length)) {
			return
		}
		if sc.PrintInstances && outErr == nil {
			outErr = sc.output(r, text, p.Strategy, e)
		}
		if len(counts) <= e.Length {
			counts = append(counts, make([]int, e.Length+1-len(counts))...)
		}
		counts[e.Length]++
	})
	if err != nil {
		return err
	}
	if outErr != nil {
		return outErr
	}
	return sc.out.AfterEverySequence(counts)
}

// minLength resolves the minimal fragment length of one record, warning when the chosen
// length is below the one suggested for its size.
func (sc *scanner) minLength(name string, seqLen, alphabetSize int) (int, error) {
	suggested := estimate.SuggestLength(seqLen, alphabetSize, sc.Mode == search.MathematicalRepeat)
	if sc.MinLength == 0 {
		if suggested == 0 {
			return 0, fmt.Errorf("%w: no minimal fragment length given and none can be suggested for an alphabet of %d letters", ErrInvalidSettings, alphabetSize)
		}
		if sc.Verbose > 0 {
			log.Printf("Using suggested minimal fragment length %d for %s", suggested, name)
		}
		return suggested, nil
	}
	if suggested > sc.MinLength {
		log.Printf("WARNING: for sequence %s with length %d and alphabet cardinality %d we suggest using results starting from minimal length %d", name, seqLen, alphabetSize, suggested)
	}
	return sc.MinLength, nil
}

// significant counts the pairs formed by every word and keeps the words whose group is
// unlikely by chance.
func (sc *scanner) significant(text *search.Text, p repeats.Params, seqLen, alphabetSize int, m *motif.Motif) (filter.Set, error) {
	h := make(filter.Histogram)
	err := repeats.Enumerate(p, func(e repeats.Event) {
		h.Add(text.Canonical(e.Pos1, e.Length))
	})
	if err != nil {
		return nil, err
	}
	if sc.Verbose > 0 {
		log.Printf("Counted %d distinct words", len(h))
	}
	fp := filter.Params{
		SeqLen:       seqLen,
		AlphabetSize: alphabetSize,
		PValue:       sc.PValue,
		Factory:      sc.factory,
		Factors:      sc.factors,
	}
	if m != nil {
		fp.MotifMultiplier, fp.MotifSize = m.Multiplier, m.Size
	}
	passed, err := filter.Filter(h, fp)
	if err != nil {
		return nil, err
	}
	if passed == nil {
		passed = make(filter.Set)
	}
	return passed, nil
}

func (sc *scanner) output(r records.Record, text *search.Text, strategy search.Strategy, e repeats.Event) error {
	rec1, pos1 := r.Index.Locate(e.Pos1)
	rec2, pos2 := r.Index.Locate(e.Pos2)
	return sc.out.OutputPairs(pos1, pos2, rec1, rec2, text.Word(e.Pos1, e.Length), strategy.Complement(e.Pos1, e.Length))
}

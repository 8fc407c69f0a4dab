package sink

import (
	"fmt"
	"io"

	"github.com/dasnellings/statRepeats/filter"
)

// Statistics counts how many words form each number of pairs, per length, over the whole
// run. Nothing per pair is written.
type Statistics struct {
	w      io.Writer
	counts filter.Histogram
	Totals filter.Totals
}

func NewStatistics(w io.Writer) *Statistics {
	return &Statistics{w: w, counts: make(filter.Histogram), Totals: make(filter.Totals)}
}

func (s *Statistics) Start(h Header) error {
	return writeHeader(s.w, h)
}

func (s *Statistics) BeginRecord(info RecordInfo) (bool, error) {
	var err error
	if info.Version != 0 {
		_, err = fmt.Fprintf(s.w, "Processing sequence %s.\nVersion %d.\nComplete sequence name is %s.%d.\n\n", info.Name, info.Version, info.Name, info.Version)
	} else {
		_, err = fmt.Fprintf(s.w, "Processing sequence %s.\n\n", info.Name)
	}
	return false, err
}

// OutputPairs counts the word under the smaller of text and complement, so a word and its
// counterpart share a count.
func (s *Statistics) OutputPairs(pos1, pos2, rec1, rec2 int, text, complement []byte) error {
	if string(complement) < string(text) {
		s.counts.Add(string(complement))
	} else {
		s.counts.Add(string(text))
	}
	return nil
}

func (s *Statistics) AfterEverySequence(counts []int) error {
	s.Totals.Add(s.counts)
	s.counts.Clear()
	_, err := fmt.Fprintln(s.w, "Sequence done")
	return err
}

// Close writes length,pairs,words rows with zero rows for the missing pair counts.
func (s *Statistics) Close() error {
	for _, g := range s.Totals.Filled() {
		if _, err := fmt.Fprintf(s.w, "%d,%d,%d\n", g.Length, g.Count, g.Words); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(s.w, "Total: %d\n", s.Totals.Pairs())
	return err
}

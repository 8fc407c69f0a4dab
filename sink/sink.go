// Package sink writes repeat pairs and per record summaries. A run calls Start once, then
// BeginRecord, OutputPairs and AfterEverySequence for every record, then Close.
package sink

import (
	"errors"
	"fmt"
	"io"

	"github.com/dasnellings/statRepeats/fai"
	"github.com/dasnellings/statRepeats/search"
)

type Sink interface {
	Start(h Header) error
	// BeginRecord reports whether the record should be skipped.
	BeginRecord(info RecordInfo) (skip bool, err error)
	// OutputPairs writes one repeat. Positions are local to records rec1 and rec2 of the
	// current record's index, text is the repeat and complement its counterpart.
	OutputPairs(pos1, pos2, rec1, rec2 int, text, complement []byte) error
	// AfterEverySequence receives the number of repeats found per length.
	AfterEverySequence(counts []int) error
	Close() error
}

// Header describes the run.
type Header struct {
	Input          string
	MinLength      int
	Alphabet       string
	Groups         string // protein group symbols, one line each
	Probability    bool
	PValue         float64
	PrintInstances bool
	Mode           search.Mode
	Motif          string
	Combined       string
}

// RecordInfo describes one record before its repeats are written.
type RecordInfo struct {
	Name          string
	Version       int
	Index         fai.Index
	AlphabetSize  int
	NonAlphabet   int
	Letters       []byte
	Exclude       bool
	ExcludeLetter byte
	Excluded      int
}

func writeHeader(w io.Writer, h Header) error {
	var err error
	write := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	write("Input file is %s.\n", h.Input)
	write("Minimal fragment length is %d.\n", h.MinLength)
	write("Working with %s sequence.\n", h.Alphabet)
	write("%s", h.Groups)
	if h.Probability {
		write("Working with probability estimation.\nP value is : %f.\n", h.PValue)
	} else {
		write("Working without probability estimation.\n")
	}
	if h.PrintInstances {
		write("Printing all instances.\n")
	} else {
		write("Not printing all instances.\n")
	}
	if h.Motif != "" {
		write("Finding repeats with motif %s.\n", h.Motif)
	}
	if h.Combined != "" {
		write("Finding repeats in all sequences together as %s.\n", h.Combined)
	}
	direction, kind := "direct", "non-complementary"
	if !h.Mode.IsRepeat() {
		direction = "inverse"
	}
	if !h.Mode.IsMathematical() {
		kind = "complementary"
	}
	write("Looking for %s %s repeats.\n", direction, kind)
	return err
}

func writeRecordInfo(w io.Writer, info RecordInfo) error {
	var err error
	write := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	if info.Version != 0 {
		write("Complete sequence name is %s.%d.\nVersion is %d.\n", info.Name, info.Version, info.Version)
	}
	write("Alphabet size is %d.\n", info.AlphabetSize)
	write("Input sequence has %d letters that are not in expected alphabet.\n", info.NonAlphabet)
	if info.NonAlphabet != 0 {
		write("Letters are : ")
		for i := range info.Letters {
			if i > 0 {
				write(", ")
			}
			write("%c", info.Letters[i])
		}
		write(".\n")
	}
	if info.Exclude {
		write("Input sequence has %d %c letters that are excluded from input sequence.\n", info.Excluded, info.ExcludeLetter)
	}
	return err
}

// pairLine formats a repeat with inclusive end positions. names is nil outside of
// combined runs.
func pairLine(prefix string, names []string, pos1, pos2, rec1, rec2 int, text, complement []byte) string {
	length := len(text)
	if names != nil {
		return fmt.Sprintf("%s%s,%d,%d,%s,%d,%d,%d,%s,%s\n", prefix, names[rec1], pos1, pos1+length-1, names[rec2], pos2, pos2+length-1, length, text, complement)
	}
	return fmt.Sprintf("%s%d,%d,%d,%d,%d,%s,%s\n", prefix, pos1, pos1+length-1, pos2, pos2+length-1, length, text, complement)
}

func writeTotals(w io.Writer, counts []int) error {
	var err error
	for length, count := range counts {
		if count != 0 {
			if _, err = fmt.Fprintf(w, "Total for length %d is %d.\n", length, count); err != nil {
				return err
			}
		}
	}
	return nil
}

// Multi sends every call to each of its sinks in order.
type Multi []Sink

func (m Multi) Start(h Header) error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Start(h))
	}
	return errors.Join(errs...)
}

// BeginRecord skips the record when any sink asks to.
func (m Multi) BeginRecord(info RecordInfo) (bool, error) {
	var errs []error
	var skip bool
	for _, s := range m {
		curr, err := s.BeginRecord(info)
		skip = skip || curr
		errs = append(errs, err)
	}
	return skip, errors.Join(errs...)
}

func (m Multi) OutputPairs(pos1, pos2, rec1, rec2 int, text, complement []byte) error {
	for _, s := range m {
		if err := s.OutputPairs(pos1, pos2, rec1, rec2, text, complement); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) AfterEverySequence(counts []int) error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.AfterEverySequence(counts))
	}
	return errors.Join(errs...)
}

func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		errs = append(errs, s.Close())
	}
	return errors.Join(errs...)
}

// Package records reads the sequences repeats are searched in from FASTA files. Letters
// are kept as bytes so the same reader serves nucleotides and proteins.
package records

import (
	"strings"

	"github.com/dasnellings/statRepeats/fai"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// Record is one sequence, or every sequence of a file joined by 0x00 separators.
type Record struct {
	Header  string // header line without '>'
	Name    string
	Version int
	Seq     []byte
	Index   fai.Index // one entry per sequence in Seq
}

// Locate returns the name of the sequence holding pos and the position within it.
func (r *Record) Locate(pos int) (name string, local int) {
	var i int
	i, local = r.Index.Locate(pos)
	if r.Index.Len() == 0 {
		return r.Name, local
	}
	return r.Index.Name(i), local
}

// GoReadToChan reads file in the background. When combined is set every sequence of the
// file is joined into a single Record named after the first one.
func GoReadToChan(file string, combined bool) <-chan Record {
	ans := make(chan Record, 100)
	go readToChan(file, combined, ans)
	return ans
}

// Read returns every Record of file.
func Read(file string, combined bool) []Record {
	var answer []Record
	for r := range GoReadToChan(file, combined) {
		answer = append(answer, r)
	}
	return answer
}

func readToChan(file string, combined bool, c chan<- Record) {
	input := fileio.EasyOpen(file)
	var curr, joined Record
	var started bool
	var line string
	var done bool
	for line, done = fileio.EasyNextRealLine(input); !done; line, done = fileio.EasyNextRealLine(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line[0] == '>' {
			if started {
				finish(&curr, &joined, combined, c)
			}
			started = true
			curr = newRecord(line[1:])
			continue
		}
		started = true
		curr.Seq = append(curr.Seq, line...)
	}
	if started {
		finish(&curr, &joined, combined, c)
	}
	if combined && joined.Index.Len() > 0 {
		c <- joined
	}
	err := input.Close()
	exception.PanicOnErr(err)
	close(c)
}

func newRecord(header string) Record {
	var r Record
	r.Header = header
	r.Name, r.Version = ParseSequenceName(header)
	return r
}

func finish(curr, joined *Record, combined bool, c chan<- Record) {
	curr.Index.Add(curr.Name, len(curr.Seq))
	if !combined {
		c <- *curr
		return
	}
	if joined.Index.Len() == 0 {
		joined.Header, joined.Name, joined.Version = curr.Header, curr.Name, curr.Version
	} else {
		joined.Seq = append(joined.Seq, 0)
	}
	joined.Index.Add(curr.Name, len(curr.Seq))
	joined.Seq = append(joined.Seq, curr.Seq...)
}

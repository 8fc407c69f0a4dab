package sink

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/vertgenlab/gonomics/fileio"
)

// File writes every pair as a CSV line prefixed with the record name.
type File struct {
	out   *fileio.EasyWriter
	name  string
	names []string
	join  bool
}

func NewFile(filename string) *File {
	return &File{out: fileio.EasyCreate(filename)}
}

func (f *File) Start(h Header) error {
	f.join = h.Combined != ""
	return writeHeader(f.out, h)
}

func (f *File) BeginRecord(info RecordInfo) (bool, error) {
	f.name = info.Name
	f.names = nil
	if f.join {
		f.names = info.Index.Names()
	}
	if _, err := fmt.Fprintf(f.out, "%s\n", info.Name); err != nil {
		return false, err
	}
	return false, writeRecordInfo(f.out, info)
}

func (f *File) OutputPairs(pos1, pos2, rec1, rec2 int, text, complement []byte) error {
	_, err := io.WriteString(f.out, pairLine(f.name+",", f.names, pos1, pos2, rec1, rec2, text, complement))
	return err
}

func (f *File) AfterEverySequence(counts []int) error {
	if _, err := fmt.Fprintln(f.out); err != nil {
		return err
	}
	if err := writeTotals(f.out, counts); err != nil {
		return err
	}
	_, err := fmt.Fprintln(f.out)
	return err
}

func (f *File) Close() error {
	return f.out.Close()
}

// triple is the .load, .stat and .id files of one output name.
type triple struct {
	load, stat, id *fileio.EasyWriter
}

func createTriple(name string) triple {
	return triple{
		load: fileio.EasyCreate(name + ".load"),
		stat: fileio.EasyCreate(name + ".stat"),
		id:   fileio.EasyCreate(name + ".id"),
	}
}

func (t triple) close() error {
	var err error
	for _, w := range []*fileio.EasyWriter{t.load, t.stat, t.id} {
		if curr := w.Close(); curr != nil && err == nil {
			err = curr
		}
	}
	return err
}

// Load writes pairs to name.load, summaries to name.stat and record names to name.id for
// the whole run.
type Load struct {
	triple
	name  string
	names []string
	join  bool
}

func NewLoad(name string) *Load {
	return &Load{triple: createTriple(name)}
}

func (l *Load) Start(h Header) error {
	l.join = h.Combined != ""
	return writeHeader(l.stat, h)
}

func (l *Load) BeginRecord(info RecordInfo) (bool, error) {
	l.name = info.Name
	l.names = nil
	if l.join {
		l.names = info.Index.Names()
	}
	if _, err := fmt.Fprintf(l.id, "%s,\n", info.Name); err != nil {
		return false, err
	}
	return false, writeRecordInfo(l.stat, info)
}

func (l *Load) OutputPairs(pos1, pos2, rec1, rec2 int, text, complement []byte) error {
	_, err := io.WriteString(l.load, pairLine(l.name+",", l.names, pos1, pos2, rec1, rec2, text, complement))
	return err
}

func (l *Load) AfterEverySequence(counts []int) error {
	return writeTotals(l.stat, counts)
}

func (l *Load) Close() error {
	return l.close()
}

// Split writes a .load, .stat and .id file for every record, named after the record, in
// dir. The .id file holds the record index.
type Split struct {
	dir    string
	header Header
	curr   *triple
	name   string
	names  []string
}

func NewSplit(dir string) *Split {
	return &Split{dir: dir}
}

func (s *Split) Start(h Header) error {
	s.header = h
	return nil
}

func (s *Split) BeginRecord(info RecordInfo) (bool, error) {
	if err := s.closeRecord(); err != nil {
		return false, err
	}
	t := createTriple(filepath.Join(s.dir, info.Name))
	s.curr = &t
	s.name = info.Name
	s.names = nil
	if s.header.Combined != "" {
		s.names = info.Index.Names()
	}
	if err := writeHeader(t.stat, s.header); err != nil {
		return false, err
	}
	if _, err := io.WriteString(t.id, info.Index.String()); err != nil {
		return false, err
	}
	return false, writeRecordInfo(t.stat, info)
}

func (s *Split) OutputPairs(pos1, pos2, rec1, rec2 int, text, complement []byte) error {
	_, err := io.WriteString(s.curr.load, pairLine(s.name+",", s.names, pos1, pos2, rec1, rec2, text, complement))
	return err
}

func (s *Split) AfterEverySequence(counts []int) error {
	return writeTotals(s.curr.stat, counts)
}

func (s *Split) closeRecord() error {
	if s.curr == nil {
		return nil
	}
	err := s.curr.close()
	s.curr = nil
	return err
}

func (s *Split) Close() error {
	return s.closeRecord()
}

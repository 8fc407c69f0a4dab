// Package fai indexes the records joined into one search text so positions in the joined
// sequence can be mapped back to the record they came from.
package fai

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// Index stores the offset of each record in a joined sequence. Records are separated by
// a single 0x00 byte.
type Index struct {
	records []recordOffset // for search by index
	nameMap map[string]int // maps record name to index in records
}

// recordOffset is one line of an index file.
type recordOffset struct {
	name   string // Name of the record
	len    int    // Length of the record, in letters
	offset int    // Position of the record's first letter in the joined sequence
}

// String method for Index enables easy writing with the fmt package.
func (idx Index) String() string {
	answer := new(strings.Builder)
	for i := range idx.records {
		answer.WriteString(idx.records[i].String())
		answer.WriteByte('\n')
	}
	return answer.String()
}

// String method for recordOffset enables easy writing with the fmt package.
func (r recordOffset) String() string {
	return fmt.Sprintf("%s\t%d\t%d", r.name, r.len, r.offset)
}

// Add appends a record after the ones already indexed and returns its offset.
func (idx *Index) Add(name string, length int) int {
	var offset int
	if n := len(idx.records); n > 0 {
		offset = idx.records[n-1].offset + idx.records[n-1].len + 1
	}
	idx.records = append(idx.records, recordOffset{name: name, len: length, offset: offset})
	if idx.nameMap == nil {
		idx.nameMap = make(map[string]int)
	}
	if _, found := idx.nameMap[name]; !found {
		idx.nameMap[name] = len(idx.records) - 1
	}
	return offset
}

// Len is the number of records.
func (idx Index) Len() int {
	return len(idx.records)
}

func (idx Index) Name(i int) string {
	return idx.records[i].name
}

func (idx Index) Names() []string {
	answer := make([]string, len(idx.records))
	for i := range idx.records {
		answer[i] = idx.records[i].name
	}
	return answer
}

func (idx Index) Offset(i int) int {
	return idx.records[i].offset
}

// Size returns the length of the first record named name, or -1 when no record has it.
func (idx Index) Size(name string) int {
	i, found := idx.nameMap[name]
	if !found {
		return -1
	}
	return idx.records[i].len
}

// Locate returns the record holding pos and the position within that record. A separator
// position belongs to the record before it.
func (idx Index) Locate(pos int) (record, local int) {
	if len(idx.records) == 0 {
		return 0, pos
	}
	record = sort.Search(len(idx.records), func(i int) bool {
		return idx.records[i].offset > pos
	}) - 1
	if record < 0 {
		record = 0
	}
	return record, pos - idx.records[record].offset
}

// ReadIndex reads an index file written from Index.String.
func ReadIndex(filename string) Index {
	file := fileio.EasyOpen(filename)
	var answer Index
	var curr recordOffset
	var line string
	var col []string
	var done bool
	var err error
	for line, done = fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		col = strings.Split(line, "\t")
		if len(col) != 3 {
			log.Fatalf("ERROR: malformed index file: %s\nerror on line:\n%s\n", filename, line)
		}

		curr.name = col[0]
		curr.len, err = strconv.Atoi(col[1])
		exception.PanicOnErr(err)
		curr.offset, err = strconv.Atoi(col[2])
		exception.PanicOnErr(err)
		if n := len(answer.records); n > 0 && curr.offset <= answer.records[n-1].offset {
			log.Fatalf("ERROR: offsets must increase in index file: %s\nerror on line:\n%s\n", filename, line)
		}

		answer.records = append(answer.records, curr)
	}

	err = file.Close()
	exception.PanicOnErr(err)

	answer.nameMap = make(map[string]int)
	for i := len(answer.records) - 1; i >= 0; i-- {
		answer.nameMap[answer.records[i].name] = i
	}
	return answer
}

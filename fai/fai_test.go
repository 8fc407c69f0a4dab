package fai

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

func testIndex() Index {
	var idx Index
	idx.Add("seqA", 4)
	idx.Add("seqB", 3)
	idx.Add("seqC", 10)
	return idx
}

func TestAdd(t *testing.T) {
	idx := testIndex()
	expected := []int{0, 5, 9}
	for i := range expected {
		if idx.Offset(i) != expected[i] {
			t.Errorf("record %d: expected offset %d got %d", i, expected[i], idx.Offset(i))
		}
	}
	if idx.Len() != 3 || idx.Name(1) != "seqB" || idx.Size("seqC") != 10 || idx.Size("missing") != -1 {
		t.Errorf("unexpected index:\n%s", idx)
	}
}

func TestLocate(t *testing.T) {
	idx := testIndex()
	tests := []struct{ pos, record, local int }{
		{0, 0, 0},
		{3, 0, 3},
		{4, 0, 4}, // separator
		{5, 1, 0},
		{7, 1, 2},
		{9, 2, 0},
		{18, 2, 9},
	}
	for _, test := range tests {
		record, local := idx.Locate(test.pos)
		if record != test.record || local != test.local {
			t.Errorf("position %d: expected (%d, %d) got (%d, %d)", test.pos, test.record, test.local, record, local)
		}
	}
	var empty Index
	if record, local := empty.Locate(7); record != 0 || local != 7 {
		t.Errorf("empty index should leave positions alone")
	}
}

func TestReadIndex(t *testing.T) {
	idx := ReadIndex("testdata/records.idx")
	if idx.String() != testIndex().String() {
		t.Errorf("expected\n%s\ngot\n%s", testIndex(), idx)
	}

	file := filepath.Join(t.TempDir(), "out.idx")
	out := fileio.EasyCreate(file)
	_, err := fmt.Fprint(out, testIndex())
	exception.PanicOnErr(err)
	err = out.Close()
	exception.PanicOnErr(err)
	if again := ReadIndex(file); again.String() != idx.String() || again.Size("seqB") != 3 {
		t.Errorf("written index does not read back:\n%s", again)
	}
	if names := idx.Names(); len(names) != 3 || names[2] != "seqC" {
		t.Errorf("unexpected names %v", names)
	}
}

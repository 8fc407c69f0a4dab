package records

import "testing"

func TestParseSequenceName(t *testing.T) {
	tests := []struct {
		header  string
		name    string
		version int
	}{
		{"gi|30271926|gb|AY278741.1| SARS coronavirus Urbani", "AY278741", 1},
		{"gi|12345|ref|NC_000913.3|", "NC_000913", 3},
		{"gi|12345|ref|NC_000913.x|", "NC_000913.x", 0},
		{"gi|12345|emb|X56734|", "X56734", 0},
		{"sp|P69905|HBA_HUMAN Hemoglobin subunit alpha", "P69905", 0},
		{"tr|Q9XYZ1|Q9XYZ1_9ZZZZ", "Q9XYZ1", 0},
		{"gb|AAB18559.1| unnamed", "AAB18559.1", 0},
		{"DisProt|DP00003|uniprot|P49913", "DP00003", 0},
		{"pir||A12345 cytochrome c", "A12345", 0},
		{"prf||1234567A protein", "1234567A", 0},
		{"chr1 some description", "chr1", 0},
		{"single", "single", 0},
	}
	for _, test := range tests {
		name, version := ParseSequenceName(test.header)
		if name != test.name || version != test.version {
			t.Errorf("%s: expected (%s, %d) got (%s, %d)", test.header, test.name, test.version, name, version)
		}
	}
}

func TestRead(t *testing.T) {
	recs := Read("testdata/small.fa", false)
	if len(recs) != 3 {
		t.Fatalf("expected 3 records got %d", len(recs))
	}
	expected := []struct {
		name, seq string
		version   int
	}{
		{"AY278741", "acgtacgtAAAC", 1},
		{"P69905", "MVLSPADKTN", 0},
		{"plain", "GATTACA", 0},
	}
	for i := range expected {
		if recs[i].Name != expected[i].name || string(recs[i].Seq) != expected[i].seq || recs[i].Version != expected[i].version {
			t.Errorf("record %d: expected %v got %s %s %d", i, expected[i], recs[i].Name, recs[i].Seq, recs[i].Version)
		}
		if recs[i].Index.Len() != 1 || recs[i].Index.Size(expected[i].name) != len(expected[i].seq) {
			t.Errorf("record %d: unexpected index %s", i, recs[i].Index)
		}
	}
	if recs[2].Header != "plain description here" {
		t.Errorf("header not kept: %s", recs[2].Header)
	}
}

func TestReadCombined(t *testing.T) {
	recs := Read("testdata/small.fa", true)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record got %d", len(recs))
	}
	r := recs[0]
	if string(r.Seq) != "acgtacgtAAAC\x00MVLSPADKTN\x00GATTACA" {
		t.Errorf("unexpected joined sequence %q", r.Seq)
	}
	if r.Name != "AY278741" || r.Index.Len() != 3 {
		t.Errorf("unexpected record %s with index\n%s", r.Name, r.Index)
	}
	tests := []struct {
		pos   int
		name  string
		local int
	}{
		{0, "AY278741", 0},
		{11, "AY278741", 11},
		{13, "P69905", 0},
		{24, "plain", 0},
		{30, "plain", 6},
	}
	for _, test := range tests {
		if name, local := r.Locate(test.pos); name != test.name || local != test.local {
			t.Errorf("position %d: expected %s:%d got %s:%d", test.pos, test.name, test.local, name, local)
		}
	}
}

package filter

import (
	"errors"
	"math"
	"testing"

	"github.com/dasnellings/statRepeats/estimate"
	"github.com/dasnellings/statRepeats/factors"
	"github.com/dasnellings/statRepeats/search"
)

type constant float64

func (c constant) Compute(k int) (float64, error) {
	return float64(c), nil
}

func constantFactory(expected float64, calls *int) estimate.Factory {
	return func(seqLen, fragLen, alphabetSize int, f *factors.Factors) (estimate.Estimator, error) {
		*calls++
		return constant(expected), nil
	}
}

func testHistogram() Histogram {
	h := make(Histogram)
	for _, w := range []string{"AAA", "CCC", "GGG", "AAA", "CCC", "GGG", "ACGT"} {
		h.Add(w)
	}
	return h
}

func TestCategorize(t *testing.T) {
	h := testHistogram()
	h.Add("TTT")
	expected := []Group{
		{Key: Key{Length: 3, Count: 1}, Words: 1},
		{Key: Key{Length: 3, Count: 2}, Words: 3},
		{Key: Key{Length: 4, Count: 1}, Words: 1},
	}
	answer := Categorize(h)
	if len(answer) != len(expected) {
		t.Fatalf("expected %v got %v", expected, answer)
	}
	for i := range expected {
		if answer[i] != expected[i] {
			t.Errorf("group %d: expected %v got %v", i, expected[i], answer[i])
		}
	}
	h.Clear()
	if len(h) != 0 || len(Categorize(h)) != 0 {
		t.Errorf("cleared histogram should be empty")
	}
}

func TestFilter(t *testing.T) {
	var calls int
	// Poisson(0.5) needs 3 words for p = 0.05
	p := Params{SeqLen: 1000, AlphabetSize: 4, PValue: 0.05, Factory: constantFactory(0.5, &calls)}
	set, err := Filter(testHistogram(), p)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"AAA", "CCC", "GGG"} {
		if !set.Contains(w) {
			t.Errorf("%s should pass", w)
		}
	}
	if set.Contains("ACGT") || len(set) != 3 {
		t.Errorf("ACGT is alone in its group and should not pass, got %v", set)
	}
	if calls != 2 {
		t.Errorf("expected one estimator per length, got %d", calls)
	}
}

func TestEvaluateMotifScaling(t *testing.T) {
	var calls int
	p := Params{SeqLen: 1000, AlphabetSize: 4, PValue: 0.05, Factory: constantFactory(0.5, &calls), MotifMultiplier: 1, MotifSize: 2}
	groups, err := Evaluate(testHistogram(), p)
	if err != nil {
		t.Fatal(err)
	}
	for _, g := range groups {
		if math.Abs(g.Expected-0.5/16) > 1e-12 {
			t.Errorf("expected 0.5 / 4^2 got %g", g.Expected)
		}
		if g.Bound != 1 || !g.Passed {
			t.Errorf("a single word is significant against %g expected, got %v", g.Expected, g)
		}
	}
}

func TestFilterErrors(t *testing.T) {
	if _, err := Filter(testHistogram(), Params{PValue: 0.05}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected invalid argument without an estimator, got %v", err)
	}
	var calls int
	if _, err := Filter(testHistogram(), Params{PValue: 0, Factory: constantFactory(1, &calls)}); !errors.Is(err, estimate.ErrInvalidArgument) {
		t.Errorf("expected invalid p-value, got %v", err)
	}
	if _, err := Filter(testHistogram(), Params{PValue: 0.05, Factory: constantFactory(math.NaN(), &calls)}); !errors.Is(err, estimate.ErrNumeric) {
		t.Errorf("expected numeric error, got %v", err)
	}
	failing := func(seqLen, fragLen, alphabetSize int, f *factors.Factors) (estimate.Estimator, error) {
		return nil, estimate.ErrInvalidArgument
	}
	if _, err := Filter(testHistogram(), Params{PValue: 0.05, Factory: failing}); !errors.Is(err, estimate.ErrInvalidArgument) {
		t.Errorf("expected the estimator error, got %v", err)
	}
	set, err := Filter(make(Histogram), Params{PValue: 0.05, Factory: failing})
	if err != nil || len(set) != 0 {
		t.Errorf("empty histogram should give an empty set, got %v %v", set, err)
	}
}

func TestEvaluateWithEstimator(t *testing.T) {
	factory, err := estimate.FactoryFor(search.MathematicalRepeat)
	if err != nil {
		t.Fatal(err)
	}
	groups, err := Evaluate(testHistogram(), Params{SeqLen: 1000, AlphabetSize: 4, PValue: 0.05, Factory: factory})
	if err != nil {
		t.Fatal(err)
	}
	for _, g := range groups {
		if g.Expected < 0 || math.IsInf(g.Expected, 0) || g.Bound < 1 {
			t.Errorf("unexpected group %v", g)
		}
	}
}

func TestTotals(t *testing.T) {
	totals := make(Totals)
	totals.Add(testHistogram())
	h := make(Histogram)
	for i := 0; i < 4; i++ {
		h.Add("TTT")
	}
	h.Add("ACGT")
	totals.Add(h)

	if totals.Pairs() != 2*3+1+4+1 {
		t.Errorf("expected 12 pairs got %d", totals.Pairs())
	}
	expected := []Group{
		{Key: Key{Length: 3, Count: 1}},
		{Key: Key{Length: 3, Count: 2}, Words: 3},
		{Key: Key{Length: 3, Count: 3}},
		{Key: Key{Length: 3, Count: 4}, Words: 1},
		{Key: Key{Length: 4, Count: 1}, Words: 2},
	}
	answer := totals.Filled()
	if len(answer) != len(expected) {
		t.Fatalf("expected %v got %v", expected, answer)
	}
	for i := range expected {
		if answer[i] != expected[i] {
			t.Errorf("row %d: expected %v got %v", i, expected[i], answer[i])
		}
	}
}

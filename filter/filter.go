package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/dasnellings/statRepeats/estimate"
	"github.com/dasnellings/statRepeats/factors"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Params describes the random sequence the words are compared against.
type Params struct {
	SeqLen       int
	AlphabetSize int
	PValue       float64

	// a motif of MotifSize positions matching MotifMultiplier of the possible words scales
	// the expectation by MotifMultiplier / AlphabetSize^MotifSize
	MotifMultiplier int
	MotifSize       int

	Factory estimate.Factory
	Factors *factors.Factors // shared across lengths, nil for a fresh table
}

// Set holds the words that passed.
type Set map[string]struct{}

func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Evaluate computes the expectation and confidence bound of every group of h. An Estimator
// is built once per word length.
func Evaluate(h Histogram, p Params) ([]Group, error) {
	if p.Factory == nil {
		return nil, fmt.Errorf("%w: no estimator", ErrInvalidArgument)
	}
	if len(h) == 0 {
		return nil, nil
	}
	f := p.Factors
	if f == nil {
		f = factors.New(nil)
	}

	var err error
	var est estimate.Estimator
	var fragLen int
	groups := Categorize(h)
	for i := range groups {
		if est == nil || groups[i].Length != fragLen {
			fragLen = groups[i].Length
			est, err = p.Factory(p.SeqLen, fragLen, p.AlphabetSize, f)
			if err != nil {
				return nil, fmt.Errorf("estimator for length %d: %w", fragLen, err)
			}
		}
		groups[i].Expected, err = est.Compute(groups[i].Count)
		if err != nil {
			return nil, fmt.Errorf("length %d with %d pairs: %w", fragLen, groups[i].Count, err)
		}
		if p.MotifSize > 0 {
			groups[i].Expected = math.Exp(math.Log(groups[i].Expected) + math.Log(float64(p.MotifMultiplier)) - float64(p.MotifSize)*math.Log(float64(p.AlphabetSize)))
		}
		groups[i].Bound, err = estimate.ConfidenceBound(groups[i].Expected, p.PValue)
		if err != nil {
			return nil, fmt.Errorf("length %d with %d pairs: %w", fragLen, groups[i].Count, err)
		}
		groups[i].Passed = groups[i].Words >= groups[i].Bound
	}
	return groups, nil
}

// Filter returns every word of h whose group passed Evaluate.
func Filter(h Histogram, p Params) (Set, error) {
	groups, err := Evaluate(h, p)
	if err != nil {
		return nil, err
	}
	passed := make(map[Key]bool)
	for _, g := range groups {
		if g.Passed {
			passed[g.Key] = true
		}
	}
	answer := make(Set)
	for word, count := range h {
		if passed[Key{Length: len(word), Count: count}] {
			answer[word] = struct{}{}
		}
	}
	return answer, nil
}

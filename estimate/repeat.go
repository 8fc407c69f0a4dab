package estimate

import (
	"math"

	"github.com/dasnellings/statRepeats/factors"
)

// MathematicalRepeat estimates direct repeats without complementation. A word occurring
// num times forms C(num, 2) candidate pairs.
type MathematicalRepeat struct {
	model
}

func NewMathematicalRepeat(seqLen, fragLen, alphabetSize int, f *factors.Factors) (*MathematicalRepeat, error) {
	m, err := newModel(seqLen, fragLen, alphabetSize, f, RepeatCutover)
	if err != nil {
		return nil, err
	}
	return &MathematicalRepeat{model: m}, nil
}

func (e *MathematicalRepeat) Compute(k int) (float64, error) {
	if err := checkPairs(k); err != nil {
		return 0, err
	}
	limit := repeatLimit(e.alphabetSize, 30)
	begin := int(math.Floor((1+math.Sqrt(1+8*float64(k)))/2 + 0.5))
	if begin*(begin-1)/2 < k {
		begin++
	}

	var total, lnBinom, x float64
	var comb int
	for num := begin; num < len(e.dist); num++ {
		comb = num * (num - 1) / 2
		if comb == 0 {
			continue
		}
		lnBinom = e.lnRepeatBinomial(k, num, comb)
		if math.IsInf(lnBinom+e.lnFragCombo, 0) && num > limit {
			break
		}
		x = lnBinom + e.dist[num] + e.lnFragCombo
		if !math.IsInf(x, 0) {
			total += math.Exp(x)
		}
	}
	return checkResult(total)
}

func (e *MathematicalRepeat) lnRepeatBinomial(k, words, comb int) float64 {
	if e.coef != nil {
		if c, found := e.coef.Repeat(e.alphabetSize, words, k); found {
			return math.Log(c)
		}
	}
	return e.lnBinomial(k, comb, e.lnMfp, e.lnOneMinusMfp)
}

// BiologicalRepeat estimates repeats between a sequence and its complement. Pairs only
// form between the f1 occurrences of a word and the f2 occurrences of its complement.
type BiologicalRepeat struct {
	model
}

func NewBiologicalRepeat(seqLen, fragLen, alphabetSize int, f *factors.Factors) (*BiologicalRepeat, error) {
	m, err := newModel(seqLen, fragLen, alphabetSize, f, RepeatCutover)
	if err != nil {
		return nil, err
	}
	return &BiologicalRepeat{model: m}, nil
}

func (e *BiologicalRepeat) Compute(k int) (float64, error) {
	if err := checkPairs(k); err != nil {
		return 0, err
	}
	// every word and complement pair is counted from both sides
	return checkResult(e.crossPairs(k, e.lnFragCombo) / 2)
}

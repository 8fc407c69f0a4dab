package estimate

import (
	"math"

	"github.com/dasnellings/statRepeats/factors"
)

// MathematicalPalindrome estimates inverted repeats without complementation. Words that
// read the same reversed can pair with themselves, so those are counted apart from the
// ordinary cross pairs.
type MathematicalPalindrome struct {
	model
	lnFragComboNonPal float64
	lnFragComboPal    float64
	lnSelfP           float64
	lnSelfQ           float64
}

func NewMathematicalPalindrome(seqLen, fragLen, alphabetSize int, f *factors.Factors) (*MathematicalPalindrome, error) {
	m, err := newModel(seqLen, fragLen, alphabetSize, f, PalindromeCutover)
	if err != nil {
		return nil, err
	}
	a := float64(alphabetSize)
	palLen := fragLen / 2

	fraction := 1.0
	if checked := math.Pow(a, float64(palLen)); !math.IsInf(checked, 0) {
		fraction = (checked - 1) / checked
	}
	self := (a - 1) / a

	return &MathematicalPalindrome{
		model:             m,
		lnFragComboNonPal: float64(fragLen)*math.Log(a) + math.Log(fraction),
		lnFragComboPal:    float64(fragLen-palLen) * math.Log(a),
		lnSelfP:           math.Log(self),
		lnSelfQ:           math.Log(1 - self),
	}, nil
}

func (e *MathematicalPalindrome) Compute(k int) (float64, error) {
	if err := checkPairs(k); err != nil {
		return 0, err
	}
	nonPal, err := checkResult(e.crossPairs(k, e.lnFragComboNonPal) / 2)
	if err != nil {
		return 0, err
	}
	pal, err := checkResult(e.palindromic(k))
	if err != nil {
		return 0, err
	}
	return nonPal + pal, nil
}

// palindromic sums over word multiplicities nw, each giving C(nw, 2) cross pairs and nw
// self pairs.
func (e *MathematicalPalindrome) palindromic(k int) float64 {
	limit := repeatLimit(e.alphabetSize, 32)
	begin := int(math.Floor((math.Sqrt(1+8*float64(k))-1)/2 + 0.5))
	if begin*(begin+1)/2 < k {
		begin++
	}

	var total, lnBinom, x float64
	for words := begin; words < len(e.dist); words++ {
		if words*(words+1)/2 == 0 {
			continue
		}
		lnBinom = e.lnPalindromeBinomial(k, words)
		if math.IsInf(lnBinom+e.lnFragComboPal, 0) && words > limit {
			break
		}
		x = lnBinom + e.dist[words] + e.lnFragComboPal
		if !math.IsInf(x, 0) {
			total += math.Exp(x)
		}
	}
	return total
}

func (e *MathematicalPalindrome) lnPalindromeBinomial(k, words int) float64 {
	if e.coef != nil {
		if c, found := e.coef.Palindrome(e.alphabetSize, words, k); found {
			return math.Log(c)
		}
	}
	return e.lnMixedBinomial(k, words)
}

// lnMixedBinomial is ln P(X + Y = k) with X ~ Binomial(C(words, 2), mfp) cross pairs and
// Y ~ Binomial(words, (a-1)/a) self pairs.
func (e *MathematicalPalindrome) lnMixedBinomial(k, words int) float64 {
	pairs := words * (words - 1) / 2
	base := 0
	if k > words {
		base = k - words
	}
	if base > pairs {
		base = pairs
	}
	top := k
	if top > pairs {
		top = pairs
	}

	var sum float64
	for x := base; x <= top; x++ {
		sum += math.Exp(e.lnBinomial(x, pairs, e.lnMfp, e.lnOneMinusMfp) + e.lnBinomial(k-x, words, e.lnSelfP, e.lnSelfQ))
	}
	return math.Log(sum)
}

// BiologicalPalindrome estimates reverse complement palindromes. An even length word can
// be its own reverse complement and behaves like a mathematical palindrome; an odd length
// word never can and behaves like a biological repeat.
type BiologicalPalindrome struct {
	fragLen int
	even    *MathematicalPalindrome
	odd     *BiologicalRepeat
}

func NewBiologicalPalindrome(seqLen, fragLen, alphabetSize int, f *factors.Factors) (*BiologicalPalindrome, error) {
	var err error
	answer := &BiologicalPalindrome{fragLen: fragLen}
	if fragLen%2 == 0 {
		answer.even, err = NewMathematicalPalindrome(seqLen, fragLen, alphabetSize, f)
	} else {
		answer.odd, err = NewBiologicalRepeat(seqLen, fragLen, alphabetSize, f)
	}
	if err != nil {
		return nil, err
	}
	return answer, nil
}

func (e *BiologicalPalindrome) Compute(k int) (float64, error) {
	if e.even != nil {
		return e.even.Compute(k)
	}
	return e.odd.Compute(k)
}

// FragLen is the word length the estimator was built for.
func (e *BiologicalPalindrome) FragLen() int {
	return e.fragLen
}

func (e *BiologicalPalindrome) useCoefficients(c Coefficients) {
	if e.even != nil {
		e.even.useCoefficients(c)
	}
	if e.odd != nil {
		e.odd.useCoefficients(c)
	}
}

// Package estimate computes the number of repeats expected by chance in a random sequence
// of a given length and alphabet, and turns that expectation into a confidence bound.
package estimate

import (
	"errors"
	"fmt"
	"math"

	"github.com/dasnellings/statRepeats/factors"
	"github.com/dasnellings/statRepeats/search"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNumeric         = errors.New("numeric computation failed")
)

// Poisson/Normal switch points for the occurrence distribution table. The repeat
// estimators and the mathematical palindrome estimator were tuned separately.
const (
	RepeatCutover     = 100
	PalindromeCutover = 1000
)

const factorialTableSize = 10000

// Estimator returns the expected number of distinct words that would be seen forming
// exactly k pairs in a random sequence.
type Estimator interface {
	Compute(k int) (float64, error)
}

// Factory builds an Estimator for one fragment length.
type Factory func(seqLen, fragLen, alphabetSize int, f *factors.Factors) (Estimator, error)

// FactoryFor returns the Factory matching a search mode.
func FactoryFor(mode search.Mode) (Factory, error) {
	switch mode {
	case search.MathematicalRepeat:
		return func(seqLen, fragLen, alphabetSize int, f *factors.Factors) (Estimator, error) {
			return NewMathematicalRepeat(seqLen, fragLen, alphabetSize, f)
		}, nil
	case search.BiologicalRepeat:
		return func(seqLen, fragLen, alphabetSize int, f *factors.Factors) (Estimator, error) {
			return NewBiologicalRepeat(seqLen, fragLen, alphabetSize, f)
		}, nil
	case search.MathematicalPalindrome:
		return func(seqLen, fragLen, alphabetSize int, f *factors.Factors) (Estimator, error) {
			return NewMathematicalPalindrome(seqLen, fragLen, alphabetSize, f)
		}, nil
	case search.BiologicalPalindrome:
		return func(seqLen, fragLen, alphabetSize int, f *factors.Factors) (Estimator, error) {
			return NewBiologicalPalindrome(seqLen, fragLen, alphabetSize, f)
		}, nil
	default:
		return nil, fmt.Errorf("%w: no estimator for search mode %v", ErrInvalidArgument, mode)
	}
}

// WithCoefficients wraps a Factory so that every Estimator it builds consults c for exact
// binomial coefficients before falling back to the asymptotic formulas.
func WithCoefficients(factory Factory, c Coefficients) Factory {
	return func(seqLen, fragLen, alphabetSize int, f *factors.Factors) (Estimator, error) {
		e, err := factory(seqLen, fragLen, alphabetSize, f)
		if err != nil {
			return nil, err
		}
		if user, ok := e.(coefficientUser); ok {
			user.useCoefficients(c)
		}
		return e, nil
	}
}

type coefficientUser interface {
	useCoefficients(c Coefficients)
}

// lnFactorials memoizes ln(k!) up to factorialTableSize and uses Stirling's
// approximation past it.
type lnFactorials struct {
	table []float64
}

func (l *lnFactorials) at(k int) float64 {
	if k > factorialTableSize {
		kf := float64(k)
		return kf*math.Log(kf) - kf + 0.5*(math.Ln2+math.Log(kf)+math.Log(math.Pi))
	}
	if len(l.table) == 0 {
		l.table = append(l.table, 0)
	}
	for i := len(l.table); i <= k; i++ {
		l.table = append(l.table, l.table[i-1]+math.Log(float64(i)))
	}
	return l.table[k]
}

// model is the state shared by all estimators for one (seqLen, fragLen, alphabetSize).
type model struct {
	seqLen       int
	fragLen      int
	alphabetSize int
	fragCount    int
	cutover      float64

	lnFragCombo   float64
	lambda        float64
	lnLambda      float64
	sigma         float64
	mfp           float64
	lnMfp         float64
	lnOneMinusMfp float64

	// dist[x] is the log probability that a given word occurs exactly x times.
	dist []float64

	fact    lnFactorials
	factors *factors.Factors
	coef    Coefficients
}

func newModel(seqLen, fragLen, alphabetSize int, f *factors.Factors, cutover float64) (model, error) {
	var m model
	if alphabetSize < 2 {
		return m, fmt.Errorf("%w: alphabet size %d is below 2", ErrInvalidArgument, alphabetSize)
	}
	if fragLen < 1 {
		return m, fmt.Errorf("%w: fragment length %d is below 1", ErrInvalidArgument, fragLen)
	}
	if seqLen-fragLen+1 < 1 {
		return m, fmt.Errorf("%w: fragment length %d exceeds sequence length %d", ErrInvalidArgument, fragLen, seqLen)
	}
	if f == nil {
		f = factors.New(nil)
	}

	a := float64(alphabetSize)
	m = model{
		seqLen:       seqLen,
		fragLen:      fragLen,
		alphabetSize: alphabetSize,
		fragCount:    seqLen - fragLen + 1,
		cutover:      cutover,
		lnFragCombo:  math.Log(a) * float64(fragLen),
		mfp:          (a - 1) * (a - 1) / a / a,
		factors:      f,
	}
	m.lnLambda = math.Log(float64(m.fragCount)) - m.lnFragCombo
	m.lambda = math.Exp(m.lnLambda)
	m.lnMfp = math.Log(m.mfp)
	m.lnOneMinusMfp = math.Log(1 - m.mfp)

	variance := m.lambda + m.varianceShift()
	if variance <= 0 {
		variance = m.lambda
	}
	m.sigma = math.Sqrt(variance)

	var p float64
	for x := 0; x < m.fragCount; x++ {
		p = m.lnDistribution(x)
		if float64(x) > m.lambda && math.Exp(p+m.lnFragCombo) == 0 {
			break
		}
		m.dist = append(m.dist, p)
	}
	return m, nil
}

// varianceShift corrects the occurrence variance for overlapping occurrences of one word.
func (m *model) varianceShift() float64 {
	combos := math.Exp(m.lnFragCombo)
	n := float64(m.seqLen)
	l := float64(m.fragLen)
	return float64(m.fragCount)/combos - ((2*l-1)*n-3*l*l+4*l-1)/(combos*combos)
}

func (m *model) lnDistribution(x int) float64 {
	if m.lambda < m.cutover {
		return -m.lambda + float64(x)*m.lnLambda - m.fact.at(x)
	}
	return distuv.Normal{Mu: m.lambda, Sigma: m.sigma}.LogProb(float64(x))
}

// lnBinomial is ln P(K = k) for K ~ Binomial(n, p) given ln p and ln(1-p).
func (m *model) lnBinomial(k, n int, lnP, lnQ float64) float64 {
	return m.fact.at(n) - m.fact.at(n-k) - m.fact.at(k) + float64(k)*lnP + float64(n-k)*lnQ
}

func (m *model) useCoefficients(c Coefficients) {
	m.coef = c
}

// crossPairs sums, over every pair count num near k/mfp, the expected number of word pairs
// (f1, f2) with f1*f2 = num cross pairs producing exactly k matches. Both directions stop
// once the binomial term underflows.
func (m *model) crossPairs(k int, lnCombo float64) float64 {
	last := (len(m.dist) - 1) * (len(m.dist) - 1)
	start := int(float64(k) / m.mfp)
	var total float64
	for num := start + 1; num <= last; num++ {
		added, ok := m.crossPairTerm(k, num, lnCombo)
		if !ok {
			break
		}
		total += added
	}
	for num := start; num >= k; num-- {
		added, ok := m.crossPairTerm(k, num, lnCombo)
		if !ok {
			break
		}
		total += added
	}
	return total
}

func (m *model) crossPairTerm(k, num int, lnCombo float64) (float64, bool) {
	lnBinom := m.lnBinomial(k, num, m.lnMfp, m.lnOneMinusMfp)
	if math.Exp(lnBinom+lnCombo) == 0 {
		return 0, false
	}
	var total, expected, lnBin float64
	var f2 int
	for _, f1 := range m.factors.Divisors(num) {
		f2 = num / f1
		if f1 >= len(m.dist) || f2 >= len(m.dist) {
			continue
		}
		lnBin = lnBinom
		if m.coef != nil && m.alphabetSize == 4 {
			if c, found := m.coef.CrossPair(f1, f2, k); found {
				lnBin = math.Log(c)
			}
		}
		expected = math.Exp(m.dist[f1] + m.dist[f2] + lnBin + lnCombo)
		if f1 != f2 {
			expected *= 2
		}
		total += expected
	}
	return total, true
}

// repeatLimit is the word multiplicity past which an infinite binomial term ends the sum.
func repeatLimit(alphabetSize, limit int) int {
	if alphabetSize == 20 {
		return 5
	}
	return limit
}

func checkPairs(k int) error {
	if k < 0 {
		return fmt.Errorf("%w: negative pair count %d", ErrInvalidArgument, k)
	}
	return nil
}

func checkResult(expected float64) (float64, error) {
	if math.IsNaN(expected) {
		return 0, ErrNumeric
	}
	return expected, nil
}

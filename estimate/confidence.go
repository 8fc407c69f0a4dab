package estimate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const normalConfidenceCutover = 1000

// ConfidenceBound returns the smallest count b such that P(X >= b) <= pValue for X
// Poisson distributed with mean expected. A Normal approximation replaces the Poisson
// once expected exceeds 1000.
func ConfidenceBound(expected, pValue float64) (int, error) {
	if math.IsNaN(pValue) || pValue <= 0 || pValue > 1 {
		return 0, fmt.Errorf("%w: p-value %g is outside (0, 1]", ErrInvalidArgument, pValue)
	}
	if math.IsNaN(expected) || math.IsInf(expected, 0) {
		return 0, fmt.Errorf("%w: expected count %g", ErrNumeric, expected)
	}
	if pValue == 1 {
		return 0, nil
	}
	if expected <= 0 {
		return 1, nil
	}
	level := 1 - pValue

	if expected > normalConfidenceCutover {
		q := distuv.Normal{Mu: expected, Sigma: math.Sqrt(expected)}.Quantile(level)
		return int(math.Ceil(q)) + 1, nil
	}

	dist := distuv.Poisson{Lambda: expected}
	q := int(expected)
	if dist.CDF(float64(q)) >= level {
		for q > 0 && dist.CDF(float64(q-1)) >= level {
			q--
		}
	} else {
		// the CDF may round short of levels very close to 1
		ceiling := int(expected+50*math.Sqrt(expected)) + 100
		for q < ceiling && dist.CDF(float64(q)) < level {
			q++
		}
	}
	return q + 1, nil
}

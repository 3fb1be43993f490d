package mcs

import (
	"errors"
	"fmt"
)

// ErrInsufficientSample is returned when the volume-adjusted civilization
// count is zero, so no probability can be formed.
var ErrInsufficientSample = errors.New("insufficient sample")

// Estimate returns the detection probabilities for a run. single is computed
// from the final case alone, not from an average over cases. overall uses
// every case.
func Estimate(
	lastIsolated, totalIsolated, cases, count int,
) (single, overall float64, err error) {
	if count <= 0 {
		return 0, 0, fmt.Errorf(
			"%w: volume-adjusted civilization count is %d",
			ErrInsufficientSample, count,
		)
	}
	if cases <= 0 {
		return 0, 0, fmt.Errorf("%w: %d cases were run",
			ErrInsufficientSample, cases)
	}

	n := float64(count)
	single = 1 - float64(lastIsolated)/n
	overall = 1 - float64(totalIsolated)/(float64(cases)*n)
	return single, overall, nil
}

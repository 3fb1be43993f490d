/*Package mcs runs the Monte Carlo simulation which estimates how likely the
radio bubbles of randomly placed civilizations are to overlap.

The disc is replaced by a grid of bubble-sized cells. In each case every
civilization is dropped into a uniformly random cell, and a civilization is
detected if it shares its cell with at least one other. The detection
probability is one minus the fraction of civilizations which sit alone.
*/
package mcs

import (
	"fmt"

	"github.com/phil-mansfield/gobubble/geom"
)

// Options is the immutable input to a simulation run.
type Options struct {
	Disc geom.Disc
	// Diameter is the bubble diameter in light years. Values above
	// geom.MaxDiameter are clamped.
	Diameter float64
	// Count is the nominal number of civilizations in the disc.
	Count int
	// Cases is the number of independent trials.
	Cases int
	// Seed seeds the random source used by Run.
	Seed int64
}

// DefaultOptions returns options for a single case in the Milky Way.
func DefaultOptions() Options {
	return Options{
		Disc:     geom.MilkyWay(),
		Diameter: 200,
		Count:    100000,
		Cases:    1,
		Seed:     1,
	}
}

// Check returns an error if the options cannot describe a run.
func (opt Options) Check() error {
	if err := opt.Disc.Check(); err != nil {
		return err
	}
	if opt.Diameter <= 0 {
		return fmt.Errorf("%w: bubble diameter must be positive, but is %g",
			geom.ErrInvalidConfig, opt.Diameter)
	}
	if opt.Count <= 0 {
		return fmt.Errorf(
			"%w: civilization count must be positive, but is %d",
			geom.ErrInvalidConfig, opt.Count,
		)
	}
	if opt.Cases <= 0 {
		return fmt.Errorf("%w: case count must be positive, but is %d",
			geom.ErrInvalidConfig, opt.Cases)
	}
	return nil
}

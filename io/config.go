package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/gobubble/geom"
	"github.com/phil-mansfield/gobubble/mcs"
)

const (
	ExampleSimulateFile = `[Simulate]

#######################
# Required Parameters #
#######################

# Diameter of each civilization's radio bubble in light years. Anything above
# 500 is treated as 500, since larger bubbles give too coarse a grid.
Diameter = 200

# Number of advanced civilizations in the galaxy (e.g. from Drake's equation).
Count = 100000

#######################
# Optional Parameters #
#######################

# Number of independent cases to run. The single case probability reported
# is the one for the final case. Default is 1.
# Cases = 1

# Seed for the random number generator. Runs with the same seed and
# parameters give the same probabilities. Default is 1.
# Seed = 1

# Dimensions of the galactic disc in light years. Defaults to the Milky Way
# (radius 50000, height 1000). Setting either one recomputes the volume.
# DiscRadius = 50000
# DiscHeight = 1000

# Writes a map of the galaxy with the final simulation's civilizations to
# this file. Requires python and matplotlib.
# Map = galaxy.png

# Output files which are useful for profiling and debugging.
# ProfileFile = prof.out
# LogFile = log.out`

	ExampleSweepFile = `[Sweep]

#######################
# Required Parameters #
#######################

# Whitespace-separated table with one run per row.
Input = path/to/sweep.txt

# Zero-indexed columns holding the bubble diameter and civilization count.
DiameterColumn = 0
CountColumn = 1

#######################
# Optional Parameters #
#######################

# Cases = 1
# Seed = 1

# Plot of detection probability against bubble diameter.
# Plot = sweep.png

# ProfileFile = prof.out
# LogFile = log.out`

	ExampleExpansionFile = `[Expansion]

#######################
# Required Parameters #
#######################

# Number of years to simulate.
MaxYears = 10000000

# Average expansion velocity as a fraction of the speed of light.
Speed = 0.005

# File the map is written to.
Map = expansion.png

#######################
# Optional Parameters #
#######################

# Light years per display unit. Default is 200.
# Unit = 200

# Number of rings drawn. Default is 10.
# Intervals = 10

# Location of the homeworld in display units. Default is the galactic center.
# HomeX = 0
# HomeY = 0

# Seed = 1
# LogFile = log.out`
)

type SimulateConfig struct {
	// Optional, every mode
	Seed                 int64
	LogFile, ProfileFile string

	// Required
	Diameter float64
	Count    int

	// Optional
	Cases                  int
	DiscRadius, DiscHeight float64
	Map                    string
}

type SimulateWrapper struct {
	Simulate SimulateConfig
}

func DefaultSimulateWrapper() *SimulateWrapper {
	con := SimulateConfig{}
	con.Cases = 1
	con.Seed = 1
	return &SimulateWrapper{con}
}

func (con *SimulateConfig) ValidDiameter() bool {
	return con.Diameter > 0
}
func (con *SimulateConfig) ValidCount() bool {
	return con.Count > 0
}
func (con *SimulateConfig) ValidCases() bool {
	return con.Cases > 0
}
func (con *SimulateConfig) ValidMap() bool {
	return con.Map != ""
}

// ValidDisc returns true if the disc dimensions are either unset or
// positive.
func (con *SimulateConfig) ValidDisc() bool {
	return con.DiscRadius >= 0 && con.DiscHeight >= 0
}

// Disc returns the disc described by the config. The Milky Way is used for
// any dimension which isn't set.
func (con *SimulateConfig) Disc() (geom.Disc, error) {
	if con.DiscRadius == 0 && con.DiscHeight == 0 {
		return geom.MilkyWay(), nil
	}
	r, h := con.DiscRadius, con.DiscHeight
	if r == 0 {
		r = geom.MilkyWayRadius
	}
	if h == 0 {
		h = geom.MilkyWayHeight
	}
	return geom.NewDisc(r, h)
}

// Options converts the config into the input of a simulation run.
func (con *SimulateConfig) Options() (mcs.Options, error) {
	disc, err := con.Disc()
	if err != nil {
		return mcs.Options{}, err
	}
	opt := mcs.Options{
		Disc:     disc,
		Diameter: con.Diameter,
		Count:    con.Count,
		Cases:    con.Cases,
		Seed:     con.Seed,
	}
	return opt, opt.Check()
}

// Check returns a descriptive error for the first invalid field.
func (con *SimulateConfig) Check() error {
	switch {
	case !con.ValidDiameter():
		return fmt.Errorf("%w: invalid/non-existent 'Diameter' value, %g",
			geom.ErrInvalidConfig, con.Diameter)
	case !con.ValidCount():
		return fmt.Errorf("%w: invalid/non-existent 'Count' value, %d",
			geom.ErrInvalidConfig, con.Count)
	case !con.ValidCases():
		return fmt.Errorf("%w: invalid 'Cases' value, %d",
			geom.ErrInvalidConfig, con.Cases)
	case !con.ValidDisc():
		return fmt.Errorf("%w: 'DiscRadius' and 'DiscHeight' must not be "+
			"negative", geom.ErrInvalidConfig)
	}
	return nil
}

// ReadSimulateConfig reads and checks a [Simulate] config file.
func ReadSimulateConfig(fname string) (*SimulateConfig, error) {
	wrap := DefaultSimulateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Simulate.Check(); err != nil {
		return nil, err
	}
	return &wrap.Simulate, nil
}

type SweepConfig struct {
	// Optional, every mode
	Seed                 int64
	LogFile, ProfileFile string

	// Required
	Input                       string
	DiameterColumn, CountColumn int

	// Optional
	Cases int
	Plot  string
}

type SweepWrapper struct {
	Sweep SweepConfig
}

func DefaultSweepWrapper() *SweepWrapper {
	con := SweepConfig{}
	con.CountColumn = 1
	con.Cases = 1
	con.Seed = 1
	return &SweepWrapper{con}
}

func (con *SweepConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SweepConfig) ValidColumns() bool {
	return con.DiameterColumn >= 0 && con.CountColumn >= 0 &&
		con.DiameterColumn != con.CountColumn
}
func (con *SweepConfig) ValidCases() bool {
	return con.Cases > 0
}
func (con *SweepConfig) ValidPlot() bool {
	return con.Plot != ""
}

func (con *SweepConfig) Check() error {
	switch {
	case !con.ValidInput():
		return fmt.Errorf("%w: invalid/non-existent 'Input' value",
			geom.ErrInvalidConfig)
	case !con.ValidColumns():
		return fmt.Errorf(
			"%w: 'DiameterColumn' (%d) and 'CountColumn' (%d) must be "+
				"distinct and non-negative", geom.ErrInvalidConfig,
			con.DiameterColumn, con.CountColumn,
		)
	case !con.ValidCases():
		return fmt.Errorf("%w: invalid 'Cases' value, %d",
			geom.ErrInvalidConfig, con.Cases)
	}
	return nil
}

// ReadSweepConfig reads and checks a [Sweep] config file.
func ReadSweepConfig(fname string) (*SweepConfig, error) {
	wrap := DefaultSweepWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Sweep.Check(); err != nil {
		return nil, err
	}
	return &wrap.Sweep, nil
}

type ExpansionConfig struct {
	// Optional, every mode
	Seed                 int64
	LogFile, ProfileFile string

	// Required
	MaxYears int
	Speed    float64
	Map      string

	// Optional
	Unit         float64
	Intervals    int
	HomeX, HomeY float64
}

type ExpansionWrapper struct {
	Expansion ExpansionConfig
}

func DefaultExpansionWrapper() *ExpansionWrapper {
	con := ExpansionConfig{}
	con.Unit = 200
	con.Intervals = 10
	con.Seed = 1
	return &ExpansionWrapper{con}
}

func (con *ExpansionConfig) ValidMaxYears() bool {
	return con.MaxYears > 0
}
func (con *ExpansionConfig) ValidSpeed() bool {
	return con.Speed > 0 && con.Speed <= 1
}
func (con *ExpansionConfig) ValidMap() bool {
	return con.Map != ""
}
func (con *ExpansionConfig) ValidUnit() bool {
	return con.Unit > 0
}
func (con *ExpansionConfig) ValidIntervals() bool {
	return con.Intervals > 0
}

func (con *ExpansionConfig) Check() error {
	switch {
	case !con.ValidMaxYears():
		return fmt.Errorf("%w: invalid/non-existent 'MaxYears' value, %d",
			geom.ErrInvalidConfig, con.MaxYears)
	case !con.ValidSpeed():
		return fmt.Errorf("%w: 'Speed' must be in range (0, 1], but is %g",
			geom.ErrInvalidConfig, con.Speed)
	case !con.ValidMap():
		return fmt.Errorf("%w: invalid/non-existent 'Map' value",
			geom.ErrInvalidConfig)
	case !con.ValidUnit():
		return fmt.Errorf("%w: invalid 'Unit' value, %g",
			geom.ErrInvalidConfig, con.Unit)
	case !con.ValidIntervals():
		return fmt.Errorf("%w: invalid 'Intervals' value, %d",
			geom.ErrInvalidConfig, con.Intervals)
	}
	return nil
}

// ReadExpansionConfig reads and checks an [Expansion] config file.
func ReadExpansionConfig(fname string) (*ExpansionConfig, error) {
	wrap := DefaultExpansionWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Expansion.Check(); err != nil {
		return nil, err
	}
	return &wrap.Expansion, nil
}

package galaxy

import (
	"github.com/phil-mansfield/gobubble/geom"
)

// Style sets how densely the stars of a map are drawn.
type Style struct {
	// ArmSteps is the number of stars along each arm, StepDegrees apart.
	// Stopping well short of two turns leaves a dark core at the center.
	ArmSteps    int
	StepDegrees float64
	// HazeScalar sets the number of haze stars per unit of display radius.
	HazeScalar int
	// StrictHaze drops haze stars which lie exactly on the rim.
	StrictHaze bool
}

var (
	// SimulateStyle is used for maps of simulation results.
	SimulateStyle = Style{
		ArmSteps: 520, StepDegrees: 1, HazeScalar: 7, StrictHaze: false,
	}
	// ExpansionStyle is used for maps of an expanding empire.
	ExpansionStyle = Style{
		ArmSteps: 325, StepDegrees: 2, HazeScalar: 5, StrictHaze: true,
	}
)

// Map is everything drawn on a galaxy map besides the text.
type Map struct {
	Radius        int
	Stars         []Star
	Haze          []Point
	Civilizations []Point
}

// NewStarMap draws the spiral arms and haze of a galaxy with the given
// display radius. It has no civilizations.
func NewStarMap(src Source, radius int, style Style) *Map {
	m := &Map{Radius: radius}
	for _, arm := range Arms(radius) {
		m.Stars = append(m.Stars, arm.Stars(src, radius, style)...)
	}
	m.Haze = Haze(src, radius, style)
	return m
}

// NewExpansionMap draws the star map used behind expansion rings, for a
// galaxy with the given display radius.
func NewExpansionMap(src Source, radius int) *Map {
	return NewStarMap(src, radius, ExpansionStyle)
}

// NewMap draws a map of disc with civilizations placed for a bubble of the
// given diameter. At most DisplayLimit(diameter) civilizations are drawn.
func NewMap(
	src Source, disc geom.Disc, bubble geom.Bubble, count int,
) (*Map, error) {
	m := NewStarMap(src, DisplayRadius(disc, bubble), SimulateStyle)

	var err error
	n := DisplayCount(count, bubble.Diameter)
	m.Civilizations, err = DiscPoints(src, m.Radius, n)
	if err != nil {
		return nil, err
	}
	return m, nil
}

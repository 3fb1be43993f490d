package galaxy

import (
	"fmt"
	"math"
)

// Ring is the edge of an expanding empire at a given time.
type Ring struct {
	Years int
	// Radius is in display units.
	Radius float64
}

// ExpansionRadii models an empire spreading out from its homeworld at speed
// (a fraction of light speed). A ring is recorded every maxYears/intervals
// years, and each step grows the radius by speed*increment/unit display
// units. The ring recorded at year 0 has already grown by one step.
func ExpansionRadii(
	maxYears, intervals int, speed, unit float64,
) ([]Ring, error) {
	if maxYears <= 0 || intervals <= 0 {
		return nil, fmt.Errorf(
			"MaxYears and Intervals must be positive, but are %d and %d.",
			maxYears, intervals,
		)
	} else if unit <= 0 {
		return nil, fmt.Errorf("Unit must be positive, but is %g.", unit)
	} else if speed <= 0 || speed > 1 {
		return nil, fmt.Errorf("Speed must be in range (0, 1], but is %g.",
			speed)
	}

	increment := int(math.RoundToEven(float64(maxYears) / float64(intervals)))
	if increment == 0 {
		increment = 1
	}
	step := speed * float64(increment) / unit

	rings := []Ring{}
	r := 0.0
	for years := 0; years <= maxYears; years += increment {
		r += step
		rings = append(rings, Ring{years, r})
	}
	return rings, nil
}

// Circle returns n points evenly spaced around a circle.
func Circle(center Point, radius float64, n int) []Point {
	pts := make([]Point, n+1)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{
			center.X + radius*math.Cos(theta),
			center.Y + radius*math.Sin(theta),
		}
	}
	return pts
}

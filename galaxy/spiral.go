package galaxy

import (
	"math"
)

const (
	// spiralB is the constant in the logarithmic spiral r * exp(b theta).
	spiralB = -0.3
	// fuzzFraction is the jitter of arm stars as a fraction of the radius.
	fuzzFraction = 0.030
)

// Arm is one logarithmic spiral arm.
type Arm struct {
	// Radius is the starting radius. A negative value flips the arm through
	// the origin.
	Radius float64
	// Rotation rotates the arm by Rotation*pi radians.
	Rotation float64
	// Fuzz multiplies the random jitter applied to each star.
	Fuzz float64
	// Trailing arms are drawn with faint stars.
	Trailing bool
}

// Star is a point on a spiral arm along with a relative marker size.
type Star struct {
	Point
	// Size is 2 or 1 for stars on main arms and 0 on trailing arms.
	Size int
}

// Arms returns the four main arms of the galaxy, each followed by its
// trailing arm.
func Arms(radius int) []Arm {
	r := float64(radius)
	return []Arm{
		{r, 2, 1.5, false}, {r, 1.91, 1.5, true},
		{-r, 2, 1.5, false}, {-r, -2.09, 1.5, true},
		{-r, 0.5, 1.5, false}, {-r, 0.4, 1.5, true},
		{-r, -0.5, 1.5, false}, {-r, -0.6, 1.5, true},
	}
}

// Stars returns the stars along the arm, spaced as set by style. radius sets
// the scale of the jitter and should match the radius the arms were built
// with.
func (arm Arm) Stars(src Source, radius int, style Style) []Star {
	fuzz := int(fuzzFraction * float64(radius))
	stars := make([]Star, style.ArmSteps)
	for i := range stars {
		theta := float64(i) * style.StepDegrees * math.Pi / 180
		r := arm.Radius * math.Exp(spiralB*theta)
		phi := theta + math.Pi*arm.Rotation

		s := &stars[i]
		s.X = r*math.Cos(phi) + float64(randInt(src, -fuzz, fuzz))*arm.Fuzz
		s.Y = r*math.Sin(phi) + float64(randInt(src, -fuzz, fuzz))*arm.Fuzz

		switch {
		case arm.Trailing:
			s.Size = 0
		case int(pMod(s.X, 2)) == 0:
			s.Size = 2
		default:
			s.Size = 1
		}
	}
	return stars
}

// pMod computes the positive modulo x % y.
func pMod(x, y float64) float64 {
	m := math.Mod(x, y)
	if m < 0 {
		m += y
	}
	return m
}

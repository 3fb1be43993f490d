package geom

import (
	"errors"
	"fmt"
	"math"
)

const (
	// MaxDiameter is the largest bubble diameter, in light years, that the
	// grid can resolve. Larger diameters are clamped to it.
	MaxDiameter = 500.0

	// Milky Way dimensions in light years.
	MilkyWayRadius       = 50000.0
	MilkyWayHeight       = 1000.0
	MilkyWayVolume       = 7853981633974.5
	MilkyWayHeightScalar = 50.0
)

// ErrInvalidConfig is returned (wrapped) when a disc, bubble, or count cannot
// be used to build a model.
var ErrInvalidConfig = errors.New("invalid configuration")

// Disc is the galactic disc which civilizations are scattered through.
type Disc struct {
	Radius, Height float64
	// Volume is kept separately from Radius and Height because the reference
	// disc uses a precomputed constant.
	Volume float64
	// HeightScalar is the ratio of Radius to Height. It only affects the
	// scale of display maps.
	HeightScalar float64
}

// MilkyWay returns the reference disc.
func MilkyWay() Disc {
	return Disc{
		Radius:       MilkyWayRadius,
		Height:       MilkyWayHeight,
		Volume:       MilkyWayVolume,
		HeightScalar: MilkyWayHeightScalar,
	}
}

// NewDisc returns a cylindrical disc with the given radius and height.
func NewDisc(radius, height float64) (Disc, error) {
	d := Disc{
		Radius: radius, Height: height,
		Volume: math.Pi * radius * radius * height,
	}
	if height > 0 {
		d.HeightScalar = radius / height
	}
	return d, d.Check()
}

// Check returns an error if the disc has a non-positive dimension.
func (d Disc) Check() error {
	switch {
	case d.Radius <= 0:
		return fmt.Errorf("%w: disc radius must be positive, but is %g",
			ErrInvalidConfig, d.Radius)
	case d.Height <= 0:
		return fmt.Errorf("%w: disc height must be positive, but is %g",
			ErrInvalidConfig, d.Height)
	case d.Volume <= 0:
		return fmt.Errorf("%w: disc volume must be positive, but is %g",
			ErrInvalidConfig, d.Volume)
	}
	return nil
}

// Area returns the area of the disc's face.
func (d Disc) Area() float64 { return math.Pi * d.Radius * d.Radius }

// Bubble is the sphere around a civilization within which its radio
// emissions can be detected.
type Bubble struct {
	Diameter, Volume float64
}

// NewBubble returns the bubble for the given diameter after clamping it to
// MaxDiameter.
func NewBubble(diameter float64) (Bubble, error) {
	if diameter <= 0 {
		return Bubble{}, fmt.Errorf(
			"%w: bubble diameter must be positive, but is %g",
			ErrInvalidConfig, diameter,
		)
	}
	diameter = ClampDiameter(diameter)
	return Bubble{diameter, BubbleVolume(diameter)}, nil
}

// ClampDiameter caps diameter at MaxDiameter.
func ClampDiameter(diameter float64) float64 {
	if diameter > MaxDiameter {
		return MaxDiameter
	}
	return diameter
}

// BubbleVolume returns the volume of a sphere with the given diameter.
func BubbleVolume(diameter float64) float64 {
	r := diameter / 2
	return 4.0 / 3.0 * math.Pi * r * r * r
}

/*Package galaxy generates the point sets used to draw a map of the galaxy.

None of these points take part in the detection probability estimate. They
only exist to be plotted next to it.
*/
package galaxy

import (
	"errors"
	"fmt"
	"math"

	"github.com/phil-mansfield/gobubble/geom"
)

// MaxAttempts bounds the rejection sampling loop in DiscPoint. The
// acceptance rate is about pi/4, so this is never reached in practice.
const MaxAttempts = 1000

// ErrRejectionLimit is returned when DiscPoint fails to land inside the disc
// within MaxAttempts tries.
var ErrRejectionLimit = errors.New("rejection sampling limit reached")

// Source is a random number generator. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Point is a location on the map, in display units.
type Point struct {
	X, Y float64
}

// DisplayRadius returns the radius, in display units, of a disc scaled so
// that one bubble has unit volume.
func DisplayRadius(disc geom.Disc, bubble geom.Bubble) int {
	scaled := disc.Volume / bubble.Volume
	return int(math.RoundToEven(
		math.Cbrt(disc.HeightScalar * scaled / math.Pi),
	))
}

// DisplayLimit returns the most civilizations worth drawing for a bubble of
// the given diameter. Smaller bubbles draw as finer points, so more fit.
func DisplayLimit(diameter float64) int {
	switch {
	case diameter > 200:
		return 100000
	case diameter == 200:
		return 200000
	case diameter > 50:
		return 500000
	default:
		return 1000000
	}
}

// DisplayCount returns how many of count civilizations should be drawn.
func DisplayCount(count int, diameter float64) int {
	if limit := DisplayLimit(diameter); count > limit {
		return limit
	}
	return count
}

// randInt returns a uniform integer in [lo, hi].
func randInt(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo+1)
}

// DiscPoint returns an integer point uniformly distributed inside a circle
// of the given radius centered on the origin.
func DiscPoint(src Source, radius int) (Point, error) {
	r := float64(radius)
	for i := 0; i < MaxAttempts; i++ {
		x := randInt(src, -radius, radius)
		y := randInt(src, -radius, radius)
		p := Point{float64(x), float64(y)}
		if math.Hypot(p.X, p.Y) <= r {
			return p, nil
		}
	}
	return Point{}, fmt.Errorf("%w: no point inside radius %d after %d tries",
		ErrRejectionLimit, radius, MaxAttempts)
}

// DiscPoints returns n points from DiscPoint.
func DiscPoints(src Source, radius, n int) ([]Point, error) {
	if radius < 0 {
		return nil, fmt.Errorf("Display radius must be non-negative, "+
			"but is %d.", radius)
	}
	pts := make([]Point, n)
	for i := range pts {
		p, err := DiscPoint(src, radius)
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}
	return pts, nil
}

// Haze returns a faint background of stars: radius*style.HazeScalar
// attempts at a uniform point in the bounding square, keeping those inside
// the disc.
func Haze(src Source, radius int, style Style) []Point {
	r := float64(radius)
	pts := []Point{}
	for i := 0; i < radius*style.HazeScalar; i++ {
		x := randInt(src, -radius, radius)
		y := randInt(src, -radius, radius)
		p := Point{float64(x), float64(y)}
		d := math.Hypot(p.X, p.Y)
		if d < r || (d == r && !style.StrictHaze) {
			pts = append(pts, p)
		}
	}
	return pts
}

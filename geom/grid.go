package geom

import (
	"fmt"
	"math"
)

// ReductionCeiling is the largest volume-adjusted civilization count that is
// modeled at full size. Grids above it are shrunk once by a factor of four.
const ReductionCeiling = 10000000

// Grid is a rectangular prism of bubble-sized cells standing in for a Disc.
// Cell coordinates run over [0, SideCells] in x and y and [0, HeightCells] in
// z, both inclusive.
type Grid struct {
	CellSide               int
	SideCells, HeightCells int

	// Volume is SideCells^2 * HeightCells * CellSide^3 before any reduction,
	// and a quarter of that afterwards.
	Volume float64
	// DiscVolume is the volume of the disc being modeled. It is quartered
	// along with Volume.
	DiscVolume float64
	// VolumeRatio is the grid volume over the disc volume before reduction.
	VolumeRatio float64

	NominalCount int
	// AdjustedCount is the number of civilizations placed per case. It is
	// NominalCount corrected by VolumeRatio and, if Reduced, divided by four.
	AdjustedCount int
	// PreReductionCount is the volume-adjusted count before the reduction.
	PreReductionCount int
	Reduced           bool

	length, area int
}

// NewGrid sizes a grid so that one cell has the volume of one bubble and
// rescales count to the grid's volume.
func NewGrid(disc Disc, bubble Bubble, count int) (*Grid, error) {
	if err := disc.Check(); err != nil {
		return nil, err
	}
	if bubble.Volume <= 0 {
		return nil, fmt.Errorf("%w: bubble volume must be positive, but is %g",
			ErrInvalidConfig, bubble.Volume)
	}
	if count <= 0 {
		return nil, fmt.Errorf(
			"%w: civilization count must be positive, but is %d",
			ErrInvalidConfig, count,
		)
	}

	g := &Grid{NominalCount: count, DiscVolume: disc.Volume}

	g.CellSide = round(math.Cbrt(bubble.Volume))
	if g.CellSide == 0 {
		return nil, fmt.Errorf(
			"%w: bubble diameter %g is smaller than the grid resolution",
			ErrInvalidConfig, bubble.Diameter,
		)
	}
	cs := float64(g.CellSide)

	g.SideCells = round(math.Sqrt(disc.Area()) / cs)
	g.HeightCells = round(disc.Height / cs)
	if g.SideCells == 0 || g.HeightCells == 0 {
		return nil, fmt.Errorf(
			"%w: disc (radius %g, height %g) is smaller than a cell of "+
				"width %d", ErrInvalidConfig, disc.Radius, disc.Height,
			g.CellSide,
		)
	}

	side, ht := float64(g.SideCells), float64(g.HeightCells)
	g.Volume = side * side * ht * cs * cs * cs
	g.VolumeRatio = g.Volume / g.DiscVolume
	g.AdjustedCount = round(float64(count) * g.VolumeRatio)
	g.PreReductionCount = g.AdjustedCount

	if g.AdjustedCount > ReductionCeiling {
		g.reduce()
	}

	g.initIndex()
	return g, nil
}

// reduce shrinks the grid into a cube with a quarter of its volume. It is
// only ever applied once, even if the count is still above the ceiling.
func (g *Grid) reduce() {
	g.Volume /= 4
	g.SideCells = round(math.Cbrt(g.Volume) / float64(g.CellSide))
	g.HeightCells = g.SideCells
	g.DiscVolume /= 4
	g.AdjustedCount = int(math.Ceil(float64(g.AdjustedCount) / 4))
	g.Reduced = true
}

func (g *Grid) initIndex() {
	g.length = g.SideCells + 1
	g.area = g.length * g.length
}

// Cells returns the number of distinct coordinates a civilization can be
// placed at.
func (g *Grid) Cells() int {
	return g.area * (g.HeightCells + 1)
}

// Idx returns the flat index corresponding to a set of coordinates.
func (g *Grid) Idx(x, y, z int) int {
	return x + y*g.length + z*g.area
}

// IdxCheck returns an index and true if the given coordinates are valid and
// false otherwise.
func (g *Grid) IdxCheck(x, y, z int) (idx int, ok bool) {
	if !g.BoundsCheck(x, y, z) {
		return -1, false
	}
	return g.Idx(x, y, z), true
}

// coords returns the x, y, z coordinates of a cell from its flat index.
func (g *Grid) coords(idx int) (x, y, z int) {
	x = idx % g.length
	y = (idx % g.area) / g.length
	z = idx / g.area
	return x, y, z
}

// BoundsCheck returns true if the given coordinates are within the Grid and
// false otherwise.
func (g *Grid) BoundsCheck(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 &&
		x <= g.SideCells && y <= g.SideCells && z <= g.HeightCells
}

// round rounds x to the nearest integer, with ties going to the even
// neighbor.
func round(x float64) int {
	return int(math.RoundToEven(x))
}

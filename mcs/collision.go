package mcs

import (
	"fmt"

	"github.com/phil-mansfield/gobubble/geom"
)

// Tally summarizes the occupancy of a grid after one case.
type Tally struct {
	// Isolated is the number of cells holding exactly one civilization.
	Isolated int
	// Overlapping is the number of cells holding two or more.
	Overlapping int
	// Occupied is the number of cells holding at least one.
	Occupied int
}

// Counter counts how many civilizations share each cell. Its occupancy map
// is reused between cases.
type Counter struct {
	g      *geom.Grid
	counts map[int]int32
}

// NewCounter returns a Counter for locations on g. hint is the expected
// number of locations per case.
func NewCounter(g *geom.Grid, hint int) *Counter {
	if cells := g.Cells(); hint > cells {
		hint = cells
	}
	if hint < 0 {
		hint = 0
	}
	return &Counter{g: g, counts: make(map[int]int32, hint)}
}

// Reset empties the occupancy map without releasing its storage.
func (c *Counter) Reset() {
	for k := range c.counts {
		delete(c.counts, k)
	}
}

// Add places one civilization at loc. It panics if loc is outside the grid,
// since two such locations could share a flat index with a real cell.
func (c *Counter) Add(loc Location) {
	idx, ok := c.g.IdxCheck(loc.X, loc.Y, loc.Z)
	if !ok {
		panic(fmt.Sprintf("Location %v is outside the %d x %d x %d grid.",
			loc, c.g.SideCells+1, c.g.SideCells+1, c.g.HeightCells+1))
	}
	c.counts[idx]++
}

// AddAll places one civilization at each element of locs.
func (c *Counter) AddAll(locs []Location) {
	for _, loc := range locs {
		c.Add(loc)
	}
}

// Tally classifies every occupied cell added since the last Reset.
func (c *Counter) Tally() Tally {
	t := Tally{Occupied: len(c.counts)}
	for _, n := range c.counts {
		if n == 1 {
			t.Isolated++
		} else {
			t.Overlapping++
		}
	}
	return t
}

// Count resets the Counter and tallies the occupancy of locs.
func (c *Counter) Count(locs []Location) Tally {
	c.Reset()
	c.AddAll(locs)
	return c.Tally()
}

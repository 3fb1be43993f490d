package mcs

import (
	"github.com/phil-mansfield/gobubble/geom"
)

// Source is a random number generator. *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// Location is the grid cell a civilization was placed in.
type Location struct {
	X, Y, Z int
}

// Sampler places civilizations uniformly and independently on a grid.
type Sampler struct {
	src      Source
	side, ht int
}

// NewSampler returns a Sampler which draws locations on g using src.
func NewSampler(src Source, g *geom.Grid) *Sampler {
	return &Sampler{src: src, side: g.SideCells, ht: g.HeightCells}
}

// Draw returns one location. X and Y lie in [0, SideCells] and Z lies in
// [0, HeightCells], all inclusive.
func (s *Sampler) Draw() Location {
	return Location{
		X: s.src.Intn(s.side + 1),
		Y: s.src.Intn(s.side + 1),
		Z: s.src.Intn(s.ht + 1),
	}
}

// Fill places one civilization in every element of locs.
func (s *Sampler) Fill(locs []Location) {
	for i := range locs {
		locs[i] = s.Draw()
	}
}

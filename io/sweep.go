package io

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/gobubble/mcs"
)

// SweepRow is one run requested by a sweep table.
type SweepRow struct {
	Diameter float64
	Count    int
}

// ReadSweep reads the rows of the table named by con.Input.
func ReadSweep(con *SweepConfig) ([]SweepRow, error) {
	cols, err := table.ReadTable(
		con.Input, []int{con.DiameterColumn, con.CountColumn}, nil,
	)
	if err != nil {
		return nil, err
	}

	ds, ns := cols[0], cols[1]
	rows := make([]SweepRow, len(ds))
	for i := range rows {
		if ns[i] != math.Floor(ns[i]) {
			return nil, fmt.Errorf(
				"Row %d of %s has a non-integer count, %g.",
				i, con.Input, ns[i],
			)
		}
		rows[i] = SweepRow{ds[i], int(ns[i])}
	}
	return rows, nil
}

// Options returns the simulation input for a single row of a sweep. Every
// row runs in the reference disc.
func (con *SweepConfig) Options(row SweepRow) mcs.Options {
	opt := mcs.DefaultOptions()
	opt.Diameter = row.Diameter
	opt.Count = row.Count
	opt.Cases = con.Cases
	opt.Seed = con.Seed
	return opt
}

// Package gravflow estimates the runout footprint of a gravity-driven flow
// (lava, debris) released from a single vent cell over a digital elevation
// model. Depressions are first removed by priority flood, unit influence is
// then dispersed downslope over a multiple-flow-direction graph, and the
// continuous influence field is cut to a binary footprint by an empirical
// distance-decay threshold, keeping the largest connected region.
package gravflow

import (
	"errors"
	"fmt"

	"github.com/maseology/gravflow/dem"
)

// input validation failures; all detected before any stage runs
var (
	ErrInvalidInput   = dem.ErrInvalidInput
	ErrDegenerateGrid = dem.ErrDegenerateGrid
	ErrOutOfBounds    = errors.New("vent out of bounds")
)

// Evaluate builds the flow domain for the given elevations (row-major, cell
// width dx) and runs a single vent scenario; xv/yv index column and row of
// the vent cell. Returns the continuous influence field and the binary
// footprint of the largest connected flow region.
func Evaluate(z [][]float64, xv, yv int, dx float64, par Params) (*Result, error) {
	d, err := dem.New(z, dx)
	if err != nil {
		return nil, err
	}
	if xv < 0 || xv >= d.Nc || yv < 0 || yv >= d.Nr {
		return nil, fmt.Errorf(" gravflow: vent (%d,%d) on %dx%d grid: %w", xv, yv, d.Nr, d.Nc, ErrOutOfBounds)
	}
	return NewDomain(d, par).Evaluate(xv, yv)
}

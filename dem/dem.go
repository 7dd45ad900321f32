package dem

import (
	"errors"
	"fmt"
	"math"
)

// input validation failures, detected before any stage runs
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrDegenerateGrid = errors.New("degenerate grid")
)

// 8-neighbour offsets, orthogonals first, then diagonals
var (
	drow = [8]int{0, 0, -1, 1, -1, -1, 1, 1}
	dcol = [8]int{-1, 1, 0, 0, -1, 1, -1, 1}
)

// DEM a dense digital elevation model; elevations held flat, row-major
type DEM struct {
	Z      []float64
	Nr, Nc int
	Cs     float64 // uniform cell width
}

// New builds a DEM from rows of elevations with cell width cs
func New(z [][]float64, cs float64) (*DEM, error) {
	nr := len(z)
	if nr < 2 {
		return nil, fmt.Errorf(" dem.New: %d rows: %w", nr, ErrDegenerateGrid)
	}
	nc := len(z[0])
	if nc < 2 {
		return nil, fmt.Errorf(" dem.New: %d columns: %w", nc, ErrDegenerateGrid)
	}
	if cs <= 0. {
		return nil, fmt.Errorf(" dem.New: cell width %f: %w", cs, ErrInvalidInput)
	}
	d := &DEM{Z: make([]float64, nr*nc), Nr: nr, Nc: nc, Cs: cs}
	for i, row := range z {
		if len(row) != nc {
			return nil, fmt.Errorf(" dem.New: ragged row %d (%d cells, expected %d): %w", i, len(row), nc, ErrInvalidInput)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf(" dem.New: non-finite elevation at (%d,%d): %w", i, j, ErrInvalidInput)
			}
			d.Z[i*nc+j] = v
		}
	}
	return d, nil
}

// Ncells number of cells that make up the DEM
func (d *DEM) Ncells() int { return d.Nr * d.Nc }

// CellID flat cell index from (row, col)
func (d *DEM) CellID(r, c int) int { return r*d.Nc + c }

// RowCol (row, col) from a flat cell index
func (d *DEM) RowCol(cid int) (int, int) { return cid / d.Nc, cid % d.Nc }

func (d *DEM) onBoundary(cid int) bool {
	r, c := d.RowCol(cid)
	return r == 0 || c == 0 || r == d.Nr-1 || c == d.Nc-1
}

// neighbours calls f for every in-grid 8-neighbour of cid with its
// direction index (see drow/dcol)
func (d *DEM) neighbours(cid int, f func(nid, dir int)) {
	r, c := d.RowCol(cid)
	for dir := 0; dir < 8; dir++ {
		rr, cc := r+drow[dir], c+dcol[dir]
		if rr < 0 || rr >= d.Nr || cc < 0 || cc >= d.Nc {
			continue
		}
		f(rr*d.Nc+cc, dir)
	}
}

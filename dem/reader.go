package dem

import (
	"fmt"

	"github.com/maseology/goHydro/grid"
)

// NewFromGrid converts a goHydro raster (cell id to value, row-major ids) to
// a dense DEM using the dimensions and cell width of its grid definition
func NewFromGrid(gd *grid.Definition, a map[int]float64) (*DEM, error) {
	z := make([][]float64, gd.Nrow)
	for i := range z {
		z[i] = make([]float64, gd.Ncol)
		for j := range z[i] {
			v, ok := a[i*gd.Ncol+j]
			if !ok {
				return nil, fmt.Errorf(" dem.NewFromGrid: no value at cell %d: %w", i*gd.Ncol+j, ErrInvalidInput)
			}
			if v == -9999. {
				return nil, fmt.Errorf(" dem.NewFromGrid: no-data elevation at cell %d: %w", i*gd.Ncol+j, ErrInvalidInput)
			}
			z[i][j] = v
		}
	}
	return New(z, gd.Cwidth)
}

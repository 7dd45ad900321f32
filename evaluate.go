package gravflow

import "fmt"

// Evaluate disperses a unit source placed at vent cell (xv, yv) down the flow
// topology, classifies the influence field against the distance-decay
// threshold, and prunes the result to its largest connected region
func (d *Domain) Evaluate(xv, yv int) (*Result, error) {
	if xv < 0 || xv >= d.Fil.Nc || yv < 0 || yv >= d.Fil.Nr {
		return nil, fmt.Errorf(" gravflow: vent (%d,%d) on %dx%d grid: %w", xv, yv, d.Fil.Nr, d.Fil.Nc, ErrOutOfBounds)
	}
	acc := d.accumulate(d.Fil.CellID(yv, xv))
	fm := d.threshold(acc, xv, yv)
	largest(fm, d.Fil.Nr, d.Fil.Nc)
	return &Result{Influence: acc, FlowMap: fm, Nr: d.Fil.Nr, Nc: d.Fil.Nc}, nil
}

// accumulate pushes influence downstream in one pass over cells ordered by
// descending (elevation, resolve order), so every cell is final before it is
// read; edge slots are filled contiguously, -1 terminates
func (d *Domain) accumulate(vent int) []float64 {
	acc := make([]float64, d.Top.Nc)
	acc[vent] = 1.
	for _, cid := range d.Top.Ord {
		a := acc[cid]
		if a == 0. {
			continue
		}
		ds, w := &d.Top.Ds[cid], &d.Top.W[cid]
		for k := 0; k < 8 && ds[k] >= 0; k++ {
			acc[ds[k]] += a * w[k]
		}
	}
	return acc
}

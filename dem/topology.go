package dem

import (
	"math"
	"sort"
)

// Topology the implicit multiple-flow-direction graph over a filled DEM.
// Per cell, up to 8 downslope edges held in fixed slots, filled contiguously
// with -1 terminating; weights in matching slots sum to 1 wherever a cell has
// any outlet. Ord lists cell ids by descending (elevation, resolve order):
// every edge strictly decreases that pair, so Ord is a topological order.
type Topology struct {
	Ds  [][8]int32
	W   [][8]float64
	Ord []int32
	Nc  int
}

// Topology routes each cell's unit outflow across its strictly-lower
// 8-neighbours in proportion to slope^p, slope taken over the planar
// distance (cell width, or ×√2 diagonally). Cells left flat by filling
// drain in equal shares to level neighbours nearer the outlet (smaller
// resolve order); boundary cells with no outlet emit no edges.
func (f *Filled) Topology(p float64) *Topology {
	n := f.Ncells()
	t := &Topology{Ds: make([][8]int32, n), W: make([][8]float64, n), Nc: n}
	dist := [8]float64{f.Cs, f.Cs, f.Cs, f.Cs, f.Cs * math.Sqrt2, f.Cs * math.Sqrt2, f.Cs * math.Sqrt2, f.Cs * math.Sqrt2}

	for cid := 0; cid < n; cid++ {
		ds := [8]int32{-1, -1, -1, -1, -1, -1, -1, -1}
		var w [8]float64
		z, ne, sw := f.Z[cid], 0, 0.
		f.neighbours(cid, func(nid, dir int) {
			if f.Z[nid] < z {
				ds[ne] = int32(nid)
				w[ne] = math.Pow((z-f.Z[nid])/dist[dir], p)
				sw += w[ne]
				ne++
			}
		})
		if ne == 0 { // flat; break the tie toward the outlet
			f.neighbours(cid, func(nid, _ int) {
				if f.Z[nid] == z && f.Ord[nid] < f.Ord[cid] {
					ds[ne] = int32(nid)
					w[ne] = 1.
					sw += 1.
					ne++
				}
			})
		}
		for k := 0; k < ne; k++ {
			w[k] /= sw
		}
		t.Ds[cid], t.W[cid] = ds, w
	}

	ord := make([]int32, n)
	for i := range ord {
		ord[i] = int32(i)
	}
	sort.Slice(ord, func(i, j int) bool {
		a, b := ord[i], ord[j]
		if f.Z[a] != f.Z[b] {
			return f.Z[a] > f.Z[b]
		}
		return f.Ord[a] > f.Ord[b]
	})
	t.Ord = ord
	return t
}

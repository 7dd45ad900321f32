package dem

import "container/heap"

// Filled a hydrologically-corrected DEM: no interior cell is a pit.
// Ord holds the priority-flood resolve order, used downstream to break
// flow-direction ties across flats (smaller order lies nearer the outlet).
type Filled struct {
	*DEM
	Ord []int32
}

type fillItem struct {
	z   float64
	ord int64 // heap insertion order; FIFO among elevation ties
	cid int32
}

type fillHeap []fillItem

func (h fillHeap) Len() int { return len(h) }
func (h fillHeap) Less(i, j int) bool {
	if h[i].z != h[j].z {
		return h[i].z < h[j].z
	}
	return h[i].ord < h[j].ord
}
func (h fillHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *fillHeap) Push(x interface{}) { *h = append(*h, x.(fillItem)) }
func (h *fillHeap) Pop() interface{} {
	o := *h
	n := len(o) - 1
	x := o[n]
	*h = o[:n]
	return x
}

// Fill removes depressions by priority flood: a min-heap is seeded with the
// boundary at original elevation; cells are resolved lowest-first, raising
// each unresolved neighbour no higher than necessary to drain. Idempotent.
func (d *DEM) Fill() *Filled {
	n := d.Ncells()
	f := &Filled{
		DEM: &DEM{Z: make([]float64, n), Nr: d.Nr, Nc: d.Nc, Cs: d.Cs},
		Ord: make([]int32, n),
	}
	copy(f.Z, d.Z)

	resolved := make([]bool, n)
	h := make(fillHeap, 0, 2*(d.Nr+d.Nc))
	var nq int64
	push := func(cid int) {
		resolved[cid] = true
		h = append(h, fillItem{f.Z[cid], nq, int32(cid)})
		nq++
	}
	for cid := 0; cid < n; cid++ {
		if d.onBoundary(cid) {
			push(cid)
		}
	}
	heap.Init(&h)

	var k int32
	for h.Len() > 0 {
		it := heap.Pop(&h).(fillItem)
		f.Ord[it.cid] = k
		k++
		f.neighbours(int(it.cid), func(nid, _ int) {
			if resolved[nid] {
				return
			}
			if f.Z[nid] < it.z {
				f.Z[nid] = it.z // minimal raise to the spill level
			}
			heap.Push(&h, fillItem{f.Z[nid], nq, int32(nid)})
			resolved[nid] = true
			nq++
		})
	}
	return f
}

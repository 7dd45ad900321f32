package dem

import "testing"

// bowl with an interior pit at (2,2) and a single low outlet at (2,0)
func pitGrid(t *testing.T) *DEM {
	t.Helper()
	d, err := New([][]float64{
		{9, 9, 9, 9, 9},
		{9, 5, 5, 5, 9},
		{3, 5, 1, 5, 9},
		{9, 5, 5, 5, 9},
		{9, 9, 9, 9, 9},
	}, 10.)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestFillRaisesPitToSpill(t *testing.T) {
	d := pitGrid(t)
	f := d.Fill()
	if got := f.Z[f.CellID(2, 2)]; got != 5. {
		t.Fatalf("pit filled to %f, want spill level 5", got)
	}
	// minimal raise: every other cell untouched
	for cid, v := range f.Z {
		if cid == f.CellID(2, 2) {
			continue
		}
		if v != d.Z[cid] {
			r, c := d.RowCol(cid)
			t.Fatalf("cell (%d,%d) raised %f -> %f without cause", r, c, d.Z[cid], v)
		}
	}
}

func TestFillLeavesNoInteriorPits(t *testing.T) {
	f := pitGrid(t).Fill()
	for cid := range f.Z {
		if f.onBoundary(cid) {
			continue
		}
		drains := false
		f.neighbours(cid, func(nid, _ int) {
			if f.Z[nid] <= f.Z[cid] {
				drains = true
			}
		})
		if !drains {
			r, c := f.RowCol(cid)
			t.Fatalf("interior pit remains at (%d,%d)", r, c)
		}
	}
}

func TestFillIdempotent(t *testing.T) {
	f1 := pitGrid(t).Fill()
	f2 := f1.Fill()
	for cid := range f1.Z {
		if f1.Z[cid] != f2.Z[cid] {
			t.Fatalf("refill changed cell %d: %f -> %f", cid, f1.Z[cid], f2.Z[cid])
		}
	}
}

func TestFillPreservesInput(t *testing.T) {
	d := pitGrid(t)
	z0 := d.Z[d.CellID(2, 2)]
	d.Fill()
	if d.Z[d.CellID(2, 2)] != z0 {
		t.Fatal("Fill mutated its input DEM")
	}
}

package gravflow

import "testing"

func TestLargestKeepsBiggerBlob(t *testing.T) {
	// 9-cell blob upper-left, 5-cell blob lower-right, 7x7
	nr, nc := 7, 7
	fm := make([]int32, nr*nc)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			fm[r*nc+c] = 1
		}
	}
	for _, rc := range [][2]int{{5, 5}, {5, 6}, {6, 5}, {6, 6}, {4, 6}} {
		fm[rc[0]*nc+rc[1]] = 1
	}
	largest(fm, nr, nc)
	n9, n5 := 0, 0
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			n9 += int(fm[r*nc+c])
		}
	}
	for _, rc := range [][2]int{{5, 5}, {5, 6}, {6, 5}, {6, 6}, {4, 6}} {
		n5 += int(fm[rc[0]*nc+rc[1]])
	}
	if n9 != 9 {
		t.Fatalf("largest blob reduced to %d cells", n9)
	}
	if n5 != 0 {
		t.Fatalf("smaller blob retains %d cells", n5)
	}
}

func TestLargestEmptyUnchanged(t *testing.T) {
	fm := make([]int32, 16)
	largest(fm, 4, 4)
	for cid, v := range fm {
		if v != 0 {
			t.Fatalf("empty map gained flow at %d", cid)
		}
	}
}

func TestLargestTieFirstFound(t *testing.T) {
	// two 2x2 blobs of equal size; scan order finds the upper-left first
	nr, nc := 6, 6
	fm := make([]int32, nr*nc)
	for _, rc := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		fm[rc[0]*nc+rc[1]] = 1
	}
	for _, rc := range [][2]int{{4, 4}, {4, 5}, {5, 4}, {5, 5}} {
		fm[rc[0]*nc+rc[1]] = 1
	}
	largest(fm, nr, nc)
	if fm[0] != 1 {
		t.Fatal("first-found blob dropped on a size tie")
	}
	if fm[4*nc+4] != 0 {
		t.Fatal("second blob retained on a size tie")
	}
}

func TestLargestDiagonalConnectivity(t *testing.T) {
	// a diagonal chain is one component under 8-connectivity and must beat
	// the disjoint pair
	nr, nc := 5, 5
	fm := make([]int32, nr*nc)
	for i := 0; i < 3; i++ {
		fm[i*nc+i] = 1 // (0,0),(1,1),(2,2)
	}
	fm[0*nc+4] = 1
	fm[4*nc+0] = 1
	largest(fm, nr, nc)
	for i := 0; i < 3; i++ {
		if fm[i*nc+i] != 1 {
			t.Fatalf("diagonal chain broken at (%d,%d)", i, i)
		}
	}
	if fm[0*nc+4] != 0 || fm[4*nc+0] != 0 {
		t.Fatal("singleton cells retained")
	}
}

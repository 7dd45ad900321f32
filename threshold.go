package gravflow

import "math"

// threshold marks flow wherever log10(influence) exceeds the distance-decay
// threshold T = a·L^b − c (clamped to ≤0), L the planar vent distance in km.
// Zero influence is never flow; the guard keeps log10(0) out of the
// comparison entirely.
func (d *Domain) threshold(acc []float64, xv, yv int) []int32 {
	fm := make([]int32, len(acc))
	km := d.Fil.Cs / 1000.
	for cid, a := range acc {
		if a <= 0. {
			continue
		}
		r, c := d.Fil.RowCol(cid)
		l := km * math.Hypot(float64(c-xv), float64(r-yv))
		t := d.Par.A*math.Pow(l, d.Par.B) - d.Par.C
		if t > 0. {
			t = 0.
		}
		if math.Log10(a) > t {
			fm[cid] = 1
		}
	}
	return fm
}

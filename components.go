package gravflow

import "github.com/maseology/mmaths"

var coff = [8][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// largest prunes the binary flow map to its largest 8-connected region,
// in place. Components are labelled by iterative flood fill in scan order;
// equal-sized regions resolve to the first encountered. An empty map is
// left unchanged.
func largest(fm []int32, nr, nc int) {
	lbl := make([]int32, len(fm))
	size := make(map[int]int)
	stack := make([]int32, 0, 256)
	nlbl := int32(0)
	for cid := range fm {
		if fm[cid] == 0 || lbl[cid] != 0 {
			continue
		}
		nlbl++
		lbl[cid] = nlbl
		stack = append(stack[:0], int32(cid))
		n := 0
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n++
			r, c := int(id)/nc, int(id)%nc
			for _, o := range coff {
				rr, cc := r+o[0], c+o[1]
				if rr < 0 || rr >= nr || cc < 0 || cc >= nc {
					continue
				}
				nid := rr*nc + cc
				if fm[nid] == 1 && lbl[nid] == 0 {
					lbl[nid] = nlbl
					stack = append(stack, int32(nid))
				}
			}
		}
		size[int(nlbl)] = n
	}
	if len(size) < 2 {
		return
	}

	lbls, cnts := mmaths.SortMapInt(size, false) // ascending label: first-found wins ties
	best, bn := lbls[0], cnts[0]
	for i := 1; i < len(lbls); i++ {
		if cnts[i] > bn {
			best, bn = lbls[i], cnts[i]
		}
	}
	for cid := range fm {
		if fm[cid] == 1 && lbl[cid] != int32(best) {
			fm[cid] = 0
		}
	}
}

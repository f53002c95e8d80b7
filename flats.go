package multipath

// LabelFlats identifies and uniquely labels flat regions: contiguous
// (8-connected) groups of cells having no adjacent lower cell. Returns a flat
// id for every cell (0 meaning not part of any flat) and the number of
// regions found (the highest id assigned).
//
// The outer ring never holds a full 3x3 neighborhood and is always left
// unlabelled. For every flat, at least one perimeter cell of the same
// elevation drains away from the region and so fails the candidate test;
// these remain unlabelled and are later discovered as pour points when the
// region is resolved.
func (s *Surface) LabelFlats() ([]int, int) {
	nr, nc, off := s.Nrow, s.Ncol, s.offsets8()

	// a cell is a flat candidate where all 8 neighbors are at or above it
	cand := make([]bool, nr*nc)
	for r := 1; r < nr-1; r++ {
		for c := 1; c < nc-1; c++ {
			cid := r*nc + c
			n := 0
			for _, o := range off {
				if s.Z[cid+o] >= s.Z[cid] {
					n++
				}
			}
			cand[cid] = n == 8
		}
	}

	// group candidates into 8-connected components
	flats, nflats := make([]int, nr*nc), 0
	for r := 1; r < nr-1; r++ {
		for c := 1; c < nc-1; c++ {
			cid := r*nc + c
			if !cand[cid] || flats[cid] != 0 {
				continue
			}
			nflats++
			queue := []int{cid}
			flats[cid] = nflats
			for qi := 0; qi < len(queue); qi++ {
				for _, o := range off {
					if n := queue[qi] + o; cand[n] && flats[n] == 0 {
						flats[n] = nflats
						queue = append(queue, n)
					}
				}
			}
		}
	}
	return flats, nflats
}

package multipath

import "sort"

// VisitingOrder returns the ids of all interior cells, stable-sorted
// ascending by (elevation, flat id). Cells of one flat region share both keys
// and therefore remain contiguous in the order. Sweeps consume the order in
// reverse so every upslope contributor has deposited its flow before any cell
// below it is processed.
func (s *Surface) VisitingOrder(flats []int) []int {
	if len(flats) != s.Ncells() {
		panic("multipath: flat label grid does not match surface dimensions")
	}
	ord := make([]int, 0, s.ninterior())
	for r := 1; r < s.Nrow-1; r++ {
		for c := 1; c < s.Ncol-1; c++ {
			ord = append(ord, r*s.Ncol+c)
		}
	}
	sort.SliceStable(ord, func(i, j int) bool {
		if s.Z[ord[i]] != s.Z[ord[j]] {
			return s.Z[ord[i]] < s.Z[ord[j]]
		}
		return flats[ord[i]] < flats[ord[j]]
	})
	return ord
}

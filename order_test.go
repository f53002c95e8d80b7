package multipath_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestVisitingOrderPermutation verifies the order covers exactly the interior
// cells, once each.
func TestVisitingOrderPermutation(t *testing.T) {
	s := twoFlatSurface(t)
	flats, _ := s.LabelFlats()
	ord := s.VisitingOrder(flats)

	require.Len(t, ord, (s.Nrow-2)*(s.Ncol-2))
	seen := make(map[int]bool, len(ord))
	for _, cid := range ord {
		r, c := s.RowCol(cid)
		require.True(t, r > 0 && r < s.Nrow-1 && c > 0 && c < s.Ncol-1, "cell (%d,%d) not interior", r, c)
		require.False(t, seen[cid], "cell %d repeated", cid)
		seen[cid] = true
	}
}

func TestVisitingOrderSortedAndGrouped(t *testing.T) {
	s := twoFlatSurface(t)
	flats, _ := s.LabelFlats()
	ord := s.VisitingOrder(flats)

	for k := 1; k < len(ord); k++ {
		zp, zc := s.Z[ord[k-1]], s.Z[ord[k]]
		require.LessOrEqual(t, zp, zc, "elevation out of order at position %d", k)
		if zp == zc {
			require.LessOrEqual(t, flats[ord[k-1]], flats[ord[k]], "flat id out of order at position %d", k)
		}
	}

	// cells of one flat region must be contiguous
	closed := make(map[int]bool)
	last := 0
	for _, cid := range ord {
		fid := flats[cid]
		if fid != last {
			if last > 0 {
				closed[last] = true
			}
			require.False(t, closed[fid], "flat %d re-entered", fid)
			last = fid
		}
	}
}

// TestVisitingOrderStable verifies that cells sharing both sort keys keep
// their original row-major scan order, making the sweep deterministic.
func TestVisitingOrderStable(t *testing.T) {
	s := twoFlatSurface(t)
	flats, _ := s.LabelFlats()
	ord := s.VisitingOrder(flats)

	var ties []int
	for _, cid := range ord {
		if s.Z[cid] == 5. && flats[cid] == 0 {
			ties = append(ties, cid)
		}
	}
	require.Equal(t, []int{s.CellID(1, 1), s.CellID(1, 5), s.CellID(2, 1),
		s.CellID(2, 5), s.CellID(3, 1), s.CellID(3, 5)}, ties)

	require.Equal(t, ord, s.VisitingOrder(flats))
}

func TestVisitingOrderShapeMismatchPanics(t *testing.T) {
	s := twoFlatSurface(t)
	require.Panics(t, func() { s.VisitingOrder(make([]int, 7)) })
}

// Package multipath computes multipath flow accumulation by slicing down
// through a depression-filled digital elevation model: every cell's
// accumulated flow (its count of upslope contributing cells) is distributed
// to all adjacent downslope cells in proportion to the focal elevation
// difference. Cells within flat regions receive the zonal sum of all cells in
// the region, which is in turn distributed evenly to the region's pour
// points.
//
// Intended for sink-filled surfaces. Accumulation incident to the outside
// rows and columns is never distributed further; see rast.Definition.Shift.
package multipath

import "fmt"

// Surface holds an immutable depression-filled elevation grid. Z is stored
// row-major; cell id = row*Ncol + col.
type Surface struct {
	Z          []float64
	Nrow, Ncol int
}

// NewSurface builds a Surface from a 2D elevation array.
func NewSurface(z [][]float64) (*Surface, error) {
	nr := len(z)
	if nr < 3 {
		return nil, fmt.Errorf("multipath.NewSurface: %d row(s), need at least 3", nr)
	}
	nc := len(z[0])
	if nc < 3 {
		return nil, fmt.Errorf("multipath.NewSurface: %d column(s), need at least 3", nc)
	}
	s := &Surface{Z: make([]float64, nr*nc), Nrow: nr, Ncol: nc}
	for i, row := range z {
		if len(row) != nc {
			return nil, fmt.Errorf("multipath.NewSurface: row %d holds %d columns, expected %d", i, len(row), nc)
		}
		copy(s.Z[i*nc:], row)
	}
	return s, nil
}

// Ncells number of cells that make up the surface
func (s *Surface) Ncells() int { return s.Nrow * s.Ncol }

// CellID converts a (row,col) pair to a cell id.
func (s *Surface) CellID(r, c int) int { return r*s.Ncol + c }

// RowCol converts a cell id to its (row,col) pair.
func (s *Surface) RowCol(cid int) (int, int) { return cid / s.Ncol, cid % s.Ncol }

// ninterior number of interior cells, those holding a full 3x3 neighborhood
func (s *Surface) ninterior() int {
	if s.Nrow < 3 || s.Ncol < 3 {
		return 0
	}
	return (s.Nrow - 2) * (s.Ncol - 2)
}

// offsets8 cell id offsets to the 8 nearest neighbors
func (s *Surface) offsets8() [8]int {
	nc := s.Ncol
	return [8]int{-nc - 1, -nc, -nc + 1, -1, 1, nc - 1, nc, nc + 1}
}

package multipath

// Accumulate computes the multipath flow accumulation of the surface. Every
// cell begins owning one unit of locally generated flow; interior cells are
// then visited from highest to lowest elevation, each distributing its
// accumulated total to its downslope neighbors in proportion to the elevation
// drop. Flat regions are resolved as their scan completes: members take on
// the region's zonal sum, which is re-emitted evenly through the region's
// pour points.
//
// Returns the accumulation grid (same shape as the surface, row-major) and a
// report of any sink conditions met. Border cells retain whatever was
// deposited into them but are never distributed further.
func (s *Surface) Accumulate() ([]float64, Report) {
	return s.accumulate(nil)
}

func (s *Surface) accumulate(incr func()) ([]float64, Report) {
	flats, nflats := s.LabelFlats()
	ord := s.VisitingOrder(flats)

	mflat := make([][]int, nflats+1) // member cells by flat id
	for cid, f := range flats {
		if f > 0 {
			mflat[f] = append(mflat[f], cid)
		}
	}

	a := make([]float64, s.Ncells())
	for i := range a {
		a[i] = 1.
	}

	var rpt Report
	off := s.offsets8()

	type cursor struct {
		z   float64
		fid int
	}
	var cur *cursor // flat region currently being scanned
	closeFlat := func() {
		if s.resolveFlat(cur.z, mflat[cur.fid], flats, a) == 0 {
			rpt.Sinks = append(rpt.Sinks, cur.fid)
		}
		cur = nil
	}

	for k := len(ord) - 1; k >= 0; k-- {
		if incr != nil {
			incr()
		}
		cid := ord[k]

		if fid := flats[cid]; fid > 0 {
			if cur != nil && cur.fid != fid {
				closeFlat() // the order left one flat region and entered another
			}
			if cur == nil {
				cur = &cursor{s.Z[cid], fid}
			}
			continue
		}
		if cur != nil {
			closeFlat()
		}

		zc, tsum := s.Z[cid], 0.
		for _, o := range off {
			if zn := s.Z[cid+o]; zn < zc {
				tsum += zc - zn
			}
		}
		if tsum == 0. {
			// nowhere to drain yet not labelled flat; not properly filled here
			rpt.Degenerate = append(rpt.Degenerate, cid)
			continue
		}
		for _, o := range off {
			if zn := s.Z[cid+o]; zn < zc {
				a[cid+o] += a[cid] * (zc - zn) / tsum
			}
		}
	}
	if cur != nil {
		closeFlat() // the lowest flat on the surface would otherwise never drain
	}
	return a, rpt
}

package multipath

import "fmt"

// Report collects the non-fatal data conditions met during a sweep. Both
// indicate a surface that was not fully depression-filled; in either case the
// offending flow is left pooled in place rather than letting a zero division
// poison the surrounding cells.
type Report struct {
	Sinks      []int // flat ids with no pour point; zonal sum pooled, not distributed
	Degenerate []int // unlabelled cell ids with no downslope neighbor; flow not distributed
}

// Summary one-line rendering of the report, empty when the sweep was clean.
func (r *Report) Summary() string {
	if len(r.Sinks) == 0 && len(r.Degenerate) == 0 {
		return ""
	}
	return fmt.Sprintf("%d unresolved sink(s), %d degenerate cell(s)", len(r.Sinks), len(r.Degenerate))
}

// resolveFlat closes out a completed flat region: the region's zonal
// accumulation sum is assigned to every member cell and then split evenly
// over the region's pour points, i.e. the cells along the region's exterior
// perimeter not above the flat. Returns the number of pour points found; zero
// marks the region a true sink and nothing is distributed.
func (s *Surface) resolveFlat(zflat float64, members, flats []int, a []float64) int {
	csum := 0.
	for _, c := range members {
		csum += a[c]
	}
	for _, c := range members {
		a[c] = csum // all member cells receive the flow incident to the flat
	}

	fid, off := flats[members[0]], s.offsets8()
	seen := make(map[int]bool, len(members))
	var pp []int
	for _, c := range members {
		for _, o := range off {
			n := c + o
			if flats[n] == fid || seen[n] {
				continue
			}
			seen[n] = true
			if s.Z[n] <= zflat {
				pp = append(pp, n)
			}
		}
	}
	if len(pp) == 0 {
		return 0
	}

	d := csum / float64(len(pp))
	for _, p := range pp {
		a[p] += d
	}
	return len(pp)
}

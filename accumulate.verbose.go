package multipath

import (
	"fmt"

	"github.com/gosuri/uiprogress"
)

// AccumulateVerbose runs Accumulate behind a console progress bar, printing
// any WARNING conditions met once the sweep completes.
func (s *Surface) AccumulateVerbose() ([]float64, Report) {
	uiprogress.Start()
	bar := uiprogress.AddBar(s.ninterior()).AppendCompleted().PrependElapsed()
	a, rpt := s.accumulate(func() { bar.Incr() })
	uiprogress.Stop()

	if len(rpt.Sinks) > 0 {
		fmt.Printf(" WARNING %d flat region(s) with no pour point; zonal sum(s) pooled, not distributed\n", len(rpt.Sinks))
	}
	if len(rpt.Degenerate) > 0 {
		fmt.Printf(" WARNING %d unlabelled cell(s) with no downslope neighbor; flow not distributed\n", len(rpt.Degenerate))
	}
	return a, rpt
}

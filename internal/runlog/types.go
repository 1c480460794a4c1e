package runlog

import "time"

// #region run
// Run is one recorded scan: its parameters, working precision, timing, and
// the code histogram. The grid itself is never stored — it exists only as
// the textual stream the scan emitted.
type Run struct {
	ID string

	MinRe, MaxRe  float64
	MinIm, MaxIm  float64
	NumRe, NumIm  int
	Eps           float64
	MaxIterations int
	Precision     string // kernel name, e.g. "float64" or "big-128"

	Duration     time.Duration
	Cells        int
	NonFinite    int
	Terminated   int
	Undetermined int

	CreatedAt time.Time
}
// #endregion run

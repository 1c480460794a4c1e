package field

import "math/cmplx"

// #region detect-cycle
// detectCycle scans backward from buf[written-1] for an earlier element within
// eps, at most maxLookback elements deep. The return value is the backward
// distance of the first match (the nearest one, not necessarily the minimal
// period), or 0 when nothing matches. A prefix shorter than 2 has nothing to
// compare against and always yields 0.
func detectCycle(buf []complex128, written int, eps float64, maxLookback int) int {
	if written < 2 {
		return 0
	}
	last := buf[written-1]
	k := 0
	for i := written - 2; i >= 0 && i >= written-1-maxLookback; i-- {
		k++
		if cmplx.Abs(buf[i]-last) < eps {
			return k
		}
	}
	return 0
}
// #endregion detect-cycle

package field

import (
	"math"
	"math/cmplx"
)

// #region evaluate
// evaluate drives F(n) = exp(z·F(n-1)) with F(0)=1, writing the n-th computed
// term into buf[n-2]. The step counter n runs from 2, so a near-zero hit on
// the first computed term reports step 2. Pure: the only effect is writing
// buf[0..written-1]; slots past the returned Written are stale and must not
// be read.
func evaluate(z complex128, buf []complex128, safeZero float64) Outcome {
	f := complex(1, 0)
	for n := 2; n <= len(buf)+1; n++ {
		f = cmplx.Exp(z * f)
		buf[n-2] = f
		if isBad(f) {
			return Outcome{Kind: TermNonFinite, Written: n - 1}
		}
		if cmplx.Abs(f) < safeZero {
			return Outcome{Kind: TermNearZero, Step: n, Written: n - 1}
		}
	}
	return Outcome{Kind: TermExhausted, Written: len(buf)}
}
// #endregion evaluate

// #region helpers
// isBad reports a NaN in either component. Inf alone is not terminal: the
// next multiplication by z degenerates it to NaN within a step, and an Inf
// landing on the very last slot leaves the detector to report no cycle.
func isBad(z complex128) bool {
	return math.IsNaN(real(z)) || math.IsNaN(imag(z))
}
// #endregion helpers

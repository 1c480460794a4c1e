package field

// #region region
// Region is the rectangular sample area in the complex plane.
// MinRe <= MaxRe and MinIm <= MaxIm must hold for a scan to proceed.
type Region struct {
	MinRe, MaxRe float64
	MinIm, MaxIm float64
	NumRe, NumIm int // lattice subdivisions per axis
}
// #endregion region

// #region scan-config
// ScanConfig holds the full parameter set for one grid scan.
type ScanConfig struct {
	Region        Region
	Eps           float64 // cycle detection tolerance
	MaxIterations int     // sequence length per lattice point
}

// DefaultScanConfig returns the standard parameters of the scanner.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		Region: Region{
			MinRe: -1, MaxRe: 0.5,
			MinIm: 2, MaxIm: 3,
			NumRe: 20, NumIm: 20,
		},
		Eps:           1e-16,
		MaxIterations: 1900,
	}
}
// #endregion scan-config

// #region kernel-config
// KernelConfig holds the fixed numeric thresholds of a precision kernel.
type KernelConfig struct {
	SafeZero    float64 // near-zero termination threshold
	MaxLookback int     // cycle detector backward window, independent of MaxIterations
	ExpArgLimit float64 // big kernel: exp argument magnitude treated as overflow
}

// DefaultKernelConfig returns the standard thresholds. ExpArgLimit is the
// exp overflow bound of an 80-bit extended float; past it an
// extended-precision evaluation degenerates to Inf and then NaN.
func DefaultKernelConfig() KernelConfig {
	return KernelConfig{
		SafeZero:    1e-18,
		MaxLookback: 255,
		ExpArgLimit: 11356.52,
	}
}
// #endregion kernel-config

// #region termination
// TerminationKind classifies how the evaluator stopped at one lattice point.
type TerminationKind string

const (
	TermNonFinite TerminationKind = "non_finite" // NaN/Inf (or overflow) encountered
	TermNearZero  TerminationKind = "near_zero"  // |F| fell below SafeZero
	TermExhausted TerminationKind = "exhausted"  // all MaxIterations steps ran
)

// Outcome is the evaluator result for one lattice point. Step is only
// meaningful for TermNearZero; Written is the logical buffer length, the only
// prefix the cycle detector may read.
type Outcome struct {
	Kind    TerminationKind
	Step    int
	Written int
}
// #endregion termination

// #region codes
// Cell codes emitted to the sink. Positive codes are overloaded: a near-zero
// step index and a cycle length share the same channel. The overload is part
// of the output contract and is kept; internally Outcome stays tagged.
const (
	CodeNonFinite    = -1
	CodeUndetermined = 0
)
// #endregion codes

// Package precision models the process-wide working precision choice: one
// Spec value selected at startup and threaded into kernel construction,
// never global mutable state. It also renders the platform introspection
// block the scanner prints before a run.
package precision

import (
	"fmt"
	"math"
	"strings"
)

// DefaultBits is the default mantissa width of the wide working precision.
const DefaultBits uint = 128

// #region spec
// Mode names a working-precision family.
type Mode string

const (
	ModeDouble Mode = "double" // complex128, the narrow fallback
	ModeBig    Mode = "big"    // arbitrary-precision complex
)

// Spec is the working precision for every core call of a run.
type Spec struct {
	Mode Mode
	Bits uint // mantissa bits; meaningful for ModeBig only
}

// Select maps a requested mantissa width to a Spec. Zero bits selects the
// narrow fallback explicitly.
func Select(bits uint) Spec {
	if bits == 0 {
		return Spec{Mode: ModeDouble}
	}
	return Spec{Mode: ModeBig, Bits: bits}
}

// Describe names the selected precision, e.g. "big.Float (128-bit mantissa)".
func (s Spec) Describe() string {
	if s.Mode == ModeDouble {
		return "float64 (53-bit mantissa)"
	}
	return fmt.Sprintf("big.Float (%d-bit mantissa)", s.Bits)
}
// #endregion spec

// #region report
// Report renders the numeric-limits block for the banner: what the narrow
// type can hold and which working precision this run selected.
func Report(s Spec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "float64 mantissa bits:   53\n")
	fmt.Fprintf(&b, "float64 epsilon:         %g\n", math.Nextafter(1, 2)-1)
	fmt.Fprintf(&b, "float64 smallest/largest: %g / %g\n",
		math.SmallestNonzeroFloat64, math.MaxFloat64)
	fmt.Fprintf(&b, "working precision:       %s\n", s.Describe())
	return b.String()
}
// #endregion report

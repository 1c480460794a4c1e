package field

import (
	"fmt"
	"strconv"
)

// #region kernel
// Kernel runs the continued-exponential iteration at one lattice point in a
// fixed working precision. Each kernel owns a sequence buffer sized at
// construction and reuses it across cells; callers must re-derive the logical
// length from each Evaluate outcome before calling DetectCycle.
type Kernel interface {
	// Evaluate runs the sequence at z = re + im·i into the internal buffer.
	Evaluate(re, im float64) Outcome
	// DetectCycle scans the buffer prefix of the given length for a short
	// backward repetition within eps. Only valid after TermExhausted.
	DetectCycle(written int, eps float64) int
	// Iterates renders the written buffer prefix for diagnostic output.
	Iterates(written, digits int) []string
	// Name identifies the working precision, e.g. "float64" or "big-128".
	Name() string
}
// #endregion kernel

// #region double-kernel
// DoubleKernel is the narrow fallback working precision: complex128.
type DoubleKernel struct {
	cfg KernelConfig
	buf []complex128
}

// NewDoubleKernel allocates the sequence buffer up front; the scan never
// allocates per cell. A non-positive maxLen refuses construction.
func NewDoubleKernel(cfg KernelConfig, maxLen int) (*DoubleKernel, error) {
	if maxLen <= 0 {
		return nil, fmt.Errorf("sequence buffer length must be positive, got %d", maxLen)
	}
	return &DoubleKernel{cfg: cfg, buf: make([]complex128, maxLen)}, nil
}

func (k *DoubleKernel) Evaluate(re, im float64) Outcome {
	return evaluate(complex(re, im), k.buf, k.cfg.SafeZero)
}

func (k *DoubleKernel) DetectCycle(written int, eps float64) int {
	return detectCycle(k.buf, written, eps, k.cfg.MaxLookback)
}

func (k *DoubleKernel) Iterates(written, digits int) []string {
	out := make([]string, 0, written)
	for i := 0; i < written && i < len(k.buf); i++ {
		out = append(out, strconv.FormatComplex(k.buf[i], 'g', digits, 128))
	}
	return out
}

func (k *DoubleKernel) Name() string { return "float64" }
// #endregion double-kernel

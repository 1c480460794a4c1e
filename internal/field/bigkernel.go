package field

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	ap "github.com/lukaszgryglicki/apcomplex"
)

// absScreenDigits is the fixed-point width used when screening big-kernel
// magnitudes through float64. 30 decimals resolves every threshold in use
// (SafeZero 1e-18, Eps down to 1e-16) with headroom.
const absScreenDigits = 30

// #region big-kernel
// BigKernel is the wide working precision: arbitrary-precision complex
// arithmetic at a fixed mantissa width. All sequence values live in a
// preallocated buffer of big values that is rewritten in place across cells.
//
// big.Float arithmetic never yields NaN, so the non-finite condition is
// expressed as overflow instead: a cell is flagged non-finite when the real
// part of the next exp argument exceeds ExpArgLimit (where an 80-bit extended
// evaluation degenerates to Inf and then NaN) or when an iterate magnitude
// leaves the float64-screenable range. Only the real part decides overflow;
// an argument that is large but nearly imaginary keeps a bounded exp and the
// iteration keeps going.
type BigKernel struct {
	cfg  KernelConfig
	prec uint

	one     *ap.Complex
	tmp     *ap.Complex
	diff    *ap.Complex
	scratch *ap.Complex
	buf     []*ap.Complex
}

// NewBigKernel allocates every buffer slot at the given mantissa width up
// front. A non-positive maxLen or zero bit width refuses construction.
func NewBigKernel(cfg KernelConfig, maxLen int, bits uint) (*BigKernel, error) {
	if maxLen <= 0 {
		return nil, fmt.Errorf("sequence buffer length must be positive, got %d", maxLen)
	}
	if bits == 0 {
		return nil, fmt.Errorf("mantissa width must be positive")
	}
	k := &BigKernel{
		cfg:     cfg,
		prec:    bits,
		one:     ap.MustParse("1", bits),
		tmp:     ap.New(bits),
		diff:    ap.New(bits),
		scratch: ap.New(bits),
		buf:     make([]*ap.Complex, maxLen),
	}
	for i := range k.buf {
		k.buf[i] = ap.New(bits)
	}
	return k, nil
}
// #endregion big-kernel

// #region evaluate
func (k *BigKernel) Evaluate(re, im float64) Outcome {
	z, err := ap.Parse(formatPoint(re, im), k.prec)
	if err != nil {
		// Lattice coordinates are finite floats; a parse failure means the
		// point is not representable and the cell cannot be classified.
		return Outcome{Kind: TermNonFinite, Written: 0}
	}
	prev := k.one
	for n := 2; n <= len(k.buf)+1; n++ {
		arg := k.tmp.Mul(z, prev)
		if k.realFloat(arg) > k.cfg.ExpArgLimit {
			// exp(arg) would overflow 80-bit extended range.
			return Outcome{Kind: TermNonFinite, Written: n - 2}
		}
		cur := k.buf[n-2]
		cur.Exp(arg)
		fMag := k.absFloat(cur)
		if math.IsInf(fMag, 0) || math.IsNaN(fMag) {
			return Outcome{Kind: TermNonFinite, Written: n - 1}
		}
		if fMag < k.cfg.SafeZero {
			return Outcome{Kind: TermNearZero, Step: n, Written: n - 1}
		}
		prev = cur
	}
	return Outcome{Kind: TermExhausted, Written: len(k.buf)}
}
// #endregion evaluate

// #region detect-cycle
func (k *BigKernel) DetectCycle(written int, eps float64) int {
	if written < 2 {
		return 0
	}
	last := k.buf[written-1]
	n := 0
	for i := written - 2; i >= 0 && i >= written-1-k.cfg.MaxLookback; i-- {
		n++
		if k.absFloat(k.diff.Sub(k.buf[i], last)) < eps {
			return n
		}
	}
	return 0
}
// #endregion detect-cycle

// #region rendering
func (k *BigKernel) Iterates(written, digits int) []string {
	out := make([]string, 0, written)
	for i := 0; i < written && i < len(k.buf); i++ {
		out = append(out, k.buf[i].StringScientific(digits))
	}
	return out
}

func (k *BigKernel) Name() string { return fmt.Sprintf("big-%d", k.prec) }
// #endregion rendering

// #region helpers
// absFloat screens a big magnitude through float64. Out-of-range values
// saturate (overflow to +Inf, underflow to 0), which is exactly the behavior
// the threshold comparisons need.
func (k *BigKernel) absFloat(v *ap.Complex) float64 {
	s := k.scratch.AbsStringFixed(v, absScreenDigits)
	f, _ := strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(s, "+")), 64)
	return f
}

// realFloat screens the real component the same way, for the overflow guard.
// Real parts past float64 range saturate to ±Inf, which compares correctly
// against ExpArgLimit.
func (k *BigKernel) realFloat(v *ap.Complex) float64 {
	s := v.RealStringFixed(absScreenDigits)
	f, _ := strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(s, "+")), 64)
	return f
}

// formatPoint renders a lattice point in the a+bi form the parser accepts,
// round-tripping both float64 components exactly.
func formatPoint(re, im float64) string {
	r := strconv.FormatFloat(re, 'g', -1, 64)
	i := strconv.FormatFloat(math.Abs(im), 'g', -1, 64)
	if math.Signbit(im) {
		return r + "-" + i + "i"
	}
	return r + "+" + i + "i"
}
// #endregion helpers

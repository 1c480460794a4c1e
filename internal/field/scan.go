package field

import (
	"errors"
	"fmt"
)

// ErrInvalidRegion is returned when a region has min > max on either axis.
// The scan produces no cells; the caller reports the diagnostic and carries on.
var ErrInvalidRegion = errors.New("invalid region")

// #region sink
// Sink receives scan output in lattice order, cell by cell. The scanner never
// retains the grid; whatever the sink does not keep is gone.
type Sink interface {
	Header(r Region, stepRe, stepIm float64)
	Cell(re, im float64, code int)
	EndRow()
}
// #endregion sink

// #region summary
// Summary tallies cell codes over one scan, for the run catalog.
type Summary struct {
	Cells        int
	NonFinite    int // code -1
	Terminated   int // positive codes: near-zero step or cycle length
	Undetermined int // code 0
}

func (s *Summary) count(code int) {
	s.Cells++
	switch {
	case code < 0:
		s.NonFinite++
	case code > 0:
		s.Terminated++
	default:
		s.Undetermined++
	}
}
// #endregion summary

// #region scanner
// Scanner applies a kernel across the rectangular lattice of a ScanConfig.
// Traversal is row-major in reading order: the imaginary axis walks from
// MaxIm downward in NumIm rows, each row walks the real axis left to right.
type Scanner struct {
	cfg    ScanConfig
	kernel Kernel
}

// NewScanner pairs a config with a kernel. The kernel's buffer must have been
// sized to cfg.MaxIterations by the caller.
func NewScanner(cfg ScanConfig, k Kernel) *Scanner {
	return &Scanner{cfg: cfg, kernel: k}
}

// Run validates the region, then emits every cell to the sink in lattice
// order. Each row holds NumRe+1 samples: the row start plus NumRe accumulated
// advances of stepRe. The step divisors use NumRe+1/NumIm+1, so the far
// boundary is never sampled exactly.
func (s *Scanner) Run(sink Sink) (Summary, error) {
	r := s.cfg.Region
	if r.MinRe > r.MaxRe || r.MinIm > r.MaxIm {
		return Summary{}, fmt.Errorf("%w: [%g, %g][%g, %g]",
			ErrInvalidRegion, r.MinRe, r.MaxRe, r.MinIm, r.MaxIm)
	}

	stepRe := (r.MaxRe - r.MinRe) / float64(r.NumRe+1)
	stepIm := (r.MaxIm - r.MinIm) / float64(r.NumIm+1)
	sink.Header(r, stepRe, stepIm)

	var sum Summary
	for row := 0; row < r.NumIm; row++ {
		im := r.MaxIm - float64(row)*stepIm
		re := r.MinRe
		s.cell(sink, &sum, re, im)
		for col := 0; col < r.NumRe; col++ {
			re += stepRe
			s.cell(sink, &sum, re, im)
		}
		sink.EndRow()
	}
	return sum, nil
}

// cell classifies one lattice point. The tagged outcome flattens to the
// shared integer channel here and nowhere else: -1 non-finite, near-zero step
// index or cycle length positive, 0 undetermined. A non-finite cell is an
// ordinary classification, never a scan failure.
func (s *Scanner) cell(sink Sink, sum *Summary, re, im float64) {
	out := s.kernel.Evaluate(re, im)
	code := CodeUndetermined
	switch out.Kind {
	case TermNonFinite:
		code = CodeNonFinite
	case TermNearZero:
		code = out.Step
	case TermExhausted:
		code = s.kernel.DetectCycle(out.Written, s.cfg.Eps)
	}
	sum.count(code)
	sink.Cell(re, im, code)
}
// #endregion scanner

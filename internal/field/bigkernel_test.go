package field

import "testing"

func TestNewBigKernelRefusesBadSizes(t *testing.T) {
	if _, err := NewBigKernel(DefaultKernelConfig(), 0, 128); err == nil {
		t.Fatal("expected error for zero buffer length")
	}
	if _, err := NewBigKernel(DefaultKernelConfig(), -3, 128); err == nil {
		t.Fatal("expected error for negative buffer length")
	}
	if _, err := NewBigKernel(DefaultKernelConfig(), 10, 0); err == nil {
		t.Fatal("expected error for zero mantissa width")
	}
}

func TestBigKernelZeroIsConstantOne(t *testing.T) {
	k, err := NewBigKernel(DefaultKernelConfig(), 32, 128)
	if err != nil {
		t.Fatalf("NewBigKernel: %v", err)
	}

	out := k.Evaluate(0, 0)
	if out.Kind != TermExhausted {
		t.Fatalf("expected exhausted, got %s", out.Kind)
	}
	if out.Written != 32 {
		t.Fatalf("expected written 32, got %d", out.Written)
	}
	if c := k.DetectCycle(out.Written, 1e-15); c != 1 {
		t.Fatalf("expected cycle length 1 at z=0, got %d", c)
	}
}

func TestBigKernelNearZero(t *testing.T) {
	k, err := NewBigKernel(DefaultKernelConfig(), 32, 128)
	if err != nil {
		t.Fatalf("NewBigKernel: %v", err)
	}

	out := k.Evaluate(-100, 0)
	if out.Kind != TermNearZero {
		t.Fatalf("expected near-zero, got %s", out.Kind)
	}
	if out.Step != 2 {
		t.Fatalf("expected step 2, got %d", out.Step)
	}
}

func TestBigKernelDivergence(t *testing.T) {
	k, err := NewBigKernel(DefaultKernelConfig(), 32, 128)
	if err != nil {
		t.Fatalf("NewBigKernel: %v", err)
	}

	// exp(100) holds, but the next argument's real part (~2.7e45) passes the
	// extended overflow bound.
	out := k.Evaluate(100, 0)
	if out.Kind != TermNonFinite {
		t.Fatalf("expected non-finite, got %s", out.Kind)
	}
}

func TestBigKernelOverflowGuardReadsRealPart(t *testing.T) {
	// With the limit pinched down to 1, every argument of the z=2i orbit has
	// |arg| above the limit while Re(arg) stays below it. exp stays bounded,
	// so the orbit must run to exhaustion rather than be flagged non-finite.
	cfg := DefaultKernelConfig()
	cfg.ExpArgLimit = 1.0
	k, err := NewBigKernel(cfg, 3, 128)
	if err != nil {
		t.Fatalf("NewBigKernel: %v", err)
	}

	out := k.Evaluate(0, 2)
	if out.Kind != TermExhausted {
		t.Fatalf("expected exhausted, got %s", out.Kind)
	}
	if out.Written != 3 {
		t.Fatalf("expected written 3, got %d", out.Written)
	}
}

func TestBigKernelMatchesDoubleKernelOnTameOrbit(t *testing.T) {
	cfg := DefaultKernelConfig()
	dk, err := NewDoubleKernel(cfg, 50)
	if err != nil {
		t.Fatalf("NewDoubleKernel: %v", err)
	}
	bk, err := NewBigKernel(cfg, 50, 128)
	if err != nil {
		t.Fatalf("NewBigKernel: %v", err)
	}

	// A point converging to a fixed point terminates the same way and with
	// the same cycle length in both precisions.
	re, im := -0.5, 0.1
	do := dk.Evaluate(re, im)
	bo := bk.Evaluate(re, im)
	if do.Kind != bo.Kind {
		t.Fatalf("kinds differ: %s vs %s", do.Kind, bo.Kind)
	}
	if do.Kind == TermExhausted {
		dc := dk.DetectCycle(do.Written, 1e-9)
		bc := bk.DetectCycle(bo.Written, 1e-9)
		if dc != bc {
			t.Fatalf("cycle lengths differ: %d vs %d", dc, bc)
		}
	}
}

func TestFormatPoint(t *testing.T) {
	cases := []struct {
		re, im float64
		want   string
	}{
		{0.5, 0.5, "0.5+0.5i"},
		{-1, 2.5, "-1+2.5i"},
		{-2.5, -4.1, "-2.5-4.1i"},
		{0, 0, "0+0i"},
		{1e-20, -1e-20, "1e-20-1e-20i"},
	}
	for _, c := range cases {
		if got := formatPoint(c.re, c.im); got != c.want {
			t.Fatalf("formatPoint(%g, %g) = %q, want %q", c.re, c.im, got, c.want)
		}
	}
}

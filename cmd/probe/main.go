package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/danielpatrickdp/contexp/internal/config"
	"github.com/danielpatrickdp/contexp/internal/field"
	"github.com/danielpatrickdp/contexp/internal/precision"
)

// probe evaluates the continued exponential at a single point and dumps the
// written iterates, for eyeballing a trajectory before committing to a full
// grid scan.

// #region main
func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	re := flag.Float64("re", -2.475409836065573771, "real part of z")
	im := flag.Float64("im", 4.175609756097561132, "imaginary part of z")
	steps := flag.Int("steps", 10, "maximum iteration count")
	bits := flag.Uint("bits", settings.Bits, "working precision mantissa bits (0 = float64 fallback)")
	eps := flag.Float64("eps", 1e-16, "cycle detection tolerance")
	digits := flag.Int("digits", 20, "significant digits per printed iterate")
	flag.Parse()

	spec := precision.Select(*bits)
	kcfg := field.DefaultKernelConfig()
	kcfg.SafeZero = settings.SafeZero
	kcfg.MaxLookback = settings.Lookback

	var kernel field.Kernel
	if spec.Mode == precision.ModeDouble {
		kernel, err = field.NewDoubleKernel(kcfg, *steps)
	} else {
		kernel, err = field.NewBigKernel(kcfg, *steps, spec.Bits)
	}
	if err != nil {
		log.Fatalf("kernel: %v", err)
	}

	out := kernel.Evaluate(*re, *im)
	code := field.CodeUndetermined
	switch out.Kind {
	case field.TermNonFinite:
		code = field.CodeNonFinite
	case field.TermNearZero:
		code = out.Step
	case field.TermExhausted:
		code = kernel.DetectCycle(out.Written, *eps)
	}

	fmt.Printf("z = %g + %gi  (%s)\n", *re, *im, spec.Describe())
	fmt.Printf("outcome: %s  code: %d  written: %d\n", out.Kind, code, out.Written)
	for i, it := range kernel.Iterates(out.Written, *digits) {
		fmt.Printf("%d: %s\n", i+1, it)
	}
}
// #endregion main

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/danielpatrickdp/contexp/internal/config"
	"github.com/danielpatrickdp/contexp/internal/field"
	"github.com/danielpatrickdp/contexp/internal/precision"
	"github.com/danielpatrickdp/contexp/internal/runlog"
)

// #region main
func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bits := flag.Uint("bits", settings.Bits, "working precision mantissa bits (0 = float64 fallback)")
	dbPath := flag.String("db", settings.DBPath, "run catalog database (empty = no recording)")
	quiet := flag.Bool("quiet", false, "suppress banner and precision report")
	flag.Parse()

	cfg, explained := parseArgs(field.DefaultScanConfig(), flag.Args())

	spec := precision.Select(*bits)
	if !*quiet {
		fmt.Println("-------- continued exponential convergence scanner --------")
		fmt.Println("F(n) = exp(z * F(n-1)), F(0) = 1")
		fmt.Print(precision.Report(spec))
		if explained {
			printUsage(cfg)
		}
	}

	kcfg := field.DefaultKernelConfig()
	kcfg.SafeZero = settings.SafeZero
	kcfg.MaxLookback = settings.Lookback

	kernel, err := newKernel(spec, kcfg, cfg.MaxIterations)
	if err != nil {
		// No buffer means no scan; partial output would be misleading.
		log.Fatalf("kernel: %v", err)
	}

	start := time.Now()
	sum, err := field.NewScanner(cfg, kernel).Run(field.NewTextSink(os.Stdout))
	if err != nil {
		if errors.Is(err, field.ErrInvalidRegion) {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		log.Fatalf("scan: %v", err)
	}

	if *dbPath != "" {
		recordRun(*dbPath, cfg, kernel.Name(), time.Since(start), sum)
	}
}
// #endregion main

// #region kernel-selection
func newKernel(spec precision.Spec, kcfg field.KernelConfig, maxLen int) (field.Kernel, error) {
	if spec.Mode == precision.ModeDouble {
		return field.NewDoubleKernel(kcfg, maxLen)
	}
	return field.NewBigKernel(kcfg, maxLen, spec.Bits)
}
// #endregion kernel-selection

// #region args
// parseArgs applies the positional parameter ladder onto the defaults:
// minRe maxRe minIm maxIm [numRe numIm [eps [maxIterations]]].
// Fewer than the four bounds keeps every default; the returned flag asks the
// caller to print the parameter explanation. numRe/numIm only apply when both
// are present, so a lone fifth argument is ignored.
func parseArgs(cfg field.ScanConfig, args []string) (field.ScanConfig, bool) {
	if len(args) < 4 {
		if len(args) > 0 {
			fmt.Fprintln(os.Stderr, "error parsing parameters: using standard parameters")
		}
		return cfg, true
	}

	cfg.Region.MinRe = parseFloatArg(args[0], "minRe")
	cfg.Region.MaxRe = parseFloatArg(args[1], "maxRe")
	cfg.Region.MinIm = parseFloatArg(args[2], "minIm")
	cfg.Region.MaxIm = parseFloatArg(args[3], "maxIm")
	if len(args) >= 6 {
		cfg.Region.NumRe = parseIntArg(args[4], "numRe")
		cfg.Region.NumIm = parseIntArg(args[5], "numIm")
	}
	if len(args) >= 7 {
		cfg.Eps = parseFloatArg(args[6], "eps")
	}
	if len(args) >= 8 {
		cfg.MaxIterations = parseIntArg(args[7], "maxIterations")
	}
	return cfg, false
}

func printUsage(cfg field.ScanConfig) {
	r := cfg.Region
	fmt.Printf("positional parameters: [minRe=%g maxRe=%g minIm=%g maxIm=%g] [numRe=%d numIm=%d] [eps=%g] [maxIterations=%d]\n",
		r.MinRe, r.MaxRe, r.MinIm, r.MaxIm, r.NumRe, r.NumIm, cfg.Eps, cfg.MaxIterations)
}

func parseFloatArg(s, name string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	return v
}

func parseIntArg(s, name string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	return v
}
// #endregion args

// #region record
func recordRun(dbPath string, cfg field.ScanConfig, kernelName string, dur time.Duration, sum field.Summary) {
	store, err := runlog.NewStore(dbPath)
	if err != nil {
		log.Printf("run catalog: %v", err)
		return
	}
	defer store.Close()

	r := cfg.Region
	run, err := store.Record(runlog.Run{
		MinRe: r.MinRe, MaxRe: r.MaxRe,
		MinIm: r.MinIm, MaxIm: r.MaxIm,
		NumRe: r.NumRe, NumIm: r.NumIm,
		Eps:           cfg.Eps,
		MaxIterations: cfg.MaxIterations,
		Precision:     kernelName,
		Duration:      dur,
		Cells:         sum.Cells,
		NonFinite:     sum.NonFinite,
		Terminated:    sum.Terminated,
		Undetermined:  sum.Undetermined,
	})
	if err != nil {
		log.Printf("run catalog: %v", err)
		return
	}
	fmt.Fprintf(os.Stderr, "recorded run %s (%s)\n", run.ID, dur.Round(time.Millisecond))
}
// #endregion record

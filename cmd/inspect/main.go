package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/contexp/internal/runlog"
)

// #region main
func main() {
	dbPath := flag.String("db", "", "path to the run catalog database")
	last := flag.Int("last", 20, "show N most recent runs")
	runID := flag.String("run", "", "show single run detail")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/contexp.db [--last N] [--run id]")
		os.Exit(2)
	}

	store, err := runlog.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *runID != "" {
		err = runDetail(store, *runID)
	} else {
		err = runList(store, *last)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
// #endregion main

// #region list
func runList(store *runlog.Store, last int) error {
	runs, err := store.List(last)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	fmt.Printf("%-12s  %-28s  %-9s  %6s  %6s  %6s  %6s  %s\n",
		"Run", "Region", "Precision", "Cells", "NaN", "Term", "Undet", "Time")
	for _, r := range runs {
		region := fmt.Sprintf("[%g, %g][%g, %g]", r.MinRe, r.MaxRe, r.MinIm, r.MaxIm)
		fmt.Printf("%-12s  %-28s  %-9s  %6d  %6d  %6d  %6d  %s\n",
			shortID(r.ID), region, r.Precision,
			r.Cells, r.NonFinite, r.Terminated, r.Undetermined,
			r.CreatedAt.Format("2006-01-02T15:04:05Z"))
	}
	return nil
}
// #endregion list

// #region detail
func runDetail(store *runlog.Store, id string) error {
	r, err := store.Get(id)
	if err != nil {
		return err
	}

	fmt.Printf("run:            %s\n", r.ID)
	fmt.Printf("region:         [%g, %g][%g, %g]\n", r.MinRe, r.MaxRe, r.MinIm, r.MaxIm)
	fmt.Printf("lattice:        %d x %d  (%d cells emitted)\n", r.NumRe, r.NumIm, r.Cells)
	fmt.Printf("eps:            %g\n", r.Eps)
	fmt.Printf("max iterations: %d\n", r.MaxIterations)
	fmt.Printf("precision:      %s\n", r.Precision)
	fmt.Printf("duration:       %s\n", r.Duration)
	fmt.Printf("codes:          %d non-finite, %d terminated, %d undetermined\n",
		r.NonFinite, r.Terminated, r.Undetermined)
	fmt.Printf("created:        %s\n", r.CreatedAt.Format("2006-01-02T15:04:05Z"))
	return nil
}
// #endregion detail

// #region helpers
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
// #endregion helpers

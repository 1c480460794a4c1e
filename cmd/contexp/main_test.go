package main

import (
	"testing"

	"github.com/danielpatrickdp/contexp/internal/field"
)

func TestParseArgsKeepsDefaultsWhenShort(t *testing.T) {
	def := field.DefaultScanConfig()

	for _, args := range [][]string{{}, {"-1"}, {"-1", "0.5"}, {"-1", "0.5", "2"}} {
		cfg, explain := parseArgs(def, args)
		if cfg != def {
			t.Fatalf("args %v changed config: %+v", args, cfg)
		}
		if !explain {
			t.Fatalf("args %v should request the parameter explanation", args)
		}
	}
}

func TestParseArgsBoundsOnly(t *testing.T) {
	def := field.DefaultScanConfig()

	cfg, explain := parseArgs(def, []string{"-0.5", "0.5", "1", "2"})
	if explain {
		t.Fatal("full bounds should not request the explanation")
	}
	r := cfg.Region
	if r.MinRe != -0.5 || r.MaxRe != 0.5 || r.MinIm != 1 || r.MaxIm != 2 {
		t.Fatalf("bounds not applied: %+v", r)
	}
	// Everything else keeps its default.
	if r.NumRe != def.Region.NumRe || r.NumIm != def.Region.NumIm {
		t.Fatalf("lattice changed without arguments: %+v", r)
	}
	if cfg.Eps != def.Eps || cfg.MaxIterations != def.MaxIterations {
		t.Fatalf("eps/iterations changed without arguments: %+v", cfg)
	}
}

func TestParseArgsIgnoresLoneFifth(t *testing.T) {
	def := field.DefaultScanConfig()

	cfg, _ := parseArgs(def, []string{"-0.5", "0.5", "1", "2", "7"})
	if cfg.Region.NumRe != def.Region.NumRe || cfg.Region.NumIm != def.Region.NumIm {
		t.Fatalf("lone fifth argument must be ignored: %+v", cfg.Region)
	}
}

func TestParseArgsFullLadder(t *testing.T) {
	def := field.DefaultScanConfig()

	cfg, _ := parseArgs(def, []string{"-0.5", "0.5", "1", "2", "3", "3", "1e-15", "100"})
	r := cfg.Region
	if r.NumRe != 3 || r.NumIm != 3 {
		t.Fatalf("lattice not applied: %+v", r)
	}
	if cfg.Eps != 1e-15 {
		t.Fatalf("eps = %g, want 1e-15", cfg.Eps)
	}
	if cfg.MaxIterations != 100 {
		t.Fatalf("max iterations = %d, want 100", cfg.MaxIterations)
	}
}

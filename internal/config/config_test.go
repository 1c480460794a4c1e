package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Bits != 128 {
		t.Fatalf("default bits = %d, want 128", s.Bits)
	}
	if s.SafeZero != 1e-18 {
		t.Fatalf("default safe zero = %g, want 1e-18", s.SafeZero)
	}
	if s.Lookback != 255 {
		t.Fatalf("default lookback = %d, want 255", s.Lookback)
	}
	if s.DBPath != "" {
		t.Fatalf("default db path = %q, want empty", s.DBPath)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CONTEXP_BITS", "256")
	t.Setenv("CONTEXP_SAFE_ZERO", "1e-20")
	t.Setenv("CONTEXP_LOOKBACK", "64")
	t.Setenv("CONTEXP_DB", "scans.db")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Bits != 256 || s.SafeZero != 1e-20 || s.Lookback != 64 || s.DBPath != "scans.db" {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct{ key, val string }{
		{"CONTEXP_BITS", "many"},
		{"CONTEXP_SAFE_ZERO", "-1e-18"},
		{"CONTEXP_SAFE_ZERO", "zero"},
		{"CONTEXP_LOOKBACK", "0"},
		{"CONTEXP_LOOKBACK", "soon"},
	}
	for _, c := range cases {
		t.Run(c.key+"="+c.val, func(t *testing.T) {
			t.Setenv(c.key, c.val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", c.key, c.val)
			}
		})
	}
}

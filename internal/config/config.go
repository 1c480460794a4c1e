// Package config loads ambient scanner settings from the environment, with
// optional .env support. Scan parameters themselves arrive as positional
// arguments; only knobs that rarely change per invocation live here.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielpatrickdp/contexp/internal/precision"
)

// #region settings
// Settings holds the environment-tunable knobs of the scanner.
type Settings struct {
	Bits     uint    // working precision mantissa bits; 0 selects float64
	SafeZero float64 // near-zero termination threshold
	Lookback int     // cycle detector window
	DBPath   string  // run catalog path; empty disables recording
}

// Load reads settings from the environment, applying defaults for anything
// unset. A .env file in the working directory is honored when present.
func Load() (Settings, error) {
	_ = godotenv.Load()

	bits, err := getEnvUint("CONTEXP_BITS", precision.DefaultBits)
	if err != nil {
		return Settings{}, err
	}
	safeZero, err := getEnvFloat("CONTEXP_SAFE_ZERO", 1e-18)
	if err != nil {
		return Settings{}, err
	}
	lookback, err := getEnvInt("CONTEXP_LOOKBACK", 255)
	if err != nil {
		return Settings{}, err
	}
	if safeZero <= 0 {
		return Settings{}, fmt.Errorf("CONTEXP_SAFE_ZERO must be positive, got %g", safeZero)
	}
	if lookback <= 0 {
		return Settings{}, fmt.Errorf("CONTEXP_LOOKBACK must be positive, got %d", lookback)
	}

	return Settings{
		Bits:     bits,
		SafeZero: safeZero,
		Lookback: lookback,
		DBPath:   os.Getenv("CONTEXP_DB"),
	}, nil
}
// #endregion settings

// #region env-helpers
func getEnvUint(key string, def uint) (uint, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return uint(n), nil
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
// #endregion env-helpers

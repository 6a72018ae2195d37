package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"giftcard-reconciliation/internal/recon"
)

// fileConfig is the YAML shape of an optional run configuration file:
//
//	tolerance: "0.01"
//	currency_precision: 2
//
// Tolerance is a string so the value survives the file round-trip without
// binary float drift.
type fileConfig struct {
	Tolerance         string `yaml:"tolerance"`
	CurrencyPrecision *int32 `yaml:"currency_precision"`
}

// Load reads an engine configuration from a YAML file. An empty path returns
// the defaults; fields missing from the file keep their default values.
func Load(path string) (recon.Config, error) {
	cfg := recon.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return recon.Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return recon.Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Tolerance != "" {
		tolerance, err := decimal.NewFromString(fc.Tolerance)
		if err != nil {
			return recon.Config{}, fmt.Errorf("invalid tolerance '%s' in %s: %w", fc.Tolerance, path, err)
		}
		if tolerance.IsNegative() {
			return recon.Config{}, fmt.Errorf("tolerance must not be negative in %s", path)
		}
		cfg.Tolerance = tolerance
	}
	if fc.CurrencyPrecision != nil {
		if *fc.CurrencyPrecision < 0 {
			return recon.Config{}, fmt.Errorf("currency_precision must not be negative in %s", path)
		}
		cfg.CurrencyPrecision = *fc.CurrencyPrecision
	}
	return cfg, nil
}

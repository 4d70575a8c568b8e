package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk run configuration shape (YAML). Every field can also
// be supplied as a CLI flag; explicit flag values override config values via
// Merge.
type Config struct {
	// Seed for the price simulator's random source.
	Seed int64 `yaml:"seed"`
	// Hours in the simulated year. Defaults to 8760.
	Hours int `yaml:"hours"`
	// FixedRate is the flat billing rate in euro cents per kWh.
	// Zero means not supplied.
	FixedRate float64 `yaml:"fixed_rate"`
	// FixedTotal is a precomputed flat annual total in euros.
	// Zero means not supplied; non-zero takes precedence over FixedRate.
	FixedTotal float64 `yaml:"fixed_total"`
	// TransferPrice is the grid transfer surcharge in euro cents per kWh.
	TransferPrice float64 `yaml:"transfer_price"`
	// ConsumptionFile points at the JSON consumption declaration.
	ConsumptionFile string `yaml:"consumption_file"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.Hours == 0 {
		c.Hours = 8760
	}
	// A relative consumption file path is interpreted relative to the config
	// file directory when that resolves to an existing file, falling back to
	// the path as given (relative to cwd).
	if c.ConsumptionFile != "" && !filepath.IsAbs(c.ConsumptionFile) {
		cand := filepath.Join(filepath.Dir(path), c.ConsumptionFile)
		if _, err := os.Stat(cand); err == nil {
			c.ConsumptionFile = cand
		}
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Hours < 0 {
		return errors.New("hours must be >= 0")
	}
	if c.FixedRate == 0 && c.FixedTotal == 0 {
		return errors.New("either fixed_rate or fixed_total is required")
	}
	if c.ConsumptionFile == "" {
		return errors.New("consumption_file is required")
	}
	return nil
}

// Merge overlays non-zero fields from override onto base. This is how
// explicit CLI flags win over a config file without the config file being
// mandatory.
func Merge(base, override Config) Config {
	out := base
	if override.Seed != 0 {
		out.Seed = override.Seed
	}
	if override.Hours != 0 {
		out.Hours = override.Hours
	}
	if override.FixedRate != 0 {
		out.FixedRate = override.FixedRate
	}
	if override.FixedTotal != 0 {
		out.FixedTotal = override.FixedTotal
	}
	if override.TransferPrice != 0 {
		out.TransferPrice = override.TransferPrice
	}
	if override.ConsumptionFile != "" {
		out.ConsumptionFile = override.ConsumptionFile
	}
	return out
}

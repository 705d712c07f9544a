package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/uren/internal/model"
	"github.com/Tiliavir/uren/internal/notes"
)

// ErrInvalidRate is returned by Validate for rates outside their valid range.
var ErrInvalidRate = errors.New("invalid rate")

// Config is the root configuration for uren, read from an optional YAML file.
type Config struct {
	Rates RatesConfig `yaml:"rates"`
	Notes NotesConfig `yaml:"notes"`
}

// RatesConfig holds the values used for earnings.
type RatesConfig struct {
	// HourlyRate is the gross amount earned per hour. Must be >= 0.
	HourlyRate float64 `yaml:"hourly_rate"`
	// TaxRate is the fraction withheld, between 0 and 1 inclusive.
	TaxRate float64 `yaml:"tax_rate"`
}

// NotesConfig controls how notes are read.
type NotesConfig struct {
	// Layout names a preset: "spaced" or "listed".
	Layout string `yaml:"layout"`
	// Separator and Delimiter override the preset when set.
	Separator string `yaml:"separator"`
	Delimiter string `yaml:"delimiter"`
	// Strict makes unparseable notes an error instead of skipping them.
	Strict bool `yaml:"strict"`
}

const (
	// DefaultHourlyRate is the hourly rate of the reference configuration.
	DefaultHourlyRate = 20.0
	// DefaultTaxRate is the tax rate of the reference configuration.
	DefaultTaxRate = 0.2
	// DefaultLayout is the note layout used when none is configured.
	DefaultLayout = "spaced"
)

// Default returns a Config pre-filled with the reference values.
func Default() Config {
	return Config{
		Rates: RatesConfig{
			HourlyRate: DefaultHourlyRate,
			TaxRate:    DefaultTaxRate,
		},
		Notes: NotesConfig{
			Layout: DefaultLayout,
		},
	}
}

// Template is an annotated config file matching Default.
const Template = `# uren configuration
#
# All settings are optional; missing values fall back to the defaults below.
# Pass the file with: uren --config <path>

rates:
  # Gross amount earned per hour. Must be zero or more.
  hourly_rate: 20
  # Fraction withheld as tax, from 0 (none) to 1 (everything).
  tax_rate: 0.2

notes:
  # Note layout preset:
  #   spaced  2023-10-02 Tuesday 10:00 to 18:00
  #   listed  2023-10-01, Monday, 09:00 - 17:00
  layout: spaced
  # Override the preset's range separator ("to", "-") or field delimiter (",").
  separator: ""
  delimiter: ""
  # Fail on the first note that cannot be read instead of skipping it.
  strict: false
`

// Load reads the YAML file at path. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default, so partially filled files keep the
// defaults for everything they leave out, then validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Notes.Layout == "" {
		cfg.Notes.Layout = DefaultLayout
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks rate ranges and the note layout.
func (c Config) Validate() error {
	if c.Rates.HourlyRate < 0 {
		return fmt.Errorf("%w: hourly_rate %v must be >= 0", ErrInvalidRate, c.Rates.HourlyRate)
	}
	if c.Rates.TaxRate < 0 || c.Rates.TaxRate > 1 {
		return fmt.Errorf("%w: tax_rate %v must be between 0 and 1", ErrInvalidRate, c.Rates.TaxRate)
	}
	if _, err := c.Format(); err != nil {
		return err
	}
	return nil
}

// EarningRates converts the configured rates for earnings math.
func (c Config) EarningRates() model.Rates {
	return model.Rates{
		Hourly: decimal.NewFromFloat(c.Rates.HourlyRate),
		Tax:    decimal.NewFromFloat(c.Rates.TaxRate),
	}
}

// Format resolves the note format from the layout preset and overrides.
func (c Config) Format() (notes.Format, error) {
	f, err := notes.FormatByName(c.Notes.Layout)
	if err != nil {
		return notes.Format{}, err
	}
	if c.Notes.Separator != "" {
		f.Separator = c.Notes.Separator
	}
	if c.Notes.Delimiter != "" {
		f.Delimiter = c.Notes.Delimiter
	}
	return f, nil
}

// Mode returns the parse mode selected by Strict.
func (c Config) Mode() notes.Mode {
	if c.Notes.Strict {
		return notes.Strict
	}
	return notes.Lenient
}

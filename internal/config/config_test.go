package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Tiliavir/uren/internal/config"
	"github.com/Tiliavir/uren/internal/notes"
)

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != config.Default() {
		t.Fatalf("Load(\"\") = %+v, want %+v", cfg, config.Default())
	}
}

func TestTemplateMatchesDefault(t *testing.T) {
	cfg, err := config.Parse([]byte(config.Template))
	if err != nil {
		t.Fatalf("Parse(Template): %v", err)
	}
	if cfg != config.Default() {
		t.Fatalf("Parse(Template) = %+v, want %+v", cfg, config.Default())
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uren.yaml")
	if err := os.WriteFile(path, []byte("rates:\n  hourly_rate: 35.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rates.HourlyRate != 35.5 {
		t.Errorf("HourlyRate = %v, want 35.5", cfg.Rates.HourlyRate)
	}
	if cfg.Rates.TaxRate != config.DefaultTaxRate {
		t.Errorf("TaxRate = %v, want %v", cfg.Rates.TaxRate, config.DefaultTaxRate)
	}
	if cfg.Notes.Layout != config.DefaultLayout {
		t.Errorf("Layout = %q, want %q", cfg.Notes.Layout, config.DefaultLayout)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"negative hourly", "rates:\n  hourly_rate: -1\n", config.ErrInvalidRate},
		{"tax above one", "rates:\n  tax_rate: 1.2\n", config.ErrInvalidRate},
		{"negative tax", "rates:\n  tax_rate: -0.1\n", config.ErrInvalidRate},
		{"unknown layout", "notes:\n  layout: tabbed\n", nil},
		{"bad yaml", "rates: [", nil},
	}
	for _, tt := range tests {
		_, err := config.Parse([]byte(tt.yaml))
		if err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
			continue
		}
		if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestEarningRates(t *testing.T) {
	rates := config.Default().EarningRates()
	if !rates.Hourly.Equal(decimal.NewFromInt(20)) {
		t.Errorf("Hourly = %s, want 20", rates.Hourly)
	}
	if !rates.Tax.Equal(decimal.RequireFromString("0.2")) {
		t.Errorf("Tax = %s, want 0.2", rates.Tax)
	}
}

func TestFormatOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.Notes.Layout = "listed"
	cfg.Notes.Separator = "until"

	f, err := cfg.Format()
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := notes.Format{Delimiter: ",", Separator: "until"}
	if f != want {
		t.Fatalf("Format = %+v, want %+v", f, want)
	}
}

func TestMode(t *testing.T) {
	cfg := config.Default()
	if cfg.Mode() != notes.Lenient {
		t.Errorf("default Mode = %v, want Lenient", cfg.Mode())
	}
	cfg.Notes.Strict = true
	if cfg.Mode() != notes.Strict {
		t.Errorf("strict Mode = %v, want Strict", cfg.Mode())
	}
}

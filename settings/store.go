package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

// Default values used when the settings file is absent or partial.
const (
	DefaultRate     = "0.30"
	DefaultCurrency = "kr"
)

// File the persisted form of the settings
type File struct {
	Enabled  bool   `toml:"enabled"`
	Rate     string `toml:"rate"`
	Currency string `toml:"currency"`
}

// DefaultFile returns a File with default values
func DefaultFile() File {
	return File{
		Enabled:  true,
		Rate:     DefaultRate,
		Currency: DefaultCurrency,
	}
}

// Load reads the settings file at path. A missing file yields the defaults.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultFile(), nil
	}
	if err != nil {
		return File{}, fmt.Errorf("reading settings: %w", err)
	}

	file := DefaultFile()
	if err := toml.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("parsing settings: %w", err)
	}
	return file, nil
}

// Save writes the settings file at path, creating parent directories as needed
func Save(path string, file File) error {
	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// FromFile builds live Settings from the persisted form. A malformed rate or
// empty currency falls back to the defaults rather than failing.
func FromFile(file File) *Settings {
	rate, err := decimal.NewFromString(file.Rate)
	if err != nil {
		rate = decimal.RequireFromString(DefaultRate)
	}
	currency := file.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	return New(file.Enabled, rate, currency)
}

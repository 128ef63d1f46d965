// Package config provides configuration management for the typedprops CLI
// and reference persistence.
package config

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/solatis/typedprops/internal/settings"
)

// Config holds process configuration for the CLI host.
type Config struct {
	DatabaseURL     string
	Locale          string
	DefaultCurrency string
	DefaultPreset   string
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		DatabaseURL:     "sqlite://typedprops.db",
		Locale:          "en",
		DefaultCurrency: "USD",
		DefaultPreset:   settings.FallbackPreset,
	}
}

// LocaleTag parses the configured locale. Validation at load time
// guarantees this cannot fail after LoadConfig.
func (c *Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// validateConfig checks database URL presence, locale parseability, and
// that the configured unit preset exists.
func validateConfig(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database_url must not be empty")
	}
	if _, err := language.Parse(cfg.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
	}
	if _, ok := settings.CurrencySymbols[cfg.DefaultCurrency]; !ok {
		return fmt.Errorf("unknown default_currency %q (available: %v)",
			cfg.DefaultCurrency, settings.CurrencyCodes())
	}
	if _, ok := settings.UnitPresets[cfg.DefaultPreset]; !ok {
		return fmt.Errorf("unknown default_preset %q (available: %v)",
			cfg.DefaultPreset, settings.PresetKeys())
	}
	return nil
}

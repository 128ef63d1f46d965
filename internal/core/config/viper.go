package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/solatis/typedprops/internal/settings"
)

// LoadConfig loads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults matching DefaultConfig
	v.SetDefault("database_url", "sqlite://typedprops.db")
	v.SetDefault("locale", "en")
	v.SetDefault("default_currency", "USD")
	v.SetDefault("default_preset", settings.FallbackPreset)

	// Bind environment variables with TP_ prefix
	v.SetEnvPrefix("TP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Load config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		DatabaseURL:     v.GetString("database_url"),
		Locale:          v.GetString("locale"),
		DefaultCurrency: v.GetString("default_currency"),
		DefaultPreset:   v.GetString("default_preset"),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

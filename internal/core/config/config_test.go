package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("TP_DATABASE_URL")
	os.Unsetenv("TP_LOCALE")
	os.Unsetenv("TP_DEFAULT_CURRENCY")
	os.Unsetenv("TP_DEFAULT_PRESET")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	want := DefaultConfig()
	if *cfg != *want {
		t.Errorf("config = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	os.Setenv("TP_DATABASE_URL", "postgres://localhost/typedprops")
	os.Setenv("TP_LOCALE", "de")
	os.Setenv("TP_DEFAULT_CURRENCY", "EUR")
	os.Setenv("TP_DEFAULT_PRESET", "weight")
	defer func() {
		os.Unsetenv("TP_DATABASE_URL")
		os.Unsetenv("TP_LOCALE")
		os.Unsetenv("TP_DEFAULT_CURRENCY")
		os.Unsetenv("TP_DEFAULT_PRESET")
	}()

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.DatabaseURL != "postgres://localhost/typedprops" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.Locale != "de" || cfg.DefaultCurrency != "EUR" || cfg.DefaultPreset != "weight" {
		t.Errorf("config = %+v", cfg)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	os.Unsetenv("TP_DEFAULT_CURRENCY")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "database_url: sqlite://test.db\ndefault_currency: GBP\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.DatabaseURL != "sqlite://test.db" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.DefaultCurrency != "GBP" {
		t.Errorf("DefaultCurrency = %q", cfg.DefaultCurrency)
	}
	// Unset keys keep defaults.
	if cfg.Locale != "en" {
		t.Errorf("Locale = %q, want default en", cfg.Locale)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"invalid locale", map[string]string{"TP_LOCALE": "not a locale!"}},
		{"unknown currency", map[string]string{"TP_DEFAULT_CURRENCY": "XYZ"}},
		{"unknown preset", map[string]string{"TP_DEFAULT_PRESET": "bananas"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				os.Setenv(k, v)
				defer os.Unsetenv(k)
			}
			if _, err := LoadConfig(""); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLocaleTag(t *testing.T) {
	cfg := &Config{Locale: "de"}
	if cfg.LocaleTag().String() != "de" {
		t.Errorf("LocaleTag = %v", cfg.LocaleTag())
	}
}

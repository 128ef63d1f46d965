package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/solatis/typedprops/internal/core/config"
	"github.com/solatis/typedprops/internal/core/db"
	"github.com/solatis/typedprops/internal/host"
	"github.com/solatis/typedprops/internal/registry"
	"github.com/solatis/typedprops/internal/resolver"
	"github.com/solatis/typedprops/internal/settings"
)

var (
	configFile string
	dbURL      string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "typedprops",
	Short: "Pluggable property value types for document metadata",
	Long:  `typedprops assigns rich value types (code, currency, measurement, unit) to document metadata properties and manages their per-property settings.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db-url", "", "database connection URL (sqlite://path or postgres://...)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (json, text)")
}

func Execute() error {
	return rootCmd.Execute()
}

func newLogger() *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if logFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// loadConfig applies the persistent flag overrides on top of file,
// environment, and defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dbURL != "" {
		cfg.DatabaseURL = dbURL
	}
	return cfg, nil
}

// env bundles the wired framework for the CLI host.
type env struct {
	cfg      *config.Config
	store    *settings.Store
	registry *registry.Registry
	resolver *resolver.Resolver
	log      *slog.Logger

	close func()
}

func openEnv() (*env, error) {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	persist, err := db.NewSettingsStore(database)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to load queries: %w", err)
	}
	store, err := settings.NewStore(persist, logger)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("%w (run 'typedprops migrate' first?)", err)
	}

	reg, err := registry.NewBuiltinRegistry(store, cfg.LocaleTag(), logger)
	if err != nil {
		database.Close()
		return nil, err
	}
	res, err := resolver.New(reg, store, newStoreTypeManager(store), host.NewMemoryBus(), logger)
	if err != nil {
		database.Close()
		return nil, err
	}

	return &env{
		cfg:      cfg,
		store:    store,
		registry: reg,
		resolver: res,
		log:      logger,
		close:    func() { database.Close() },
	}, nil
}

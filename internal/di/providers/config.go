// Package providers contains dependency injection providers for emojigen.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/emojigen/internal/config"
	"github.com/listenupapp/emojigen/internal/logger"
	"github.com/listenupapp/emojigen/internal/validation"
)

// ProvideConfig provides the application configuration. Command-line
// overrides are read from a config.Flags value when one was provided.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	flags, err := do.Invoke[config.Flags](i)
	if err != nil {
		flags = config.Flags{}
	}
	return config.Load(flags)
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development" && cfg.Logger.Level == "debug",
		Environment: cfg.App.Environment,
	})

	log.Debug("configuration loaded",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"output_path", cfg.Output.Path,
		"dataset", cfg.Dataset.Source,
		"categorizer", cfg.Catalog.Categorizer,
	)

	return log, nil
}

// ProvideValidator provides the struct validator used for catalogs.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// Package di provides dependency injection configuration for the emojigen tools.
package di

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/emojigen/internal/config"
	"github.com/listenupapp/emojigen/internal/di/providers"
	"github.com/listenupapp/emojigen/internal/logger"
)

// NewContainer creates and configures the DI container with all providers.
// flags carries the command-line overrides of the calling tool.
func NewContainer(flags config.Flags) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, flags)

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Unicode data
	do.Provide(injector, providers.ProvideUnicodeSource)
	do.Provide(injector, providers.ProvideUnicodeClient)
	do.Provide(injector, providers.ProvideGroupLoader)

	// Catalog pipeline
	do.Provide(injector, providers.ProvideDataset)
	do.Provide(injector, providers.ProvideNormalizer)
	do.Provide(injector, providers.ProvideCatalogWriter)
	do.Provide(injector, providers.ProvideGenerator)

	// Search
	do.Provide(injector, providers.ProvideSearchIndex)
	do.Provide(injector, providers.ProvideSearchService)

	return injector
}

// Bootstrap loads the configuration and logger so that configuration errors
// surface before any work starts.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	return nil
}

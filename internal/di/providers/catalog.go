package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/emojigen/internal/catalog"
	"github.com/listenupapp/emojigen/internal/category"
	"github.com/listenupapp/emojigen/internal/config"
	"github.com/listenupapp/emojigen/internal/dataset"
	"github.com/listenupapp/emojigen/internal/logger"
	"github.com/listenupapp/emojigen/internal/normalize"
	"github.com/listenupapp/emojigen/internal/service"
	"github.com/listenupapp/emojigen/internal/unicodedata"
	"github.com/listenupapp/emojigen/internal/validation"
)

// ProvideDataset provides the raw emoji dataset. The unicode dataset falls
// back to the bundled library when emoji-test.txt cannot be loaded.
func ProvideDataset(i do.Injector) (dataset.Provider, error) {
	cfg := do.MustInvoke[*config.Config](i)

	library := dataset.NewLibrary()
	if dataset.Kind(cfg.Dataset.Source) != dataset.KindUnicode {
		return library, nil
	}

	src := do.MustInvoke[unicodedata.Source](i)
	client := do.MustInvoke[*UnicodeClientHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return &dataset.Fallback{
		Primary:   dataset.NewUnicodeTest(src, client.Client),
		Secondary: library,
		Logger:    log.Logger,
	}, nil
}

// ProvideNormalizer provides the display name normalizer.
func ProvideNormalizer(i do.Injector) (*normalize.Normalizer, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return normalize.New(normalize.AmpersandPolicy(cfg.Catalog.Ampersand)), nil
}

// ProvideCatalogWriter provides the catalog writer.
func ProvideCatalogWriter(i do.Injector) (*catalog.Writer, error) {
	v := do.MustInvoke[*validation.Validator](i)
	return catalog.NewWriter(v), nil
}

// ProvideGenerator provides the catalog generation service.
func ProvideGenerator(i do.Injector) (*service.Generator, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewGenerator(service.GeneratorOptions{
		Dataset:    do.MustInvoke[dataset.Provider](i),
		Groups:     do.MustInvoke[service.GroupLoader](i),
		Normalizer: do.MustInvoke[*normalize.Normalizer](i),
		Policy:     category.Policy(cfg.Catalog.Categorizer),
		MinCount:   cfg.Catalog.MinCategoryCount,
		Writer:     do.MustInvoke[*catalog.Writer](i),
		Logger:     log.Logger,
	}), nil
}

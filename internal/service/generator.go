// Package service wires the catalog pipeline stages into the operations the
// command-line tools run.
package service

import (
	"context"
	"log/slog"

	"github.com/listenupapp/emojigen/internal/catalog"
	"github.com/listenupapp/emojigen/internal/category"
	"github.com/listenupapp/emojigen/internal/dataset"
	"github.com/listenupapp/emojigen/internal/domain"
	domainerrors "github.com/listenupapp/emojigen/internal/errors"
	"github.com/listenupapp/emojigen/internal/normalize"
	"github.com/listenupapp/emojigen/internal/unicodedata"
)

// GroupLoader returns the supplementary character to Unicode group lookup.
// It never fails; an unavailable source yields an empty lookup.
type GroupLoader func(ctx context.Context) unicodedata.GroupLookup

// GeneratorOptions configures a Generator.
type GeneratorOptions struct {
	Dataset    dataset.Provider
	Groups     GroupLoader
	Normalizer *normalize.Normalizer
	Policy     category.Policy
	MinCount   int
	Writer     *catalog.Writer
	Logger     *slog.Logger
}

// Generator runs the whole pipeline: load records, build the catalog and
// write it to disk.
type Generator struct {
	dataset    dataset.Provider
	groups     GroupLoader
	normalizer *normalize.Normalizer
	policy     category.Policy
	minCount   int
	writer     *catalog.Writer
	logger     *slog.Logger
}

// GenerateResult describes one successful run.
type GenerateResult struct {
	Catalog *domain.Catalog
	Stats   catalog.Stats
	Path    string
}

// NewGenerator creates a new generator.
func NewGenerator(opts GeneratorOptions) *Generator {
	if opts.Normalizer == nil {
		opts.Normalizer = normalize.New(normalize.AmpersandKeep)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Generator{
		dataset:    opts.Dataset,
		groups:     opts.Groups,
		normalizer: opts.Normalizer,
		policy:     opts.Policy,
		minCount:   opts.MinCount,
		writer:     opts.Writer,
		logger:     opts.Logger,
	}
}

// Generate builds the catalog and writes it to path.
func (g *Generator) Generate(ctx context.Context, path string) (*GenerateResult, error) {
	records, err := g.dataset.Records(ctx)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeOf(err), "load emoji dataset")
	}
	g.logger.Debug("loaded emoji dataset", "records", len(records))

	if g.needsGroups(records) {
		records = dataset.WithGroups(records, g.groups(ctx))
	}

	categorizer, err := category.New(g.policy, records, g.minCount)
	if err != nil {
		return nil, err
	}

	c, stats := catalog.NewBuilder(g.normalizer, categorizer, g.logger).Build(records)

	if err := ctx.Err(); err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "generation canceled")
	}

	if err := g.writer.Write(path, c); err != nil {
		return nil, err
	}
	g.logger.Info("catalog written", "path", path, "entries", c.TotalCount, "variants", c.VariantCount)

	return &GenerateResult{Catalog: c, Stats: stats, Path: path}, nil
}

// needsGroups reports whether a group lookup could change the result. Only
// the group-first policy reads groups, and a dataset that already carries
// them for every record needs no second source.
func (g *Generator) needsGroups(records []domain.RawRecord) bool {
	if g.groups == nil || g.policy == category.PolicyTokenFrequency {
		return false
	}
	for _, rec := range records {
		if !rec.HasGroup() {
			return true
		}
	}
	return false
}

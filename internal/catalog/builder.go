// Package catalog builds, validates and persists the emoji catalog.
package catalog

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/listenupapp/emojigen/internal/category"
	"github.com/listenupapp/emojigen/internal/domain"
	domainerrors "github.com/listenupapp/emojigen/internal/errors"
	"github.com/listenupapp/emojigen/internal/normalize"
	"github.com/listenupapp/emojigen/internal/variant"
)

// Stats counts what happened to the records of one build.
type Stats struct {
	Records          int // records read
	Duplicates       int // characters seen before
	Unusable         int // dropped for an unusable name
	Bases            int // entries created from base candidates
	VariantsAttached int // variants added to an existing base
	Synthesized      int // entries created from a variant group
	DiscardedBases   int // base candidates whose base name was taken
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("records", s.Records),
		slog.Int("duplicates", s.Duplicates),
		slog.Int("unusable", s.Unusable),
		slog.Int("bases", s.Bases),
		slog.Int("variants_attached", s.VariantsAttached),
		slog.Int("synthesized", s.Synthesized),
		slog.Int("discarded_bases", s.DiscardedBases),
	)
}

// Builder turns raw records into a catalog.
type Builder struct {
	normalizer  *normalize.Normalizer
	categorizer category.Categorizer
	logger      *slog.Logger
}

// NewBuilder creates a builder.
func NewBuilder(normalizer *normalize.Normalizer, categorizer category.Categorizer, logger *slog.Logger) *Builder {
	return &Builder{
		normalizer:  normalizer,
		categorizer: categorizer,
		logger:      logger,
	}
}

// buildState is the accumulator of a single Build call.
type buildState struct {
	seen map[string]bool

	bases     map[string]*domain.CatalogEntry // keyed by base name
	baseOrder []string

	groups     map[string][]domain.Entry // variant candidates by base name
	groupOrder []string

	stats Stats
}

func newBuildState(n int) *buildState {
	return &buildState{
		seen:   make(map[string]bool, n),
		bases:  make(map[string]*domain.CatalogEntry, n),
		groups: make(map[string][]domain.Entry),
	}
}

// Build runs the naming pipeline over records and returns the sorted catalog.
// Records are consumed in order; the first occurrence of a character wins.
func (b *Builder) Build(records []domain.RawRecord) (*domain.Catalog, Stats) {
	st := newBuildState(len(records))

	for _, rec := range records {
		st.stats.Records++

		if st.seen[rec.Character] {
			st.stats.Duplicates++
			continue
		}

		entry, err := b.entry(rec)
		if err != nil {
			st.stats.Unusable++
			b.logger.Debug("skipping emoji",
				"character", rec.Character,
				"raw_name", rec.RawName,
				"code", domainerrors.CodeOf(err),
			)
			continue
		}
		st.seen[rec.Character] = true

		if entry.Variant {
			st.addVariant(entry)
		} else {
			st.addBase(entry)
		}
	}

	st.reconcile()
	c := st.catalog()

	b.logger.Info("catalog built",
		"entries", c.TotalCount,
		"variants", c.VariantCount,
		"categories", len(c.Categories),
		"stats", st.stats,
	)

	return c, st.stats
}

// entry derives the transient entry for one record.
func (b *Builder) entry(rec domain.RawRecord) (domain.Entry, error) {
	display := b.normalizer.DisplayName(rec.RawName)
	if !normalize.Usable(rec.Character, display) {
		return domain.Entry{}, domainerrors.UnusableNamef("no usable name for %q", rec.Character)
	}

	base, isVariant := variant.Classify(display)
	return domain.Entry{
		Character:   rec.Character,
		DisplayName: display,
		BaseName:    base,
		Category:    b.categorizer.Categorize(rec, display),
		Variant:     isVariant,
	}, nil
}

func (st *buildState) addBase(e domain.Entry) {
	if _, ok := st.bases[e.BaseName]; ok {
		st.stats.DiscardedBases++
		return
	}
	st.bases[e.BaseName] = domain.NewCatalogEntry(e.Character, e.DisplayName, e.Category)
	st.baseOrder = append(st.baseOrder, e.BaseName)
	st.stats.Bases++
}

func (st *buildState) addVariant(e domain.Entry) {
	if _, ok := st.groups[e.BaseName]; !ok {
		st.groupOrder = append(st.groupOrder, e.BaseName)
	}
	st.groups[e.BaseName] = append(st.groups[e.BaseName], e)
}

// reconcile attaches every variant group to its base, synthesizing a base
// from the group's first member when none was seen.
func (st *buildState) reconcile() {
	for _, name := range st.groupOrder {
		members := st.groups[name]

		base, ok := st.bases[name]
		if ok {
			st.stats.VariantsAttached += len(members)
		} else {
			first := members[0]
			base = domain.NewCatalogEntry(first.Character, name, first.Category)
			st.bases[name] = base
			st.baseOrder = append(st.baseOrder, name)
			st.stats.Synthesized++
		}

		for _, m := range members {
			base.AddVariant(m.Ref())
		}
	}
}

func (st *buildState) catalog() *domain.Catalog {
	entries := make([]*domain.CatalogEntry, 0, len(st.baseOrder))
	for _, name := range st.baseOrder {
		entries = append(entries, st.bases[name])
	}
	slices.SortStableFunc(entries, compareEntries)

	var categories []string
	variantCount := 0
	for _, e := range entries {
		variantCount += len(e.Variants)
		if len(categories) == 0 || categories[len(categories)-1] != e.Category {
			categories = append(categories, e.Category)
		}
	}
	if categories == nil {
		categories = []string{}
	}

	return &domain.Catalog{
		Entries:      entries,
		Categories:   categories,
		TotalCount:   len(entries),
		VariantCount: variantCount,
	}
}

// compareEntries orders by category, then display name, bytewise.
func compareEntries(a, b *domain.CatalogEntry) int {
	return cmp.Or(
		cmp.Compare(a.Category, b.Category),
		cmp.Compare(a.DisplayName, b.DisplayName),
	)
}

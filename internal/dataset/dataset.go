// Package dataset supplies the raw emoji records the catalog is built from.
package dataset

import (
	"context"
	"log/slog"

	"github.com/listenupapp/emojigen/internal/domain"
	"github.com/listenupapp/emojigen/internal/unicodedata"
)

// Kind names a dataset implementation.
type Kind string

// Dataset kinds.
const (
	KindLibrary Kind = "library"
	KindUnicode Kind = "unicode"
)

// Provider returns raw emoji records in a deterministic order.
type Provider interface {
	Records(ctx context.Context) ([]domain.RawRecord, error)
}

// WithGroups returns a copy of records with the Unicode group filled in for
// every character the lookup knows. Existing groups are kept.
func WithGroups(records []domain.RawRecord, lookup unicodedata.GroupLookup) []domain.RawRecord {
	out := make([]domain.RawRecord, len(records))
	for i, rec := range records {
		if !rec.HasGroup() {
			if g, ok := lookup.Group(rec.Character); ok {
				rec.UnicodeGroup = g
			}
		}
		out[i] = rec
	}
	return out
}

// Fallback uses Secondary when Primary fails.
type Fallback struct {
	Primary   Provider
	Secondary Provider
	Logger    *slog.Logger
}

// Records implements Provider.
func (f *Fallback) Records(ctx context.Context) ([]domain.RawRecord, error) {
	records, err := f.Primary.Records(ctx)
	if err == nil {
		return records, nil
	}
	f.Logger.Warn("primary emoji dataset unavailable, using fallback", "error", err)
	return f.Secondary.Records(ctx)
}

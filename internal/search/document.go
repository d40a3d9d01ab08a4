// Package search provides in-memory full-text search over a generated emoji
// catalog using Bleve, with fuzzy name suggestions when nothing matches.
package search

import (
	"github.com/listenupapp/emojigen/internal/domain"
)

// Document is the indexed form of one catalog entry.
type Document struct {
	ID         string   `json:"id"`         // the base emoji character
	Emoji      string   `json:"emoji"`      // exact-match field
	Name       string   `json:"name"`       // display name, English analyzer
	Category   string   `json:"category"`   // keyword, used for filtering
	Searchable string   `json:"searchable"` // lowercase emoji + name
	Variants   []string `json:"variants,omitempty"`
	// VariantEmoji lets a skin tone or color variant find its base entry.
	VariantEmoji []string `json:"variant_emoji,omitempty"`
}

// NewDocument converts a catalog entry.
func NewDocument(e *domain.CatalogEntry) *Document {
	doc := &Document{
		ID:         e.Character,
		Emoji:      e.Character,
		Name:       e.DisplayName,
		Category:   e.Category,
		Searchable: e.Searchable,
	}
	for _, v := range e.Variants {
		doc.Variants = append(doc.Variants, v.DisplayName)
		doc.VariantEmoji = append(doc.VariantEmoji, v.Character)
	}
	return doc
}

// ToMap converts the document to the field map Bleve indexes, so field names
// match the mapping exactly.
func (d *Document) ToMap() map[string]any {
	m := map[string]any{
		"id":         d.ID,
		"emoji":      d.Emoji,
		"name":       d.Name,
		"category":   d.Category,
		"searchable": d.Searchable,
	}
	if len(d.Variants) > 0 {
		m["variants"] = d.Variants
		m["variant_emoji"] = d.VariantEmoji
	}
	return m
}

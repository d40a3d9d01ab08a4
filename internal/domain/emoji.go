package domain

import "strings"

// RawRecord is one entry of the external emoji dataset.
// UnicodeGroup is empty when no supplementary group is known.
type RawRecord struct {
	Character    string
	RawName      string
	UnicodeGroup string
}

// HasGroup reports whether the record carries a Unicode group.
func (r RawRecord) HasGroup() bool {
	return r.UnicodeGroup != ""
}

// Entry is the transient per-record result of the naming pipeline.
type Entry struct {
	Character   string
	DisplayName string
	BaseName    string
	Category    string
	Variant     bool
}

// Ref returns the entry as a variant reference.
func (e Entry) Ref() VariantRef {
	return VariantRef{Character: e.Character, DisplayName: e.DisplayName}
}

// VariantRef points at an emoji folded under a base entry.
type VariantRef struct {
	Character   string `json:"emoji" validate:"required"`
	DisplayName string `json:"name" validate:"required"`
}

// CatalogEntry is a base emoji together with its variants.
type CatalogEntry struct {
	Character   string       `json:"emoji" validate:"required"`
	DisplayName string       `json:"name" validate:"required"`
	Variants    []VariantRef `json:"variants" validate:"dive"`
	Category    string       `json:"category" validate:"required"`
	Searchable  string       `json:"searchable" validate:"required"`
}

// NewCatalogEntry creates an entry with no variants and its searchable text.
func NewCatalogEntry(character, displayName, category string) *CatalogEntry {
	return &CatalogEntry{
		Character:   character,
		DisplayName: displayName,
		Variants:    []VariantRef{},
		Category:    category,
		Searchable:  SearchableText(character, displayName),
	}
}

// AddVariant appends a variant in encounter order.
func (e *CatalogEntry) AddVariant(ref VariantRef) {
	e.Variants = append(e.Variants, ref)
}

// SearchableText is the lowercase "<character> <display name>" used for
// client-side filtering.
func SearchableText(character, displayName string) string {
	return strings.ToLower(character + " " + displayName)
}

// Catalog is the final, sorted emoji catalog.
type Catalog struct {
	Entries      []*CatalogEntry `json:"emojis" validate:"dive"`
	Categories   []string        `json:"categories"`
	TotalCount   int             `json:"totalCount" validate:"gte=0"`
	VariantCount int             `json:"variantCount" validate:"gte=0"`
}

// CategoryCount is the number of base entries in one category.
type CategoryCount struct {
	Category string
	Count    int
}

// CategoryCounts returns per-category entry counts in Categories order.
func (c *Catalog) CategoryCounts() []CategoryCount {
	counts := make(map[string]int, len(c.Categories))
	for _, e := range c.Entries {
		counts[e.Category]++
	}
	out := make([]CategoryCount, 0, len(c.Categories))
	for _, cat := range c.Categories {
		out = append(out, CategoryCount{Category: cat, Count: counts[cat]})
	}
	return out
}

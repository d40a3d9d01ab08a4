// Package category assigns category labels to emoji.
//
// Two policies are available:
//
//   - PolicyUnicodeGroup uses the Unicode group attached to a record and
//     falls back to the ordered KeywordRules table.
//   - PolicyTokenFrequency derives categories from the words of the raw
//     identifiers, keeping only words frequent across the whole dataset.
package category

import (
	"strings"

	"github.com/listenupapp/emojigen/internal/domain"
	"github.com/listenupapp/emojigen/internal/errors"
)

// Policy selects a categorizer implementation.
type Policy string

// Categorizer policies.
const (
	PolicyUnicodeGroup   Policy = "unicode-group"
	PolicyTokenFrequency Policy = "token-frequency"
)

// DefaultMinTokenCount is the number of occurrences a token needs to become
// a category under PolicyTokenFrequency.
const DefaultMinTokenCount = 3

// Categorizer assigns a category to one emoji.
type Categorizer interface {
	Categorize(rec domain.RawRecord, displayName string) string
}

// New creates the categorizer for policy. Token frequency counting needs the
// whole dataset up front, hence records.
func New(policy Policy, records []domain.RawRecord, minCount int) (Categorizer, error) {
	switch policy {
	case PolicyUnicodeGroup, "":
		return NewGroupFirst(), nil
	case PolicyTokenFrequency:
		return NewTokenFrequency(records, minCount), nil
	default:
		return nil, errors.InvalidConfigf("unknown categorizer policy %q", policy)
	}
}

// GroupFirst prefers the record's Unicode group and falls back to keywords.
type GroupFirst struct {
	rules []KeywordRule
}

// NewGroupFirst creates a GroupFirst categorizer over KeywordRules.
func NewGroupFirst() *GroupFirst {
	return &GroupFirst{rules: KeywordRules}
}

// Categorize implements Categorizer.
func (g *GroupFirst) Categorize(rec domain.RawRecord, displayName string) string {
	if rec.HasGroup() {
		return rec.UnicodeGroup
	}
	return g.FromName(displayName)
}

// FromName applies the keyword table to a display name.
func (g *GroupFirst) FromName(displayName string) string {
	name := strings.ToLower(displayName)
	for _, rule := range g.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(name, kw) {
				return rule.Category
			}
		}
	}
	return DefaultCategory
}

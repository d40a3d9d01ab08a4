package catalog

import (
	"fmt"
	"slices"

	"github.com/listenupapp/emojigen/internal/domain"
	domainerrors "github.com/listenupapp/emojigen/internal/errors"
	"github.com/listenupapp/emojigen/internal/validation"
)

// Validate checks field constraints and the structural rules of a catalog:
// counts match, entries are sorted, categories are the sorted distinct set,
// searchable text is derived, and no entry lists itself as a variant.
func Validate(v *validation.Validator, c *domain.Catalog) error {
	if c == nil {
		return domainerrors.Validation("catalog is nil")
	}
	if err := v.Validate(c); err != nil {
		return err
	}

	if c.TotalCount != len(c.Entries) {
		return domainerrors.Validation(fmt.Sprintf("totalCount %d does not match %d entries", c.TotalCount, len(c.Entries)))
	}

	variants := 0
	var categories []string
	for i, e := range c.Entries {
		variants += len(e.Variants)

		if i > 0 && compareEntries(c.Entries[i-1], e) > 0 {
			return domainerrors.Validation(fmt.Sprintf("emojis[%d] %q is out of order", i, e.DisplayName))
		}
		if e.Searchable != domain.SearchableText(e.Character, e.DisplayName) {
			return domainerrors.Validation(fmt.Sprintf("emojis[%d] has stale searchable text", i))
		}
		for _, ref := range e.Variants {
			if ref.Character == e.Character && ref.DisplayName == e.DisplayName {
				return domainerrors.Validation(fmt.Sprintf("emojis[%d] %q lists itself as a variant", i, e.DisplayName))
			}
		}
		if len(categories) == 0 || categories[len(categories)-1] != e.Category {
			categories = append(categories, e.Category)
		}
	}

	if c.VariantCount != variants {
		return domainerrors.Validation(fmt.Sprintf("variantCount %d does not match %d variants", c.VariantCount, variants))
	}
	if !slices.Equal(c.Categories, categories) {
		return domainerrors.ValidationWithDetails("categories do not match entries", map[string][]string{
			"want": categories,
			"got":  c.Categories,
		})
	}

	return nil
}

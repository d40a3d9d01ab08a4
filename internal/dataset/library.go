package dataset

import (
	"context"
	"slices"
	"strings"

	"github.com/kyokomi/emoji/v2"

	"github.com/listenupapp/emojigen/internal/domain"
)

// Library reads the alias table bundled with github.com/kyokomi/emoji.
type Library struct {
	codes map[string]string
}

// NewLibrary creates a provider over emoji.CodeMap.
func NewLibrary() *Library {
	return NewLibraryFrom(emoji.CodeMap())
}

// NewLibraryFrom creates a provider over an alias → character table.
func NewLibraryFrom(codes map[string]string) *Library {
	return &Library{codes: codes}
}

// Records returns one record per character, ordered by character. A
// character with several aliases uses the one chosen by PreferredName.
func (l *Library) Records(_ context.Context) ([]domain.RawRecord, error) {
	byChar := make(map[string]string, len(l.codes))
	for alias, char := range l.codes {
		char = strings.TrimSpace(char)
		if char == "" {
			continue
		}
		if cur, ok := byChar[char]; !ok || PreferredName(alias, cur) {
			byChar[char] = alias
		}
	}

	records := make([]domain.RawRecord, 0, len(byChar))
	for char, alias := range byChar {
		records = append(records, domain.RawRecord{Character: char, RawName: alias})
	}
	slices.SortFunc(records, func(a, b domain.RawRecord) int {
		return strings.Compare(a.Character, b.Character)
	})

	return records, nil
}

// PreferredName reports whether alias a should be used over b: names with an
// underscore first, then the longer name, then the smaller one.
func PreferredName(a, b string) bool {
	au, bu := strings.Contains(a, "_"), strings.Contains(b, "_")
	if au != bu {
		return au
	}
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return a < b
}

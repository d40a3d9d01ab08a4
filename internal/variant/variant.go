// Package variant derives base names from emoji display names and decides
// whether an emoji is a variant of some base or a base of its own.
package variant

import (
	"regexp"
	"strings"
)

// Rule removes one kind of variant-indicating token run from a name.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// Rules are applied in order, each on the result of the previous one.
//
//nolint:gochecknoglobals // Ordered rule table
var Rules = []Rule{
	{
		Name:    "skin-tone",
		Pattern: regexp.MustCompile(`\s+(Light|Medium\s+Light|Medium|Medium\s+Dark|Dark)\s+Skin\s+Tone.*$`),
	},
	{
		Name:    "hair-style",
		Pattern: regexp.MustCompile(`\s+(Red|Curly|Wavy|Straight)\s+Hair.*$`),
	},
	{
		Name:    "person-prefix",
		Pattern: regexp.MustCompile(`^(Person|Man|Woman|Non.?Binary)\s+`),
	},
	{
		Name:    "color-suffix",
		Pattern: regexp.MustCompile(`\s+(Red|Orange|Yellow|Green|Blue|Purple|Brown|Black|White|Light|Dark|Medium)$`),
	},
	{
		Name:    "direction-suffix",
		Pattern: regexp.MustCompile(`\s+(Facing|Toward|Light|Dark)$`),
	},
}

// Markers are the words that make a shortened name a variant.
//
//nolint:gochecknoglobals // Static marker vocabulary
var Markers = []string{
	"Skin Tone", "Hair", "Red", "Orange", "Yellow", "Green", "Blue",
	"Purple", "Brown", "Black", "White", "Curly", "Wavy", "Straight",
}

// BaseName strips skin tone, hair style, person prefix, color and direction
// tokens from a display name:
//
//	"Thumbs Up Light Skin Tone" → "Thumbs Up"
//	"Woman Red Hair"            → "Woman"
//	"Red Heart"                 → "Red Heart"
//
// The rule pass repeats until nothing changes, so BaseName(BaseName(s)) ==
// BaseName(s).
func BaseName(displayName string) string {
	name := displayName
	for {
		next := applyRules(name)
		if next == name {
			return next
		}
		name = next
	}
}

func applyRules(name string) string {
	for _, r := range Rules {
		name = r.Pattern.ReplaceAllString(name, "")
	}
	return strings.TrimSpace(name)
}

// IsVariant reports whether an emoji named displayName should be folded under
// baseName. Nothing stripped means a base. A stripped name only counts as a
// variant when the full name contains a marker word; otherwise the emoji is a
// base under its shortened name (e.g. "Man Dancing" → base "Dancing").
func IsVariant(baseName, displayName string) bool {
	if baseName == displayName {
		return false
	}
	for _, m := range Markers {
		if strings.Contains(displayName, m) {
			return true
		}
	}
	return false
}

// Classify returns the base name of displayName and whether it is a variant.
func Classify(displayName string) (baseName string, isVariant bool) {
	baseName = BaseName(displayName)
	return baseName, IsVariant(baseName, displayName)
}

// Package normalize turns raw emoji identifiers into display names.
package normalize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// AmpersandPolicy selects how a literal "&" token is rendered.
type AmpersandPolicy string

// Ampersand policies.
const (
	// AmpersandKeep leaves "&" as is.
	AmpersandKeep AmpersandPolicy = "keep"
	// AmpersandWord spells "&" as "and" before title-casing.
	AmpersandWord AmpersandPolicy = "and"
)

const (
	// delimiters wrapping a raw identifier, e.g. ":thumbs_up:".
	delimiters = ":"
	// wordSeparator joins words inside a raw identifier.
	wordSeparator = "_"
)

// Normalizer derives display names from raw identifiers.
// It is not safe for concurrent use.
type Normalizer struct {
	ampersand AmpersandPolicy
	title     cases.Caser
}

// New creates a normalizer with the given ampersand policy.
// Unknown policies behave like AmpersandKeep.
func New(policy AmpersandPolicy) *Normalizer {
	if policy != AmpersandWord {
		policy = AmpersandKeep
	}
	return &Normalizer{
		ampersand: policy,
		title:     cases.Title(language.English, cases.NoLower),
	}
}

// Policy returns the ampersand policy in effect.
func (n *Normalizer) Policy() AmpersandPolicy {
	return n.ampersand
}

// DisplayName converts a raw identifier into a display name:
//
//	":thumbs_up_light_skin_tone:" → "Thumbs Up Light Skin Tone"
//	":ATM_sign:"                  → "ATM Sign"
//
// Only the first letter of each word is changed.
func (n *Normalizer) DisplayName(raw string) string {
	s := strings.Trim(raw, delimiters)
	s = strings.ReplaceAll(s, wordSeparator, " ")

	words := strings.Fields(s)
	for i, w := range words {
		if n.ampersand == AmpersandWord && w == "&" {
			w = "and"
		}
		words[i] = n.capitalize(w)
	}

	return norm.NFC.String(strings.Join(words, " "))
}

// capitalize title-cases the first rune of word and keeps the rest.
func (n *Normalizer) capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return n.title.String(word[:size]) + word[size:]
}

// Usable reports whether displayName can represent character in the catalog.
// Empty names and names equal to the emoji itself are unusable.
func Usable(character, displayName string) bool {
	return displayName != "" && displayName != character
}

// Capitalize title-cases the first letter of a single word.
func Capitalize(word string) string {
	return New(AmpersandKeep).capitalize(word)
}

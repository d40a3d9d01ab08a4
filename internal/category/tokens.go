package category

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/listenupapp/emojigen/internal/domain"
	"github.com/listenupapp/emojigen/internal/normalize"
)

// OtherCategory is used when none of an emoji's tokens is frequent enough.
const OtherCategory = "Other"

//nolint:gochecknoglobals // Static stop word list
var stopWords = map[string]bool{
	"with": true, "and": true, "of": true, "for": true, "in": true,
	"on": true, "at": true, "to": true, "by": true,
}

// Tokens returns the candidate category tokens of a raw identifier in order:
//
//	":man_in_tuxedo_2:" → ["Man", "Tuxedo"]
//
// Pure numbers, one-letter tokens and stop words are dropped.
func Tokens(rawName string) []string {
	parts := strings.Split(strings.Trim(rawName, ":"), "_")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if utf8.RuneCountInString(p) < 2 || isNumeric(p) || stopWords[strings.ToLower(p)] {
			continue
		}
		out = append(out, normalize.Capitalize(p))
	}
	return out
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// TokenFrequency categorizes by the first token that occurs at least
// minCount times across the dataset.
type TokenFrequency struct {
	counts   map[string]int
	minCount int
}

// NewTokenFrequency counts token occurrences over records. Each character is
// counted once; repeated tokens within one name count every time.
func NewTokenFrequency(records []domain.RawRecord, minCount int) *TokenFrequency {
	if minCount < 1 {
		minCount = DefaultMinTokenCount
	}
	tf := &TokenFrequency{
		counts:   make(map[string]int),
		minCount: minCount,
	}
	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if seen[rec.Character] {
			continue
		}
		seen[rec.Character] = true
		for _, tok := range Tokens(rec.RawName) {
			tf.counts[tok]++
		}
	}
	return tf
}

// Valid reports whether token is frequent enough to be a category.
func (tf *TokenFrequency) Valid(token string) bool {
	return tf.counts[token] >= tf.minCount
}

// Count returns how often token occurred.
func (tf *TokenFrequency) Count(token string) int {
	return tf.counts[token]
}

// Categorize implements Categorizer.
func (tf *TokenFrequency) Categorize(rec domain.RawRecord, _ string) string {
	for _, tok := range Tokens(rec.RawName) {
		if tf.Valid(tok) {
			return tok
		}
	}
	return OtherCategory
}

package search

import (
	"cmp"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns up to n display names that fuzzily contain query, closest
// first. Used when a full-text search finds nothing.
func (s *Index) Suggest(query string, n int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || n <= 0 {
		return nil
	}

	ranks := fuzzy.RankFindFold(query, s.names)
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	out := make([]string, 0, min(n, len(ranks)))
	for _, r := range ranks {
		if len(out) == n {
			break
		}
		out = append(out, s.order[r.OriginalIndex].DisplayName)
	}
	return out
}

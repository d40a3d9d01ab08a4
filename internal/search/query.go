package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// DefaultLimit is the number of hits returned when Params.Limit is not set.
const DefaultLimit = 20

// Params configures a search query.
type Params struct {
	Query    string // words or an emoji character
	Category string // exact category filter (empty = all)
	Limit    int
}

// Result holds the hits of one search.
type Result struct {
	Query string `json:"query"`
	Total uint64 `json:"total"`
	Hits  []Hit  `json:"hits"`
}

// Hit is one matching catalog entry.
type Hit struct {
	Emoji    string   `json:"emoji"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Score    float64  `json:"score"`
	Variants []string `json:"variants,omitempty"`
}

// Search executes a query against the index. Hits are ordered by score, then
// by emoji for stable output.
func (s *Index) Search(ctx context.Context, params Params) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	req := bleve.NewSearchRequestOptions(buildQuery(params), limit, 0, false)
	req.SortBy([]string{"-_score", "_id"})
	req.Fields = []string{"emoji", "name", "category", "variants"}

	res, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &Result{
		Query: params.Query,
		Total: res.Total,
		Hits:  make([]Hit, 0, len(res.Hits)),
	}
	for _, h := range res.Hits {
		hit := Hit{Emoji: h.ID, Score: h.Score}
		if n, ok := h.Fields["name"].(string); ok {
			hit.Name = n
		}
		if c, ok := h.Fields["category"].(string); ok {
			hit.Category = c
		}
		hit.Variants = stringSlice(h.Fields["variants"])
		result.Hits = append(result.Hits, hit)
	}

	return result, nil
}

// buildQuery combines text matching with the category filter.
func buildQuery(params Params) query.Query {
	var queries []query.Query

	if q := strings.TrimSpace(params.Query); q != "" {
		textQueries := []query.Query{}

		// Exact emoji, base or variant
		emojiTerm := bleve.NewTermQuery(q)
		emojiTerm.SetField("emoji")
		emojiTerm.SetBoost(5.0)
		textQueries = append(textQueries, emojiTerm)

		variantTerm := bleve.NewTermQuery(q)
		variantTerm.SetField("variant_emoji")
		variantTerm.SetBoost(4.0)
		textQueries = append(textQueries, variantTerm)

		nameMatch := bleve.NewMatchQuery(q)
		nameMatch.SetField("name")
		nameMatch.SetBoost(3.0)
		textQueries = append(textQueries, nameMatch)

		searchableMatch := bleve.NewMatchQuery(q)
		searchableMatch.SetField("searchable")
		searchableMatch.SetBoost(1.5)
		textQueries = append(textQueries, searchableMatch)

		variantsMatch := bleve.NewMatchQuery(q)
		variantsMatch.SetField("variants")
		textQueries = append(textQueries, variantsMatch)

		// Typo tolerance and autocomplete work per word
		for _, word := range strings.Fields(strings.ToLower(q)) {
			fuzzyQuery := bleve.NewFuzzyQuery(word)
			fuzzyQuery.SetFuzziness(1)
			fuzzyQuery.SetField("searchable")
			fuzzyQuery.SetBoost(0.8)
			textQueries = append(textQueries, fuzzyQuery)

			if len(word) >= 2 {
				prefixQuery := bleve.NewPrefixQuery(word)
				prefixQuery.SetField("searchable")
				prefixQuery.SetBoost(0.5)
				textQueries = append(textQueries, prefixQuery)
			}
		}

		queries = append(queries, bleve.NewDisjunctionQuery(textQueries...))
	}

	if params.Category != "" {
		cq := bleve.NewTermQuery(params.Category)
		cq.SetField("category")
		queries = append(queries, cq)
	}

	switch len(queries) {
	case 0:
		return bleve.NewMatchAllQuery()
	case 1:
		return queries[0]
	default:
		return bleve.NewConjunctionQuery(queries...)
	}
}

// stringSlice reads a stored field that holds one or many strings.
func stringSlice(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, x := range t {
			if s, ok := x.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/listenupapp/emojigen/internal/catalog"
	"github.com/listenupapp/emojigen/internal/search"
)

// DefaultSuggestions is the number of fuzzy suggestions offered when a
// search finds nothing.
const DefaultSuggestions = 5

// SearchService answers queries against a generated catalog.
type SearchService struct {
	index  *search.Index
	logger *slog.Logger
}

// SearchResponse is a search result plus suggestions for empty results.
type SearchResponse struct {
	*search.Result
	Suggestions []string `json:"suggestions,omitempty"`
}

// NewSearchService creates a new search service.
func NewSearchService(index *search.Index, logger *slog.Logger) *SearchService {
	return &SearchService{
		index:  index,
		logger: logger,
	}
}

// LoadCatalog reads a catalog file and indexes every entry.
func (s *SearchService) LoadCatalog(path string) error {
	c, err := catalog.Load(path)
	if err != nil {
		return err
	}
	if err := s.index.IndexCatalog(c); err != nil {
		return fmt.Errorf("index catalog %s: %w", path, err)
	}

	count, _ := s.index.DocumentCount()
	s.logger.Info("search index loaded", "path", path, "documents", count)
	return nil
}

// Search runs a query. When nothing matches, fuzzy suggestions over the
// display names are attached instead.
func (s *SearchService) Search(ctx context.Context, params search.Params) (*SearchResponse, error) {
	res, err := s.index.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	resp := &SearchResponse{Result: res}
	if len(res.Hits) == 0 && params.Query != "" {
		resp.Suggestions = s.index.Suggest(params.Query, DefaultSuggestions)
		s.logger.Debug("no hits, offering suggestions", "query", params.Query, "suggestions", len(resp.Suggestions))
	}
	return resp, nil
}

package search

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"

	"github.com/listenupapp/emojigen/internal/domain"
)

const batchSize = 500

// Index is an in-memory Bleve index over one catalog.
//
// All public methods are safe for concurrent use.
type Index struct {
	index   bleve.Index
	logger  *slog.Logger
	mu      sync.RWMutex
	entries map[string]*domain.CatalogEntry // by base emoji
	names   []string                        // lowercase display names, catalog order
	order   []*domain.CatalogEntry
}

// NewIndex creates an empty in-memory index.
func NewIndex(logger *slog.Logger) (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	return &Index{
		index:   idx,
		logger:  logger,
		entries: make(map[string]*domain.CatalogEntry),
	}, nil
}

// Close releases the index.
func (s *Index) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Close()
}

// Shutdown implements do.Shutdowner.
func (s *Index) Shutdown() error {
	return s.Close()
}

// IndexCatalog adds every entry of c in batches.
func (s *Index) IndexCatalog(c *domain.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < len(c.Entries); i += batchSize {
		end := min(i+batchSize, len(c.Entries))

		batch := s.index.NewBatch()
		for _, e := range c.Entries[i:end] {
			doc := NewDocument(e)
			if err := batch.Index(doc.ID, doc.ToMap()); err != nil {
				return fmt.Errorf("batch index %s: %w", doc.ID, err)
			}
		}
		if err := s.index.Batch(batch); err != nil {
			return fmt.Errorf("commit batch %d-%d: %w", i, end, err)
		}

		for _, e := range c.Entries[i:end] {
			if _, ok := s.entries[e.Character]; !ok {
				s.order = append(s.order, e)
				s.names = append(s.names, strings.ToLower(e.DisplayName))
			}
			s.entries[e.Character] = e
		}
	}

	s.logger.Debug("indexed catalog", "entries", len(c.Entries))
	return nil
}

// DocumentCount returns the total number of indexed documents.
func (s *Index) DocumentCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.DocCount()
}

// Entry returns the catalog entry indexed under the base emoji.
func (s *Index) Entry(emoji string) (*domain.CatalogEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[emoji]
	return e, ok
}

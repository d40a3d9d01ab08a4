package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/emojigen/internal/catalog"
	"github.com/listenupapp/emojigen/internal/domain"
	"github.com/listenupapp/emojigen/internal/search"
	"github.com/listenupapp/emojigen/internal/validation"
)

func writeTestCatalog(t *testing.T) string {
	t.Helper()

	entries := []*domain.CatalogEntry{
		domain.NewCatalogEntry("🍎", "Red Apple", "Food & Drink"),
		domain.NewCatalogEntry("🚀", "Rocket", "Travel & Places"),
	}
	c := &domain.Catalog{
		Entries:      entries,
		Categories:   []string{"Food & Drink", "Travel & Places"},
		TotalCount:   2,
		VariantCount: 0,
	}

	path := filepath.Join(t.TempDir(), "emojis.json")
	require.NoError(t, catalog.NewWriter(validation.New()).Write(path, c))
	return path
}

func setupSearchService(t *testing.T) *SearchService {
	t.Helper()

	index, err := search.NewIndex(testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	svc := NewSearchService(index, testLogger())
	require.NoError(t, svc.LoadCatalog(writeTestCatalog(t)))
	return svc
}

func TestSearchService_Search(t *testing.T) {
	svc := setupSearchService(t)

	resp, err := svc.Search(context.Background(), search.Params{Query: "rocket"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Hits)
	assert.Equal(t, "🚀", resp.Hits[0].Emoji)
	assert.Empty(t, resp.Suggestions)
}

func TestSearchService_SuggestsOnEmptyResult(t *testing.T) {
	svc := setupSearchService(t)

	resp, err := svc.Search(context.Background(), search.Params{Query: "rkt"})
	require.NoError(t, err)
	assert.Empty(t, resp.Hits)
	assert.Equal(t, []string{"Rocket"}, resp.Suggestions)
}

func TestSearchService_LoadCatalogMissing(t *testing.T) {
	index, err := search.NewIndex(testLogger())
	require.NoError(t, err)
	defer index.Close()

	svc := NewSearchService(index, testLogger())
	assert.Error(t, svc.LoadCatalog(filepath.Join(t.TempDir(), "missing.json")))
}

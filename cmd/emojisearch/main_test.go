package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/emojigen/internal/catalog"
	"github.com/listenupapp/emojigen/internal/domain"
	"github.com/listenupapp/emojigen/internal/search"
	"github.com/listenupapp/emojigen/internal/service"
	"github.com/listenupapp/emojigen/internal/validation"
)

func writeCatalog(t *testing.T) string {
	t.Helper()

	thumbs := domain.NewCatalogEntry("👍", "Thumbs Up", "People & Body")
	thumbs.AddVariant(domain.VariantRef{Character: "👍🏻", DisplayName: "Thumbs Up Light Skin Tone"})
	entries := []*domain.CatalogEntry{
		thumbs,
		domain.NewCatalogEntry("🚀", "Rocket", "Travel & Places"),
	}
	c := &domain.Catalog{
		Entries:      entries,
		Categories:   []string{"People & Body", "Travel & Places"},
		TotalCount:   2,
		VariantCount: 1,
	}

	path := filepath.Join(t.TempDir(), "emojis.json")
	require.NoError(t, catalog.NewWriter(validation.New()).Write(path, c))
	return path
}

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("EMOJI_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("EMOJI_OUTPUT_PATH", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENV", "")
}

func TestRun(t *testing.T) {
	isolateEnv(t)
	path := writeCatalog(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-catalog", path, "-log-level", "error", "rocket"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "🚀  Rocket (Travel & Places)\n")
	assert.Contains(t, stdout.String(), "1 of 1 matches\n")
}

func TestRun_Suggestions(t *testing.T) {
	isolateEnv(t)
	path := writeCatalog(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-catalog", path, "-log-level", "error", "rkt"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "No emojis match \"rkt\"\nDid you mean: Rocket\n", stdout.String())
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage: emojisearch")
}

func TestRun_MissingCatalog(t *testing.T) {
	isolateEnv(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-catalog", filepath.Join(t.TempDir(), "none.json"), "-log-level", "error", "x"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Failed to load catalog")
}

func TestPrintResponse_Variants(t *testing.T) {
	var buf bytes.Buffer
	printResponse(&buf, &service.SearchResponse{Result: &search.Result{
		Query: "thumbs",
		Total: 1,
		Hits: []search.Hit{{
			Emoji:    "👍",
			Name:     "Thumbs Up",
			Category: "People & Body",
			Variants: []string{"Thumbs Up Light Skin Tone"},
		}},
	}})

	assert.Equal(t,
		"👍  Thumbs Up (People & Body)\n    variants: Thumbs Up Light Skin Tone\n1 of 1 matches\n",
		buf.String())
}

package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping creates the Bleve index mapping for emoji documents.
//
// Names and variant names get English stemming ("hearts" finds "Heart"),
// the searchable blob only lowercases, and emoji characters and categories
// are matched exactly.
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	// Display name - primary search target
	nameFieldMapping := bleve.NewTextFieldMapping()
	nameFieldMapping.Analyzer = en.AnalyzerName
	nameFieldMapping.Store = true
	nameFieldMapping.IncludeTermVectors = true
	docMapping.AddFieldMappingsAt("name", nameFieldMapping)

	// Variant names - searchable, stored for display
	variantsFieldMapping := bleve.NewTextFieldMapping()
	variantsFieldMapping.Analyzer = en.AnalyzerName
	variantsFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("variants", variantsFieldMapping)

	// Searchable blob - simple analyzer, no stemming
	searchableFieldMapping := bleve.NewTextFieldMapping()
	searchableFieldMapping.Analyzer = simple.Name
	searchableFieldMapping.Store = false
	docMapping.AddFieldMappingsAt("searchable", searchableFieldMapping)

	// --- Keyword fields (exact match) ---

	emojiFieldMapping := bleve.NewTextFieldMapping()
	emojiFieldMapping.Analyzer = keyword.Name
	emojiFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("emoji", emojiFieldMapping)

	variantEmojiFieldMapping := bleve.NewTextFieldMapping()
	variantEmojiFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("variant_emoji", variantEmojiFieldMapping)

	categoryFieldMapping := bleve.NewTextFieldMapping()
	categoryFieldMapping.Analyzer = keyword.Name
	categoryFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("category", categoryFieldMapping)

	idFieldMapping := bleve.NewTextFieldMapping()
	idFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("id", idFieldMapping)

	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}

package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/listenupapp/emojigen/internal/domain"
	domainerrors "github.com/listenupapp/emojigen/internal/errors"
	"github.com/listenupapp/emojigen/internal/validation"
)

// DefaultPath is where the catalog is written when nothing else is configured.
const DefaultPath = "emojis.json"

// Writer validates catalogs and persists them as JSON.
type Writer struct {
	validator *validation.Validator
}

// NewWriter creates a writer.
func NewWriter(v *validation.Validator) *Writer {
	return &Writer{validator: v}
}

// Encode renders the catalog as UTF-8 JSON with two-space indentation.
// Non-ASCII text and HTML characters are written literally.
func Encode(c *domain.Catalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write validates c and writes it to path. The file is written to path.tmp
// first and renamed, so a failed run never leaves a partial catalog.
func (w *Writer) Write(path string, c *domain.Catalog) error {
	if err := Validate(w.validator, c); err != nil {
		return domainerrors.Wrapf(err, domainerrors.CodeWriteFailed, "write catalog to %s", path)
	}

	data, err := Encode(c)
	if err != nil {
		return domainerrors.Wrapf(err, domainerrors.CodeWriteFailed, "encode catalog for %s", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return domainerrors.Wrapf(err, domainerrors.CodeWriteFailed, "write catalog to %s", path)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return domainerrors.Wrapf(err, domainerrors.CodeWriteFailed, "write catalog to %s", path)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return domainerrors.Wrapf(err, domainerrors.CodeWriteFailed, "write catalog to %s", path)
	}

	return nil
}

// Load reads a catalog written by Write.
func Load(path string) (*domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c domain.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, domainerrors.Wrapf(err, domainerrors.CodeValidation, "parse catalog %s", path)
	}
	return &c, nil
}

// WriteSummary prints the per-category summary of a generated catalog.
func WriteSummary(w io.Writer, c *domain.Catalog, path string) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Generated %d base emojis with %d variants across %d categories:\n",
		c.TotalCount, c.VariantCount, len(c.Categories))
	for _, cc := range c.CategoryCounts() {
		fmt.Fprintf(&buf, "  - %s: %d\n", cc.Category, cc.Count)
	}
	fmt.Fprintf(&buf, "Saved to %s\n", path)

	_, err := w.Write(buf.Bytes())
	return err
}

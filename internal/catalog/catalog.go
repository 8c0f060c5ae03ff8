// Package catalog loads the static restaurant menu.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/Lixing-Zhang/saffron-menu/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned when a catalog document fails validation
var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed menu.yaml
var defaultMenu []byte

var loadDefault = sync.OnceValues(func() (*models.Catalog, error) {
	return Parse(bytes.NewReader(defaultMenu))
})

// Default returns the embedded catalog. It is parsed once per process and
// shared by every caller, so callers must treat it as read-only.
func Default() (*models.Catalog, error) {
	return loadDefault()
}

// LoadFile reads a catalog document from disk
func LoadFile(path string) (*models.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Load returns the catalog at path, or the embedded catalog when path is empty
func Load(path string) (*models.Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes and validates a YAML catalog document
func Parse(r io.Reader) (*models.Catalog, error) {
	var c models.Catalog

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	if err := Validate(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks the structural invariants of a catalog:
// at least one category, unique non-empty ids and non-negative prices.
func Validate(c *models.Catalog) error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidCatalog)
	}

	categoryIDs := make(map[string]bool, len(c.Categories))
	itemIDs := make(map[string]bool)

	for i, category := range c.Categories {
		if category.ID == "" {
			return fmt.Errorf("%w: category %d has no id", ErrInvalidCatalog, i)
		}
		if categoryIDs[category.ID] {
			return fmt.Errorf("%w: duplicate category id %q", ErrInvalidCatalog, category.ID)
		}
		categoryIDs[category.ID] = true

		for _, item := range category.Items {
			if item.ID == "" {
				return fmt.Errorf("%w: item without id in category %q", ErrInvalidCatalog, category.ID)
			}
			if itemIDs[item.ID] {
				return fmt.Errorf("%w: duplicate item id %q", ErrInvalidCatalog, item.ID)
			}
			if item.Price < 0 {
				return fmt.Errorf("%w: item %q has negative price", ErrInvalidCatalog, item.ID)
			}
			itemIDs[item.ID] = true
		}
	}

	return nil
}

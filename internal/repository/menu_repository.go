package repository

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/saffron-menu/internal/models"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrItemNotFound     = errors.New("menu item not found")
)

// MenuRepository defines the interface for menu data access
type MenuRepository interface {
	GetCatalog(ctx context.Context) (*models.Catalog, error)
	GetCategory(ctx context.Context, id string) (*models.MenuCategory, error)
	GetItem(ctx context.Context, id string) (*models.MenuItem, error)
}

// InMemoryMenuRepository implements MenuRepository over a loaded catalog
type InMemoryMenuRepository struct {
	catalog    *models.Catalog
	categories map[string]models.MenuCategory
	items      map[string]models.MenuItem
}

// NewInMemoryMenuRepository indexes the catalog by category and item id
func NewInMemoryMenuRepository(catalog *models.Catalog) *InMemoryMenuRepository {
	categories := make(map[string]models.MenuCategory, len(catalog.Categories))
	items := make(map[string]models.MenuItem, catalog.ItemCount())

	for _, category := range catalog.Categories {
		categories[category.ID] = category
		for _, item := range category.Items {
			items[item.ID] = item
		}
	}

	return &InMemoryMenuRepository{
		catalog:    catalog,
		categories: categories,
		items:      items,
	}
}

// GetCatalog returns the whole catalog in display order
func (r *InMemoryMenuRepository) GetCatalog(ctx context.Context) (*models.Catalog, error) {
	return r.catalog, nil
}

// GetCategory returns a category by its ID
func (r *InMemoryMenuRepository) GetCategory(ctx context.Context, id string) (*models.MenuCategory, error) {
	category, exists := r.categories[id]
	if !exists {
		return nil, ErrCategoryNotFound
	}
	return &category, nil
}

// GetItem returns a menu item by its ID
func (r *InMemoryMenuRepository) GetItem(ctx context.Context, id string) (*models.MenuItem, error) {
	item, exists := r.items[id]
	if !exists {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

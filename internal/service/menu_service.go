package service

import (
	"context"

	"github.com/Lixing-Zhang/saffron-menu/internal/models"
	"github.com/Lixing-Zhang/saffron-menu/internal/repository"
)

// MenuService handles business logic for browsing the menu
type MenuService struct {
	repo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(repo repository.MenuRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// GetMenu returns the full catalog
func (s *MenuService) GetMenu(ctx context.Context) (*models.Catalog, error) {
	return s.repo.GetCatalog(ctx)
}

// GetCategory returns a category by ID
func (s *MenuService) GetCategory(ctx context.Context, id string) (*models.MenuCategory, error) {
	return s.repo.GetCategory(ctx, id)
}

// GetItem returns a menu item by ID
func (s *MenuService) GetItem(ctx context.Context, id string) (*models.MenuItem, error) {
	return s.repo.GetItem(ctx, id)
}

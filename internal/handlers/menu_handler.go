package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/saffron-menu/internal/repository"
	"github.com/Lixing-Zhang/saffron-menu/internal/service"
	"github.com/go-chi/chi/v5"
)

// MenuHandler handles catalog HTTP requests
type MenuHandler struct {
	service *service.MenuService
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service *service.MenuService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger,
	}
}

// GetMenu handles GET /api/menu
// Returns the whole catalog with categories in display order
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.service.GetMenu(r.Context())
	if err != nil {
		h.logger.Error("failed to get menu", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, menu, h.logger)
}

// GetCategory handles GET /api/menu/{categoryId}
func (h *MenuHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")

	if categoryID == "" {
		h.logger.Warn("category ID is required")
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	category, err := h.service.GetCategory(r.Context(), categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			h.logger.Info("category not found", "categoryId", categoryID)
			WriteError(w, http.StatusNotFound, "Category not found", h.logger)
			return
		}

		h.logger.Error("failed to get category", "categoryId", categoryID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, category, h.logger)
}

// GetItem handles GET /api/item/{itemId}
func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	if itemID == "" {
		h.logger.Warn("item ID is required")
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	item, err := h.service.GetItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			h.logger.Info("menu item not found", "itemId", itemID)
			WriteError(w, http.StatusNotFound, "Item not found", h.logger)
			return
		}

		h.logger.Error("failed to get menu item", "itemId", itemID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, item, h.logger)
}

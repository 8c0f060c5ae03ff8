package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/saffron-menu/internal/models"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// HealthResponse reports liveness together with a summary of the loaded menu
type HealthResponse struct {
	Status     string    `json:"status"`
	Version    string    `json:"version"`
	Restaurant string    `json:"restaurant"`
	Categories int       `json:"categories"`
	MenuItems  int       `json:"menuItems"`
	Uptime     string    `json:"uptime"`
	Timestamp  time.Time `json:"timestamp"`
}

// HealthHandler serves GET /health
type HealthHandler struct {
	logger  *slog.Logger
	catalog *models.Catalog
	started time.Time
}

func NewHealthHandler(logger *slog.Logger, catalog *models.Catalog) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		catalog: catalog,
		started: time.Now(),
	}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:     "healthy",
		Version:    Version,
		Restaurant: h.catalog.Name,
		Categories: len(h.catalog.Categories),
		MenuItems:  h.catalog.ItemCount(),
		Uptime:     now.Sub(h.started).Round(time.Second).String(),
		Timestamp:  now.UTC(),
	}, h.logger)
}

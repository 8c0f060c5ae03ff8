package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/saffron-menu/internal/models"
	"github.com/Lixing-Zhang/saffron-menu/internal/service"
)

// QuoteHandler handles price quote HTTP requests
type QuoteHandler struct {
	quoteService *service.QuoteService
	log          *slog.Logger
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService, log *slog.Logger) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		log:          log,
	}
}

// CreateQuote handles POST /api/quote
func (h *QuoteHandler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req models.QuoteRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode quote request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	quote, err := h.quoteService.CreateQuote(r.Context(), req)
	if err != nil {
		h.log.Warn("failed to create quote", "error", err)

		switch {
		case errors.Is(err, service.ErrEmptyQuote):
			WriteError(w, http.StatusBadRequest, "Quote must contain at least one item", h.log)
		case errors.Is(err, service.ErrInvalidQuantity):
			WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.log)
		case errors.Is(err, service.ErrQuantityTooLarge):
			WriteError(w, http.StatusBadRequest, fmt.Sprintf("Quantity must not exceed %d per item", service.MaxItemQuantity), h.log)
		case errors.Is(err, service.ErrTotalTooLarge):
			WriteError(w, http.StatusBadRequest, "Quote total is too large", h.log)
		case errors.Is(err, service.ErrUnknownItem):
			WriteError(w, http.StatusBadRequest, "Invalid menu item", h.log)
		default:
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, quote, h.log)
	h.log.Info("quote created", "quote_id", quote.ID, "total_count", quote.TotalCount, "total_price", quote.TotalPrice)
}

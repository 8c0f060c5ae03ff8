package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Lixing-Zhang/saffron-menu/internal/cart"
	"github.com/Lixing-Zhang/saffron-menu/internal/models"
	"github.com/Lixing-Zhang/saffron-menu/internal/repository"
	"github.com/google/uuid"
)

// MaxItemQuantity caps the units of a single item in one quote, counting
// repeated lines for the same item together
const MaxItemQuantity = 999

var (
	ErrEmptyQuote       = errors.New("quote must contain at least one item")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrQuantityTooLarge = fmt.Errorf("quantity must not exceed %d per item", MaxItemQuantity)
	ErrTotalTooLarge    = errors.New("quote total is too large")
	ErrUnknownItem      = errors.New("unknown menu item")
)

// ItemRepository interface for menu item lookup
type ItemRepository interface {
	GetItem(ctx context.Context, id string) (*models.MenuItem, error)
}

// QuoteService prices a list of item quantities with the cart model.
// Quotes are not stored.
type QuoteService struct {
	items ItemRepository
}

// NewQuoteService creates a new quote service
func NewQuoteService(items ItemRepository) *QuoteService {
	return &QuoteService{
		items: items,
	}
}

// CreateQuote validates the request and prices it. Repeated item ids are
// merged into a single line.
func (s *QuoteService) CreateQuote(ctx context.Context, req models.QuoteRequest) (*models.Quote, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyQuote
	}

	c := cart.New()
	total := 0
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if line.Quantity > MaxItemQuantity-c.Quantity(line.ItemID) {
			return nil, ErrQuantityTooLarge
		}

		item, err := s.items.GetItem(ctx, line.ItemID)
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrUnknownItem
		}
		if err != nil {
			return nil, fmt.Errorf("get item %s: %w", line.ItemID, err)
		}

		// price * quantity + total must stay within int
		if item.Price > 0 && item.Price > (math.MaxInt-total)/line.Quantity {
			return nil, ErrTotalTooLarge
		}
		total += item.Price * line.Quantity

		c.AddN(*item, line.Quantity)
	}

	entries := c.Entries()
	lines := make([]models.QuoteLine, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, models.QuoteLine{
			Item:     e.Item,
			Quantity: e.Quantity,
			Subtotal: e.Subtotal(),
		})
	}

	return &models.Quote{
		ID:         generateQuoteID(),
		Entries:    lines,
		TotalCount: c.TotalCount(),
		TotalPrice: c.TotalPrice(),
	}, nil
}

// generateQuoteID generates a unique quote ID using UUID
func generateQuoteID() string {
	return uuid.New().String()
}

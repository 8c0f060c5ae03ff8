package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Lixing-Zhang/saffron-menu/internal/catalog"
	"github.com/Lixing-Zhang/saffron-menu/internal/models"
	"github.com/Lixing-Zhang/saffron-menu/internal/repository"
)

func newQuoteService(t *testing.T) *QuoteService {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return NewQuoteService(repository.NewInMemoryMenuRepository(c))
}

func TestQuoteService_CreateQuote(t *testing.T) {
	quoteService := newQuoteService(t)

	tests := []struct {
		name      string
		req       models.QuoteRequest
		wantErr   error
		wantCount int
		wantPrice int
		wantLines int
	}{
		{
			name: "single item",
			req: models.QuoteRequest{
				Items: []models.QuoteItem{{ItemID: "m1", Quantity: 2}},
			},
			wantCount: 2,
			wantPrice: 760,
			wantLines: 1,
		},
		{
			name: "multiple items",
			req: models.QuoteRequest{
				Items: []models.QuoteItem{
					{ItemID: "m1", Quantity: 1},
					{ItemID: "b2", Quantity: 3},
				},
			},
			wantCount: 4,
			wantPrice: 560,
			wantLines: 2,
		},
		{
			name: "repeated item merged",
			req: models.QuoteRequest{
				Items: []models.QuoteItem{
					{ItemID: "d1", Quantity: 1},
					{ItemID: "d1", Quantity: 2},
				},
			},
			wantCount: 3,
			wantPrice: 360,
			wantLines: 1,
		},
		{
			name:    "empty quote",
			req:     models.QuoteRequest{Items: []models.QuoteItem{}},
			wantErr: ErrEmptyQuote,
		},
		{
			name: "invalid quantity - zero",
			req: models.QuoteRequest{
				Items: []models.QuoteItem{{ItemID: "m1", Quantity: 0}},
			},
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "invalid quantity - negative",
			req: models.QuoteRequest{
				Items: []models.QuoteItem{{ItemID: "m1", Quantity: -1}},
			},
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "unknown item",
			req: models.QuoteRequest{
				Items: []models.QuoteItem{{ItemID: "z9", Quantity: 1}},
			},
			wantErr: ErrUnknownItem,
		},
		{
			name: "quantity at limit",
			req: models.QuoteRequest{
				Items: []models.QuoteItem{{ItemID: "m1", Quantity: MaxItemQuantity}},
			},
			wantCount: MaxItemQuantity,
			wantPrice: 380 * MaxItemQuantity,
			wantLines: 1,
		},
		{
			name: "quantity over limit",
			req: models.QuoteRequest{
				Items: []models.QuoteItem{{ItemID: "m1", Quantity: MaxItemQuantity + 1}},
			},
			wantErr: ErrQuantityTooLarge,
		},
		{
			name: "huge quantity rejected",
			req: models.QuoteRequest{
				Items: []models.QuoteItem{{ItemID: "m1", Quantity: 1 << 62}},
			},
			wantErr: ErrQuantityTooLarge,
		},
		{
			name: "repeated item over limit",
			req: models.QuoteRequest{
				Items: []models.QuoteItem{
					{ItemID: "d1", Quantity: MaxItemQuantity},
					{ItemID: "d1", Quantity: 1},
				},
			},
			wantErr: ErrQuantityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := quoteService.CreateQuote(context.Background(), tt.req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CreateQuote() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("CreateQuote() unexpected error = %v", err)
			}

			if quote.ID == "" {
				t.Error("CreateQuote() quote ID is empty")
			}
			if quote.TotalCount != tt.wantCount {
				t.Errorf("TotalCount = %d, want %d", quote.TotalCount, tt.wantCount)
			}
			if quote.TotalPrice != tt.wantPrice {
				t.Errorf("TotalPrice = %d, want %d", quote.TotalPrice, tt.wantPrice)
			}
			if len(quote.Entries) != tt.wantLines {
				t.Errorf("entries = %d, want %d", len(quote.Entries), tt.wantLines)
			}
		})
	}
}

func TestQuoteService_LinesInRequestOrder(t *testing.T) {
	quoteService := newQuoteService(t)

	quote, err := quoteService.CreateQuote(context.Background(), models.QuoteRequest{
		Items: []models.QuoteItem{
			{ItemID: "b1", Quantity: 1},
			{ItemID: "s4", Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuote() unexpected error = %v", err)
	}

	if quote.Entries[0].Item.ID != "b1" || quote.Entries[1].Item.ID != "s4" {
		t.Errorf("entries out of order: %+v", quote.Entries)
	}
	if quote.Entries[1].Subtotal != 900 {
		t.Errorf("s4 subtotal = %d, want 900", quote.Entries[1].Subtotal)
	}
}

// stubItems serves fixed items and fails every other lookup with err
type stubItems struct {
	items map[string]models.MenuItem
	err   error
}

func (s stubItems) GetItem(_ context.Context, id string) (*models.MenuItem, error) {
	if item, ok := s.items[id]; ok {
		return &item, nil
	}
	return nil, s.err
}

func TestQuoteService_TotalOverflowRejected(t *testing.T) {
	pricey := models.MenuItem{ID: "x1", Name: "Tasting Menu", Price: math.MaxInt / 500}
	quoteService := NewQuoteService(stubItems{
		items: map[string]models.MenuItem{"x1": pricey},
		err:   repository.ErrItemNotFound,
	})

	_, err := quoteService.CreateQuote(context.Background(), models.QuoteRequest{
		Items: []models.QuoteItem{{ItemID: "x1", Quantity: MaxItemQuantity}},
	})
	if !errors.Is(err, ErrTotalTooLarge) {
		t.Fatalf("CreateQuote() error = %v, want %v", err, ErrTotalTooLarge)
	}

	quote, err := quoteService.CreateQuote(context.Background(), models.QuoteRequest{
		Items: []models.QuoteItem{{ItemID: "x1", Quantity: 500}},
	})
	if err != nil {
		t.Fatalf("CreateQuote() unexpected error = %v", err)
	}
	if quote.TotalPrice < 0 || quote.TotalPrice != pricey.Price*500 {
		t.Errorf("TotalPrice = %d, want %d", quote.TotalPrice, pricey.Price*500)
	}
}

func TestQuoteService_RepositoryFailure(t *testing.T) {
	failure := errors.New("catalog unavailable")
	quoteService := NewQuoteService(stubItems{err: failure})

	_, err := quoteService.CreateQuote(context.Background(), models.QuoteRequest{
		Items: []models.QuoteItem{{ItemID: "m1", Quantity: 1}},
	})
	if !errors.Is(err, failure) {
		t.Fatalf("CreateQuote() error = %v, want wrapped %v", err, failure)
	}
	if errors.Is(err, ErrUnknownItem) {
		t.Error("repository failure reported as unknown item")
	}
}

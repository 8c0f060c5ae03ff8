package models

// QuoteRequest represents an incoming price quote request
type QuoteRequest struct {
	Items []QuoteItem `json:"items"`
}

// QuoteItem represents a requested quantity of a single menu item
type QuoteItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// QuoteLine is a priced line of a quote
type QuoteLine struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
	Subtotal int      `json:"subtotal"`
}

// Quote is the priced result of a quote request.
// It is computed on demand and never stored.
type Quote struct {
	ID         string      `json:"id"`
	Entries    []QuoteLine `json:"entries"`
	TotalCount int         `json:"totalCount"`
	TotalPrice int         `json:"totalPrice"`
}

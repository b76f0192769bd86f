// Package transport defines the quoting wire contracts.
package transport

// QuoteItemRequest is one configured item as submitted by the builder form.
// Client-computed pricePerMeter and total are accepted on the wire but always
// re-derived server-side; persisted numbers never come from the client.
type QuoteItemRequest struct {
	Type          string   `json:"type" validate:"required,min=1,max=50"`
	Psubtype      string   `json:"psubtype" validate:"max=50"`
	Material      string   `json:"material" validate:"max=50"`
	Color         string   `json:"color" validate:"max=50"`
	Width         float64  `json:"width"`
	Height        float64  `json:"height"`
	Length        float64  `json:"length"`
	Quantity      int      `json:"quantity"`
	Days          int      `json:"days"`
	PricePerMeter int64    `json:"pricePerMeter"`
	Total         int64    `json:"total"`
	SelectedAcc   []string `json:"selectedAcc" validate:"max=50,dive,max=50"`
	Description   string   `json:"description" validate:"max=2000"`
}

// QuoteRequest is the full builder state: the main item inline plus zero or
// more additional items of the same shape.
type QuoteRequest struct {
	QuoteItemRequest
	Items []QuoteItemRequest `json:"items" validate:"max=50,dive"`
}

// QuoteItemResponse is one derived item with its resolved price and total.
type QuoteItemResponse struct {
	Type          string   `json:"type"`
	Psubtype      string   `json:"psubtype"`
	Material      string   `json:"material"`
	Color         string   `json:"color"`
	Width         float64  `json:"width"`
	Height        float64  `json:"height"`
	Length        float64  `json:"length"`
	Quantity      int      `json:"quantity"`
	Days          int      `json:"days"`
	PricePerMeter int64    `json:"pricePerMeter"`
	Total         int64    `json:"total"`
	SelectedAcc   []string `json:"selectedAcc"`
	Description   string   `json:"description,omitempty"`
}

// QuoteResponse is the fully derived quote: main item inline, additional
// items nested, grand total across all of them.
type QuoteResponse struct {
	QuoteItemResponse
	Items      []QuoteItemResponse `json:"items"`
	GrandTotal int64               `json:"grandTotal"`
}

package structs

import "github.com/shopspring/decimal"

// LineItem is one product entry in a cart. Price is the unit price
// snapshotted when the item was added.
type LineItem struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int64           `json:"quantity"`
	Restaurant string          `json:"restaurant,omitempty"`
	Image      string          `json:"image,omitempty"`
}

type AddItem struct {
	ID         string          `json:"id" binding:"required"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int64           `json:"quantity"`
	Restaurant string          `json:"restaurant"`
	Image      string          `json:"image"`
}

type UpdateQuantity struct {
	ID       string      `json:"id" binding:"required"`
	Quantity interface{} `json:"quantity"`
}

// CartEnvelope is the remote cart store's reply for every cart operation.
type CartEnvelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Items   []LineItem `json:"items"`
}

type CartSummary struct {
	ItemCount   int64           `json:"item_count"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Tax         decimal.Decimal `json:"tax"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
	Display     SummaryDisplay  `json:"display"`
}

// SummaryDisplay carries pre-formatted amounts for the rendering layer.
type SummaryDisplay struct {
	Subtotal    string `json:"subtotal"`
	DeliveryFee string `json:"delivery_fee"`
	Tax         string `json:"tax"`
	Total       string `json:"total"`
}

type CartResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Items   []LineItem   `json:"items"`
	Summary *CartSummary `json:"summary,omitempty"`
}

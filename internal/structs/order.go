package structs

import "github.com/shopspring/decimal"

type Order struct {
	OrderID       string          `json:"order_id"`
	Items         []LineItem      `json:"items"`
	ItemsSummary  string          `json:"items_summary,omitempty"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	DeliveryFee   decimal.Decimal `json:"delivery_fee"`
	Tax           decimal.Decimal `json:"tax"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	Address       string          `json:"address,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Name          string          `json:"name,omitempty"`
	City          string          `json:"city,omitempty"`
	Zip           string          `json:"zip,omitempty"`
	Instructions  string          `json:"instructions,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Restaurant    string          `json:"restaurant,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

type PlaceOrder struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address" binding:"required"`
	City          string `json:"city"`
	Zip           string `json:"zip"`
	Instructions  string `json:"instructions"`
	PaymentMethod string `json:"payment_method"`
	PromoCode     string `json:"promo_code"`
}

// PlaceOrderUpstream is the body forwarded to the store's orders endpoint.
// The discount is re-validated here, never taken from the browser.
type PlaceOrderUpstream struct {
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	Zip           string          `json:"zip"`
	Instructions  string          `json:"instructions"`
	PaymentMethod string          `json:"payment_method"`
	Discount      decimal.Decimal `json:"discount"`
}

type OrderEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Order   Order  `json:"order"`
}

type OrdersEnvelope struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Orders  []Order `json:"orders"`
}

type OrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Order   *Order `json:"order,omitempty"`
}

type OrdersResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Orders  []Order `json:"orders"`
}

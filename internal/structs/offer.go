package structs

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DiscountPercent      = "percent"
	DiscountFlat         = "flat"
	DiscountFreeDelivery = "free_delivery"
)

// NormalizeDiscountType maps the store's discount type spellings onto the
// canonical set. Older store deployments send "delivery" for free delivery.
func NormalizeDiscountType(v string) (string, error) {
	s := strings.TrimSpace(strings.ToLower(v))
	switch s {
	case "percent":
		return DiscountPercent, nil
	case "flat":
		return DiscountFlat, nil
	case "free_delivery", "delivery":
		return DiscountFreeDelivery, nil
	default:
		return "", fmt.Errorf("invalid discountType: %q", v)
	}
}

// Offer is a server-defined discount rule. Codes are stored upper-cased.
type Offer struct {
	Code          string          `json:"code"`
	Title         string          `json:"title"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	MinOrder      decimal.Decimal `json:"min_order"`
	ValidTill     string          `json:"valid_till"`
	Active        bool            `json:"active"`
}

// PromoResult is an accepted promo code application.
type PromoResult struct {
	Code   string          `json:"code"`
	Type   string          `json:"discount_type"`
	Value  decimal.Decimal `json:"discount_value"`
	Amount decimal.Decimal `json:"discount_amount"`
	Label  string          `json:"label"`
}

type ValidatePromo struct {
	Code string `json:"code" binding:"required"`
}

type PromoEnvelope struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message,omitempty"`
	Code           string          `json:"code"`
	DiscountType   string          `json:"discount_type"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Label          string          `json:"label,omitempty"`
}

type OffersEnvelope struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Offers  []Offer `json:"offers"`
}

type PromoResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Promo   *PromoResult `json:"promo,omitempty"`
	Summary *CartSummary `json:"summary,omitempty"`
}

type OffersResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Offers  []Offer `json:"offers"`
}

package pricing

import (
	"flavourfleet/internal/structs"
	"flavourfleet/pkg/config"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var Module = fx.Provide(New)

type Params struct {
	fx.In
	Config config.IConfig
}

// Rules holds the storefront pricing knobs. All derivations are pure and
// synchronous; nothing here talks to the store.
type Rules struct {
	FreeDeliveryThreshold decimal.Decimal
	DeliveryFlatFee       decimal.Decimal
	TaxRate               decimal.Decimal
	Digits                int32
}

func New(p Params) Rules {
	return Rules{
		FreeDeliveryThreshold: decimal.NewFromFloat(p.Config.GetFloat64("pricing.free_delivery_threshold")),
		DeliveryFlatFee:       decimal.NewFromFloat(p.Config.GetFloat64("pricing.delivery_fee")),
		TaxRate:               decimal.NewFromFloat(p.Config.GetFloat64("pricing.tax_rate")),
		Digits:                int32(p.Config.GetInt("pricing.currency_digits")),
	}
}

func (r Rules) Subtotal(items []structs.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return sum
}

// DeliveryFee is zero for an empty cart and zero once the subtotal reaches
// the free-delivery threshold. The bound is inclusive: hitting the threshold
// exactly earns free delivery.
func (r Rules) DeliveryFee(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.Sign() <= 0 {
		return decimal.Zero
	}
	if subtotal.GreaterThanOrEqual(r.FreeDeliveryThreshold) {
		return decimal.Zero
	}
	return r.DeliveryFlatFee
}

func (r Rules) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(r.TaxRate).Round(r.Digits)
}

// DiscountAmount computes what a discount rule is worth against a subtotal.
// A free-delivery discount is worth exactly the fee it waives.
func (r Rules) DiscountAmount(discountType string, value, subtotal decimal.Decimal) decimal.Decimal {
	switch discountType {
	case structs.DiscountPercent:
		return subtotal.Mul(value).Div(decimal.NewFromInt(100)).Round(r.Digits)
	case structs.DiscountFlat:
		return value
	case structs.DiscountFreeDelivery:
		return r.DeliveryFee(subtotal)
	default:
		return decimal.Zero
	}
}

// Total never goes negative: a discount larger than the payable amount
// brings the total to zero, it does not credit the customer.
func (r Rules) Total(subtotal, discount decimal.Decimal) decimal.Decimal {
	total := subtotal.
		Add(r.DeliveryFee(subtotal)).
		Add(r.Tax(subtotal)).
		Sub(discount).
		Round(r.Digits)

	if total.Sign() < 0 {
		return decimal.Zero
	}
	return total
}

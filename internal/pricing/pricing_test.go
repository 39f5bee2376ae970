package pricing

import (
	"testing"

	"flavourfleet/internal/structs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func inrRules() Rules {
	return Rules{
		FreeDeliveryThreshold: decimal.NewFromInt(499),
		DeliveryFlatFee:       decimal.NewFromInt(49),
		TaxRate:               decimal.NewFromFloat(0.05),
		Digits:                0,
	}
}

func TestSubtotal(t *testing.T) {
	r := inrRules()

	assert.True(t, r.Subtotal(nil).IsZero())

	items := []structs.LineItem{
		{ID: "p1", Price: decimal.NewFromInt(10), Quantity: 2},
		{ID: "p2", Price: decimal.NewFromFloat(149.5), Quantity: 3},
	}
	assert.Equal(t, "468.5", r.Subtotal(items).String())
}

func TestDeliveryFee(t *testing.T) {
	r := inrRules()

	tests := []struct {
		name     string
		subtotal int64
		want     int64
	}{
		{"empty cart ships nothing", 0, 0},
		{"below threshold pays flat fee", 498, 49},
		{"threshold exactly is free", 499, 0},
		{"above threshold is free", 1200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.DeliveryFee(decimal.NewFromInt(tt.subtotal))
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)),
				"subtotal %d: got %s want %d", tt.subtotal, got, tt.want)
		})
	}
}

func TestTaxRounding(t *testing.T) {
	r := inrRules()

	// 5% of 449 is 22.45, rounded to whole rupees
	assert.Equal(t, "22", r.Tax(decimal.NewFromInt(449)).String())

	usd := Rules{
		FreeDeliveryThreshold: decimal.NewFromInt(30),
		DeliveryFlatFee:       decimal.NewFromFloat(4.99),
		TaxRate:               decimal.NewFromFloat(0.08),
		Digits:                2,
	}
	assert.Equal(t, "1.72", usd.Tax(decimal.NewFromFloat(21.5)).String())
}

func TestDiscountAmount(t *testing.T) {
	r := inrRules()
	sub := decimal.NewFromInt(400)

	percent := r.DiscountAmount(structs.DiscountPercent, decimal.NewFromInt(10), sub)
	assert.Equal(t, "40", percent.String())

	flat := r.DiscountAmount(structs.DiscountFlat, decimal.NewFromInt(75), sub)
	assert.Equal(t, "75", flat.String())

	// below the threshold, free delivery is worth the flat fee
	free := r.DiscountAmount(structs.DiscountFreeDelivery, decimal.Zero, sub)
	assert.Equal(t, "49", free.String())

	// above it there is no fee to waive
	none := r.DiscountAmount(structs.DiscountFreeDelivery, decimal.Zero, decimal.NewFromInt(600))
	assert.True(t, none.IsZero())
}

func TestTotal(t *testing.T) {
	r := inrRules()

	// 400 + 49 fee + 20 tax
	total := r.Total(decimal.NewFromInt(400), decimal.Zero)
	assert.Equal(t, "469", total.String())

	discounted := r.Total(decimal.NewFromInt(400), decimal.NewFromInt(100))
	assert.Equal(t, "369", discounted.String())
}

func TestTotalClampsAtZero(t *testing.T) {
	r := inrRules()

	total := r.Total(decimal.NewFromInt(100), decimal.NewFromInt(10000))
	assert.True(t, total.IsZero())
}

func TestTotalMonotone(t *testing.T) {
	r := inrRules()

	// decreasing in the discount
	prev := r.Total(decimal.NewFromInt(400), decimal.Zero)
	for d := int64(50); d <= 600; d += 50 {
		cur := r.Total(decimal.NewFromInt(400), decimal.NewFromInt(d))
		assert.True(t, cur.LessThanOrEqual(prev), "discount %d", d)
		prev = cur
	}

	// increasing in the subtotal
	prev = r.Total(decimal.Zero, decimal.Zero)
	for sub := int64(50); sub <= 1000; sub += 50 {
		cur := r.Total(decimal.NewFromInt(sub), decimal.Zero)
		assert.True(t, cur.GreaterThanOrEqual(prev), "subtotal %d", sub)
		prev = cur
	}
}

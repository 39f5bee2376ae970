package orders

import (
	"context"
	"testing"

	"flavourfleet/internal/cart"
	"flavourfleet/internal/pricing"
	"flavourfleet/internal/storeapi"
	"flavourfleet/internal/structs"
	"flavourfleet/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	storeapi.Client

	items  []structs.LineItem
	placed *structs.PlaceOrderUpstream
}

func (f *fakeStore) FetchCart(context.Context, string) ([]structs.LineItem, error) {
	return f.items, nil
}

func (f *fakeStore) ValidatePromo(_ context.Context, _, code string) (structs.PromoResult, error) {
	if code != "FESTIVE50" {
		return structs.PromoResult{}, &structs.RejectionError{Message: "Invalid promo code"}
	}
	return structs.PromoResult{Code: code, Type: structs.DiscountFlat, Amount: decimal.NewFromInt(50)}, nil
}

func (f *fakeStore) PlaceOrder(_ context.Context, _ string, req structs.PlaceOrderUpstream) (structs.Order, error) {
	f.placed = &req
	f.items = nil // the store empties the cart on success
	return structs.Order{OrderID: "ORD-1A2B3C4D", Status: "preparing", Discount: req.Discount}, nil
}

func rules() pricing.Rules {
	return pricing.Rules{
		FreeDeliveryThreshold: decimal.NewFromInt(499),
		DeliveryFlatFee:       decimal.NewFromInt(49),
		TaxRate:               decimal.NewFromFloat(0.05),
	}
}

func newFixture(items []structs.LineItem) (Service, *cart.Session, *fakeStore) {
	store := &fakeStore{items: items}
	sess := cart.NewSession("guest_test", store, rules(), logger.New("error"))
	svc := New(Params{Logger: logger.New("error"), Store: store})
	return svc, sess, store
}

func TestPlaceRejectsEmptyCart(t *testing.T) {
	svc, sess, store := newFixture(nil)

	_, err := svc.Place(context.Background(), sess, structs.PlaceOrder{Address: "12 MG Road"})
	assert.ErrorIs(t, err, structs.ErrEmptyCart)
	assert.Nil(t, store.placed)
}

func TestPlaceRevalidatesPromo(t *testing.T) {
	items := []structs.LineItem{{ID: "p1", Price: decimal.NewFromInt(300), Quantity: 2}}
	svc, sess, store := newFixture(items)

	order, err := svc.Place(context.Background(), sess, structs.PlaceOrder{
		Address:   "12 MG Road",
		PromoCode: "festive50",
	})
	require.NoError(t, err)
	require.NotNil(t, store.placed)

	assert.Equal(t, "50", store.placed.Discount.String())
	assert.Equal(t, "ORD-1A2B3C4D", order.OrderID)

	// the store cleared the cart and the session followed
	assert.Equal(t, int64(0), sess.ItemCount())
}

func TestPlaceRejectsBadPromo(t *testing.T) {
	items := []structs.LineItem{{ID: "p1", Price: decimal.NewFromInt(300), Quantity: 1}}
	svc, sess, store := newFixture(items)

	_, err := svc.Place(context.Background(), sess, structs.PlaceOrder{
		Address:   "12 MG Road",
		PromoCode: "BOGUS",
	})
	rej, ok := structs.AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid promo code", rej.Message)
	assert.Nil(t, store.placed, "no order may be placed with a rejected code")
}

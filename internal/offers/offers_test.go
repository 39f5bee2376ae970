package offers

import (
	"context"
	"testing"

	"flavourfleet/internal/storeapi"
	"flavourfleet/internal/structs"
	"flavourfleet/pkg/cache"
	"flavourfleet/pkg/config"
	"flavourfleet/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	storeapi.Client

	calls  int
	offers []structs.Offer
	err    error
}

func (f *fakeStore) ListOffers(context.Context, string) ([]structs.Offer, error) {
	f.calls++
	return f.offers, f.err
}

func newTestService(store storeapi.Client) Service {
	return New(Params{
		Logger: logger.New("error"),
		Config: config.NewConfig(),
		Store:  store,
		Redis:  nil, // memory fallback
		Cache:  cache.New(),
	})
}

func TestListReadsThroughOnce(t *testing.T) {
	store := &fakeStore{
		offers: []structs.Offer{
			{Code: "FESTIVE50", Title: "Festive 50", DiscountType: structs.DiscountFlat, DiscountValue: decimal.NewFromInt(50), Active: true},
		},
	}
	svc := newTestService(store)

	first, err := svc.List(context.Background(), "s")
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, store.calls)

	second, err := svc.List(context.Background(), "s")
	require.NoError(t, err)
	assert.Equal(t, 1, store.calls, "second read must come from cache")
	assert.Equal(t, first[0].Code, second[0].Code)
}

func TestListDoesNotCacheFailures(t *testing.T) {
	store := &fakeStore{err: structs.ErrStoreUnreachable}
	svc := newTestService(store)

	_, err := svc.List(context.Background(), "s")
	assert.ErrorIs(t, err, structs.ErrStoreUnreachable)

	store.err = nil
	store.offers = []structs.Offer{{Code: "WELCOME10"}}

	offers, err := svc.List(context.Background(), "s")
	require.NoError(t, err)
	assert.Len(t, offers, 1)
	assert.Equal(t, 2, store.calls)
}

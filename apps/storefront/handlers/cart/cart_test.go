package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flavourfleet/apps/storefront/handlers/middleware"
	cartvm "flavourfleet/internal/cart"
	"flavourfleet/internal/pricing"
	"flavourfleet/internal/storeapi"
	"flavourfleet/internal/structs"
	"flavourfleet/pkg/config"
	"flavourfleet/pkg/logger"
	"flavourfleet/pkg/reply"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	storeapi.Client

	items []structs.LineItem
	err   error
}

func (f *fakeStore) FetchCart(context.Context, string) ([]structs.LineItem, error) {
	return f.items, f.err
}

func (f *fakeStore) AddItem(_ context.Context, _ string, item structs.AddItem) ([]structs.LineItem, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	f.items = append(f.items, structs.LineItem{
		ID: item.ID, Name: item.Name, Price: item.Price, Quantity: item.Quantity,
	})
	return f.items, item.Name + " added to cart!", nil
}

func (f *fakeStore) UpdateQuantity(_ context.Context, _, id string, qty int64) ([]structs.LineItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Quantity = qty
		}
	}
	return f.items, nil
}

func setupRouter(t *testing.T, store storeapi.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	lg := logger.New("error")
	cfg := config.NewConfig()
	reply.New(reply.Params{Logger: lg})

	m := middleware.NewMiddleware(middleware.Params{Logger: lg, Config: cfg})
	sessions := cartvm.NewManager(cartvm.ManagerParams{
		Logger: lg,
		Store:  store,
		Rules: pricing.Rules{
			FreeDeliveryThreshold: decimal.NewFromInt(499),
			DeliveryFlatFee:       decimal.NewFromInt(49),
			TaxRate:               decimal.NewFromFloat(0.05),
		},
	})
	h := New(Params{Logger: lg, Sessions: sessions})

	r := gin.New()
	api := r.Group("/api")
	api.Use(m.Ctx(), m.Session())
	api.GET("/cart", h.GetCart)
	api.POST("/cart/add", h.AddItem)
	api.PUT("/cart/update", h.UpdateQuantity)
	return r
}

func TestGetCartAssignsGuestSession(t *testing.T) {
	store := &fakeStore{items: []structs.LineItem{
		{ID: "p1", Name: "Paneer Roll", Price: decimal.NewFromInt(120), Quantity: 2},
	}}
	r := setupRouter(t, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp structs.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Items, 1)
	require.NotNil(t, resp.Summary)
	assert.Equal(t, int64(2), resp.Summary.ItemCount)
	assert.Equal(t, "240", resp.Summary.Subtotal.String())

	var sessionCookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "ff_session" {
			sessionCookie = ck
		}
	}
	require.NotNil(t, sessionCookie, "guest session cookie must be set")
	assert.True(t, strings.HasPrefix(sessionCookie.Value, "guest_"))
}

func TestAddItemBadPayload(t *testing.T) {
	r := setupRouter(t, &fakeStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(`{"name":"no id"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp structs.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "bad request", resp.Message)
}

func TestAddItemReturnsToastMessage(t *testing.T) {
	r := setupRouter(t, &fakeStore{})

	w := httptest.NewRecorder()
	body := `{"id":"p1","name":"Paneer Roll","price":120,"quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp structs.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Paneer Roll added to cart!", resp.Message)
	require.Len(t, resp.Items, 1)
}

func TestUpdateQuantityCoercesStringNumbers(t *testing.T) {
	store := &fakeStore{items: []structs.LineItem{
		{ID: "p1", Price: decimal.NewFromInt(120), Quantity: 1},
	}}
	r := setupRouter(t, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/cart/update", strings.NewReader(`{"id":"p1","quantity":"3"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp structs.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Summary)
	assert.Equal(t, int64(3), resp.Summary.ItemCount)
}

func TestGetCartUnreachableStore(t *testing.T) {
	r := setupRouter(t, &fakeStore{err: structs.ErrStoreUnreachable})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	r.ServeHTTP(w, req)

	var resp structs.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Network error. Please try again.", resp.Message)
}

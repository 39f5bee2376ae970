package cart

import (
	"context"
	"strings"
	"sync"

	"flavourfleet/internal/pricing"
	"flavourfleet/internal/storeapi"
	"flavourfleet/internal/structs"
	"flavourfleet/pkg/logger"
	"flavourfleet/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Session is the cart view-model for one storefront session. It holds a
// disposable copy of the last cart the store returned; the store stays the
// sole writer and every successful call replaces the copy wholesale. A
// failed call leaves the copy exactly as it was.
type Session struct {
	id     string
	store  storeapi.Client
	rules  pricing.Rules
	logger logger.Logger

	mu        sync.RWMutex
	items     []structs.LineItem
	observers []func()
}

func NewSession(id string, store storeapi.Client, rules pricing.Rules, lg logger.Logger) *Session {
	return &Session{
		id:     id,
		store:  store,
		rules:  rules,
		logger: lg,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Subscribe registers an observer invoked once per completed sync and once
// per successful mutation. Observers read back through the Session; they are
// called outside its lock.
func (s *Session) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Session) notify() {
	s.mu.RLock()
	observers := make([]func(), len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	for _, fn := range observers {
		fn()
	}
}

func (s *Session) replace(items []structs.LineItem) {
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.notify()
}

// Sync fetches the authoritative cart. It fails soft: on error the previous
// snapshot stays, but observers are still refreshed.
func (s *Session) Sync(ctx context.Context) error {
	items, err := s.store.FetchCart(ctx, s.id)
	if err != nil {
		s.logger.Warn(ctx, "cart sync failed, keeping cached snapshot", zap.Error(err))
		s.notify()
		return err
	}
	s.replace(items)
	return nil
}

// Add sends a candidate line item to the store. The store merges duplicate
// ids by incrementing quantity; the client never re-derives that rule and
// just adopts whatever comes back.
func (s *Session) Add(ctx context.Context, item structs.AddItem) (string, error) {
	if strings.TrimSpace(item.ID) == "" {
		return "", &structs.RejectionError{Message: "item id is required"}
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	items, message, err := s.store.AddItem(ctx, s.id, item)
	if err != nil {
		return "", err
	}
	s.replace(items)
	return message, nil
}

func (s *Session) Remove(ctx context.Context, id string) error {
	items, err := s.store.RemoveItem(ctx, s.id, id)
	if err != nil {
		return err
	}
	s.replace(items)
	return nil
}

// SetQuantity updates the line item to exactly qty. A quantity of zero or
// below is a removal: line items are never stored at zero.
func (s *Session) SetQuantity(ctx context.Context, id string, qty int64) error {
	if qty <= 0 {
		return s.Remove(ctx, id)
	}

	items, err := s.store.UpdateQuantity(ctx, s.id, id, qty)
	if err != nil {
		return err
	}
	s.replace(items)
	return nil
}

func (s *Session) Clear(ctx context.Context) error {
	if err := s.store.ClearCart(ctx, s.id); err != nil {
		return err
	}
	s.replace(nil)
	return nil
}

// ApplyPromo validates a code against the store. A rejection is a
// *structs.RejectionError, never a discount; the snapshot is untouched
// either way.
func (s *Session) ApplyPromo(ctx context.Context, code string) (structs.PromoResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return structs.PromoResult{}, &structs.RejectionError{Message: "promo code is required"}
	}
	return s.store.ValidatePromo(ctx, s.id, code)
}

// Items returns a copy of the cached snapshot.
func (s *Session) Items() []structs.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]structs.LineItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Session) ItemCount() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, it := range s.items {
		count += it.Quantity
	}
	return count
}

func (s *Session) Subtotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rules.Subtotal(s.items)
}

func (s *Session) DeliveryFee() decimal.Decimal {
	return s.rules.DeliveryFee(s.Subtotal())
}

func (s *Session) Tax() decimal.Decimal {
	return s.rules.Tax(s.Subtotal())
}

func (s *Session) Total(discount decimal.Decimal) decimal.Decimal {
	return s.rules.Total(s.Subtotal(), discount)
}

// Summary snapshots every derived amount at once, with display strings for
// the rendering layer.
func (s *Session) Summary(discount decimal.Decimal) structs.CartSummary {
	subtotal := s.Subtotal()
	fee := s.rules.DeliveryFee(subtotal)
	tax := s.rules.Tax(subtotal)
	total := s.rules.Total(subtotal, discount)
	digits := int(s.rules.Digits)

	return structs.CartSummary{
		ItemCount:   s.ItemCount(),
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Discount:    discount,
		Total:       total,
		Display: structs.SummaryDisplay{
			Subtotal:    utils.FCurrency(subtotal, digits),
			DeliveryFee: utils.FCurrency(fee, digits),
			Tax:         utils.FCurrency(tax, digits),
			Total:       utils.FCurrency(total, digits),
		},
	}
}

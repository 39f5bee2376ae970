package orders

import (
	"context"

	"flavourfleet/internal/cart"
	"flavourfleet/internal/storeapi"
	"flavourfleet/internal/structs"
	"flavourfleet/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		Logger logger.Logger
		Store  storeapi.Client
	}

	Service interface {
		Place(ctx context.Context, sess *cart.Session, req structs.PlaceOrder) (structs.Order, error)
		List(ctx context.Context, session string) ([]structs.Order, error)
		Get(ctx context.Context, session, id string) (structs.Order, error)
	}

	service struct {
		logger logger.Logger
		store  storeapi.Client
	}
)

func New(p Params) Service {
	return &service{
		logger: p.Logger,
		store:  p.Store,
	}
}

// Place submits the session's cart as an order. The promo code, if any, is
// re-validated against the store here; the browser's idea of the discount is
// never trusted. The store empties the cart on success, so the session is
// re-synced before returning.
func (s *service) Place(ctx context.Context, sess *cart.Session, req structs.PlaceOrder) (structs.Order, error) {
	if err := sess.Sync(ctx); err != nil {
		return structs.Order{}, err
	}
	if sess.ItemCount() == 0 {
		return structs.Order{}, structs.ErrEmptyCart
	}

	discount := decimal.Zero
	if req.PromoCode != "" {
		promo, err := sess.ApplyPromo(ctx, req.PromoCode)
		if err != nil {
			return structs.Order{}, err
		}
		discount = promo.Amount
	}

	order, err := s.store.PlaceOrder(ctx, sess.ID(), structs.PlaceOrderUpstream{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		Zip:           req.Zip,
		Instructions:  req.Instructions,
		PaymentMethod: req.PaymentMethod,
		Discount:      discount,
	})
	if err != nil {
		s.logger.Error(ctx, "->store.PlaceOrder", zap.Error(err))
		return structs.Order{}, err
	}

	if err := sess.Sync(ctx); err != nil {
		s.logger.Warn(ctx, "cart re-sync after order failed", zap.Error(err))
	}
	return order, nil
}

func (s *service) List(ctx context.Context, session string) ([]structs.Order, error) {
	orders, err := s.store.ListOrders(ctx, session)
	if err != nil {
		s.logger.Error(ctx, "->store.ListOrders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *service) Get(ctx context.Context, session, id string) (structs.Order, error) {
	order, err := s.store.GetOrder(ctx, session, id)
	if err != nil {
		s.logger.Error(ctx, "->store.GetOrder", zap.Error(err))
		return structs.Order{}, err
	}
	return order, nil
}

package internal

import (
	"flavourfleet/internal/cart"
	"flavourfleet/internal/offers"
	"flavourfleet/internal/orders"
	"flavourfleet/internal/pricing"
	"flavourfleet/internal/storeapi"

	"go.uber.org/fx"
)

var Module = fx.Options(
	storeapi.Module,
	pricing.Module,
	cart.Module,
	offers.Module,
	orders.Module,
)

package handlers

import (
	"flavourfleet/apps/storefront/handlers/cart"
	"flavourfleet/apps/storefront/handlers/middleware"
	"flavourfleet/apps/storefront/handlers/offers"
	"flavourfleet/apps/storefront/handlers/orders"

	"go.uber.org/fx"
)

var Module = fx.Options(
	middleware.Module,
	cart.Module,
	offers.Module,
	orders.Module,
)

package storefront

import (
	"flavourfleet/apps/storefront/handlers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	handlers.Module,
)

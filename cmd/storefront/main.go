package main

import (
	"flavourfleet/apps/storefront"
	"flavourfleet/cmd/storefront/router"
	"flavourfleet/internal"
	"flavourfleet/pkg"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		storefront.Module,
		router.Module,
		pkg.Module,
		internal.Module,
	).Run()
}

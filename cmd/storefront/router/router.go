package router

import (
	"context"
	"net/http"

	"flavourfleet/apps/storefront/handlers/cart"
	"flavourfleet/apps/storefront/handlers/middleware"
	"flavourfleet/apps/storefront/handlers/offers"
	"flavourfleet/apps/storefront/handlers/orders"
	"flavourfleet/pkg/config"
	"flavourfleet/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Invoke(
		NewRouter,
	),
)

type Params struct {
	fx.In

	middleware.Middleware
	Lifecycle fx.Lifecycle
	Config    config.IConfig
	Logger    logger.Logger
	Cart      cart.Handler
	Offers    offers.Handler
	Orders    orders.Handler
}

func NewRouter(params Params) {
	r := gin.New()
	baseUrl := "/api"
	api := r.Group(baseUrl)
	api.Use(params.Ctx(), params.Session(), gin.Logger(), gin.Recovery())

	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("", params.Cart.GetCart)
		cartGroup.POST("/add", params.Cart.AddItem)
		cartGroup.PUT("/update", params.Cart.UpdateQuantity)
		cartGroup.DELETE("/remove/:id", params.Cart.RemoveItem)
		cartGroup.DELETE("/clear", params.Cart.ClearCart)
	}
	offersGroup := api.Group("/offers")
	{
		offersGroup.GET("", params.Offers.ListOffers)
		offersGroup.POST("/validate", params.Offers.ValidatePromo)
	}
	ordersGroup := api.Group("/orders")
	{
		ordersGroup.POST("", params.Orders.PlaceOrder)
		ordersGroup.GET("", params.Orders.ListOrders)
		ordersGroup.GET("/:id", params.Orders.GetOrder)
	}

	server := http.Server{
		Addr: params.Config.GetString("server.port"),
		Handler: cors.New(cors.Options{
			AllowedHeaders:   []string{"*"},
			AllowedOrigins:   params.Config.GetStringSlice("cors.allowed_origins"),
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}).Handler(r),
	}

	params.Lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Starting storefront")
				go func() {
					if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						params.Logger.Error(ctx, "Err on ListenAndServe", zap.Error(err))
					}
				}()

				params.Logger.Info(ctx, "Storefront listening", zap.String("port", params.Config.GetString("server.port")))
				return nil
			},
			OnStop: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Storefront stopped")
				return server.Shutdown(ctx)
			},
		},
	)
}

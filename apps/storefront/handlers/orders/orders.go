package orders

import (
	"errors"
	"net/http"

	"flavourfleet/apps/storefront/handlers/middleware"
	"flavourfleet/internal/cart"
	"flavourfleet/internal/orders"
	"flavourfleet/internal/responses"
	"flavourfleet/internal/structs"
	"flavourfleet/pkg/logger"
	"flavourfleet/pkg/reply"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		PlaceOrder(c *gin.Context)
		ListOrders(c *gin.Context)
		GetOrder(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger       logger.Logger
		Sessions     *cart.Manager
		OrderService orders.Service
	}

	handler struct {
		logger       logger.Logger
		sessions     *cart.Manager
		orderService orders.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:       p.Logger,
		sessions:     p.Sessions,
		orderService: p.OrderService,
	}
}

func (h *handler) PlaceOrder(c *gin.Context) {
	var (
		response structs.OrderResponse
		request  structs.PlaceOrder
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response.Message = responses.BadRequest.Message
		return
	}

	sess := h.sessions.Session(middleware.SessionID(c))
	order, err := h.orderService.Place(ctx, sess, request)
	if err != nil {
		if errors.Is(err, structs.ErrEmptyCart) {
			response.Message = "Cart is empty"
			return
		}
		h.logger.Warn(ctx, " err on h.orderService.Place", zap.Error(err))
		response.Message = responses.FailureMessage(err)
		return
	}

	response = structs.OrderResponse{Success: true, Message: "Order placed successfully!", Order: &order}
}

func (h *handler) ListOrders(c *gin.Context) {
	var (
		response structs.OrdersResponse
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	list, err := h.orderService.List(ctx, middleware.SessionID(c))
	if err != nil {
		h.logger.Error(ctx, " err on h.orderService.List", zap.Error(err))
		response.Message = responses.FailureMessage(err)
		return
	}

	response = structs.OrdersResponse{Success: true, Orders: list}
}

func (h *handler) GetOrder(c *gin.Context) {
	var (
		response structs.OrderResponse
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	order, err := h.orderService.Get(ctx, middleware.SessionID(c), id)
	if err != nil {
		h.logger.Error(ctx, " err on h.orderService.Get", zap.Error(err))
		response.Message = responses.FailureMessage(err)
		return
	}

	response = structs.OrderResponse{Success: true, Order: &order}
}

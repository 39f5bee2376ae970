package cart

import (
	"net/http"

	"flavourfleet/apps/storefront/handlers/middleware"
	"flavourfleet/internal/cart"
	"flavourfleet/internal/responses"
	"flavourfleet/internal/structs"
	"flavourfleet/pkg/logger"
	"flavourfleet/pkg/reply"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		GetCart(c *gin.Context)
		AddItem(c *gin.Context)
		UpdateQuantity(c *gin.Context)
		RemoveItem(c *gin.Context)
		ClearCart(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger   logger.Logger
		Sessions *cart.Manager
	}

	handler struct {
		logger   logger.Logger
		sessions *cart.Manager
	}
)

func New(p Params) Handler {
	return &handler{
		logger:   p.Logger,
		sessions: p.Sessions,
	}
}

func (h *handler) session(c *gin.Context) *cart.Session {
	return h.sessions.Session(middleware.SessionID(c))
}

func (h *handler) GetCart(c *gin.Context) {
	var (
		response structs.CartResponse
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	sess := h.session(c)
	if err := sess.Sync(ctx); err != nil {
		h.logger.Warn(ctx, " err on sess.Sync", zap.Error(err))
		response.Message = responses.FailureMessage(err)
		return
	}

	summary := sess.Summary(decimal.Zero)
	response = structs.CartResponse{Success: true, Items: sess.Items(), Summary: &summary}
}

func (h *handler) AddItem(c *gin.Context) {
	var (
		response structs.CartResponse
		request  structs.AddItem
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response.Message = responses.BadRequest.Message
		return
	}

	sess := h.session(c)
	message, err := sess.Add(ctx, request)
	if err != nil {
		h.logger.Warn(ctx, " err on sess.Add", zap.Error(err))
		response.Message = responses.FailureMessage(err)
		return
	}

	summary := sess.Summary(decimal.Zero)
	response = structs.CartResponse{Success: true, Message: message, Items: sess.Items(), Summary: &summary}
}

func (h *handler) UpdateQuantity(c *gin.Context) {
	var (
		response structs.CartResponse
		request  structs.UpdateQuantity
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	err := c.ShouldBindJSON(&request)
	if err != nil {
		h.logger.Warn(ctx, " error parse request", zap.Error(err))
		response.Message = responses.BadRequest.Message
		return
	}

	sess := h.session(c)
	// quantity arrives as number or numeric string depending on the client
	if err := sess.SetQuantity(ctx, request.ID, cast.ToInt64(request.Quantity)); err != nil {
		h.logger.Warn(ctx, " err on sess.SetQuantity", zap.Error(err))
		response.Message = responses.FailureMessage(err)
		return
	}

	summary := sess.Summary(decimal.Zero)
	response = structs.CartResponse{Success: true, Items: sess.Items(), Summary: &summary}
}

func (h *handler) RemoveItem(c *gin.Context) {
	var (
		response structs.CartResponse
		id       = c.Param("id")
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	sess := h.session(c)
	if err := sess.Remove(ctx, id); err != nil {
		h.logger.Warn(ctx, " err on sess.Remove", zap.Error(err))
		response.Message = responses.FailureMessage(err)
		return
	}

	summary := sess.Summary(decimal.Zero)
	response = structs.CartResponse{Success: true, Message: "Item removed", Items: sess.Items(), Summary: &summary}
}

func (h *handler) ClearCart(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	sess := h.session(c)
	if err := sess.Clear(ctx); err != nil {
		h.logger.Warn(ctx, " err on sess.Clear", zap.Error(err))
		response.Message = responses.FailureMessage(err)
		return
	}

	response = responses.Success
	response.Message = "Cart cleared"
}

package offers

import (
	"net/http"

	"flavourfleet/apps/storefront/handlers/middleware"
	"flavourfleet/internal/cart"
	"flavourfleet/internal/offers"
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
		ListOffers(c *gin.Context)
		ValidatePromo(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger        logger.Logger
		Sessions      *cart.Manager
		OffersService offers.Service
	}

	handler struct {
		logger        logger.Logger
		sessions      *cart.Manager
		offersService offers.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:        p.Logger,
		sessions:      p.Sessions,
		offersService: p.OffersService,
	}
}

func (h *handler) ListOffers(c *gin.Context) {
	var (
		response structs.OffersResponse
		ctx      = c.Request.Context()
	)

	defer reply.Json(c.Writer, http.StatusOK, &response)

	list, err := h.offersService.List(ctx, middleware.SessionID(c))
	if err != nil {
		h.logger.Error(ctx, " err on h.offersService.List", zap.Error(err))
		response.Message = responses.FailureMessage(err)
		return
	}

	response = structs.OffersResponse{Success: true, Offers: list}
}

// ValidatePromo applies a promo code against the session's current cart.
// A rejected code answers success:false with the store's message; the
// caller must not apply any discount in that case.
func (h *handler) ValidatePromo(c *gin.Context) {
	var (
		response structs.PromoResponse
		request  structs.ValidatePromo
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
	promo, err := sess.ApplyPromo(ctx, request.Code)
	if err != nil {
		h.logger.Warn(ctx, " err on sess.ApplyPromo", zap.Error(err))
		response.Message = responses.FailureMessage(err)
		return
	}

	summary := sess.Summary(promo.Amount)
	response = structs.PromoResponse{Success: true, Message: promo.Label, Promo: &promo, Summary: &summary}
}

package middleware

import (
	"flavourfleet/pkg/config"
	"flavourfleet/pkg/logger"
	"flavourfleet/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

var (
	Module = fx.Provide(NewMiddleware)
)

const sessionKey = "session_id"

// Sessions outlive a browser restart but not a month of silence.
const cookieMaxAge = 30 * 24 * 60 * 60

type (
	Middleware interface {
		Ctx() gin.HandlerFunc
		Session() gin.HandlerFunc
	}

	Params struct {
		fx.In

		Logger logger.Logger
		Config config.IConfig
	}

	mw struct {
		logger     logger.Logger
		cookieName string
	}
)

func NewMiddleware(params Params) Middleware {
	return &mw{
		logger:     params.Logger,
		cookieName: params.Config.GetString("session.cookie_name"),
	}
}

func (m *mw) Ctx() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := m.logger.Context(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Request-Id", utils.GenKSUID())
		c.Next()
	}
}

// Session pins a session id to the request: the browser's cookie when
// present, a fresh guest id otherwise. The same id is forwarded to the
// remote store, which keys the cart by it.
func (m *mw) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(m.cookieName)
		if err != nil || id == "" {
			id = "guest_" + uuid.NewString()
			c.SetCookie(m.cookieName, id, cookieMaxAge, "/", "", false, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

// SessionID returns the session id pinned by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

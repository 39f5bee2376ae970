package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"flavourfleet/internal/structs"
	"flavourfleet/pkg/config"
	"flavourfleet/pkg/logger"
	"flavourfleet/pkg/utils"

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
		Config config.IConfig
	}

	// Client talks to the remote cart store. The store is the server of
	// record: every mutation returns the full authoritative item list.
	// Failures split in two: *structs.RejectionError for success:false
	// replies, structs.ErrStoreUnreachable for everything transport-level.
	Client interface {
		FetchCart(ctx context.Context, session string) ([]structs.LineItem, error)
		AddItem(ctx context.Context, session string, item structs.AddItem) ([]structs.LineItem, string, error)
		UpdateQuantity(ctx context.Context, session, id string, quantity int64) ([]structs.LineItem, error)
		RemoveItem(ctx context.Context, session, id string) ([]structs.LineItem, error)
		ClearCart(ctx context.Context, session string) error
		ValidatePromo(ctx context.Context, session, code string) (structs.PromoResult, error)
		ListOffers(ctx context.Context, session string) ([]structs.Offer, error)
		PlaceOrder(ctx context.Context, session string, req structs.PlaceOrderUpstream) (structs.Order, error)
		ListOrders(ctx context.Context, session string) ([]structs.Order, error)
		GetOrder(ctx context.Context, session, id string) (structs.Order, error)
	}

	client struct {
		logger     logger.Logger
		baseURL    string
		cookieName string
		http       *http.Client
	}
)

func New(p Params) Client {
	timeout := p.Config.GetDuration("store.timeout")
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &client{
		logger:     p.Logger,
		baseURL:    strings.TrimRight(p.Config.GetString("store.base_url"), "/"),
		cookieName: p.Config.GetString("session.cookie_name"),
		http:       &http.Client{Timeout: timeout},
	}
}

func (c *client) do(ctx context.Context, method, path, session string, body, out interface{}) error {
	ctx, capture := c.logger.ContextWithCapture(ctx, "store "+method+" "+path)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(utils.Marshal(body))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if session != "" {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: session})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "store request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", structs.ErrStoreUnreachable, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	capture(zap.Int("status", resp.StatusCode), zap.Int("bytes", len(raw)))

	// The store replies JSON on every code, rejections included. Only an
	// undecodable body counts as unreachable.
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Warn(ctx, "malformed store response",
			zap.String("path", path), zap.Int("status", resp.StatusCode), zap.Error(err))
		return fmt.Errorf("%w: malformed response", structs.ErrStoreUnreachable)
	}
	return nil
}

func rejection(message string) error {
	if message == "" {
		message = "request rejected"
	}
	return &structs.RejectionError{Message: message}
}

func (c *client) FetchCart(ctx context.Context, session string) ([]structs.LineItem, error) {
	var env structs.CartEnvelope
	if err := c.do(ctx, http.MethodGet, "/cart", session, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, rejection(env.Message)
	}
	return env.Items, nil
}

func (c *client) AddItem(ctx context.Context, session string, item structs.AddItem) ([]structs.LineItem, string, error) {
	var env structs.CartEnvelope
	if err := c.do(ctx, http.MethodPost, "/cart/add", session, item, &env); err != nil {
		return nil, "", err
	}
	if !env.Success {
		return nil, "", rejection(env.Message)
	}
	return env.Items, env.Message, nil
}

func (c *client) UpdateQuantity(ctx context.Context, session, id string, quantity int64) ([]structs.LineItem, error) {
	body := map[string]interface{}{"id": id, "quantity": quantity}

	var env structs.CartEnvelope
	if err := c.do(ctx, http.MethodPut, "/cart/update", session, body, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, rejection(env.Message)
	}
	return env.Items, nil
}

func (c *client) RemoveItem(ctx context.Context, session, id string) ([]structs.LineItem, error) {
	var env structs.CartEnvelope
	if err := c.do(ctx, http.MethodDelete, "/cart/remove/"+id, session, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, rejection(env.Message)
	}
	return env.Items, nil
}

func (c *client) ClearCart(ctx context.Context, session string) error {
	var env structs.CartEnvelope
	if err := c.do(ctx, http.MethodDelete, "/cart/clear", session, nil, &env); err != nil {
		return err
	}
	if !env.Success {
		return rejection(env.Message)
	}
	return nil
}

func (c *client) ValidatePromo(ctx context.Context, session, code string) (structs.PromoResult, error) {
	var env structs.PromoEnvelope
	err := c.do(ctx, http.MethodPost, "/offers/validate", session, structs.ValidatePromo{Code: code}, &env)
	if err != nil {
		return structs.PromoResult{}, err
	}
	if !env.Success {
		return structs.PromoResult{}, rejection(env.Message)
	}

	dtype, err := structs.NormalizeDiscountType(env.DiscountType)
	if err != nil {
		return structs.PromoResult{}, rejection(err.Error())
	}

	label := env.Label
	if label == "" {
		label = env.Message
	}

	return structs.PromoResult{
		Code:   env.Code,
		Type:   dtype,
		Value:  env.DiscountValue,
		Amount: env.DiscountAmount,
		Label:  label,
	}, nil
}

func (c *client) ListOffers(ctx context.Context, session string) ([]structs.Offer, error) {
	var env structs.OffersEnvelope
	if err := c.do(ctx, http.MethodGet, "/offers", session, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, rejection(env.Message)
	}
	return env.Offers, nil
}

func (c *client) PlaceOrder(ctx context.Context, session string, req structs.PlaceOrderUpstream) (structs.Order, error) {
	var env structs.OrderEnvelope
	if err := c.do(ctx, http.MethodPost, "/orders", session, req, &env); err != nil {
		return structs.Order{}, err
	}
	if !env.Success {
		return structs.Order{}, rejection(env.Message)
	}
	return env.Order, nil
}

func (c *client) ListOrders(ctx context.Context, session string) ([]structs.Order, error) {
	var env structs.OrdersEnvelope
	if err := c.do(ctx, http.MethodGet, "/orders", session, nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, rejection(env.Message)
	}
	return env.Orders, nil
}

func (c *client) GetOrder(ctx context.Context, session, id string) (structs.Order, error) {
	var env structs.OrderEnvelope
	if err := c.do(ctx, http.MethodGet, "/orders/"+id, session, nil, &env); err != nil {
		return structs.Order{}, err
	}
	if !env.Success {
		return structs.Order{}, rejection(env.Message)
	}
	return env.Order, nil
}

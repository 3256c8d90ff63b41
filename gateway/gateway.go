package gateway

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	backendx "github.com/greennext/shopping-gateway/gateway/backend"
	contractx "github.com/greennext/shopping-gateway/gateway/contract"
)

// userCurrency is fixed: the checkout backend is the price authority and the
// gateway orders in USD only.
const userCurrency = "USD"

const defaultCallTimeout = 10 * time.Second

type Config struct {
	// ImageBaseURL, when set, is prefixed onto relative product picture
	// paths at shaping time.
	ImageBaseURL string `envconfig:"IMAGE_BASE_URL"`
}

// Gateway exposes the four shopping operations. It holds no cross-call
// state: every operation dials its own backend adapter and releases it
// before returning.
type Gateway struct {
	cfg         Config
	callTimeout time.Duration
	log         zerolog.Logger

	dialCatalog  func() (contractx.Catalog, error)
	dialCart     func() (contractx.Cart, error)
	dialCheckout func() (contractx.Checkout, error)
}

type Option func(*Gateway)

// WithCatalogDialer replaces the catalog adapter factory. Used by tests.
func WithCatalogDialer(dial func() (contractx.Catalog, error)) Option {
	return func(g *Gateway) {
		if dial != nil {
			g.dialCatalog = dial
		}
	}
}

func WithCartDialer(dial func() (contractx.Cart, error)) Option {
	return func(g *Gateway) {
		if dial != nil {
			g.dialCart = dial
		}
	}
}

func WithCheckoutDialer(dial func() (contractx.Checkout, error)) Option {
	return func(g *Gateway) {
		if dial != nil {
			g.dialCheckout = dial
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Gateway) {
		g.log = logger
	}
}

func New(cfg Config, backends backendx.Config, opts ...Option) *Gateway {
	timeout := backends.Timeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}

	gw := &Gateway{
		cfg:         cfg,
		callTimeout: timeout,
		log:         log.Logger,
		dialCatalog: func() (contractx.Catalog, error) {
			return backendx.DialCatalog(backends)
		},
		dialCart: func() (contractx.Cart, error) {
			return backendx.DialCart(backends)
		},
		dialCheckout: func() (contractx.Checkout, error) {
			return backendx.DialCheckout(backends)
		},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(gw)
		}
	}
	return gw
}

// opContext bounds one backend round trip. A deadline hit surfaces from the
// adapter as a BackendError.
func (g *Gateway) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, g.callTimeout)
}

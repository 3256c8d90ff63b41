package backend

import "time"

// Config holds the three backend endpoints, resolved once at startup. The
// env names and defaults match the upstream deployment.
type Config struct {
	ProductCatalogAddr string        `envconfig:"PRODUCT_CATALOG_SERVICE" default:"productcatalogservice:3550"`
	CartAddr           string        `envconfig:"CART_SERVICE" default:"cartservice:7070"`
	CheckoutAddr       string        `envconfig:"CHECKOUT_SERVICE" default:"checkoutservice:5050"`
	Timeout            time.Duration `envconfig:"BACKEND_TIMEOUT" default:"10s"`
}

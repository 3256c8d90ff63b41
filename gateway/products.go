package gateway

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/greennext/shopping-gateway/gateway/contract"
	moneyx "github.com/greennext/shopping-gateway/pkg/money"
)

// ProductView is a display-ready product: one combined price string and an
// absolute picture URL instead of the raw wire fields.
type ProductView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Picture     string   `json:"picture"`
	Price       string   `json:"price"`
	Categories  []string `json:"categories"`
}

type SearchProductsInput struct {
	Query string
}

// SearchProducts returns every catalog product matching the query, shaped
// for display. An empty result is a success, not a failure.
func (g *Gateway) SearchProducts(ctx context.Context, in SearchProductsInput) ([]ProductView, error) {
	g.log.Debug().Str("op", "search_products").Str("query", in.Query).Msg("searching catalog")

	client, err := g.dialCatalog()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	ctx, cancel := g.opContext(ctx)
	defer cancel()

	products, err := client.SearchProducts(ctx, in.Query)
	if err != nil {
		g.log.Warn().Str("op", "search_products").Err(err).Msg("catalog call failed")
		return nil, err
	}
	return g.shapeProducts("SearchProducts", products)
}

// ListProducts returns the full catalog snapshot at call time.
func (g *Gateway) ListProducts(ctx context.Context) ([]ProductView, error) {
	g.log.Debug().Str("op", "list_products").Msg("listing catalog")

	client, err := g.dialCatalog()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	ctx, cancel := g.opContext(ctx)
	defer cancel()

	products, err := client.ListProducts(ctx)
	if err != nil {
		g.log.Warn().Str("op", "list_products").Err(err).Msg("catalog call failed")
		return nil, err
	}
	return g.shapeProducts("ListProducts", products)
}

// shapeProducts is all-or-nothing: one malformed product fails the whole
// call rather than returning a partially shaped sequence.
func (g *Gateway) shapeProducts(op string, products []contractx.Product) ([]ProductView, error) {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		if !p.PriceUSD.IsValid() {
			return nil, &contractx.BackendError{
				Backend: "catalog",
				Op:      op,
				Err:     fmt.Errorf("product %s has a malformed price", p.ID),
			}
		}
		views = append(views, ProductView{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Picture:     absolutePictureURL(g.cfg.ImageBaseURL, p.Picture),
			Price:       moneyx.Format(p.PriceUSD),
			Categories:  p.Categories,
		})
	}
	return views, nil
}

// absolutePictureURL prefixes relative picture paths with the configured
// base. Already-absolute references and an unset base pass through
// unchanged; a reference is never double-prefixed.
func absolutePictureURL(base, picture string) string {
	if base == "" || picture == "" {
		return picture
	}
	if strings.HasPrefix(picture, "http://") || strings.HasPrefix(picture, "https://") {
		return picture
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(picture, "/")
}

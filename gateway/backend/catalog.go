package backend

import (
	"context"

	contractx "github.com/greennext/shopping-gateway/gateway/contract"
)

const (
	backendCatalog = "catalog"

	rpcSearchProducts = "/hipstershop.ProductCatalogService/SearchProducts"
	rpcListProducts   = "/hipstershop.ProductCatalogService/ListProducts"
)

// CatalogClient is a short-lived adapter for the product catalog backend.
type CatalogClient struct {
	conn *conn
}

var _ contractx.Catalog = (*CatalogClient)(nil)

func DialCatalog(cfg Config) (*CatalogClient, error) {
	c, err := dial(backendCatalog, cfg.ProductCatalogAddr, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &CatalogClient{conn: c}, nil
}

type searchProductsRequest struct {
	Query string `json:"query"`
}

type searchProductsResponse struct {
	Results []contractx.Product `json:"results"`
}

type listProductsResponse struct {
	Products []contractx.Product `json:"products"`
}

// SearchProducts returns all products matching the query. Zero matches is a
// valid outcome and yields an empty slice, not an error.
func (c *CatalogClient) SearchProducts(ctx context.Context, query string) ([]contractx.Product, error) {
	var resp searchProductsResponse
	if err := c.conn.call(ctx, "SearchProducts", rpcSearchProducts, searchProductsRequest{Query: query}, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *CatalogClient) ListProducts(ctx context.Context) ([]contractx.Product, error) {
	var resp listProductsResponse
	if err := c.conn.call(ctx, "ListProducts", rpcListProducts, struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *CatalogClient) Close() error {
	return c.conn.Close()
}

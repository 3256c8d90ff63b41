package tool

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	gatewayx "github.com/greennext/shopping-gateway/gateway"
	contractx "github.com/greennext/shopping-gateway/gateway/contract"
)

const (
	ToolSearchProducts = "search_products"
	ToolListProducts   = "list_products"
	ToolAddItem        = "add_item"
	ToolPlaceOrder     = "place_order"
)

// Executor runs one tool call with loosely-typed arguments as supplied by
// the orchestrator.
type Executor func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error)

// Build returns the tool surface and an executor bound to the gateway.
func Build(gw *gatewayx.Gateway) ([]*schema.ToolInfo, Executor) {
	return Infos(), NewExecutor(gw)
}

func NewExecutor(gw *gatewayx.Gateway) Executor {
	return func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
		switch tool {
		case ToolSearchProducts:
			return executeSearchProducts(ctx, gw, args)
		case ToolListProducts:
			return executeListProducts(ctx, gw)
		case ToolAddItem:
			return executeAddItem(ctx, gw, args)
		case ToolPlaceOrder:
			return executePlaceOrder(ctx, gw, args)
		default:
			return contractx.ToolResult{
				Tool:  tool,
				Error: fmt.Sprintf("tool=%s is not part of the shopping gateway", tool),
			}, nil
		}
	}
}

func Infos() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name: ToolSearchProducts,
			Desc: "Search the product catalog by free-text query and return display-ready products.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {Type: schema.String, Desc: "Product name or free-text search query", Required: true},
			}),
		},
		{
			Name: ToolListProducts,
			Desc: "List the full product catalog.",
		},
		{
			Name: ToolAddItem,
			Desc: "Add a product to the user's cart. Quantity defaults to 1.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"user_id":    {Type: schema.String, Desc: "Opaque user identifier, e.g. an email address", Required: true},
				"product_id": {Type: schema.String, Desc: "Product id from a prior search or list result", Required: true},
				"quantity":   {Type: schema.Integer, Desc: "Positive item count, default 1"},
			}),
		},
		{
			Name: ToolPlaceOrder,
			Desc: "Place the order for everything in the user's cart. All fields are required; orders are charged in USD.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"user_id":                      {Type: schema.String, Desc: "Opaque user identifier", Required: true},
				"email":                        {Type: schema.String, Desc: "Email address for the order confirmation", Required: true},
				"street_address":               {Type: schema.String, Desc: "Shipping street address", Required: true},
				"city":                         {Type: schema.String, Desc: "Shipping city", Required: true},
				"state":                        {Type: schema.String, Desc: "Shipping state or province", Required: true},
				"country":                      {Type: schema.String, Desc: "Shipping country", Required: true},
				"zip_code":                     {Type: schema.String, Desc: "Shipping postal code", Required: true},
				"credit_card_number":           {Type: schema.String, Desc: "16 card digits with no separators", Required: true},
				"credit_card_cvv":              {Type: schema.String, Desc: "3-digit card verification value", Required: true},
				"credit_card_expiration_year":  {Type: schema.String, Desc: "4-digit expiration year", Required: true},
				"credit_card_expiration_month": {Type: schema.String, Desc: "2-digit expiration month, 01-12", Required: true},
			}),
		},
	}
}

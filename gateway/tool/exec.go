package tool

import (
	"context"
	"errors"
	"fmt"

	gatewayx "github.com/greennext/shopping-gateway/gateway"
	contractx "github.com/greennext/shopping-gateway/gateway/contract"
)

// Caller-input problems (validation, incomplete order) come back in-band so
// the orchestrator can re-prompt in its own words. Backend failures are
// returned as Go errors and never rewritten into results.

func executeSearchProducts(ctx context.Context, gw *gatewayx.Gateway, args map[string]any) (contractx.ToolResult, error) {
	query, err := stringArg(args, "query")
	if err != nil {
		return contractx.ToolResult{Tool: ToolSearchProducts, Error: err.Error()}, nil
	}

	products, err := gw.SearchProducts(ctx, gatewayx.SearchProductsInput{Query: query})
	if err != nil {
		return failure(ToolSearchProducts, err)
	}
	return contractx.ToolResult{
		Tool:   ToolSearchProducts,
		Result: map[string]any{"results": products},
	}, nil
}

func executeListProducts(ctx context.Context, gw *gatewayx.Gateway) (contractx.ToolResult, error) {
	products, err := gw.ListProducts(ctx)
	if err != nil {
		return failure(ToolListProducts, err)
	}
	return contractx.ToolResult{
		Tool:   ToolListProducts,
		Result: map[string]any{"results": products},
	}, nil
}

func executeAddItem(ctx context.Context, gw *gatewayx.Gateway, args map[string]any) (contractx.ToolResult, error) {
	userID, err := optionalStringArg(args, "user_id")
	if err != nil {
		return contractx.ToolResult{Tool: ToolAddItem, Error: err.Error()}, nil
	}
	productID, err := optionalStringArg(args, "product_id")
	if err != nil {
		return contractx.ToolResult{Tool: ToolAddItem, Error: err.Error()}, nil
	}
	quantity, err := optionalIntArg(args, "quantity")
	if err != nil {
		return contractx.ToolResult{Tool: ToolAddItem, Error: err.Error()}, nil
	}

	result, err := gw.AddItem(ctx, gatewayx.AddItemInput{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		return failure(ToolAddItem, err)
	}
	return contractx.ToolResult{Tool: ToolAddItem, Result: result}, nil
}

func executePlaceOrder(ctx context.Context, gw *gatewayx.Gateway, args map[string]any) (contractx.ToolResult, error) {
	fields := map[string]string{}
	for _, key := range []string{
		"user_id", "email", "street_address", "city", "state", "country", "zip_code",
		"credit_card_number", "credit_card_cvv", "credit_card_expiration_year", "credit_card_expiration_month",
	} {
		value, err := optionalStringArg(args, key)
		if err != nil {
			return contractx.ToolResult{Tool: ToolPlaceOrder, Error: err.Error()}, nil
		}
		fields[key] = value
	}

	confirmation, err := gw.PlaceOrder(ctx, gatewayx.PlaceOrderInput{
		UserID: fields["user_id"],
		Email:  fields["email"],
		Address: contractx.Address{
			StreetAddress: fields["street_address"],
			City:          fields["city"],
			State:         fields["state"],
			Country:       fields["country"],
			ZipCode:       fields["zip_code"],
		},
		CreditCard: contractx.CreditCard{
			Number:          fields["credit_card_number"],
			CVV:             fields["credit_card_cvv"],
			ExpirationYear:  fields["credit_card_expiration_year"],
			ExpirationMonth: fields["credit_card_expiration_month"],
		},
	})
	if err != nil {
		return failure(ToolPlaceOrder, err)
	}
	return contractx.ToolResult{Tool: ToolPlaceOrder, Result: confirmation}, nil
}

func failure(tool string, err error) (contractx.ToolResult, error) {
	var fieldErr *contractx.FieldError
	if errors.As(err, &fieldErr) {
		return contractx.ToolResult{
			Tool:  tool,
			Error: fmt.Sprintf("invalid argument %s: %s", fieldErr.Field, fieldErr.Reason),
		}, nil
	}

	var incomplete *contractx.IncompleteOrderError
	if errors.As(err, &incomplete) {
		return contractx.ToolResult{
			Tool:  tool,
			Error: incomplete.Error(),
		}, nil
	}

	// backend failures propagate as-is
	return contractx.ToolResult{Tool: tool}, err
}

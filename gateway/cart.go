package gateway

import (
	"context"
	"strings"

	contractx "github.com/greennext/shopping-gateway/gateway/contract"
	moneyx "github.com/greennext/shopping-gateway/pkg/money"
)

// AddItemInput uses a pointer quantity to distinguish "absent" from zero:
// absent defaults to 1, zero and negatives are rejected.
type AddItemInput struct {
	UserID    string
	ProductID string
	Quantity  *int32
}

type AddItemResult struct {
	Status    string `json:"status"`
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
	Price     string `json:"price,omitempty"`
}

// AddItem performs exactly one add attempt against the cart backend. It is
// not retried on failure.
func (g *Gateway) AddItem(ctx context.Context, in AddItemInput) (*AddItemResult, error) {
	userID := strings.TrimSpace(in.UserID)
	if userID == "" {
		return nil, &contractx.FieldError{Field: "user_id", Reason: "must not be empty"}
	}
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return nil, &contractx.FieldError{Field: "product_id", Reason: "must not be empty"}
	}

	quantity := int32(1)
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	if quantity < 1 {
		return nil, &contractx.FieldError{Field: "quantity", Reason: "must be a positive integer"}
	}

	g.log.Debug().Str("op", "add_item").Str("product_id", productID).Int32("quantity", quantity).Msg("adding cart item")

	client, err := g.dialCart()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	ctx, cancel := g.opContext(ctx)
	defer cancel()

	ack, err := client.AddItem(ctx, userID, productID, quantity)
	if err != nil {
		g.log.Warn().Str("op", "add_item").Err(err).Msg("cart call failed")
		return nil, err
	}

	result := &AddItemResult{
		Status:    "success",
		ProductID: productID,
		Quantity:  quantity,
	}
	if ack != nil && ack.Price != nil && ack.Price.IsValid() {
		result.Price = moneyx.Format(*ack.Price)
	}
	return result, nil
}

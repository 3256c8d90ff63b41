package backend

import (
	"context"

	contractx "github.com/greennext/shopping-gateway/gateway/contract"
)

const (
	backendCart = "cart"

	rpcAddItem = "/hipstershop.CartService/AddItem"
)

// CartClient is a short-lived adapter for the cart backend.
type CartClient struct {
	conn *conn
}

var _ contractx.Cart = (*CartClient)(nil)

func DialCart(cfg Config) (*CartClient, error) {
	c, err := dial(backendCart, cfg.CartAddr, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &CartClient{conn: c}, nil
}

type addItemRequest struct {
	UserID string             `json:"user_id"`
	Item   contractx.CartItem `json:"item"`
}

// AddItem performs exactly one add attempt. The adapter forwards quantity as
// given; defaulting an absent quantity is the gateway operation's job.
func (c *CartClient) AddItem(ctx context.Context, userID, productID string, quantity int32) (*contractx.CartAck, error) {
	req := addItemRequest{
		UserID: userID,
		Item: contractx.CartItem{
			ProductID: productID,
			Quantity:  quantity,
		},
	}
	var ack contractx.CartAck
	if err := c.conn.call(ctx, "AddItem", rpcAddItem, req, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

func (c *CartClient) Close() error {
	return c.conn.Close()
}

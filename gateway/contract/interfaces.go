package contract

import "context"

// Catalog, Cart, and Checkout are the per-backend adapter contracts. An
// implementation owns one connection for one gateway call: dial, a single
// RPC, Close. Close is idempotent and must be safe on every exit path.

type Catalog interface {
	SearchProducts(ctx context.Context, query string) ([]Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	Close() error
}

type Cart interface {
	AddItem(ctx context.Context, userID, productID string, quantity int32) (*CartAck, error)
	Close() error
}

type Checkout interface {
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*Order, error)
	Close() error
}

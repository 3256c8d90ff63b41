package contract

import (
	"github.com/greennext/shopping-gateway/pkg/money"
)

// Product mirrors the catalog wire shape. Picture is a relative path or an
// absolute URL as the backend stored it; shaping into a display form happens
// in the gateway layer.
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Picture     string      `json:"picture"`
	PriceUSD    money.Money `json:"price_usd"`
	Categories  []string    `json:"categories"`
}

type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

// CartAck is the cart backend's acknowledgement of an add. Price, when the
// backend echoes it, is the item's current catalog price.
type CartAck struct {
	Price *money.Money `json:"price,omitempty"`
}

type Address struct {
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	ZipCode       string `json:"zip_code"`
}

// CreditCard keeps all four fields as digit strings so exact-length
// validation happens before any numeric narrowing on the wire.
type CreditCard struct {
	Number          string `json:"credit_card_number"`
	CVV             string `json:"credit_card_cvv"`
	ExpirationYear  string `json:"credit_card_expiration_year"`
	ExpirationMonth string `json:"credit_card_expiration_month"`
}

type OrderItem struct {
	Item CartItem    `json:"item"`
	Cost money.Money `json:"cost"`
}

// Order is created atomically by the checkout backend; the gateway never
// assembles one from parts.
type Order struct {
	OrderID            string      `json:"order_id"`
	ShippingTrackingID string      `json:"shipping_tracking_id"`
	ShippingCost       money.Money `json:"shipping_cost"`
	ShippingAddress    Address     `json:"shipping_address"`
	Items              []OrderItem `json:"items"`
}

// PlaceOrderRequest carries fields already validated by the gateway; adapters
// copy them onto the wire without further checks.
type PlaceOrderRequest struct {
	UserID       string
	UserCurrency string
	Address      Address
	Email        string
	CreditCard   CreditCard
}

type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

package backend

import (
	"context"
	"fmt"
	"strconv"

	contractx "github.com/greennext/shopping-gateway/gateway/contract"
)

const (
	backendCheckout = "checkout"

	rpcPlaceOrder = "/hipstershop.CheckoutService/PlaceOrder"
)

// CheckoutClient is a short-lived adapter for the checkout backend.
type CheckoutClient struct {
	conn *conn
}

var _ contractx.Checkout = (*CheckoutClient)(nil)

func DialCheckout(cfg Config) (*CheckoutClient, error) {
	c, err := dial(backendCheckout, cfg.CheckoutAddr, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &CheckoutClient{conn: c}, nil
}

type placeOrderRequest struct {
	UserID       string            `json:"user_id"`
	UserCurrency string            `json:"user_currency"`
	Address      contractx.Address `json:"address"`
	Email        string            `json:"email"`
	CreditCard   wireCreditCard    `json:"credit_card"`
}

// wireCreditCard narrows the validated digit strings to the numeric wire
// fields the backend expects. The card number stays a string.
type wireCreditCard struct {
	Number          string `json:"credit_card_number"`
	CVV             int32  `json:"credit_card_cvv"`
	ExpirationYear  int32  `json:"credit_card_expiration_year"`
	ExpirationMonth int32  `json:"credit_card_expiration_month"`
}

type placeOrderResponse struct {
	Order *contractx.Order `json:"order"`
}

// PlaceOrder submits the complete order in one round trip. The backend
// creates the order atomically; there is no partial-order path here.
func (c *CheckoutClient) PlaceOrder(ctx context.Context, req contractx.PlaceOrderRequest) (*contractx.Order, error) {
	card, err := toWireCreditCard(req.CreditCard)
	if err != nil {
		return nil, &contractx.BackendError{Backend: backendCheckout, Op: "PlaceOrder", Err: err}
	}

	wireReq := placeOrderRequest{
		UserID:       req.UserID,
		UserCurrency: req.UserCurrency,
		Address:      req.Address,
		Email:        req.Email,
		CreditCard:   card,
	}

	var resp placeOrderResponse
	if err := c.conn.call(ctx, "PlaceOrder", rpcPlaceOrder, wireReq, &resp); err != nil {
		return nil, err
	}
	if resp.Order == nil {
		return nil, &contractx.BackendError{
			Backend: backendCheckout,
			Op:      "PlaceOrder",
			Err:     fmt.Errorf("response is missing the order"),
		}
	}
	return resp.Order, nil
}

func toWireCreditCard(card contractx.CreditCard) (wireCreditCard, error) {
	cvv, err := strconv.Atoi(card.CVV)
	if err != nil {
		return wireCreditCard{}, fmt.Errorf("cvv is not numeric: %w", err)
	}
	year, err := strconv.Atoi(card.ExpirationYear)
	if err != nil {
		return wireCreditCard{}, fmt.Errorf("expiration year is not numeric: %w", err)
	}
	month, err := strconv.Atoi(card.ExpirationMonth)
	if err != nil {
		return wireCreditCard{}, fmt.Errorf("expiration month is not numeric: %w", err)
	}
	return wireCreditCard{
		Number:          card.Number,
		CVV:             int32(cvv),
		ExpirationYear:  int32(year),
		ExpirationMonth: int32(month),
	}, nil
}

func (c *CheckoutClient) Close() error {
	return c.conn.Close()
}

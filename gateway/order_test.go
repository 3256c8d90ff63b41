package gateway

import (
	"context"
	"errors"
	"reflect"
	"testing"

	backendx "github.com/greennext/shopping-gateway/gateway/backend"
	contractx "github.com/greennext/shopping-gateway/gateway/contract"
	moneyx "github.com/greennext/shopping-gateway/pkg/money"
)

type fakeCheckout struct {
	order      *contractx.Order
	err        error
	placeCalls int
	closeCalls int
	gotRequest contractx.PlaceOrderRequest
}

func (f *fakeCheckout) PlaceOrder(_ context.Context, req contractx.PlaceOrderRequest) (*contractx.Order, error) {
	f.placeCalls++
	f.gotRequest = req
	return f.order, f.err
}

func (f *fakeCheckout) Close() error {
	f.closeCalls++
	return nil
}

func checkoutGateway(checkout *fakeCheckout, dials *int) *Gateway {
	return New(Config{}, backendx.Config{}, WithCheckoutDialer(func() (contractx.Checkout, error) {
		if dials != nil {
			*dials++
		}
		return checkout, nil
	}))
}

func completeOrderInput() PlaceOrderInput {
	return PlaceOrderInput{
		UserID: "a@b.com",
		Email:  "a@b.com",
		Address: contractx.Address{
			StreetAddress: "1600 Amphitheatre Pkwy",
			City:          "Mountain View",
			State:         "CA",
			Country:       "United States",
			ZipCode:       "94043",
		},
		CreditCard: contractx.CreditCard{
			Number:          "4432801561520454",
			CVV:             "672",
			ExpirationYear:  "2030",
			ExpirationMonth: "01",
		},
	}
}

func backendOrder() *contractx.Order {
	return &contractx.Order{
		OrderID:            "ord-1",
		ShippingTrackingID: "trk-1",
		ShippingCost:       moneyx.Money{CurrencyCode: "USD", Units: 4, Nanos: 990000000},
		ShippingAddress: contractx.Address{
			StreetAddress: "1600 Amphitheatre Pkwy",
			City:          "Mountain View",
			State:         "CA",
			Country:       "United States",
			ZipCode:       "94043",
		},
		Items: []contractx.OrderItem{
			{
				Item: contractx.CartItem{ProductID: "P1", Quantity: 2},
				Cost: moneyx.Money{CurrencyCode: "USD", Units: 19, Nanos: 990000000},
			},
			{
				Item: contractx.CartItem{ProductID: "P2", Quantity: 1},
				Cost: moneyx.Money{CurrencyCode: "USD", Units: 8},
			},
		},
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	t.Parallel()

	checkout := &fakeCheckout{order: backendOrder()}
	gw := checkoutGateway(checkout, nil)

	confirmation, err := gw.PlaceOrder(context.Background(), completeOrderInput())
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}

	if checkout.gotRequest.UserCurrency != "USD" {
		t.Fatalf("user currency = %q, want fixed USD", checkout.gotRequest.UserCurrency)
	}

	// re-shaping must not alter the stored numeric values
	if !reflect.DeepEqual(confirmation.Order, *backendOrder()) {
		t.Fatalf("order was altered during shaping: %+v", confirmation.Order)
	}
	if confirmation.ShippingCostDisplay != "4.99 USD" {
		t.Fatalf("shipping display = %q, want %q", confirmation.ShippingCostDisplay, "4.99 USD")
	}
	// 2*19.99 + 8.00 + 4.99 shipping
	if confirmation.TotalDisplay != "52.97 USD" {
		t.Fatalf("total display = %q, want %q", confirmation.TotalDisplay, "52.97 USD")
	}
	if checkout.closeCalls != 1 {
		t.Fatalf("adapter close calls = %d, want 1", checkout.closeCalls)
	}
}

func TestPlaceOrderIncompleteRejectedBeforeDial(t *testing.T) {
	t.Parallel()

	drop := []struct {
		name    string
		mutate  func(*PlaceOrderInput)
		missing string
	}{
		{"street", func(in *PlaceOrderInput) { in.Address.StreetAddress = "" }, "street_address"},
		{"city", func(in *PlaceOrderInput) { in.Address.City = "" }, "city"},
		{"country", func(in *PlaceOrderInput) { in.Address.Country = "  " }, "country"},
		{"card number", func(in *PlaceOrderInput) { in.CreditCard.Number = "" }, "credit_card_number"},
		{"email", func(in *PlaceOrderInput) { in.Email = "" }, "email"},
	}

	for _, tc := range drop {
		dials := 0
		checkout := &fakeCheckout{}
		gw := checkoutGateway(checkout, &dials)

		in := completeOrderInput()
		tc.mutate(&in)

		_, err := gw.PlaceOrder(context.Background(), in)
		var incomplete *contractx.IncompleteOrderError
		if !errors.As(err, &incomplete) {
			t.Fatalf("%s: error = %v, want *IncompleteOrderError", tc.name, err)
		}
		if !errors.Is(err, contractx.ErrIncompleteOrder) {
			t.Fatalf("%s: error does not match ErrIncompleteOrder", tc.name)
		}
		found := false
		for _, field := range incomplete.Missing {
			if field == tc.missing {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s: missing = %v, want to contain %q", tc.name, incomplete.Missing, tc.missing)
		}
		if dials != 0 || checkout.placeCalls != 0 {
			t.Fatalf("%s: dials=%d placeCalls=%d, want no backend activity", tc.name, dials, checkout.placeCalls)
		}
	}
}

func TestPlaceOrderReportsAllMissingFieldsAtOnce(t *testing.T) {
	t.Parallel()

	gw := checkoutGateway(&fakeCheckout{}, nil)

	_, err := gw.PlaceOrder(context.Background(), PlaceOrderInput{})
	var incomplete *contractx.IncompleteOrderError
	if !errors.As(err, &incomplete) {
		t.Fatalf("PlaceOrder() error = %v, want *IncompleteOrderError", err)
	}
	if len(incomplete.Missing) != 11 {
		t.Fatalf("missing %d fields, want all 11: %v", len(incomplete.Missing), incomplete.Missing)
	}
	if incomplete.Missing[0] != "user_id" {
		t.Fatalf("missing[0] = %q, want stable user_id first", incomplete.Missing[0])
	}
}

func TestPlaceOrderFieldValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*PlaceOrderInput)
		field  string
	}{
		{"short card", func(in *PlaceOrderInput) { in.CreditCard.Number = "1234" }, "credit_card_number"},
		{"card with separators", func(in *PlaceOrderInput) { in.CreditCard.Number = "4432-8015-6152-0454" }, "credit_card_number"},
		{"cvv too long", func(in *PlaceOrderInput) { in.CreditCard.CVV = "1234" }, "credit_card_cvv"},
		{"two digit year", func(in *PlaceOrderInput) { in.CreditCard.ExpirationYear = "30" }, "credit_card_expiration_year"},
		{"one digit month", func(in *PlaceOrderInput) { in.CreditCard.ExpirationMonth = "1" }, "credit_card_expiration_month"},
		{"month out of range", func(in *PlaceOrderInput) { in.CreditCard.ExpirationMonth = "13" }, "credit_card_expiration_month"},
		{"bad email", func(in *PlaceOrderInput) { in.Email = "not-an-email" }, "email"},
		{"bad us zip", func(in *PlaceOrderInput) { in.Address.ZipCode = "ABCDE" }, "zip_code"},
	}

	for _, tc := range cases {
		dials := 0
		gw := checkoutGateway(&fakeCheckout{}, &dials)

		in := completeOrderInput()
		tc.mutate(&in)

		_, err := gw.PlaceOrder(context.Background(), in)
		var fieldErr *contractx.FieldError
		if !errors.As(err, &fieldErr) {
			t.Fatalf("%s: error = %v, want *FieldError", tc.name, err)
		}
		if fieldErr.Field != tc.field {
			t.Fatalf("%s: field = %q, want %q", tc.name, fieldErr.Field, tc.field)
		}
		if dials != 0 {
			t.Fatalf("%s: dials = %d, want 0", tc.name, dials)
		}
	}
}

func TestPlaceOrderZipFallbackForUnknownCountry(t *testing.T) {
	t.Parallel()

	checkout := &fakeCheckout{order: backendOrder()}
	gw := checkoutGateway(checkout, nil)

	in := completeOrderInput()
	in.Address.Country = "Japan"
	in.Address.ZipCode = "1500001"

	if _, err := gw.PlaceOrder(context.Background(), in); err != nil {
		t.Fatalf("PlaceOrder() error = %v, want fallback to accept alphanumeric zip", err)
	}

	in.Address.ZipCode = "!!"
	if _, err := gw.PlaceOrder(context.Background(), in); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("PlaceOrder() error = %v, want ErrValidation for bad fallback zip", err)
	}
}

func TestPlaceOrderBackendFailurePropagates(t *testing.T) {
	t.Parallel()

	checkout := &fakeCheckout{err: &contractx.BackendError{Backend: "checkout", Op: "PlaceOrder", Err: errors.New("unavailable")}}
	gw := checkoutGateway(checkout, nil)

	_, err := gw.PlaceOrder(context.Background(), completeOrderInput())
	if !errors.Is(err, contractx.ErrBackendUnavailable) {
		t.Fatalf("PlaceOrder() error = %v, want ErrBackendUnavailable", err)
	}
	if checkout.closeCalls != 1 {
		t.Fatalf("adapter close calls = %d, want 1 on the error path", checkout.closeCalls)
	}
}

func TestPlaceOrderMalformedBackendMoney(t *testing.T) {
	t.Parallel()

	order := backendOrder()
	order.Items[0].Cost = moneyx.Money{Units: 19} // missing currency
	checkout := &fakeCheckout{order: order}
	gw := checkoutGateway(checkout, nil)

	_, err := gw.PlaceOrder(context.Background(), completeOrderInput())
	if !errors.Is(err, contractx.ErrBackendUnavailable) {
		t.Fatalf("PlaceOrder() error = %v, want ErrBackendUnavailable for malformed order money", err)
	}
}

package gateway

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	contractx "github.com/greennext/shopping-gateway/gateway/contract"
	moneyx "github.com/greennext/shopping-gateway/pkg/money"
)

type PlaceOrderInput struct {
	UserID     string
	Email      string
	Address    contractx.Address
	CreditCard contractx.CreditCard
}

// OrderConfirmation carries the backend-authoritative order untouched, plus
// display strings the orchestrator can read back to the user.
type OrderConfirmation struct {
	Order               contractx.Order `json:"order"`
	ShippingCostDisplay string          `json:"shipping_cost_display"`
	TotalDisplay        string          `json:"total_display"`
}

// PlaceOrder submits a complete order. Completeness is checked first and
// rejects the call outright, then field formats, then the single backend
// call. Shipping cost and tracking id come from the backend; the gateway
// never estimates them.
func (g *Gateway) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*OrderConfirmation, error) {
	if missing := missingOrderFields(in); len(missing) > 0 {
		return nil, &contractx.IncompleteOrderError{Missing: missing}
	}
	if err := validateOrderFields(in); err != nil {
		return nil, err
	}

	g.log.Debug().Str("op", "place_order").Str("city", in.Address.City).Msg("placing order")

	client, err := g.dialCheckout()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	ctx, cancel := g.opContext(ctx)
	defer cancel()

	order, err := client.PlaceOrder(ctx, contractx.PlaceOrderRequest{
		UserID:       strings.TrimSpace(in.UserID),
		UserCurrency: userCurrency,
		Address:      trimAddress(in.Address),
		Email:        strings.TrimSpace(in.Email),
		CreditCard:   in.CreditCard,
	})
	if err != nil {
		g.log.Warn().Str("op", "place_order").Err(err).Msg("checkout call failed")
		return nil, err
	}

	confirmation, err := shapeOrder(order)
	if err != nil {
		return nil, err
	}
	g.log.Info().Str("op", "place_order").Str("order_id", order.OrderID).Msg("order placed")
	return confirmation, nil
}

// shapeOrder totals the line items plus shipping without altering the stored
// numeric values.
func shapeOrder(order *contractx.Order) (*OrderConfirmation, error) {
	malformed := func(err error) error {
		return &contractx.BackendError{Backend: "checkout", Op: "PlaceOrder", Err: err}
	}

	if !order.ShippingCost.IsValid() {
		return nil, malformed(fmt.Errorf("shipping cost is a malformed money value"))
	}

	total := order.ShippingCost
	for _, item := range order.Items {
		if !item.Cost.IsValid() || item.Item.Quantity < 1 {
			return nil, malformed(fmt.Errorf("line item %s is malformed", item.Item.ProductID))
		}
		line := moneyx.MultiplySlow(item.Cost, uint32(item.Item.Quantity))
		sum, err := moneyx.Sum(total, line)
		if err != nil {
			return nil, malformed(err)
		}
		total = sum
	}

	return &OrderConfirmation{
		Order:               *order,
		ShippingCostDisplay: moneyx.Format(order.ShippingCost),
		TotalDisplay:        moneyx.Format(total),
	}, nil
}

// requiredOrderFields keeps the reporting order stable.
var requiredOrderFields = []struct {
	name  string
	value func(PlaceOrderInput) string
}{
	{"user_id", func(in PlaceOrderInput) string { return in.UserID }},
	{"email", func(in PlaceOrderInput) string { return in.Email }},
	{"street_address", func(in PlaceOrderInput) string { return in.Address.StreetAddress }},
	{"city", func(in PlaceOrderInput) string { return in.Address.City }},
	{"state", func(in PlaceOrderInput) string { return in.Address.State }},
	{"country", func(in PlaceOrderInput) string { return in.Address.Country }},
	{"zip_code", func(in PlaceOrderInput) string { return in.Address.ZipCode }},
	{"credit_card_number", func(in PlaceOrderInput) string { return in.CreditCard.Number }},
	{"credit_card_cvv", func(in PlaceOrderInput) string { return in.CreditCard.CVV }},
	{"credit_card_expiration_year", func(in PlaceOrderInput) string { return in.CreditCard.ExpirationYear }},
	{"credit_card_expiration_month", func(in PlaceOrderInput) string { return in.CreditCard.ExpirationMonth }},
}

func missingOrderFields(in PlaceOrderInput) []string {
	var missing []string
	for _, field := range requiredOrderFields {
		if strings.TrimSpace(field.value(in)) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

var (
	emailPattern      = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3}$`)
	expYearPattern    = regexp.MustCompile(`^\d{4}$`)
	expMonthPattern   = regexp.MustCompile(`^\d{2}$`)

	// Known country formats; anything else falls back to a plain
	// alphanumeric check.
	zipPatterns = map[string]*regexp.Regexp{
		"US": regexp.MustCompile(`^\d{5}(-\d{4})?$`),
		"CA": regexp.MustCompile(`^[A-Za-z]\d[A-Za-z] ?\d[A-Za-z]\d$`),
		"GB": regexp.MustCompile(`^[A-Za-z]{1,2}\d[A-Za-z\d]? ?\d[A-Za-z]{2}$`),
	}
	zipFallbackPattern = regexp.MustCompile(`^[A-Za-z0-9]{3,12}$`)

	countryAliases = map[string]string{
		"US":                       "US",
		"USA":                      "US",
		"UNITED STATES":            "US",
		"UNITED STATES OF AMERICA": "US",
		"CA":                       "CA",
		"CANADA":                   "CA",
		"GB":                       "GB",
		"UK":                       "GB",
		"UNITED KINGDOM":           "GB",
	}
)

func validateOrderFields(in PlaceOrderInput) error {
	if !emailPattern.MatchString(strings.TrimSpace(in.Email)) {
		return &contractx.FieldError{Field: "email", Reason: "must be an email address"}
	}
	if err := validateZipCode(in.Address.Country, in.Address.ZipCode); err != nil {
		return err
	}
	card := in.CreditCard
	if !cardNumberPattern.MatchString(card.Number) {
		return &contractx.FieldError{Field: "credit_card_number", Reason: "must be exactly 16 digits with no separators"}
	}
	if !cvvPattern.MatchString(card.CVV) {
		return &contractx.FieldError{Field: "credit_card_cvv", Reason: "must be exactly 3 digits"}
	}
	if !expYearPattern.MatchString(card.ExpirationYear) {
		return &contractx.FieldError{Field: "credit_card_expiration_year", Reason: "must be exactly 4 digits"}
	}
	if !expMonthPattern.MatchString(card.ExpirationMonth) {
		return &contractx.FieldError{Field: "credit_card_expiration_month", Reason: "must be exactly 2 digits"}
	}
	if month, err := strconv.Atoi(card.ExpirationMonth); err != nil || month < 1 || month > 12 {
		return &contractx.FieldError{Field: "credit_card_expiration_month", Reason: "must be between 01 and 12"}
	}
	return nil
}

func validateZipCode(country, zip string) error {
	zip = strings.TrimSpace(zip)
	pattern := zipFallbackPattern
	if code, ok := countryAliases[strings.ToUpper(strings.TrimSpace(country))]; ok {
		pattern = zipPatterns[code]
	}
	if !pattern.MatchString(zip) {
		return &contractx.FieldError{Field: "zip_code", Reason: "does not match the postal code format for the country"}
	}
	return nil
}

func trimAddress(addr contractx.Address) contractx.Address {
	return contractx.Address{
		StreetAddress: strings.TrimSpace(addr.StreetAddress),
		City:          strings.TrimSpace(addr.City),
		State:         strings.TrimSpace(addr.State),
		Country:       strings.TrimSpace(addr.Country),
		ZipCode:       strings.TrimSpace(addr.ZipCode),
	}
}

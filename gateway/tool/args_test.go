package tool

import (
	"encoding/json"
	"testing"
)

func TestStringArgKeepsLeadingZeros(t *testing.T) {
	t.Parallel()

	got, err := stringArg(map[string]any{"credit_card_cvv": "012"}, "credit_card_cvv")
	if err != nil {
		t.Fatalf("stringArg() error = %v", err)
	}
	if got != "012" {
		t.Fatalf("stringArg() = %q, want %q", got, "012")
	}
}

func TestStringArgAcceptsWholeNumbers(t *testing.T) {
	t.Parallel()

	got, err := stringArg(map[string]any{"zip_code": float64(94043)}, "zip_code")
	if err != nil {
		t.Fatalf("stringArg() error = %v", err)
	}
	if got != "94043" {
		t.Fatalf("stringArg() = %q, want %q", got, "94043")
	}
}

func TestOptionalIntArg(t *testing.T) {
	t.Parallel()

	if v, err := optionalIntArg(map[string]any{}, "quantity"); err != nil || v != nil {
		t.Fatalf("absent key: got %v, %v; want nil, nil", v, err)
	}

	v, err := optionalIntArg(map[string]any{"quantity": json.Number("3")}, "quantity")
	if err != nil || v == nil || *v != 3 {
		t.Fatalf("json.Number: got %v, %v; want 3", v, err)
	}

	v, err = optionalIntArg(map[string]any{"quantity": "2"}, "quantity")
	if err != nil || v == nil || *v != 2 {
		t.Fatalf("numeric string: got %v, %v; want 2", v, err)
	}

	if _, err := optionalIntArg(map[string]any{"quantity": 1.5}, "quantity"); err == nil {
		t.Fatal("fractional quantity: want error")
	}

	if _, err := optionalIntArg(map[string]any{"quantity": true}, "quantity"); err == nil {
		t.Fatal("bool quantity: want error")
	}
}

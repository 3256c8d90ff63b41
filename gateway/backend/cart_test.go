package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	contractx "github.com/greennext/shopping-gateway/gateway/contract"
)

func TestCartAddItem(t *testing.T) {
	t.Parallel()

	var got addItemRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != rpcAddItem {
			t.Errorf("request path = %q, want %q", r.URL.Path, rpcAddItem)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		fmt.Fprint(w, `{"price":{"currency_code":"USD","units":19,"nanos":990000000}}`)
	}))
	t.Cleanup(server.Close)

	client, err := DialCart(Config{CartAddr: server.URL, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("DialCart() error = %v", err)
	}
	t.Cleanup(func() { client.Close() })

	ack, err := client.AddItem(context.Background(), "a@b.com", "P1", 2)
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	if got.UserID != "a@b.com" {
		t.Fatalf("wire user_id = %q, want %q", got.UserID, "a@b.com")
	}
	if got.Item.ProductID != "P1" || got.Item.Quantity != 2 {
		t.Fatalf("wire item = %+v, want product_id=P1 quantity=2", got.Item)
	}
	if ack.Price == nil || ack.Price.Units != 19 || ack.Price.Nanos != 990000000 {
		t.Fatalf("ack price = %+v, want echoed 19.99 USD", ack.Price)
	}
}

func TestCartAddItemEmptyAck(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	t.Cleanup(server.Close)

	client, err := DialCart(Config{CartAddr: server.URL, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("DialCart() error = %v", err)
	}
	t.Cleanup(func() { client.Close() })

	ack, err := client.AddItem(context.Background(), "a@b.com", "P1", 1)
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if ack.Price != nil {
		t.Fatalf("ack price = %+v, want nil for empty ack", ack.Price)
	}
}

func TestCartAddItemUnreachable(t *testing.T) {
	t.Parallel()

	client, err := DialCart(Config{CartAddr: "127.0.0.1:1", Timeout: time.Second})
	if err != nil {
		t.Fatalf("DialCart() error = %v", err)
	}
	defer client.Close()

	_, err = client.AddItem(context.Background(), "a@b.com", "P1", 1)
	var backendErr *contractx.BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("AddItem() error = %T, want *BackendError", err)
	}
	if backendErr.Backend != "cart" {
		t.Fatalf("BackendError.Backend = %q, want %q", backendErr.Backend, "cart")
	}
}

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	contractx "github.com/greennext/shopping-gateway/gateway/contract"
)

const (
	defaultTimeout       = 10 * time.Second
	maxResponseSizeBytes = 4 << 20
)

// conn is one short-lived connection to a named backend. It owns its
// transport exclusively so Close deterministically releases the sockets this
// call opened.
type conn struct {
	backend   string
	baseURL   string
	transport *http.Transport
	client    *http.Client
	closeOnce sync.Once
}

func dial(backend, addr string, timeout time.Duration) (*conn, error) {
	target := strings.TrimSpace(addr)
	if target == "" {
		return nil, &contractx.BackendError{
			Backend: backend,
			Op:      "dial",
			Err:     errors.New("endpoint address is empty"),
		}
	}
	if !strings.Contains(target, "://") {
		target = "http://" + target
	}
	if _, err := url.ParseRequestURI(target); err != nil {
		return nil, &contractx.BackendError{Backend: backend, Op: "dial", Err: err}
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{}
	return &conn{
		backend:   backend,
		baseURL:   strings.TrimRight(target, "/"),
		transport: transport,
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}, nil
}

// Close releases the connection. Idempotent; later calls are no-ops.
func (c *conn) Close() error {
	c.closeOnce.Do(func() {
		c.transport.CloseIdleConnections()
	})
	return nil
}

// call performs exactly one round trip: POST the request body as JSON to the
// method path and decode the response into out. Every failure mode maps to a
// BackendError naming this backend.
func (c *conn) call(ctx context.Context, op, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &contractx.BackendError{Backend: c.backend, Op: op, Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &contractx.BackendError{Backend: c.backend, Op: op, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &contractx.BackendError{Backend: c.backend, Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return &contractx.BackendError{Backend: c.backend, Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &contractx.BackendError{
			Backend: c.backend,
			Op:      op,
			Err:     fmt.Errorf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw))),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &contractx.BackendError{Backend: c.backend, Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

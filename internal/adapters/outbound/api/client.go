// Package api talks to the remote orderdesk backend over HTTP. It is the
// only outbound data source of the program; all persistent state lives
// behind it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// Client implements the domain.ProductAPI and domain.OrderAPI ports.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the backend named in cfg.
func New(cfg domain.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout()},
	}
}

// envelope is the success wrapper every backend response carries.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// do performs one request and decodes the envelope payload into out (which
// may be nil for calls whose body is irrelevant). Every failure, transport
// or non-2xx alike, comes back as a *domain.FetchError carrying op.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &domain.FetchError{Op: op, Err: err}
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &domain.FetchError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return &domain.FetchError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.FetchError{Op: op, Status: resp.StatusCode}
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &domain.FetchError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &domain.FetchError{Op: op, Err: fmt.Errorf("decoding payload: %w", err)}
	}
	return nil
}

// --- domain.ProductAPI ---

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, "listProducts", http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int) (domain.Product, error) {
	var p domain.Product
	err := c.do(ctx, "getProduct", http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &p)
	return p, err
}

func (c *Client) ListProductsByOrder(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	var items []domain.OrderItem
	path := fmt.Sprintf("/api/products/findByOrderId/%d", orderID)
	if err := c.do(ctx, "listProductsByOrder", http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	var p domain.Product
	err := c.do(ctx, "createProduct", http.MethodPost, "/api/products", in, &p)
	return p, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int, in domain.ProductInput) (domain.Product, error) {
	var p domain.Product
	err := c.do(ctx, "updateProduct", http.MethodPut, fmt.Sprintf("/api/products/%d", id), in, &p)
	return p, err
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, "deleteProduct", http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil)
}

// --- domain.OrderAPI ---

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, "listOrders", http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id int) (domain.Order, error) {
	var o domain.Order
	err := c.do(ctx, "getOrder", http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, &o)
	return o, err
}

func (c *Client) CreateOrder(ctx context.Context, o domain.Order) (domain.Order, error) {
	var created domain.Order
	err := c.do(ctx, "createOrder", http.MethodPost, "/api/orders", o, &created)
	return created, err
}

func (c *Client) UpdateOrder(ctx context.Context, id int, o domain.Order) (domain.Order, error) {
	var updated domain.Order
	err := c.do(ctx, "updateOrder", http.MethodPut, fmt.Sprintf("/api/orders/%d", id), o, &updated)
	return updated, err
}

func (c *Client) CreateOrderLine(ctx context.Context, line domain.OrderItem) error {
	return c.do(ctx, "createOrderLine", http.MethodPost, "/api/orders/createDetails", line, nil)
}

func (c *Client) UpdateOrderLine(ctx context.Context, line domain.OrderItem) error {
	return c.do(ctx, "updateOrderLine", http.MethodPut, "/api/orders/updateDetails", line, nil)
}

func (c *Client) ChangeOrderStatus(ctx context.Context, id int, status domain.Status) error {
	body := map[string]domain.Status{"status": status}
	path := fmt.Sprintf("/api/orders/changeStatus/%d", id)
	return c.do(ctx, "changeOrderStatus", http.MethodPatch, path, body, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	return c.do(ctx, "deleteOrder", http.MethodDelete, fmt.Sprintf("/api/orders/%d", id), nil, nil)
}

// Package client is the store-facing HTTP client the session and admin
// console talk through. It covers the full REST surface of the backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/KristellVM/tienda-online/internal/domain"
	"github.com/KristellVM/tienda-online/internal/repository"

	"github.com/shopspring/decimal"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ChangeResult is the {success, changes} body every update/delete returns.
// A missing key reports Changes == 0, not an error.
type ChangeResult struct {
	Success bool  `json:"success"`
	Changes int64 `json:"changes"`
}

type CheckoutResult struct {
	ID         uint64          `json:"id"`
	TotalPrice decimal.Decimal `json:"precioTotal"`
	Success    bool            `json:"success"`
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e apiError
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, e.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.do(ctx, http.MethodGet, "/api/usuarios", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, http.MethodPost, "/api/usuarios", user, &out)
	return out, err
}

func (c *Client) UpdateUser(ctx context.Context, id uint64, user domain.User) (ChangeResult, error) {
	var out ChangeResult
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/usuarios/%d", id), user, &out)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, id uint64) (ChangeResult, error) {
	var out ChangeResult
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/usuarios/%d", id), nil, &out)
	return out, err
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/productos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	var out domain.Product
	err := c.do(ctx, http.MethodPost, "/api/productos", product, &out)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, name string, product domain.Product) (ChangeResult, error) {
	var out ChangeResult
	err := c.do(ctx, http.MethodPut, "/api/productos/"+url.PathEscape(name), product, &out)
	return out, err
}

func (c *Client) BulkUpdateStock(ctx context.Context, updates []repository.StockUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/productos", updates, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, name string) (ChangeResult, error) {
	var out ChangeResult
	err := c.do(ctx, http.MethodDelete, "/api/productos/"+url.PathEscape(name), nil, &out)
	return out, err
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/pedidos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateOrder(ctx context.Context, order domain.Order) (uint64, error) {
	var out struct {
		ID uint64 `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/api/pedidos", order, &out)
	return out.ID, err
}

func (c *Client) UpdateOrder(ctx context.Context, id uint64, order domain.Order) (ChangeResult, error) {
	var out ChangeResult
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/pedidos/%d", id), order, &out)
	return out, err
}

func (c *Client) DeleteOrder(ctx context.Context, id uint64) (ChangeResult, error) {
	var out ChangeResult
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/pedidos/%d", id), nil, &out)
	return out, err
}

// Checkout sends the cart to the atomic checkout endpoint.
func (c *Client) Checkout(ctx context.Context, cart domain.Cart) (CheckoutResult, error) {
	var out CheckoutResult
	err := c.do(ctx, http.MethodPost, "/api/checkout", map[string]any{"productos": cart}, &out)
	return out, err
}

package modmansdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal modman HTTP API client.
type Client struct {
	BaseURL     string
	BearerToken string
	HTTPClient  *http.Client
	Timeout     time.Duration
}

// New creates a client with sane defaults.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Timeout: 10 * time.Second,
	}
}

// Product represents the API product model.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// Category represents the API category model.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// APIError wraps non-2xx responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d body=%s", e.StatusCode, e.Body)
}

// ListProducts returns a page of products.
func (c *Client) ListProducts(ctx context.Context, offset, limit int) ([]Product, error) {
	var resp []Product
	endpoint := fmt.Sprintf("v1/products?offset=%d&limit=%d", offset, limit)
	err := c.do(ctx, http.MethodGet, endpoint, nil, &resp)
	return resp, err
}

// GetProduct fetches a product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (Product, error) {
	var resp Product
	err := c.do(ctx, http.MethodGet, "v1/products/"+url.PathEscape(id), nil, &resp)
	return resp, err
}

// CreateProduct creates a product.
func (c *Client) CreateProduct(ctx context.Context, name string, price float64, quantity int) (Product, error) {
	body := map[string]any{
		"name":     name,
		"price":    price,
		"quantity": quantity,
	}
	var resp Product
	err := c.do(ctx, http.MethodPost, "v1/products", body, &resp)
	return resp, err
}

// UpdateProduct applies a partial update. Only non-nil map values are sent.
func (c *Client) UpdateProduct(ctx context.Context, id string, fields map[string]any) (Product, error) {
	var resp Product
	err := c.do(ctx, http.MethodPatch, "v1/products/"+url.PathEscape(id), fields, &resp)
	return resp, err
}

// DeleteProduct removes a product by id.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "v1/products/"+url.PathEscape(id), nil, nil)
}

// ListCategories returns a page of categories.
func (c *Client) ListCategories(ctx context.Context, offset, limit int) ([]Category, error) {
	var resp []Category
	endpoint := fmt.Sprintf("v1/categories?offset=%d&limit=%d", offset, limit)
	err := c.do(ctx, http.MethodGet, endpoint, nil, &resp)
	return resp, err
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, name, description string) (Category, error) {
	body := map[string]any{
		"name":        name,
		"description": description,
	}
	var resp Category
	err := c.do(ctx, http.MethodPost, "v1/categories", body, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	url := c.base() + "/" + strings.TrimLeft(endpoint, "/")
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.BearerToken)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) base() string {
	return strings.TrimRight(c.BaseURL, "/")
}

// Package api implements the REST client for the cookbook backend. It
// is the only code in the repo that touches the network; everything else
// consumes it through the domain ports.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cookbook/internal/domain"
	"cookbook/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.DishService   = (*Client)(nil)
	_ domain.CatalogSource = (*Client)(nil)
)

// StatusError is a non-2xx response from the API. The body is kept so
// the screen can surface what the server said.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: unexpected status %d: %s", e.Status, e.Body)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.Timeout = d }
}

// Client talks to the cookbook REST API at a configured base URL.
type Client struct {
	base   string
	http   *http.Client
	loader domain.AttachmentLoader
	log    *logger.Logger
}

// NewClient creates an API client.
//   - baseURL: scheme and host, e.g. "http://192.168.1.65:8000"
//   - loader:  turns local image handles into upload parts
func NewClient(baseURL string, loader domain.AttachmentLoader, log *logger.Logger, opts ...ClientOption) *Client {
	c := &Client{
		base:   strings.TrimRight(baseURL, "/"),
		http:   &http.Client{Timeout: 10 * time.Second},
		loader: loader,
		log:    log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the configured base URL, for resolving relative image
// paths in responses.
func (c *Client) BaseURL() string { return c.base }

// Dishes returns every dish, full, including nested ingredients and steps.
func (c *Client) Dishes(ctx context.Context) ([]domain.Dish, error) {
	var wire []dishJSON
	if err := c.getJSON(ctx, "/api/dishes/", &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Dish, len(wire))
	for i, w := range wire {
		out[i] = w.toDomain()
	}
	return out, nil
}

// DishesByCategory returns the dishes assigned to one category.
func (c *Client) DishesByCategory(ctx context.Context, categoryID int64) ([]domain.Dish, error) {
	var wire []dishJSON
	path := fmt.Sprintf("/api/dishes/?category=%d", categoryID)
	if err := c.getJSON(ctx, path, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Dish, len(wire))
	for i, w := range wire {
		out[i] = w.toDomain()
	}
	return out, nil
}

// Dish returns a single dish by id.
func (c *Client) Dish(ctx context.Context, id int64) (*domain.Dish, error) {
	var wire dishJSON
	if err := c.getJSON(ctx, fmt.Sprintf("/api/dishes/%d/", id), &wire); err != nil {
		return nil, err
	}
	d := wire.toDomain()
	return &d, nil
}

// Categories returns the category catalog.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var wire []categoryJSON
	if err := c.getJSON(ctx, "/api/categories/", &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Category, len(wire))
	for i, w := range wire {
		out[i] = domain.Category{ID: w.ID, Name: domain.CategoryName(w.Name)}
	}
	return out, nil
}

// Category returns a single category by id.
func (c *Client) Category(ctx context.Context, id int64) (*domain.Category, error) {
	var wire categoryJSON
	if err := c.getJSON(ctx, fmt.Sprintf("/api/categories/%d/", id), &wire); err != nil {
		return nil, err
	}
	return &domain.Category{ID: wire.ID, Name: domain.CategoryName(wire.Name)}, nil
}

// Ingredients returns the flat ingredient reference catalog.
func (c *Client) Ingredients(ctx context.Context) ([]domain.CatalogEntry, error) {
	return c.catalog(ctx, "/api/ingredients/")
}

// Units returns the flat unit reference catalog.
func (c *Client) Units(ctx context.Context) ([]domain.CatalogEntry, error) {
	return c.catalog(ctx, "/api/units/")
}

func (c *Client) catalog(ctx context.Context, path string) ([]domain.CatalogEntry, error) {
	var wire []catalogEntryJSON
	if err := c.getJSON(ctx, path, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.CatalogEntry, len(wire))
	for i, w := range wire {
		out[i] = domain.CatalogEntry{ID: w.ID, Name: w.Name}
	}
	return out, nil
}

// CreateDish submits a new dish as a multipart request.
func (c *Client) CreateDish(ctx context.Context, sub *domain.Submission) (*domain.Dish, error) {
	return c.submit(ctx, http.MethodPost, "/api/dishes/", sub)
}

// UpdateDish patches an existing dish as a multipart request.
func (c *Client) UpdateDish(ctx context.Context, id int64, sub *domain.Submission) (*domain.Dish, error) {
	return c.submit(ctx, http.MethodPatch, fmt.Sprintf("/api/dishes/%d/", id), sub)
}

// DeleteDish removes a dish.
func (c *Client) DeleteDish(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/dishes/%d/", id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}

	c.log.Debug("api: DELETE %s", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: DELETE %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return c.checkStatus(http.MethodDelete, path, resp.StatusCode, body)
}

func (c *Client) submit(ctx context.Context, method, path string, sub *domain.Submission) (*domain.Dish, error) {
	body, contentType, err := c.encodeSubmission(sub)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	c.log.Debug("api: %s %s (%d bytes)", method, path, body.Len())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api: read response: %w", err)
	}
	if err := c.checkStatus(method, path, resp.StatusCode, respBody); err != nil {
		return nil, err
	}

	var wire dishJSON
	if err := json.Unmarshal(respBody, &wire); err != nil {
		return nil, fmt.Errorf("api: unmarshal response: %w", err)
	}
	d := wire.toDomain()
	return &d, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug("api: GET %s", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read response: %w", err)
	}
	if err := c.checkStatus(http.MethodGet, path, resp.StatusCode, body); err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("api: unmarshal %s: %w", path, err)
	}
	return nil
}

func (c *Client) checkStatus(method, path string, status int, body []byte) error {
	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("api: %s %s: %w", method, path, domain.ErrNotFound)
	case status < 200 || status >= 300:
		return &StatusError{Status: status, Body: strings.TrimSpace(string(body))}
	}
	return nil
}

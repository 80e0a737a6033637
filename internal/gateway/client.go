// Package gateway is the HTTP client for the café Gateway API, the
// system of record for menus, cafés, inventory, orders and analytics.
//
// All calls go through a circuit breaker so a dead Gateway fails fast
// instead of piling up timeouts. Transport failures surface as
// *NetworkError, application refusals (success:false) as *ServerError.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/cafechain/pos-terminal/internal/circuitbreaker"
	"github.com/cafechain/pos-terminal/internal/domain/dto"
	"github.com/cafechain/pos-terminal/internal/domain/model"
	"github.com/cafechain/pos-terminal/internal/metrics"
)

// requestIDHeader propagates the terminal's request id to the Gateway.
const requestIDHeader = "X-Request-ID"

// Client talks to the Gateway over JSON/HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	cb      *circuitbreaker.CircuitBreaker
	menu    *menuCache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithCircuitBreaker sets the breaker protecting all Gateway calls.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(c *Client) { c.cb = cb }
}

// WithMenuCacheTTL caches menu reads for the given duration. The menu
// changes rarely compared to how often terminals open sessions.
func WithMenuCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.menu = newMenuCache(ttl) }
}

// NewClient creates a Gateway client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		cb:      circuitbreaker.New(circuitbreaker.DefaultConfig()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one JSON round-trip under the circuit breaker and decodes
// the response body into out (when out is non-nil). Only transport and
// decode problems are errors here; interpreting success flags is the
// caller's job.
func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, uuid.New().String())

	start := time.Now()
	callErr := c.cb.Execute(ctx, func() error {
		resp, err := c.http.Do(req)
		if err != nil {
			return &NetworkError{Op: op, Err: err}
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode >= http.StatusInternalServerError {
			return &NetworkError{Op: op, Err: fmt.Errorf("status %d", resp.StatusCode)}
		}
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &NetworkError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
		}
		return nil
	})

	outcome := "ok"
	if callErr != nil {
		outcome = "error"
	}
	metrics.GatewayRequestsTotal.WithLabelValues(op, outcome).Inc()
	metrics.GatewayRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	if callErr != nil {
		log.Warn().Err(callErr).Str("operation", op).Str("path", path).Msg("Gateway call failed")
		if errors.Is(callErr, circuitbreaker.ErrCircuitOpen) {
			return &NetworkError{Op: op, Err: callErr}
		}
		return callErr
	}
	return nil
}

// FetchMenu loads the menu shown on the order page. Results are served
// from the menu cache when one is configured.
func (c *Client) FetchMenu(ctx context.Context) ([]model.MenuItem, error) {
	if c.menu != nil {
		if items, ok := c.menu.get(); ok {
			return items, nil
		}
	}

	var resp dto.MenuItemsResponse
	if err := c.do(ctx, "fetch_menu", http.MethodGet, "/menu/items", nil, &resp); err != nil {
		return nil, err
	}
	if c.menu != nil {
		c.menu.set(resp.Items)
	}
	return resp.Items, nil
}

// SearchMenu loads the admin menu list, optionally filtered server-side.
func (c *Client) SearchMenu(ctx context.Context, term string) ([]model.MenuItem, error) {
	path := "/api/menu"
	if term != "" {
		path += "?search=" + url.QueryEscape(term)
	}
	var items []model.MenuItem
	if err := c.do(ctx, "search_menu", http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddMenuItem creates a menu item.
func (c *Client) AddMenuItem(ctx context.Context, req dto.MenuItemWireRequest) error {
	c.invalidateMenu()
	return c.do(ctx, "add_menu_item", http.MethodPost, "/api/menu/add", req, nil)
}

// UpdateMenuItem updates an existing menu item.
func (c *Client) UpdateMenuItem(ctx context.Context, req dto.MenuItemWireRequest) error {
	c.invalidateMenu()
	return c.do(ctx, "update_menu_item", http.MethodPut, "/api/menu/update", req, nil)
}

// DeleteMenuItem removes a menu item.
func (c *Client) DeleteMenuItem(ctx context.Context, id int) error {
	c.invalidateMenu()
	body := map[string]int{"id": id}
	return c.do(ctx, "delete_menu_item", http.MethodDelete, "/api/menu/delete", body, nil)
}

// FetchInventory loads the full inventory snapshot across all cafés.
func (c *Client) FetchInventory(ctx context.Context) ([]model.InventoryRecord, error) {
	var records []model.InventoryRecord
	if err := c.do(ctx, "fetch_inventory", http.MethodGet, "/api/inventory/all", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SubmitRestock sends one signed stock adjustment.
func (c *Client) SubmitRestock(ctx context.Context, adj model.StockAdjustment) error {
	var result dto.GatewayResult
	req := dto.NewRestockWireRequest(adj)
	if err := c.do(ctx, "submit_restock", http.MethodPost, "/api/inventory/restock", req, &result); err != nil {
		return err
	}
	if !result.Success {
		return &ServerError{Op: "submit_restock", Message: result.Message}
	}
	return nil
}

// SubmitOrder sends a built order payload for one café.
func (c *Client) SubmitOrder(ctx context.Context, cafeID string, lines []model.OrderLine) (dto.GatewayResult, error) {
	var result dto.GatewayResult
	req := dto.NewCreateOrderWireRequest(cafeID, lines)
	if err := c.do(ctx, "submit_order", http.MethodPost, "/orders/create", req, &result); err != nil {
		return dto.GatewayResult{}, err
	}
	if !result.Success {
		return dto.GatewayResult{}, &ServerError{Op: "submit_order", Message: result.Message}
	}
	return result, nil
}

// FetchCafes lists all cafés.
func (c *Client) FetchCafes(ctx context.Context) ([]model.Cafe, error) {
	var resp dto.CafesResponse
	if err := c.do(ctx, "fetch_cafes", http.MethodGet, "/api/cafes", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &ServerError{Op: "fetch_cafes", Message: resp.Error}
	}
	return resp.Cafes, nil
}

// CreateCafe creates a café and returns the Gateway's copy of it.
func (c *Client) CreateCafe(ctx context.Context, req dto.CafeRequest) (*model.Cafe, error) {
	var result dto.CafeResult
	if err := c.do(ctx, "create_cafe", http.MethodPost, "/api/cafes", req, &result); err != nil {
		return nil, err
	}
	if !result.Success || result.Cafe == nil {
		return nil, &ServerError{Op: "create_cafe", Message: result.Error}
	}
	return result.Cafe, nil
}

// UpdateCafe updates a café in place.
func (c *Client) UpdateCafe(ctx context.Context, id int, req dto.CafeRequest) error {
	var result dto.CafeResult
	path := "/api/cafes/" + strconv.Itoa(id)
	if err := c.do(ctx, "update_cafe", http.MethodPut, path, req, &result); err != nil {
		return err
	}
	if !result.Success {
		return &ServerError{Op: "update_cafe", Message: result.Error}
	}
	return nil
}

// DeleteCafe removes a café.
func (c *Client) DeleteCafe(ctx context.Context, id int) error {
	var result dto.CafeResult
	path := "/api/cafes/" + strconv.Itoa(id)
	if err := c.do(ctx, "delete_cafe", http.MethodDelete, path, nil, &result); err != nil {
		return err
	}
	if !result.Success {
		return &ServerError{Op: "delete_cafe", Message: result.Error}
	}
	return nil
}

// CheckAdminSession verifies the caller's admin session cookie with the
// Gateway. Admin pages are only served behind a valid session; auth
// itself stays the Gateway's job.
func (c *Client) CheckAdminSession(ctx context.Context, cookie string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/admin/session", nil)
	if err != nil {
		return fmt.Errorf("build session check: %w", err)
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	return c.cb.Execute(ctx, func() error {
		resp, err := c.http.Do(req)
		if err != nil {
			return &NetworkError{Op: "admin_session", Err: err}
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode != http.StatusOK {
			return &ServerError{Op: "admin_session", Message: "admin session invalid"}
		}
		return nil
	})
}

// FetchCardMetrics loads the dashboard headline numbers for a month.
func (c *Client) FetchCardMetrics(ctx context.Context, month, year int) (model.CardMetrics, error) {
	var cards model.CardMetrics
	path := fmt.Sprintf("/analytics?month=%d&year=%d", month, year)
	if err := c.do(ctx, "fetch_analytics", http.MethodGet, path, nil, &cards); err != nil {
		return model.CardMetrics{}, err
	}
	return cards, nil
}

// Breaker exposes the circuit breaker for health reporting.
func (c *Client) Breaker() *circuitbreaker.CircuitBreaker { return c.cb }

func (c *Client) invalidateMenu() {
	if c.menu != nil {
		c.menu.invalidate()
	}
}

// Package api talks to the menu backend. One client, two operations:
// fetching the menu and submitting an order.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/manduca/menu/app/models"
	"github.com/manduca/menu/pkg/fetch"
	"github.com/manduca/menu/pkg/logger"
)

// FallbackMessage is surfaced when a failing response carries no parseable
// JSON error body. Copy matches what the site always showed.
const FallbackMessage = "Error desconocido del servidor"

// Error is a server-reported failure: a non-2xx status whose body was parsed
// for a message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// Client calls the menu backend. The zero value is not usable; use New.
type Client struct {
	baseURL string
	timeout time.Duration
}

// New builds a client for the backend rooted at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{baseURL: baseURL, timeout: timeout}
}

// headers sent on every request, mirroring the original front end.
var requestHeaders = map[string]string{
	"Content-Type":     "application/json",
	"Accept":           "application/json",
	"X-Requested-With": "XMLHttpRequest",
}

// Menu fetches the full menu: site status, categories with nested products,
// and daily dishes.
func (c *Client) Menu(ctx context.Context) (*models.Menu, error) {
	resp, err := fetch.Get(c.baseURL + "/menu").
		Headers(requestHeaders).
		Timeout(c.timeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, c.asError(resp)
	}

	var menu models.Menu
	if err := resp.JSON(&menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

// SubmitOrder posts an order. A nil error means the backend accepted it.
func (c *Client) SubmitOrder(ctx context.Context, order models.Order) error {
	resp, err := fetch.Post(c.baseURL + "/menu/orders").
		Headers(requestHeaders).
		Body(order).
		Timeout(c.timeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return err
	}
	if !resp.OK() {
		return c.asError(resp)
	}
	return nil
}

// asError parses a failing response body as {"message": ...}, falling back
// to a generic message when the body is not JSON.
func (c *Client) asError(resp *fetch.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Raw, &body); err != nil || body.Message == "" {
		body.Message = FallbackMessage
	}
	logger.Error("api: request failed", "status", resp.StatusCode, "message", body.Message)
	return &Error{Status: resp.StatusCode, Message: body.Message}
}

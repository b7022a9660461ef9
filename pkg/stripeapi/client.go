// Package stripeapi is a minimal client for the Stripe-compatible
// checkout API. It covers only what the gateway needs, instead of
// pulling in the full vendor SDK: form-encoded requests, Bearer
// authentication, and JSON responses decoded into typed objects.
package stripeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/paygate-app/paygate/pkg/config"
	"github.com/paygate-app/paygate/pkg/stripeapi/form"
)

const apiVersion = "2023-10-16"

// Client issues requests against the payment API. It holds no state
// besides its configuration; methods are safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Client from config. The HTTP timeout is the only
// local policy; retries and backoff are deliberately the caller's
// concern.
func New(cfg config.Stripe, logger *slog.Logger) *Client {
	return &Client{
		apiKey:  cfg.ApiKey,
		baseURL: strings.TrimRight(cfg.ApiUrl, "/"),
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

// PostForm encodes params as a form body, POSTs it to path, and
// decodes the JSON response into v. API failures are returned as
// *Error; nothing is retried or transformed.
func (c *Client) PostForm(ctx context.Context, path string, params, v any) error {
	values, err := form.Values(params)
	if err != nil {
		return fmt.Errorf("failed to encode request params: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+path,
		strings.NewReader(values.Encode()),
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, v)
}

// Get issues a GET against path and decodes the JSON response into v.
func (c *Client) Get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, v)
}

func (c *Client) do(req *http.Request, v any) error {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Stripe-Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(resp)
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) apiError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		c.logger.Error("API returned non-JSON error",
			"status", resp.StatusCode,
			"body", string(body),
		)
		return &Error{
			Type:       "api_error",
			Message:    fmt.Sprintf("unexpected response with status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	envelope.Error.StatusCode = resp.StatusCode
	c.logger.Warn("API request failed",
		"status", resp.StatusCode,
		"type", envelope.Error.Type,
		"code", envelope.Error.Code,
	)
	return envelope.Error
}

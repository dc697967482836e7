// Package gateway implements the authenticated HTTP client for the external
// trading/wallet gateway. Every outbound call the service makes funnels
// through Client.Call.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/amirasaad/coinchat/pkg/config"
	"github.com/amirasaad/coinchat/pkg/domain"
	"github.com/amirasaad/coinchat/pkg/dto"
)

// Client is a thin wrapper around http.Client that forwards the caller's
// credential verbatim and maps every failure to *domain.GatewayError.
// No retries here: retry policy, if any, belongs to callers.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a gateway client using the configured base address and the
// fixed per-call timeout.
func New(cfg *config.Gateway, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.Base,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger.With("component", "gateway"),
	}
}

// BaseURL returns the configured gateway base address.
func (c *Client) BaseURL() string { return c.baseURL }

// Call performs one gateway request. A non-empty auth credential is attached
// as the Authorization header; an absent credential sends the request
// unauthenticated, which the gateway is expected to reject. Non-2xx statuses
// and transport failures come back as *domain.GatewayError.
func (c *Client) Call(
	ctx context.Context,
	method, path string,
	body any,
	auth string,
) ([]byte, error) {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	c.logger.Debug("calling gateway", "method", method, "path", path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.GatewayError{Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.GatewayError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.GatewayError{Status: resp.StatusCode, Body: string(respBody)}
	}
	return respBody, nil
}

// CallJSON performs a call and decodes the response body into a generic
// value. An empty body decodes to nil.
func (c *Client) CallJSON(
	ctx context.Context,
	method, path string,
	body any,
	auth string,
) (any, error) {
	respBody, err := c.Call(ctx, method, path, body, auth)
	if err != nil {
		return nil, err
	}
	if len(respBody) == 0 {
		return nil, nil
	}
	var decoded any
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}
	return decoded, nil
}

// Catalog fetches the full currency catalog.
func (c *Client) Catalog(ctx context.Context, auth string) ([]any, error) {
	decoded, err := c.CallJSON(ctx, http.MethodGet, "/currency", nil, auth)
	if err != nil {
		return nil, err
	}
	entries, ok := decoded.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected catalog shape %T", decoded)
	}
	return entries, nil
}

// Ticker fetches the live ticker for a trading pair.
func (c *Client) Ticker(ctx context.Context, pair, auth string) (map[string]any, error) {
	decoded, err := c.CallJSON(ctx, http.MethodGet, "/crypto/ticker/"+pair, nil, auth)
	if err != nil {
		return nil, err
	}
	fields, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected ticker shape %T", decoded)
	}
	return fields, nil
}

// BalanceSummary fetches the caller's wallet valuation.
func (c *Client) BalanceSummary(ctx context.Context, auth string) (any, error) {
	return c.CallJSON(ctx, http.MethodGet, "/balance/summary", nil, auth)
}

// DepositFiat enacts a fiat deposit.
func (c *Client) DepositFiat(
	ctx context.Context,
	req dto.DepositFiatRequest,
	auth string,
) (any, error) {
	return c.CallJSON(ctx, http.MethodPost, "/transactions/deposit/fiat", req, auth)
}

// Buy submits a buy order.
func (c *Client) Buy(ctx context.Context, req dto.BuyOrderRequest, auth string) (any, error) {
	return c.CallJSON(ctx, http.MethodPost, "/transactions/buy", req, auth)
}

// Sell submits a sell order.
func (c *Client) Sell(ctx context.Context, req dto.SellOrderRequest, auth string) (any, error) {
	return c.CallJSON(ctx, http.MethodPost, "/transactions/sell", req, auth)
}

// Transactions fetches the caller's transaction history.
func (c *Client) Transactions(ctx context.Context, auth string) (any, error) {
	return c.CallJSON(ctx, http.MethodGet, "/transactions", nil, auth)
}

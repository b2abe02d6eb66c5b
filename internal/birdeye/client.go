// Package birdeye implements the market/security data provider gateway.
//
// Client is a plain HTTP client that returns errors. Gateway wraps it and
// absorbs every failure into a zero-value signal slice ("no signal"), so no
// provider error ever crosses into the scoring engine. CachedGateway adds a
// TTL cache per (endpoint, parameters).
package birdeye

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"rugsniffer/internal/domain"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://public-api.birdeye.so"
	DefaultTimeout = 8 * time.Second
)

// Endpoint identifies one logical provider endpoint.
type Endpoint string

const (
	EndpointTokenOverview    Endpoint = "/defi/token_overview"
	EndpointLiquidityHistory Endpoint = "/defi/history_liquidity"
	EndpointTokenSecurity    Endpoint = "/defi/token_security"
	EndpointWalletActivity   Endpoint = "/defi/wallet_activity"
	EndpointHolderData       Endpoint = "/defi/holder_data"
	EndpointPriceHistory     Endpoint = "/defi/history_price"
)

// Client is an HTTP client for the provider's REST API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// ClientOption configures Client.
type ClientOption func(*Client)

// WithBaseURL sets the provider base URL.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTimeout sets the per-call HTTP timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a provider client authenticated with apiKey.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the provider's response wrapper.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Success bool            `json:"success"`
}

// get performs one GET request and decodes the data envelope into out.
func (c *Client) get(ctx context.Context, endpoint Endpoint, params url.Values, out interface{}) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("unmarshal envelope: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		// No data for this token; leave out as its zero value.
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("unmarshal %s data: %w", endpoint, err)
	}
	return nil
}

// addressParams builds the common address query.
func addressParams(mint string) url.Values {
	return url.Values{"address": []string{mint}}
}

// rangeParams builds an address query with a time range.
func rangeParams(mint, timeFrom, timeTo string) url.Values {
	return url.Values{
		"address":   []string{mint},
		"time_from": []string{timeFrom},
		"time_to":   []string{timeTo},
	}
}

// TokenOverview fetches the token overview slice.
func (c *Client) TokenOverview(ctx context.Context, mint string) (domain.TokenOverview, error) {
	var out domain.TokenOverview
	err := c.get(ctx, EndpointTokenOverview, addressParams(mint), &out)
	return out, err
}

// LiquidityHistory fetches pool liquidity movement for a time range.
func (c *Client) LiquidityHistory(ctx context.Context, mint, timeFrom, timeTo string) (domain.LiquidityHistory, error) {
	var out domain.LiquidityHistory
	err := c.get(ctx, EndpointLiquidityHistory, rangeParams(mint, timeFrom, timeTo), &out)
	return out, err
}

// TokenSecurity fetches the contract security flags.
func (c *Client) TokenSecurity(ctx context.Context, mint string) (domain.TokenSecurity, error) {
	var out domain.TokenSecurity
	err := c.get(ctx, EndpointTokenSecurity, addressParams(mint), &out)
	return out, err
}

// WalletActivity fetches wallet behavior for a time range.
func (c *Client) WalletActivity(ctx context.Context, mint, timeFrom, timeTo string) (domain.WalletActivity, error) {
	var out domain.WalletActivity
	err := c.get(ctx, EndpointWalletActivity, rangeParams(mint, timeFrom, timeTo), &out)
	return out, err
}

// HolderData fetches holder distribution for a time range.
func (c *Client) HolderData(ctx context.Context, mint, timeFrom, timeTo string) (domain.HolderData, error) {
	var out domain.HolderData
	err := c.get(ctx, EndpointHolderData, rangeParams(mint, timeFrom, timeTo), &out)
	return out, err
}

// PriceHistory fetches price and volume action for a time range.
func (c *Client) PriceHistory(ctx context.Context, mint, timeFrom, timeTo string) (domain.PriceHistory, error) {
	var out domain.PriceHistory
	err := c.get(ctx, EndpointPriceHistory, rangeParams(mint, timeFrom, timeTo), &out)
	return out, err
}

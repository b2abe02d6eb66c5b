package names

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"rugsniffer/internal/domain"
)

// DefaultBirdeyeBaseURL is the public Birdeye API host.
const DefaultBirdeyeBaseURL = "https://public-api.birdeye.so"

// BirdeyeResolver resolves token names from the Birdeye public token endpoint.
type BirdeyeResolver struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewBirdeyeResolver creates a resolver authenticated with apiKey.
// An empty baseURL falls back to DefaultBirdeyeBaseURL.
func NewBirdeyeResolver(baseURL, apiKey string) *BirdeyeResolver {
	if baseURL == "" {
		baseURL = DefaultBirdeyeBaseURL
	}
	return &BirdeyeResolver{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 8 * time.Second},
	}
}

var _ Resolver = (*BirdeyeResolver)(nil)

// Resolve fetches name and symbol from /public/token.
func (r *BirdeyeResolver) Resolve(ctx context.Context, mint string) (domain.TokenName, error) {
	endpoint := fmt.Sprintf("%s/public/token?address=%s", r.baseURL, url.QueryEscape(mint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.TokenName{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-KEY", r.apiKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return domain.TokenName{}, fmt.Errorf("birdeye token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.TokenName{}, ErrNotResolved
	}
	if resp.StatusCode != http.StatusOK {
		return domain.TokenName{}, fmt.Errorf("birdeye token request: status %d", resp.StatusCode)
	}

	var body struct {
		Data *struct {
			Name   string `json:"name"`
			Symbol string `json:"symbol"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.TokenName{}, fmt.Errorf("decode birdeye token response: %w", err)
	}

	if body.Data == nil || body.Data.Name == "" {
		return domain.TokenName{}, ErrNotResolved
	}

	symbol := body.Data.Symbol
	if symbol == "" {
		symbol = domain.UnknownTokenSymbol
	}
	return domain.TokenName{Name: body.Data.Name, Symbol: symbol}, nil
}

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

// DefaultDexScreenerBaseURL is the public DexScreener API host.
const DefaultDexScreenerBaseURL = "https://api.dexscreener.com"

// DexScreenerResolver resolves token names from DexScreener pair listings.
// The first listed pair's base token wins.
type DexScreenerResolver struct {
	baseURL    string
	httpClient *http.Client
}

// NewDexScreenerResolver creates a resolver. An empty baseURL falls back to
// DefaultDexScreenerBaseURL.
func NewDexScreenerResolver(baseURL string) *DexScreenerResolver {
	if baseURL == "" {
		baseURL = DefaultDexScreenerBaseURL
	}
	return &DexScreenerResolver{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 8 * time.Second},
	}
}

var _ Resolver = (*DexScreenerResolver)(nil)

// Resolve fetches the token's pairs and takes the first base token name.
func (r *DexScreenerResolver) Resolve(ctx context.Context, mint string) (domain.TokenName, error) {
	endpoint := fmt.Sprintf("%s/latest/dex/tokens/%s", r.baseURL, url.PathEscape(mint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.TokenName{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return domain.TokenName{}, fmt.Errorf("dexscreener request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.TokenName{}, fmt.Errorf("dexscreener request: status %d", resp.StatusCode)
	}

	var body struct {
		Pairs []struct {
			BaseToken struct {
				Name   string `json:"name"`
				Symbol string `json:"symbol"`
			} `json:"baseToken"`
		} `json:"pairs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.TokenName{}, fmt.Errorf("decode dexscreener response: %w", err)
	}

	if len(body.Pairs) == 0 || body.Pairs[0].BaseToken.Name == "" {
		return domain.TokenName{}, ErrNotResolved
	}

	base := body.Pairs[0].BaseToken
	symbol := base.Symbol
	if symbol == "" {
		symbol = domain.UnknownTokenSymbol
	}
	return domain.TokenName{Name: base.Name, Symbol: symbol}, nil
}

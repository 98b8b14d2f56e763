package bureau

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lendflow/internal/decision/ports"
)

// Client queries the credit bureau over HTTP. Lookups are keyed by phone
// number; successful reports can be served from an optional read-through
// cache so repeat applicants do not hit the bureau again within the TTL.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *ScoreCache
	logger  *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithCache enables the read-through score cache.
func WithCache(cache *ScoreCache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithLogger sets a logger for cache errors.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// scoreResponse is the bureau wire model.
type scoreResponse struct {
	Successful bool   `json:"successful"`
	Score      int    `json:"score"`
	Message    string `json:"message"`
}

func (c *Client) GetCreditScore(ctx context.Context, phone string) (*ports.CreditReport, error) {
	if c.cache != nil {
		if report, ok := c.cache.Get(ctx, phone); ok {
			return report, nil
		}
	}

	endpoint := c.baseURL + "/scores/" + url.PathEscape(phone)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build bureau request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("credit bureau request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("credit bureau returned status %d", resp.StatusCode)
	}

	var body scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode bureau response: %w", err)
	}

	report := &ports.CreditReport{
		Successful: body.Successful,
		Score:      body.Score,
		Message:    body.Message,
	}

	if c.cache != nil && report.Successful {
		if err := c.cache.Put(ctx, phone, report); err != nil && c.logger != nil {
			c.logger.WarnContext(ctx, "score cache write failed", "error", err)
		}
	}

	return report, nil
}

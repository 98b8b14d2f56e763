package employment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lendflow/internal/decision/ports"
)

// Client queries the employment verification service over HTTP, keyed by the
// applicant's email address.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
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

type verifyResponse struct {
	Successful bool   `json:"successful"`
	Employed   bool   `json:"employed"`
	Message    string `json:"message"`
	Employer   string `json:"employer"`
}

func (c *Client) VerifyEmployment(ctx context.Context, email string) (*ports.EmploymentRecord, error) {
	endpoint := c.baseURL + "/verify?email=" + url.QueryEscape(email)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build verification request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("employment verification request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("employment service returned status %d", resp.StatusCode)
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode verification response: %w", err)
	}

	return &ports.EmploymentRecord{
		Successful: body.Successful,
		Employed:   body.Employed,
		Message:    body.Message,
		Employer:   body.Employer,
	}, nil
}

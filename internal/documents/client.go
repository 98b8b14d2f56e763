package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"lendflow/internal/decision/ports"
	"lendflow/internal/domain"
)

// Client submits document sets to the validation service over HTTP.
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

type documentPayload struct {
	Type    string `json:"type"`
	FileRef string `json:"file_ref"`
}

type validateRequest struct {
	Documents []documentPayload `json:"documents"`
}

type validateResponse struct {
	Valid            bool     `json:"valid"`
	Message          string   `json:"message"`
	MissingDocuments []string `json:"missing_documents"`
}

func (c *Client) ValidateDocuments(ctx context.Context, docs []domain.Document) (*ports.DocumentResult, error) {
	payload := validateRequest{Documents: make([]documentPayload, 0, len(docs))}
	for _, doc := range docs {
		payload.Documents = append(payload.Documents, documentPayload{
			Type:    string(doc.Type),
			FileRef: doc.FileRef,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal validation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/validate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build validation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("document validation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("document service returned status %d", resp.StatusCode)
	}

	var out validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode validation response: %w", err)
	}

	return &ports.DocumentResult{
		Valid:            out.Valid,
		Message:          out.Message,
		MissingDocuments: out.MissingDocuments,
	}, nil
}

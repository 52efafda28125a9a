package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/example/storefinder/internal/core/record"
	"github.com/example/storefinder/internal/ports/secondary"
)

// DefaultHTTPTimeout bounds a single fetch when no client is supplied.
const DefaultHTTPTimeout = 30 * time.Second

// HTTPSource fetches the store list with a single GET request.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates an HTTPSource for url. A nil client uses a default
// client with DefaultHTTPTimeout.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	return &HTTPSource{url: url, client: client}
}

// Timeout returns the per-request limit of the underlying client.
func (s *HTTPSource) Timeout() time.Duration {
	return s.client.Timeout
}

// Fetch GETs the URL and decodes the body. Transport failures are network
// errors, non-2xx responses are status errors, bad bodies are parse errors.
func (s *HTTPSource) Fetch(ctx context.Context) ([]record.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, record.NewLoadError(record.LoadErrorNetwork, s.url, fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, record.NewLoadError(record.LoadErrorNetwork, s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, record.NewStatusError(s.url, resp.StatusCode)
	}

	return DecodeRecords(resp.Body, s.url)
}

// Describe returns the URL.
func (s *HTTPSource) Describe() string {
	return s.url
}

// Ensure HTTPSource implements the interface.
var _ secondary.RecordSource = (*HTTPSource)(nil)

// Package fetch performs the single GET + JSON decode both upstream APIs
// need and classifies failures into network and parse errors.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single request when the caller did not supply a client.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response body is kept for the error message.
const maxErrorBody = 512

// NetworkError reports a transport failure or a non-success HTTP status.
type NetworkError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Body       string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("GET %s: HTTP error, status: %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a response body that is not the expected JSON.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("GET %s: JSON parse error: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Client issues JSON GET requests.
type Client struct {
	http *http.Client
}

// NewClient returns a Client. A nil httpClient gets one with DefaultTimeout.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{http: httpClient}
}

// GetJSON fetches url and decodes the body into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &NetworkError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Err:        fmt.Errorf("%s", resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{URL: url, Err: fmt.Errorf("body read error: %w", err)}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &ParseError{URL: url, Err: err}
	}
	return nil
}

// ABOUTME: Standard HTTP client implementation with browser identity headers
// ABOUTME: Single-attempt GET with context timeout support, no retries

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"linkpreview-api/core/interfaces"
)

const (
	// userAgent identifies as a conventional desktop browser. Many servers
	// silently reject bare library clients with error pages or alternate
	// content that would corrupt extraction; the browser identity is a
	// deliberate policy of this client, not an accident.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

	// acceptHeader mirrors what a browser sends for a top-level navigation
	acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8"
)

// StandardHTTPClient implements the HTTPClient interface using the standard
// library. Requests are made exactly once; resilience policy belongs to the
// caller, not the transport.
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// The timeout is a hard cap covering connection, TLS handshake and body
// transfer. Redirects follow the transport default (capped at 10 hops).
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs a single HTTP GET request with browser identity headers
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}

// ABOUTME: Resolver service that turns a validated URL into preview metadata
// ABOUTME: Bounded fetch, tolerant HTML parse, ordered fallback extraction, degrade-to-null

package resolver

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/url"
	"time"

	"linkpreview-api/core/domain"
	coreerrors "linkpreview-api/core/errors"
	"linkpreview-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

const (
	// DefaultFetchTimeout bounds connect, TLS handshake and body transfer
	DefaultFetchTimeout = 10 * time.Second

	// DefaultMaxBodySize caps how much of a response body is read for parsing
	DefaultMaxBodySize = 5 * 1024 * 1024
)

// outcomeKind classifies the result of the fetch phase
type outcomeKind int

const (
	outcomeSuccess outcomeKind = iota
	outcomeHTTPError
	outcomeNetworkError
	outcomeTimeout
)

// fetchOutcome is the ephemeral result of the network phase
type fetchOutcome struct {
	kind        outcomeKind
	statusCode  int
	body        []byte
	contentType string
	err         error
}

// Service resolves preview metadata for remote URLs. It never returns an
// error: every fetch, parse or extraction failure degrades to a null
// thumbnail. A Service is stateless and safe for concurrent use.
type Service struct {
	deps        interfaces.Dependencies
	sources     []ExtractionSource
	timeout     time.Duration
	maxBodySize int64
}

// Option configures a Service
type Option func(*Service)

// WithSources replaces the default fallback chain
func WithSources(sources []ExtractionSource) Option {
	return func(s *Service) {
		s.sources = sources
	}
}

// WithTimeout overrides the wall-clock fetch timeout
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.timeout = d
	}
}

// WithMaxBodySize overrides the response body read cap
func WithMaxBodySize(n int64) Option {
	return func(s *Service) {
		s.maxBodySize = n
	}
}

// NewService creates a resolver service with the default source chain
func NewService(deps interfaces.Dependencies, opts ...Option) *Service {
	s := &Service{
		deps:        deps,
		sources:     DefaultSources(),
		timeout:     DefaultFetchTimeout,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve fetches targetURL and extracts a preview image URL from its
// metadata. The single degradation boundary lives here: whatever goes wrong
// downstream, the caller gets a well-formed result with a null thumbnail.
func (s *Service) Resolve(ctx context.Context, targetURL string) domain.ResolutionResult {
	outcome := s.fetch(ctx, targetURL)
	if outcome.kind != outcomeSuccess {
		s.logDegrade(targetURL, outcome)
		return domain.NoThumbnail()
	}

	doc, err := parseDocument(outcome.body, outcome.contentType)
	if err != nil {
		s.deps.Logger.Debug("Failed to parse response body", map[string]interface{}{
			"url":   targetURL,
			"error": err.Error(),
		})
		return domain.NoThumbnail()
	}

	value, source := extractFirst(doc, s.sources)
	if value == "" {
		s.deps.Logger.Debug("No preview source matched", map[string]interface{}{
			"url": targetURL,
		})
		return domain.NoThumbnail()
	}

	s.deps.Logger.Debug("Extracted preview image", map[string]interface{}{
		"url":    targetURL,
		"source": source,
	})
	return domain.Thumbnail(value)
}

// fetch performs the single bounded GET and classifies the outcome.
// No retries: this is a synchronous user-facing path and a second attempt
// against a blocking server only adds latency.
func (s *Service) fetch(ctx context.Context, targetURL string) fetchOutcome {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.deps.HTTPClient.Get(ctx, targetURL)
	if err != nil {
		if isTimeout(err) {
			return fetchOutcome{kind: outcomeTimeout, err: err}
		}
		return fetchOutcome{kind: outcomeNetworkError, err: err}
	}
	defer resp.Body().Close()

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		return fetchOutcome{
			kind:       outcomeHTTPError,
			statusCode: status,
			err: &coreerrors.ExternalAPIError{
				StatusCode: status,
				Message:    "non-success status",
				Host:       hostOf(targetURL),
			},
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), s.maxBodySize))
	if err != nil {
		if isTimeout(err) {
			return fetchOutcome{kind: outcomeTimeout, err: err}
		}
		return fetchOutcome{kind: outcomeNetworkError, err: err}
	}

	return fetchOutcome{
		kind:        outcomeSuccess,
		statusCode:  status,
		body:        body,
		contentType: resp.Header("Content-Type"),
	}
}

// parseDocument parses the body tolerantly as HTML. Content-Type is used
// only as a charset hint, never to reject the body: mislabeled servers are
// common and a best-effort parse beats a premature rejection. Binary input
// simply yields a document with no matching elements.
func parseDocument(body []byte, contentType string) (*goquery.Document, error) {
	var r io.Reader = bytes.NewReader(body)
	if cr, err := charset.NewReader(bytes.NewReader(body), contentType); err == nil {
		r = cr
	}
	return goquery.NewDocumentFromReader(r)
}

// isTimeout reports whether err is a deadline or timeout class failure
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// hostOf extracts the host for log context; the URL was already validated
func hostOf(targetURL string) string {
	u, err := url.Parse(targetURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// logDegrade records a fetch-phase failure with fields matching its kind
func (s *Service) logDegrade(targetURL string, outcome fetchOutcome) {
	fields := map[string]interface{}{
		"url": targetURL,
	}
	if outcome.err != nil {
		fields["error"] = outcome.err.Error()
	}

	switch outcome.kind {
	case outcomeTimeout:
		s.deps.Logger.Debug("Fetch timed out", fields)
	case outcomeHTTPError:
		fields["status"] = outcome.statusCode
		s.deps.Logger.Debug("Server returned non-success status", fields)
	default:
		s.deps.Logger.Debug("Fetch failed", fields)
	}
}

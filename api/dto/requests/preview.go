// ABOUTME: Request DTOs for preview-related API endpoints
// ABOUTME: Provides validation for incoming resolution requests

package requests

import (
	"net/url"

	coreerrors "linkpreview-api/core/errors"
)

// PreviewRequest represents the request body for resolving a single URL
type PreviewRequest struct {
	// URL is the page to resolve preview metadata for
	URL string `json:"url"`
}

// Validate checks that the URL is present and parses as an absolute
// http/https URL. This is the only gate before network I/O; everything
// past it degrades instead of failing.
func (r *PreviewRequest) Validate() error {
	if r.URL == "" {
		return &coreerrors.ValidationError{Field: "url", Message: "URL is required"}
	}
	if !isAbsoluteHTTPURL(r.URL) {
		return &coreerrors.ValidationError{Field: "url", Message: "Invalid URL"}
	}
	return nil
}

// BatchPreviewRequest represents the request body for resolving multiple URLs
type BatchPreviewRequest struct {
	// URLs is the list of pages to resolve preview metadata for
	URLs []string `json:"urls"`
}

// Validate checks that at least one URL was supplied. Individual entries are
// not validated here: a bad element degrades to a null result in the batch
// rather than failing the whole call.
func (r *BatchPreviewRequest) Validate() error {
	if len(r.URLs) == 0 {
		return &coreerrors.ValidationError{Field: "urls", Message: "No URLs provided"}
	}
	return nil
}

// IsResolvable reports whether a batch entry would pass single-request
// validation
func IsResolvable(rawURL string) bool {
	return rawURL != "" && isAbsoluteHTTPURL(rawURL)
}

func isAbsoluteHTTPURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

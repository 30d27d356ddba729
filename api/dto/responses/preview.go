// ABOUTME: Response DTOs for preview-related API endpoints
// ABOUTME: Defines the wire shapes for single, batch and error responses

package responses

// PreviewResponse is the body returned for a single resolution.
// ThumbnailURL is null whenever no preview image could be determined.
type PreviewResponse struct {
	// ThumbnailURL is the extracted preview image URL, or null
	ThumbnailURL *string `json:"thumbnailUrl"`
}

// BatchPreviewEntry pairs an input URL with its resolution outcome
type BatchPreviewEntry struct {
	// URL is the input URL this entry corresponds to
	URL string `json:"url"`

	// ThumbnailURL is the extracted preview image URL, or null
	ThumbnailURL *string `json:"thumbnailUrl"`
}

// BatchPreviewResponse is the body returned for a batch resolution,
// in input order
type BatchPreviewResponse struct {
	// Results holds one entry per input URL
	Results []BatchPreviewEntry `json:"results"`
}

// ErrorResponse is the body returned for client errors
type ErrorResponse struct {
	// Error is a short human-readable message
	Error string `json:"error"`
}

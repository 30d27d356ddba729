// ABOUTME: Domain models for link preview resolution
// ABOUTME: ResolutionResult is the only externally observable output of the resolver

package domain

// ResolutionResult holds the outcome of resolving preview metadata for a URL.
// ThumbnailURL is nil when no preview image could be determined; that is a
// normal outcome, not an error.
type ResolutionResult struct {
	// ThumbnailURL is the extracted preview image URL, or nil if none was found
	ThumbnailURL *string `json:"thumbnailUrl"`
}

// Thumbnail builds a ResolutionResult carrying the given image URL
func Thumbnail(url string) ResolutionResult {
	return ResolutionResult{ThumbnailURL: &url}
}

// NoThumbnail builds the degraded ResolutionResult with a null thumbnail
func NoThumbnail() ResolutionResult {
	return ResolutionResult{}
}

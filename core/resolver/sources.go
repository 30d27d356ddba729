// ABOUTME: Declarative extraction source table for preview image discovery
// ABOUTME: Each source is a (selector, attribute) pair tried in priority order

package resolver

import (
	"github.com/PuerkitoBio/goquery"
)

// ExtractionSource is a named rule that reads one attribute from the first
// matching element of a parsed document. Sources are tried in slice order;
// the first non-empty value wins.
type ExtractionSource struct {
	// Name identifies the source in logs
	Name string

	// Selector is the goquery/CSS selector locating candidate elements
	Selector string

	// Attr is the attribute read from the first matching element
	Attr string
}

// DefaultSources returns the standard fallback chain, highest priority first.
// The returned slice is a fresh copy; callers may reorder or extend it.
func DefaultSources() []ExtractionSource {
	return []ExtractionSource{
		{Name: "og:image", Selector: `meta[property="og:image"]`, Attr: "content"},
		{Name: "twitter:image", Selector: `meta[name="twitter:image"]`, Attr: "content"},
		{Name: "twitter:image-property", Selector: `meta[property="twitter:image"]`, Attr: "content"},
		{Name: "meta-image", Selector: `meta[name="image"]`, Attr: "content"},
		{Name: "image_src", Selector: `link[rel="image_src"]`, Attr: "href"},
	}
}

// Extract reads the source's attribute from the first matching element in
// document order. Returns an empty string when no element matches or the
// attribute is absent or empty. The value is returned as-is: relative URLs
// are not resolved against the document base and no validation is applied.
func (s ExtractionSource) Extract(doc *goquery.Document) string {
	val, ok := doc.Find(s.Selector).First().Attr(s.Attr)
	if !ok {
		return ""
	}
	return val
}

// extractFirst runs the fallback chain against a parsed document and returns
// the winning value and source name, or empty strings when every source misses.
func extractFirst(doc *goquery.Document, sources []ExtractionSource) (value, source string) {
	for _, s := range sources {
		if v := s.Extract(doc); v != "" {
			return v, s.Name
		}
	}
	return "", ""
}

package blotter

import "context"

// Fetcher retrieves a published document.
type Fetcher interface {
	// Fetch downloads the resource at url and returns the raw body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// Decoder converts raw document bytes into plain text, one string per page.
type Decoder interface {
	Decode(ctx context.Context, data []byte) ([]string, error)
}

// LinkResolver finds the incident summary document linked from an HTML
// listing page. Returns ENOTFOUND if the page links no summary.
type LinkResolver interface {
	Resolve(html string, baseURL string) (string, error)
}

// SkippedChunk describes a piece of page text that could not be turned
// into an incident.
type SkippedChunk struct {
	Page  int // 1-based
	Chunk string
	Err   error
}

// ParseResult holds the outcome of parsing a decoded document.
type ParseResult struct {
	Incidents []*Incident
	Skipped   []SkippedChunk
}

// Parser turns decoded page text into incidents.
type Parser interface {
	Parse(pages []string) *ParseResult
}

// Package goquery finds the incident summary document on an HTML listing
// page using github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/blotter"
)

// DefaultMarker identifies summary documents by their file name.
const DefaultMarker = "incident_summary"

// Ensure Resolver implements blotter.LinkResolver at compile time.
var _ blotter.LinkResolver = (*Resolver)(nil)

// Resolver picks the first anchor on a page that links a PDF whose file
// name contains the marker. Listing pages put the most recent report first.
type Resolver struct {
	marker string
}

// NewResolver creates a Resolver matching DefaultMarker.
func NewResolver() *Resolver {
	return &Resolver{marker: DefaultMarker}
}

// Resolve returns the absolute URL of the summary document linked from html.
func (r *Resolver) Resolve(html string, baseURL string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", blotter.Errorf(blotter.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", blotter.Errorf(blotter.EINVALID, "failed to parse HTML: %v", err)
	}

	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return true
		}

		name := strings.ToLower(path.Base(ref.Path))
		if !strings.HasSuffix(name, ".pdf") || !strings.Contains(name, r.marker) {
			return true
		}

		found = base.ResolveReference(ref).String()
		return false
	})

	if found == "" {
		return "", blotter.Errorf(blotter.ENOTFOUND, "no incident summary linked from %s", baseURL)
	}
	return found, nil
}

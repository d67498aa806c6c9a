// Package pdf implements blotter.Decoder for PDF documents using
// github.com/ledongthuc/pdf.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/fwojciec/blotter"
	"github.com/ledongthuc/pdf"
)

// Ensure Decoder implements blotter.Decoder at compile time.
var _ blotter.Decoder = (*Decoder)(nil)

// Decoder extracts text from a PDF one page at a time. Each page becomes
// one string holding its text in the order it was drawn, a line per
// baseline change, with words separated by single spaces.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode returns the text of every page in document order. Pages without
// content decode to an empty string so page positions are preserved.
func (d *Decoder) Decode(ctx context.Context, data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty PDF content")
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	n := r.NumPage()
	if n == 0 {
		return nil, fmt.Errorf("pdf has no pages")
	}

	pages := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := pageText(page)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, text)
	}

	return pages, nil
}

// pageText renders a page in content-stream order, the order the
// publisher wrote its cells in. A change of baseline starts a new line and
// a horizontal jump between glyphs becomes a space, so a cell that wraps
// onto a second line stays with the rest of its record. The pdf package
// panics on some malformed content streams; that is reported as an error.
func pageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed page content: %v", r)
		}
	}()

	glyphs := page.Content().Text

	var b strings.Builder
	for i, g := range glyphs {
		if i > 0 {
			prev := glyphs[i-1]
			size := prev.FontSize
			if size <= 0 {
				size = 1
			}
			switch {
			case math.Abs(g.Y-prev.Y) > size/2:
				b.WriteByte('\n')
			case math.Abs(g.X-(prev.X+prev.W)) > size*0.15:
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
	}

	return normalizeLines(b.String()), nil
}

// normalizeLines collapses runs of spaces within each line and drops blank
// lines. Every kept line ends in a newline.
func normalizeLines(s string) string {
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		b.WriteString(strings.Join(words, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

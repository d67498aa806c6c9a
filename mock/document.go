package mock

import (
	"context"

	"github.com/fwojciec/blotter"
)

var _ blotter.Decoder = (*Decoder)(nil)

// Decoder is a mock implementation of blotter.Decoder.
type Decoder struct {
	DecodeFn func(ctx context.Context, data []byte) ([]string, error)
}

func (d *Decoder) Decode(ctx context.Context, data []byte) ([]string, error) {
	return d.DecodeFn(ctx, data)
}

var _ blotter.Parser = (*Parser)(nil)

// Parser is a mock implementation of blotter.Parser.
type Parser struct {
	ParseFn func(pages []string) *blotter.ParseResult
}

func (p *Parser) Parse(pages []string) *blotter.ParseResult {
	return p.ParseFn(pages)
}

var _ blotter.LinkResolver = (*LinkResolver)(nil)

// LinkResolver is a mock implementation of blotter.LinkResolver.
type LinkResolver struct {
	ResolveFn func(html string, baseURL string) (string, error)
}

func (r *LinkResolver) Resolve(html string, baseURL string) (string, error) {
	return r.ResolveFn(html, baseURL)
}

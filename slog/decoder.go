package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/blotter"
)

// Ensure LoggingDecoder implements blotter.Decoder.
var _ blotter.Decoder = (*LoggingDecoder)(nil)

// LoggingDecoder wraps a Decoder with logging.
type LoggingDecoder struct {
	next   blotter.Decoder
	logger *slog.Logger
}

// NewLoggingDecoder creates a new LoggingDecoder.
func NewLoggingDecoder(next blotter.Decoder, logger *slog.Logger) *LoggingDecoder {
	return &LoggingDecoder{next: next, logger: logger}
}

// Decode delegates to the wrapped decoder and logs the page count.
func (d *LoggingDecoder) Decode(ctx context.Context, data []byte) (pages []string, err error) {
	defer func(begin time.Time) {
		d.logger.Info("decode",
			"bytes", len(data),
			"pages", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Decode(ctx, data)
}

// Ensure LoggingParser implements blotter.Parser.
var _ blotter.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser and logs every skipped chunk.
type LoggingParser struct {
	next   blotter.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next blotter.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser.
func (p *LoggingParser) Parse(pages []string) *blotter.ParseResult {
	begin := time.Now()
	result := p.next.Parse(pages)

	for _, s := range result.Skipped {
		p.logger.Warn("skipped chunk",
			"page", s.Page,
			"chunk", s.Chunk,
			"err", s.Err,
		)
	}
	p.logger.Info("parse",
		"pages", len(pages),
		"incidents", len(result.Incidents),
		"skipped", len(result.Skipped),
		"duration", time.Since(begin),
	)
	return result
}

// Ensure LoggingLinkResolver implements blotter.LinkResolver.
var _ blotter.LinkResolver = (*LoggingLinkResolver)(nil)

// LoggingLinkResolver wraps a LinkResolver with logging.
type LoggingLinkResolver struct {
	next   blotter.LinkResolver
	logger *slog.Logger
}

// NewLoggingLinkResolver creates a new LoggingLinkResolver.
func NewLoggingLinkResolver(next blotter.LinkResolver, logger *slog.Logger) *LoggingLinkResolver {
	return &LoggingLinkResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the chosen link.
func (r *LoggingLinkResolver) Resolve(html string, baseURL string) (link string, err error) {
	defer func() {
		r.logger.Info("resolve link",
			"page", baseURL,
			"link", link,
			"err", err,
		)
	}()
	return r.next.Resolve(html, baseURL)
}

// Package extract turns the text of a daily incident summary into incidents.
//
// A page is trimmed according to its Layout, split into chunks at each
// record date, and every chunk is split into fixed fields. The tokens
// between the incident number and the ORI are partitioned into location
// and nature by a Classifier.
package extract

import (
	"github.com/fwojciec/blotter"
)

// Ensure Parser implements blotter.Parser at compile time.
var _ blotter.Parser = (*Parser)(nil)

// Parser extracts incidents from decoded page text.
type Parser struct {
	layout     Layout
	classifier *Classifier
}

// NewParser creates a Parser for the given layout and exception table.
func NewParser(layout Layout, ex Exceptions) *Parser {
	return &Parser{
		layout:     layout,
		classifier: NewClassifier(ex),
	}
}

// Parse extracts incidents from every page in order. Chunks that cannot be
// split into fields are reported in Skipped and do not stop the parse.
func (p *Parser) Parse(pages []string) *blotter.ParseResult {
	result := &blotter.ParseResult{}
	for i, text := range pages {
		for _, chunk := range p.layout.Chunks(text, i, len(pages)) {
			inc, err := p.ParseChunk(chunk)
			if err != nil {
				result.Skipped = append(result.Skipped, blotter.SkippedChunk{
					Page:  i + 1,
					Chunk: chunk,
					Err:   err,
				})
				continue
			}
			result.Incidents = append(result.Incidents, inc)
		}
	}
	return result
}

// ParseChunk builds an incident from a single record chunk.
func (p *Parser) ParseChunk(chunk string) (*blotter.Incident, error) {
	f, err := SplitFields(chunk)
	if err != nil {
		return nil, err
	}

	location, nature := p.classifier.Classify(f.Middle)
	if f.Overflow != "" {
		if location == "" {
			location = f.Overflow
		} else {
			location = f.Overflow + " " + location
		}
	}

	return &blotter.Incident{
		Time:     f.Time,
		Number:   f.Number,
		Location: location,
		Nature:   nature,
		ORI:      f.ORI,
	}, nil
}

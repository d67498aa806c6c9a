package extract

import (
	"regexp"
	"strings"
)

// datePattern marks the start of a record. Matches are leftmost and
// non-overlapping, so a two-digit month is a single boundary.
var datePattern = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`)

// SplitChunks splits page text into record chunks. Each chunk starts with
// the date that introduced it. Whitespace-only pieces are dropped and the
// remaining pieces keep their original text.
func SplitChunks(text string) []string {
	bounds := datePattern.FindAllStringIndex(text, -1)
	if len(bounds) == 0 {
		return nonBlank(nil, text)
	}

	var chunks []string
	chunks = nonBlank(chunks, text[:bounds[0][0]])
	for i, b := range bounds {
		end := len(text)
		if i+1 < len(bounds) {
			end = bounds[i+1][0]
		}
		chunks = nonBlank(chunks, text[b[0]:end])
	}
	return chunks
}

func nonBlank(chunks []string, s string) []string {
	if strings.TrimSpace(s) == "" {
		return chunks
	}
	return append(chunks, s)
}

package extract

import (
	"regexp"
	"strings"
)

// Layout describes where a page's records begin and end.
type Layout struct {
	// Strip patterns are removed from the first page before chunking,
	// wherever they occur.
	Strip []*regexp.Regexp

	// DropLastChunk discards the final chunk of the last page, which
	// carries the report footer.
	DropLastChunk bool
}

// DefaultLayout returns the layout of the daily incident summary: a column
// header and department banner on the first page and a footer on the last.
func DefaultLayout() Layout {
	return Layout{
		Strip: []*regexp.Regexp{
			WordsPattern("Date", "/", "Time", "Incident", "Number", "Location", "Nature", "Incident", "ORI"),
			WordsPattern("NORMAN", "POLICE", "DEPARTMENT", "Daily", "Incident", "Summary", "(Public)"),
		},
		DropLastChunk: true,
	}
}

// WordsPattern matches words literally, in order, separated by any run of
// whitespace.
func WordsPattern(words ...string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(strings.Join(quoted, `\s+`))
}

// Chunks returns the record chunks of page index out of total pages.
// A single page document is both the first and the last page.
func (l Layout) Chunks(text string, index, total int) []string {
	if index == 0 {
		for _, re := range l.Strip {
			text = re.ReplaceAllString(text, " ")
		}
	}

	chunks := SplitChunks(strings.TrimSpace(text))

	if index == total-1 && l.DropLastChunk && len(chunks) > 0 {
		chunks = chunks[:len(chunks)-1]
	}
	return chunks
}

package extract

import (
	"strings"

	"github.com/fwojciec/blotter"
)

// Fields holds the positional parts of a record chunk.
type Fields struct {
	Date     string
	Time     string
	Number   string
	Overflow string   // characters past NumberLength glued to the number
	Middle   []string // location and nature tokens, unclassified
	ORI      string
}

// SplitFields tokenizes a chunk on whitespace and picks out the fixed
// fields. The date is kept for diagnostics only.
func SplitFields(chunk string) (Fields, error) {
	tokens := strings.Fields(chunk)
	if len(tokens) < 4 {
		return Fields{}, blotter.Errorf(blotter.EINVALID, "record has %d fields, want at least 4", len(tokens))
	}

	f := Fields{
		Date:   tokens[0],
		Time:   tokens[1],
		Number: tokens[2],
		Middle: tokens[3 : len(tokens)-1],
		ORI:    tokens[len(tokens)-1],
	}

	if r := []rune(f.Number); len(r) > blotter.NumberLength {
		f.Number = string(r[:blotter.NumberLength])
		f.Overflow = string(r[blotter.NumberLength:])
	}

	return f, nil
}

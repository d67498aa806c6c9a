package extract_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/blotter/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_Chunks(t *testing.T) {
	t.Parallel()

	layout := extract.DefaultLayout()

	t.Run("first page drops header and banner", func(t *testing.T) {
		t.Parallel()

		chunks := layout.Chunks(readPage(t, "first_page.txt"), 0, 3)

		require.Len(t, chunks, 7)
		assert.Equal(t, "1/17/2024 0:08 2024-00003584 608 S FLOOD AVE Check Area OK0140200\n", chunks[0])
		assert.Equal(t, "1/17/2024 1:16 2024-00003594 222 MCCULLOUGH ST Suspicious OK0140200", chunks[6])
	})

	t.Run("header rows in any order and spacing", func(t *testing.T) {
		t.Parallel()

		text := "NORMAN POLICE DEPARTMENT\nDaily Incident Summary (Public)\n" +
			"Date / Time\nIncident Number\nLocation\nNature\nIncident ORI\n" +
			"1/17/2024 0:08 2024-00003584 608 S FLOOD AVE Check Area OK0140200\n"

		chunks := layout.Chunks(text, 0, 2)

		assert.Equal(t, []string{"1/17/2024 0:08 2024-00003584 608 S FLOOD AVE Check Area OK0140200"}, chunks)
	})

	t.Run("middle page is chunked as is", func(t *testing.T) {
		t.Parallel()

		chunks := layout.Chunks(readPage(t, "middle_page.txt"), 1, 3)

		assert.Len(t, chunks, 6)
	})

	t.Run("last page loses its final chunk", func(t *testing.T) {
		t.Parallel()

		text := readPage(t, "last_page.txt")
		all := extract.SplitChunks(text)

		chunks := layout.Chunks(text, 2, 3)

		require.Len(t, all, 5)
		assert.Len(t, chunks, len(all)-1)
		assert.Equal(t, all[:len(all)-1], chunks)
	})

	t.Run("single page is both first and last", func(t *testing.T) {
		t.Parallel()

		text := "Date / Time Incident Number Location Nature Incident ORI\n" +
			"1/17/2024 0:08 2024-00003584 608 S FLOOD AVE Check Area OK0140200\n" +
			"1/18/2024 6:00\n" +
			"NORMAN POLICE DEPARTMENT Daily Incident Summary (Public)"

		chunks := layout.Chunks(text, 0, 1)

		assert.Equal(t, []string{"1/17/2024 0:08 2024-00003584 608 S FLOOD AVE Check Area OK0140200\n"}, chunks)
	})

	t.Run("empty last page", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, layout.Chunks("", 1, 2))
	})

	t.Run("custom layout keeps the footer", func(t *testing.T) {
		t.Parallel()

		custom := extract.Layout{
			Strip: []*regexp.Regexp{regexp.MustCompile(`CITY OF SOMEWHERE`)},
		}
		text := "CITY OF SOMEWHERE 1/17/2024 0:08 2024-00003584 X Y OK0140200"

		chunks := custom.Chunks(text, 0, 1)

		assert.Equal(t, []string{"1/17/2024 0:08 2024-00003584 X Y OK0140200"}, chunks)
	})
}

func TestWordsPattern(t *testing.T) {
	t.Parallel()

	re := extract.WordsPattern("Daily", "Incident", "Summary", "(Public)")

	assert.True(t, re.MatchString("Daily Incident\nSummary  (Public)"))
	assert.False(t, re.MatchString("Daily Incident Summary Public"))
}

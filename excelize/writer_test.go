package excelize_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/blotter"
	blotterxlsx "github.com/fwojciec/blotter/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriter_WriteIncidents(t *testing.T) {
	t.Parallel()

	t.Run("writes header and one row per incident", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "incidents.xlsx")
		w := blotterxlsx.NewWriter(path)

		err := w.WriteIncidents(context.Background(), []*blotter.Incident{
			{Time: "0:08", Number: "2024-00003584", Location: "608 S FLOOD AVE", Nature: "Check Area", ORI: "OK0140200"},
			{Time: "0:14", Number: "2024-00000871", Location: "941 HEATHER GLEN DR", Nature: "Medical Call Pd Requested", ORI: "14005"},
		})
		require.NoError(t, err)

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{blotterxlsx.Sheet}, f.GetSheetList())

		rows, err := f.GetRows(blotterxlsx.Sheet)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, blotterxlsx.Headers, rows[0])
		assert.Equal(t, []string{"0:08", "2024-00003584", "608 S FLOOD AVE", "Check Area", "OK0140200"}, rows[1])
		assert.Equal(t, []string{"0:14", "2024-00000871", "941 HEATHER GLEN DR", "Medical Call Pd Requested", "14005"}, rows[2])
	})

	t.Run("sizes columns to their content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "incidents.xlsx")
		require.NoError(t, blotterxlsx.NewWriter(path).WriteIncidents(context.Background(), nil))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		width, err := f.GetColWidth(blotterxlsx.Sheet, "C")
		require.NoError(t, err)
		assert.InDelta(t, 40.0, width, 0.01)

		width, err = f.GetColWidth(blotterxlsx.Sheet, "B")
		require.NoError(t, err)
		assert.InDelta(t, 16.0, width, 0.01)
	})

	t.Run("keeps empty cells in place", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "incidents.xlsx")

		err := blotterxlsx.NewWriter(path).WriteIncidents(context.Background(), []*blotter.Incident{
			{Time: "1:00", Number: "2024-00000001", ORI: "14005"},
		})
		require.NoError(t, err)

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		v, err := f.GetCellValue(blotterxlsx.Sheet, "E2")
		require.NoError(t, err)
		assert.Equal(t, "14005", v)
	})

	t.Run("writes only the header for no incidents", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "incidents.xlsx")

		require.NoError(t, blotterxlsx.NewWriter(path).WriteIncidents(context.Background(), nil))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows(blotterxlsx.Sheet)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}

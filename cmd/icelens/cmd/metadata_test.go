package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/icelens/icelens/internal/metaview"
)

func TestPrintView(t *testing.T) {
	defer resetOutputWriter()

	t.Run("renders rows", func(t *testing.T) {
		var buf bytes.Buffer
		setOutputWriter(&buf)

		printView(metaview.ViewResult{
			View: metaview.ViewProperties,
			Rows: &metaview.Rows{
				View:    metaview.ViewProperties,
				Columns: []string{"Key", "Value"},
				Records: [][]string{{"format", "PARQUET"}},
			},
		})

		out := buf.String()
		assert.Contains(t, out, "== properties ==")
		assert.Contains(t, out, "format")
		assert.Contains(t, out, "PARQUET")
	})

	t.Run("empty view shows no-data indicator", func(t *testing.T) {
		var buf bytes.Buffer
		setOutputWriter(&buf)

		printView(metaview.ViewResult{
			View: metaview.ViewRefs,
			Rows: &metaview.Rows{View: metaview.ViewRefs, Columns: []string{"Ref"}},
		})

		assert.Contains(t, buf.String(), "(no refs available)")
	})

	t.Run("failed view reported inline", func(t *testing.T) {
		var buf bytes.Buffer
		setOutputWriter(&buf)

		printView(metaview.ViewResult{
			View: metaview.ViewPartitions,
			Err:  &metaview.QueryError{View: metaview.ViewPartitions, Err: errors.New("table gone")},
		})

		out := buf.String()
		assert.Contains(t, out, "== partitions ==")
		assert.Contains(t, out, "unavailable")
		assert.Contains(t, out, "table gone")
	})
}

// Package render formats metadata rows, statistics and timelines for
// terminal display. All numeric formatting lives here; the core packages
// hand over raw values only.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// maxCellWidth caps a single cell so one long file path or summary map does
// not blow up the whole table.
const maxCellWidth = 60

// Table writes columns and records as a bordered ASCII table. Widths are
// computed with runewidth so multi-byte cell content lines up.
func Table(w io.Writer, columns []string, records [][]string) {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = runewidth.StringWidth(col)
	}
	for _, record := range records {
		for i, cell := range record {
			if i >= len(widths) {
				break
			}
			cw := runewidth.StringWidth(cell)
			if cw > maxCellWidth {
				cw = maxCellWidth
			}
			if cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	writeBorder(w, widths)
	writeRow(w, columns, widths)
	writeBorder(w, widths)
	for _, record := range records {
		writeRow(w, record, widths)
	}
	writeBorder(w, widths)
}

func writeBorder(w io.Writer, widths []int) {
	var b strings.Builder
	b.WriteByte('+')
	for _, width := range widths {
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteByte('+')
	}
	fmt.Fprintln(w, b.String())
}

func writeRow(w io.Writer, cells []string, widths []int) {
	var b strings.Builder
	b.WriteByte('|')
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if runewidth.StringWidth(cell) > maxCellWidth {
			cell = runewidth.Truncate(cell, maxCellWidth, "...")
		}
		b.WriteString(" " + runewidth.FillRight(cell, width) + " |")
	}
	fmt.Fprintln(w, b.String())
}

// NoData writes the indicator shown when a view or chart has nothing to
// display.
func NoData(w io.Writer, what string) {
	fmt.Fprintf(w, "  (no %s available)\n", what)
}

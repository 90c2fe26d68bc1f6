// Package grid renders directory entries as a fixed-column HTML table.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	tableOpen  = "<table><tr>"
	rowBreak   = "\n</tr>\n<tr>"
	tableClose = "\n</tr></table>"
)

// ErrInvalidLayout is returned when the column count or thumbnail width is not positive.
var ErrInvalidLayout = errors.New("invalid grid layout")

// Renderer lays out entries in rows of a fixed number of columns.
type Renderer struct {
	columns int
	width   string
}

// New creates a Renderer with the given column count and thumbnail width in pixels.
func New(columns, widthPx int) (*Renderer, error) {
	if columns < 1 {
		return nil, fmt.Errorf("%w: columns must be at least 1, got %d", ErrInvalidLayout, columns)
	}
	if widthPx < 1 {
		return nil, fmt.Errorf("%w: thumbnail width must be at least 1, got %d", ErrInvalidLayout, widthPx)
	}
	return &Renderer{
		columns: columns,
		width:   strconv.Itoa(widthPx),
	}, nil
}

// Columns returns the number of cells per row.
func (r *Renderer) Columns() int {
	return r.columns
}

// Rows returns the number of rows needed for n entries.
func (r *Renderer) Rows(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + r.columns - 1) / r.columns
}

// Render returns the table markup for entries, in the given order.
// The table shell opens the first row, so an empty listing still renders
// a well-formed table. A short final row is left unpadded.
func (r *Renderer) Render(entries []string) string {
	var b strings.Builder
	b.WriteString(tableOpen)

	for i, entry := range entries {
		if i > 0 && i%r.columns == 0 {
			b.WriteString(rowBreak)
		}
		r.writeCell(&b, entry)
	}

	b.WriteString(tableClose)
	return b.String()
}

func (r *Renderer) writeCell(b *strings.Builder, entry string) {
	b.WriteString("\n<td valign=\"bottom\">\n<img src=\"./")
	b.WriteString(entry)
	b.WriteString("\" width=\"")
	b.WriteString(r.width)
	b.WriteString("\"><br>\n")
	b.WriteString(entry)
	b.WriteString("\n</td>\n")
}

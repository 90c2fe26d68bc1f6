package grid

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
)

func cell(name string, width int) string {
	return fmt.Sprintf("\n<td valign=\"bottom\">\n<img src=\"./%s\" width=\"%d\"><br>\n%s\n</td>\n", name, width, name)
}

func mustNew(t *testing.T, columns, width int) *Renderer {
	t.Helper()
	r, err := New(columns, width)
	if err != nil {
		t.Fatalf("New(%d, %d) error = %v", columns, width, err)
	}
	return r
}

func TestNew_RejectsInvalidLayout(t *testing.T) {
	tests := []struct {
		name    string
		columns int
		width   int
	}{
		{"zero columns", 0, 200},
		{"negative columns", -1, 200},
		{"zero width", 4, 0},
		{"negative width", 4, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.columns, tt.width)
			if !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("New(%d, %d) error = %v, want ErrInvalidLayout", tt.columns, tt.width, err)
			}
		})
	}
}

func TestRender_EmptyShell(t *testing.T) {
	r := mustNew(t, 4, 200)

	got := r.Render(nil)
	want := "<table><tr>\n</tr></table>"
	if got != want {
		t.Errorf("Render(nil) = %q, want %q", got, want)
	}
	if strings.Contains(got, "<img") {
		t.Error("empty render should contain no image cells")
	}
}

func TestRender_TwoRowsWithShortFinalRow(t *testing.T) {
	r := mustNew(t, 3, 250)

	got := r.Render([]string{"a.png", "b.png", "c.png", "d.png"})
	want := "<table><tr>" +
		cell("a.png", 250) + cell("b.png", 250) + cell("c.png", 250) +
		"\n</tr>\n<tr>" +
		cell("d.png", 250) +
		"\n</tr></table>"

	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_RowAndCellCounts(t *testing.T) {
	tests := []struct {
		columns int
		entries int
		rows    int
	}{
		{1, 0, 0},
		{1, 1, 1},
		{1, 5, 5},
		{3, 3, 1},
		{3, 4, 2},
		{4, 8, 2},
		{4, 9, 3},
		{7, 2, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("N=%d k=%d", tt.columns, tt.entries), func(t *testing.T) {
			r := mustNew(t, tt.columns, 100)

			entries := make([]string, tt.entries)
			for i := range entries {
				entries[i] = fmt.Sprintf("img-%02d.png", i)
			}

			out := r.Render(entries)

			if got := strings.Count(out, "<td "); got != tt.entries {
				t.Errorf("cells = %d, want %d", got, tt.entries)
			}
			if got := r.Rows(tt.entries); got != tt.rows {
				t.Errorf("Rows(%d) = %d, want %d", tt.entries, got, tt.rows)
			}

			// Every row is closed exactly once and the shell always opens one.
			if got := strings.Count(out, "</tr>"); got != max(tt.rows, 1) {
				t.Errorf("closed rows = %d, want %d", got, max(tt.rows, 1))
			}
			if strings.Count(out, "<tr>") != strings.Count(out, "</tr>") {
				t.Errorf("unbalanced rows in %q", out)
			}
			if !strings.HasSuffix(out, "</table>") {
				t.Errorf("output does not end with </table>: %q", out)
			}
		})
	}
}

func TestRender_PreservesOrder(t *testing.T) {
	r := mustNew(t, 2, 200)
	entries := []string{"zeta.png", "alpha.png", "mid.png"}

	out := r.Render(entries)

	var got []string
	for _, part := range strings.Split(out, "<img src=\"./")[1:] {
		got = append(got, part[:strings.Index(part, "\"")])
	}

	if !slices.Equal(got, entries) {
		t.Errorf("rendered order = %v, want %v", got, entries)
	}
}

func TestRender_CaptionIsFilename(t *testing.T) {
	r := mustNew(t, 4, 200)

	out := r.Render([]string{"my map (v2).jpg"})
	if !strings.Contains(out, "<img src=\"./my map (v2).jpg\" width=\"200\"><br>\nmy map (v2).jpg\n</td>") {
		t.Errorf("unexpected cell markup: %q", out)
	}
}

func TestRender_Deterministic(t *testing.T) {
	r := mustNew(t, 4, 200)
	entries := []string{"b.png", "a.png", "c.gif", "d.webp", "e.jpg"}

	if r.Render(entries) != r.Render(entries) {
		t.Error("Render() should be deterministic for the same input")
	}
}

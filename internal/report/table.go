// Package report renders query results as terminal tables.
package report

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// MaxCellWidth is the default cell truncation width.
const MaxCellWidth = 32

const ellipsis = "…"

// Table is a plain column-aligned table. Widths are measured in terminal
// cells so accented and wide runes line up.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	MaxCell int // 0 disables truncation
}

// NewTable creates an empty table.
func NewTable(title string, headers ...string) *Table {
	return &Table{Title: title, Headers: headers, MaxCell: MaxCellWidth}
}

// AddRow appends a row. Missing cells render empty; extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render writes the table to w using a renderer bound to w, so styling is
// dropped when w is not a terminal.
func (t *Table) Render(w io.Writer) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	header := r.NewStyle().Bold(true)
	muted := r.NewStyle().Faint(true)

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i := range widths {
			if cw := runewidth.StringWidth(t.cell(row, i)); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(title.Render(t.Title))
		sb.WriteString("\n")
	}
	sb.WriteString(header.Render(t.line(t.Headers, widths)))
	sb.WriteString("\n")

	total := 0
	for _, w := range widths {
		total += w
	}
	total += 2 * (len(widths) - 1)
	if total > 0 {
		sb.WriteString(muted.Render(strings.Repeat("-", total)))
		sb.WriteString("\n")
	}
	for _, row := range t.Rows {
		sb.WriteString(t.line(row, widths))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (t *Table) cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	if t.MaxCell <= 0 {
		return row[i]
	}
	return runewidth.Truncate(row[i], t.MaxCell, ellipsis)
}

func (t *Table) line(row []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = runewidth.FillRight(t.cell(row, i), w)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

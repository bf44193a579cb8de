package components

import (
	"slices"
	"strings"

	"github.com/bnema/vackup/internal/adapters/in/cli/ui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Column is a table column. Width counts the cell padding.
type Column struct {
	Title string
	Width int
}

const (
	cellPadding   = 1
	mountColumn   = 4
	minMountWidth = 12
)

// VolumeColumns are the columns of the volume table, in display order.
var VolumeColumns = []Column{
	{Title: "Driver", Width: 8},
	{Title: "Volume name", Width: 28},
	{Title: "Links", Width: 7},
	{Title: "Containers", Width: 24},
	{Title: "Mount point", Width: 40},
	{Title: "Size", Width: 10},
}

type tableConfig struct {
	selected int
	maxWidth int
}

// TableOption configures VolumeTable.
type TableOption func(*tableConfig)

// WithSelectedRow highlights the row at index idx. A negative index disables
// the highlight.
func WithSelectedRow(idx int) TableOption {
	return func(c *tableConfig) {
		c.selected = idx
	}
}

// WithMaxWidth narrows the mount point column so the table fits in w
// terminal cells. Zero means unbounded.
func WithMaxWidth(w int) TableOption {
	return func(c *tableConfig) {
		c.maxWidth = w
	}
}

// VolumeTable renders volume rows laid out as VolumeColumns.
func VolumeTable(rows [][]string, opts ...TableOption) string {
	cfg := tableConfig{selected: -1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return renderTable(fitColumns(VolumeColumns, cfg.maxWidth), rows, cfg.selected)
}

// fitColumns shrinks the mount point column, never below minMountWidth,
// until one border cell per column plus the closing border fits maxWidth.
func fitColumns(cols []Column, maxWidth int) []Column {
	if maxWidth <= 0 || len(cols) <= mountColumn {
		return cols
	}

	total := 1
	for _, c := range cols {
		total += c.Width + 1
	}
	over := total - maxWidth
	if over <= 0 {
		return cols
	}

	fitted := slices.Clone(cols)
	fitted[mountColumn].Width = max(fitted[mountColumn].Width-over, minMountWidth)
	return fitted
}

func renderTable(cols []Column, rows [][]string, selected int) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.ColorPrimary).
		Padding(0, cellPadding)
	cellStyle := lipgloss.NewStyle().
		Foreground(styles.ColorText).
		Padding(0, cellPadding)
	selStyle := styles.Theme.TableRowSelected.
		Padding(0, cellPadding)

	contentWidth := func(col int) int {
		if col < 0 || col >= len(cols) || cols[col].Width == 0 {
			return 0
		}
		return max(cols[col].Width-2*cellPadding, 1)
	}

	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = truncateCell(col.Title, contentWidth(i))
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(row))
		for c, cell := range row {
			cells[r][c] = truncateCell(cell, contentWidth(c))
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.ColorBorder)).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cellStyle
			switch {
			case row == table.HeaderRow:
				s = headerStyle
			case row == selected:
				s = selStyle
			}
			if col >= 0 && col < len(cols) && cols[col].Width > 0 {
				return s.Width(cols[col].Width).MaxWidth(cols[col].Width)
			}
			return s
		}).
		String()
}

// truncateCell shortens value to maxWidth display cells, ending it with an
// ellipsis. Styled input is returned as is.
func truncateCell(value string, maxWidth int) string {
	if strings.Contains(value, "\x1b[") {
		return value
	}

	if maxWidth <= 0 || runewidth.StringWidth(value) <= maxWidth {
		return value
	}

	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}

	targetWidth := maxWidth - 3
	b := strings.Builder{}
	currentWidth := 0
	g := uniseg.NewGraphemes(value)
	for g.Next() {
		grapheme := g.Str()
		graphemeWidth := runewidth.StringWidth(grapheme)
		if currentWidth+graphemeWidth > targetWidth {
			break
		}
		b.WriteString(grapheme)
		currentWidth += graphemeWidth
	}

	if b.Len() == 0 {
		return strings.Repeat(".", maxWidth)
	}

	return b.String() + "..."
}

package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/natal/config"
)

func formatGrid(rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := displayWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

// Translated cells may contain wide runes (ko, ru), so byte or rune
// counts would misalign columns.
func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}

// Renderer writes reports as fixed-width text, styled with a resolved
// theme palette.
type Renderer struct {
	titleStyle lipgloss.Style
	cellStyle  lipgloss.Style
}

// NewRenderer builds a renderer from a theme, typically Config.Theme().
func NewRenderer(theme config.Theme) *Renderer {
	return &Renderer{
		titleStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Foreground)).
			Bold(true),
		cellStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Dim)),
	}
}

// Render writes each entry as a title line followed by its aligned
// rows. Header-only entries produce just the title.
func (r *Renderer) Render(w io.Writer, report []StatData) error {
	for i, entry := range report {
		if i > 0 {
			if _, err := fmt.Fprintln(w, ""); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, r.titleStyle.Render(entry.Title)); err != nil {
			return err
		}
		for _, line := range formatGrid(entry.Grid, nil) {
			if _, err := fmt.Fprintln(w, r.cellStyle.Render(line)); err != nil {
				return err
			}
		}
	}
	return nil
}

package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/natal/config"
)

func TestFormatGridAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"a", "97.50%"},
		{"<space>", "8.00%"},
	}
	rightAlign := map[int]bool{1: true}

	lines := formatGrid(rows, rightAlign)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a        97.50%" {
		t.Fatalf("unexpected row line: %q", lines[0])
	}
	if lines[1] != "<space>   8.00%" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}

func TestFormatGridWideRunes(t *testing.T) {
	rows := [][]string{
		{"태양", "2"},
		{"a", "10"},
	}
	lines := formatGrid(rows, nil)
	if lines[0] != "태양  2" {
		t.Fatalf("unexpected wide-rune line: %q", lines[0])
	}
	if lines[1] != "a     10" {
		t.Fatalf("unexpected padded line: %q", lines[1])
	}
}

func TestFormatGridEmpty(t *testing.T) {
	if lines := formatGrid(nil, nil); lines != nil {
		t.Fatalf("expected nil for empty grid, got %v", lines)
	}
}

func TestRenderReport(t *testing.T) {
	report := []StatData{
		{Title: "Houses"},
		{Title: "Basic Info", Grid: [][]string{{"Sun", "Leo"}}},
	}
	var buf bytes.Buffer
	r := NewRenderer(config.DarkTheme())
	if err := r.Render(&buf, report); err != nil {
		t.Fatalf("render report: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Houses") {
		t.Fatalf("output missing section header: %q", out)
	}
	if !strings.Contains(out, "Sun  Leo") {
		t.Fatalf("output missing table row: %q", out)
	}
	// One blank line between entries.
	if got := strings.Count(out, "\n\n"); got != 1 {
		t.Fatalf("expected one blank separator, got %d in %q", got, out)
	}
}

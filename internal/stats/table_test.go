package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Label", "Accuracy", "Typed"}
	rows := [][]string{
		{"wpm", "97.50%", "12"},
		{"mistakes", "8.00%", "3"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := FormatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Label    Accuracy Typed" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "wpm        97.50%    12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "mistakes    8.00%     3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWithoutHeaders(t *testing.T) {
	lines := FormatTable(nil, [][]string{{"Time", "1.50s"}, {"WPM", "64"}}, map[int]bool{1: true})
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "Time 1.50s" || lines[1] != "WPM     64" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}

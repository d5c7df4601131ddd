package components

import (
	"strings"
	"testing"
)

func TestProgressBarCells(t *testing.T) {
	tests := []struct {
		name        string
		bar         ProgressBar
		filled, gap int
	}{
		{"empty", NewProgressBar("", 0, false, 20), 0, 20},
		{"half", NewProgressBar("", 50, false, 20), 10, 10},
		{"full", NewProgressBar("", 100, false, 20), 20, 0},
		{"overflow", NewProgressBar("", 150, false, 20), 20, 0},
		{"label and percent", NewProgressBar("Q 4/8", 50, true, 33), 10, 10},
		{"minimum width", NewProgressBar("", 100, false, 1), 4, 0},
	}

	for _, tt := range tests {
		filled, empty := tt.bar.Cells()
		if filled != tt.filled || empty != tt.gap {
			t.Errorf("%s: cells = (%d, %d), want (%d, %d)", tt.name, filled, empty, tt.filled, tt.gap)
		}
	}
}

func TestProgressBarView(t *testing.T) {
	view := NewProgressBar("Question 2/8", 25, true, 40).View()

	if !strings.Contains(view, "Question 2/8") {
		t.Errorf("view missing label: %q", view)
	}
	if !strings.Contains(view, "25%") {
		t.Errorf("view missing percent: %q", view)
	}
}

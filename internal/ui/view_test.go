package ui

import (
	"testing"

	"github.com/kk-code-lab/selscan/internal/search"
)

func TestRegionCovers(t *testing.T) {
	region := search.Region{Start: search.Point{Line: 2, Col: 3}, Stop: search.Point{Line: 4, Col: 2}}
	tests := []struct {
		name      string
		shape     search.Shape
		line, col int
		want      bool
	}{
		{"spanBeforeStartCol", search.ShapeSpan, 2, 2, false},
		{"spanAtStart", search.ShapeSpan, 2, 3, true},
		{"spanMiddleLineAnyCol", search.ShapeSpan, 3, 99, true},
		{"spanAfterStopCol", search.ShapeSpan, 4, 3, false},
		{"spanOutsideLines", search.ShapeSpan, 5, 1, false},
		{"linesIgnoreColumns", search.ShapeLines, 3, 999, true},
		{"blockInsideColumns", search.ShapeBlock, 3, 3, false},
		{"blockMiddleRow", search.ShapeBlock, 3, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := regionCovers(region, tt.shape, tt.line, tt.col); got != tt.want {
				t.Errorf("regionCovers(%v, %v, %d, %d) = %v, want %v",
					region, tt.shape, tt.line, tt.col, got, tt.want)
			}
		})
	}
}

func TestRegionCoversBlockRectangle(t *testing.T) {
	region := search.Region{Start: search.Point{Line: 1, Col: 2}, Stop: search.Point{Line: 3, Col: 4}}
	for line := 1; line <= 3; line++ {
		if regionCovers(region, search.ShapeBlock, line, 1) {
			t.Errorf("line %d col 1 should be outside the block", line)
		}
		for col := 2; col <= 4; col++ {
			if !regionCovers(region, search.ShapeBlock, line, col) {
				t.Errorf("line %d col %d should be inside the block", line, col)
			}
		}
		if regionCovers(region, search.ShapeBlock, line, 5) {
			t.Errorf("line %d col 5 should be outside the block", line)
		}
	}
}

func TestNumberGutterWidth(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{0, 3},
		{9, 3},
		{10, 4},
		{100, 5},
	}
	for _, tt := range tests {
		if got := numberGutterWidth(tt.lines); got != tt.want {
			t.Errorf("numberGutterWidth(%d) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}

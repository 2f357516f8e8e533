package search

import (
	"reflect"
	"testing"

	"github.com/kk-code-lab/selscan/internal/textbuf"
)

func testBuffer(id textbuf.ID, kind string, lines ...string) *textbuf.Buffer {
	return textbuf.New(id, "test", kind, lines)
}

func TestWindowBoundsPadsAndClamps(t *testing.T) {
	buf := testBuffer(1, "txt", "a", "b", "c", "d", "e", "f", "g", "h")
	tests := []struct {
		name        string
		top, bottom int
		pad         int
		wantFirst   int
		wantLast    int
		wantOK      bool
	}{
		{"interior", 3, 5, 1, 2, 6, true},
		{"clampTop", 1, 3, 2, 1, 5, true},
		{"clampBottom", 6, 8, 3, 3, 8, true},
		{"wholeBuffer", 1, 8, 0, 1, 8, true},
		{"staleRange", 20, 30, 2, 18, 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last, ok := windowBounds(textbuf.Window{Buf: buf, Top: tt.top, Bottom: tt.bottom}, tt.pad)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (first != tt.wantFirst || last != tt.wantLast) {
				t.Errorf("bounds = %d..%d, want %d..%d", first, last, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestScanWindowTranslatesToBufferCoordinates(t *testing.T) {
	buf := testBuffer(1, "txt",
		"nothing here",
		"nothing here",
		"needle",
		"nothing here",
		"needle",
	)
	p := buildPattern([]string{"needle"}, true)
	// visible range 4..5 with pad 1 reaches line 3 as well
	got := scanWindow(p, textbuf.Window{Buf: buf, Top: 4, Bottom: 5}, 1, false)
	want := []Match{
		{Region: Region{Point{3, 1}, Point{3, 6}}, Buffer: 1},
		{Region: Region{Point{5, 1}, Point{5, 6}}, Buffer: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("scanWindow = %v, want %v", got, want)
	}
}

func TestScanWindowMissesOutsidePaddedRange(t *testing.T) {
	buf := testBuffer(1, "txt", "needle", "x", "x", "x", "x", "x")
	p := buildPattern([]string{"needle"}, true)
	got := scanWindow(p, textbuf.Window{Buf: buf, Top: 4, Bottom: 6}, 1, false)
	if got != nil {
		t.Errorf("scanWindow = %v, want nil", got)
	}
}

func TestScanWindowCaseFolded(t *testing.T) {
	buf := testBuffer(1, "txt", "ŻÓŁW here", "żółw there")
	p := buildPattern([]string{"żółw"}, true)
	got := scanWindow(p, textbuf.Window{Buf: buf, Top: 1, Bottom: 2}, 0, true)
	want := []Match{
		{Region: Region{Point{1, 1}, Point{1, 4}}, Buffer: 1},
		{Region: Region{Point{2, 1}, Point{2, 4}}, Buffer: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("scanWindow = %v, want %v", got, want)
	}
}

func TestScanWindowCaseSensitiveByDefault(t *testing.T) {
	buf := testBuffer(1, "txt", "NEEDLE", "needle")
	p := buildPattern([]string{"needle"}, true)
	got := scanWindow(p, textbuf.Window{Buf: buf, Top: 1, Bottom: 2}, 0, false)
	want := []Match{
		{Region: Region{Point{2, 1}, Point{2, 6}}, Buffer: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("scanWindow = %v, want %v", got, want)
	}
}

func TestScanWindowMatchAcrossLineBoundary(t *testing.T) {
	buf := testBuffer(1, "txt", "alpha beta", "gamma", "alpha", "beta gamma")
	p := buildPattern([]string{"beta", "gamma"}, false)
	got := scanWindow(p, textbuf.Window{Buf: buf, Top: 1, Bottom: 4}, 0, false)
	want := []Match{
		{Region: Region{Point{1, 7}, Point{2, 5}}, Buffer: 1},
		{Region: Region{Point{4, 1}, Point{4, 10}}, Buffer: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("scanWindow = %v, want %v", got, want)
	}
}

// Package ui renders one buffer window with the active selection and the
// current match set highlighted. It only reads engine state; all match
// bookkeeping stays inside the search session.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/selscan/internal/search"
	"github.com/kk-code-lab/selscan/internal/textbuf"
	"github.com/kk-code-lab/selscan/internal/textutil"
)

// Frame is everything the view needs to draw one screen.
type Frame struct {
	Buf       *textbuf.Buffer
	Top       int // first visible buffer line
	Cursor    search.Point
	Selection search.Selection
	Selecting bool
	Blink     bool // emphasis phase of the active selection
	Matches   []search.Match
	Status    string
}

// View draws frames onto a tcell screen.
type View struct {
	screen   tcell.Screen
	theme    Theme
	tabWidth int
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen, theme: DefaultTheme(), tabWidth: textutil.DefaultTabWidth}
}

// TextRows reports how many buffer lines fit above the status line.
func (v *View) TextRows() int {
	_, h := v.screen.Size()
	return max(0, h-1)
}

// Render draws the frame and flushes it to the terminal.
func (v *View) Render(f Frame) {
	v.screen.Clear()
	w, h := v.screen.Size()
	if h < 1 {
		return
	}

	gutter := numberGutterWidth(f.Buf.LineCount())
	for y := 0; y < h-1; y++ {
		line := f.Top + y
		if line > f.Buf.LineCount() {
			break
		}
		v.drawLine(f, line, y, gutter, w)
	}
	v.drawStatus(f, w, h-1)
	v.screen.Show()
}

func (v *View) drawLine(f Frame, line, y, gutter, width int) {
	number := fmt.Sprintf("%*d ", gutter-1, line)
	x := 0
	for _, r := range number {
		v.screen.SetContent(x, y, r, nil, v.theme.LineNumber)
		x++
	}

	col := 0 // buffer column, 0-based
	for _, r := range f.Buf.Line(line) {
		cw := textutil.CellWidth(r, x-gutter, v.tabWidth)
		if x >= width {
			break
		}
		if f.Cursor.Line == line && f.Cursor.Col == col+1 {
			v.screen.ShowCursor(x, y)
		}
		style := v.styleAt(f, line, col+1)
		draw := textutil.DisplayRune(r)
		if draw == '\t' {
			for i := 0; i < cw && x < width; i++ {
				v.screen.SetContent(x, y, ' ', nil, style)
				x++
			}
		} else {
			v.screen.SetContent(x, y, draw, nil, style)
			x += cw
		}
		col++
	}

	if f.Cursor.Line == line && f.Cursor.Col == col+1 {
		// cursor past the last character
		v.screen.ShowCursor(x, y)
	}
}

// styleAt resolves the style of buffer position (line, col): the active
// selection wins over matches, matches over plain text.
func (v *View) styleAt(f Frame, line, col int) tcell.Style {
	if f.Selecting && regionCovers(f.Selection.Region, f.Selection.Shape, line, col) {
		if f.Blink {
			return v.theme.SelectionBlink
		}
		return v.theme.Selection
	}
	// block matches are rectangles; everything else is a span, even for a
	// lines-shaped selection, whose matches can start mid-line
	shape := search.ShapeSpan
	if f.Selecting && f.Selection.Shape == search.ShapeBlock {
		shape = search.ShapeBlock
	}
	for _, m := range f.Matches {
		if m.Buffer == f.Buf.ID() && regionCovers(m.Region, shape, line, col) {
			return v.theme.Match
		}
	}
	return v.theme.Text
}

// regionCovers reports whether a region covers the buffer position under
// the given shape semantics: lines cover whole lines, blocks cover the
// column range on every covered line, spans clip only at their end lines.
func regionCovers(r search.Region, shape search.Shape, line, col int) bool {
	if line < r.Start.Line || line > r.Stop.Line {
		return false
	}
	switch shape {
	case search.ShapeLines:
		return true
	case search.ShapeBlock:
		return col >= r.Start.Col && col <= r.Stop.Col
	default:
		if line == r.Start.Line && col < r.Start.Col {
			return false
		}
		if line == r.Stop.Line && col > r.Stop.Col {
			return false
		}
		return true
	}
}

func (v *View) drawStatus(f Frame, width, y int) {
	x := 0
	for _, r := range f.Status {
		if x >= width {
			break
		}
		v.screen.SetContent(x, y, r, nil, v.theme.Status)
		x += textutil.CellWidth(r, x, v.tabWidth)
	}
	for ; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, v.theme.Status)
	}
}

func numberGutterWidth(lineCount int) int {
	digits := 1
	for lineCount >= 10 {
		lineCount /= 10
		digits++
	}
	return digits + 2
}

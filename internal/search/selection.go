package search

import (
	"unicode/utf8"

	"github.com/kk-code-lab/selscan/internal/textbuf"
)

func runeLen(s string) int { return utf8.RuneCountInString(s) }

// Resolve builds a Selection from the raw anchor and cursor the host editor
// reports. Points are clamped into the buffer, ordered into document order,
// and the covered text is extracted per line according to the shape.
// An empty buffer yields a selection with no lines.
func Resolve(buf *textbuf.Buffer, shape Shape, anchor, cursor Point) Selection {
	sel := Selection{Shape: shape, Buffer: buf.ID(), Kind: buf.Kind()}
	if buf.LineCount() == 0 {
		return sel
	}

	anchor = clampPoint(buf, anchor)
	cursor = clampPoint(buf, cursor)
	start, stop := anchor, cursor
	if stop.Before(start) {
		start, stop = stop, start
	}

	switch shape {
	case ShapeLines:
		last := buf.Line(stop.Line)
		sel.Region = Region{
			Start: Point{start.Line, 1},
			Stop:  Point{stop.Line, max(1, runeLen(last))},
		}
		sel.Lines = buf.Slice(start.Line, stop.Line)
	case ShapeBlock:
		left, right := min(anchor.Col, cursor.Col), max(anchor.Col, cursor.Col)
		sel.Region = Region{
			Start: Point{start.Line, left},
			Stop:  Point{stop.Line, right},
		}
		rows := make([]string, 0, stop.Line-start.Line+1)
		for n := start.Line; n <= stop.Line; n++ {
			rows = append(rows, sliceColumns(buf.Line(n), left, right))
		}
		sel.Lines = rows
	default: // ShapeSpan
		sel.Region = Region{Start: start, Stop: stop}
		if start.Line == stop.Line {
			sel.Lines = []string{sliceColumns(buf.Line(start.Line), start.Col, stop.Col)}
			break
		}
		lines := make([]string, 0, stop.Line-start.Line+1)
		first := buf.Line(start.Line)
		lines = append(lines, sliceColumns(first, start.Col, runeLen(first)))
		for n := start.Line + 1; n < stop.Line; n++ {
			lines = append(lines, buf.Line(n))
		}
		lines = append(lines, sliceColumns(buf.Line(stop.Line), 1, stop.Col))
		sel.Lines = lines
	}
	return sel
}

func clampPoint(buf *textbuf.Buffer, p Point) Point {
	if p.Line < 1 {
		p.Line = 1
	}
	if n := buf.LineCount(); p.Line > n {
		p.Line = n
	}
	if p.Col < 1 {
		p.Col = 1
	}
	if limit := runeLen(buf.Line(p.Line)) + 1; p.Col > limit {
		p.Col = limit
	}
	return p
}

// sliceColumns returns the inclusive rune columns left..right of line,
// clamped to the line's content.
func sliceColumns(line string, left, right int) string {
	if left < 1 {
		left = 1
	}
	runes := []rune(line)
	if left > len(runes) {
		return ""
	}
	if right > len(runes) {
		right = len(runes)
	}
	if right < left {
		return ""
	}
	return string(runes[left-1 : right])
}

// Package search finds every occurrence of the active selection inside the
// visible parts of the open buffers. It turns a selection into a literal
// search pattern, scans a bounded slice of each candidate window, maps flat
// offsets back to line/column coordinates, and filters out the selection
// itself. Block (rectangular) selections go through a separate matcher.
package search

import (
	"github.com/kk-code-lab/selscan/internal/textbuf"
)

// Point is a 1-based position in a buffer. Col counts runes, not bytes and
// not display cells.
type Point struct {
	Line int
	Col  int
}

// Before reports whether p precedes q in document order.
func (p Point) Before(q Point) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Col < q.Col)
}

// Region is an inclusive start/stop span. Start never follows Stop.
type Region struct {
	Start Point
	Stop  Point
}

// Overlaps reports whether two regions share at least one position.
func (r Region) Overlaps(o Region) bool {
	return !r.Stop.Before(o.Start) && !o.Stop.Before(r.Start)
}

// Shape is the form of a selection.
type Shape int

const (
	// ShapeSpan is a contiguous character-wise selection.
	ShapeSpan Shape = iota
	// ShapeLines covers whole lines.
	ShapeLines
	// ShapeBlock covers a rectangular column range across lines.
	ShapeBlock
)

func (s Shape) String() string {
	switch s {
	case ShapeSpan:
		return "span"
	case ShapeLines:
		return "lines"
	case ShapeBlock:
		return "block"
	}
	return "unknown"
}

// Selection is the resolved form of the user's in-progress selection:
// its normalized region plus the exact covered text, one entry per covered
// line. For block selections Lines holds only the covered column slice of
// each row. Build one with Resolve.
type Selection struct {
	Shape  Shape
	Buffer textbuf.ID
	Kind   string
	Region Region
	Lines  []string
}

// CharCount is the total number of selected runes, line separators excluded.
func (s Selection) CharCount() int {
	n := 0
	for _, line := range s.Lines {
		n += runeLen(line)
	}
	return n
}

// Match is one located occurrence of the active selection. Matches carry no
// identity beyond their region; the whole set is recomputed on every event.
type Match struct {
	Region Region
	Buffer textbuf.ID
}

package search

import "unicode/utf8"

// positioner converts flat byte offsets into a joined line slice back to
// 1-based line/column points. Offsets must be supplied in ascending order:
// the cursor only ever advances, which keeps a full mapping pass linear in
// lines plus offsets instead of rescanning from the top for every match.
type positioner struct {
	lines     []string
	line      int // index of the line under the cursor
	lineStart int // flat offset of that line's first byte
}

func newPositioner(lines []string) *positioner {
	return &positioner{lines: lines}
}

// advanceTo moves the line cursor forward until it holds the line
// containing flat offset off. The +1 accounts for the newline separator
// between joined lines.
func (m *positioner) advanceTo(off int) {
	for m.line+1 < len(m.lines) && off >= m.lineStart+len(m.lines[m.line])+1 {
		m.lineStart += len(m.lines[m.line]) + 1
		m.line++
	}
}

// startPoint maps the first byte of a span to its point.
func (m *positioner) startPoint(start int) Point {
	m.advanceTo(start)
	prefix := m.lines[m.line][:start-m.lineStart]
	return Point{Line: m.line + 1, Col: 1 + utf8.RuneCountInString(prefix)}
}

// stopPoint maps a span's exclusive end offset to the inclusive point of
// its last rune. Patterns are trimmed, so a span never ends in a line
// separator and end-1 always lands inside the cursor line.
func (m *positioner) stopPoint(end int) Point {
	m.advanceTo(end - 1)
	prefix := m.lines[m.line][:end-m.lineStart]
	return Point{Line: m.line + 1, Col: utf8.RuneCountInString(prefix)}
}

// mapSpans rewrites ascending non-overlapping flat spans as regions against
// the line slice the haystack was joined from.
func mapSpans(lines []string, spans []flatSpan) []Region {
	if len(spans) == 0 {
		return nil
	}
	m := newPositioner(lines)
	regions := make([]Region, 0, len(spans))
	for _, sp := range spans {
		regions = append(regions, Region{
			Start: m.startPoint(sp.start),
			Stop:  m.stopPoint(sp.end),
		})
	}
	return regions
}

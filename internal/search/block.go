package search

import (
	"strings"

	"github.com/kk-code-lab/selscan/internal/textbuf"
)

// Block matching uses the full-rectangle policy: a candidate position
// matches only when every row of a height×width rectangle equals the
// corresponding selection row, compared after trimming surrounding
// whitespace. Matching is always literal; no whitespace collapsing and no
// case folding apply to block selections.

// blockShape is the prepared form of a rectangular selection: the trimmed
// per-row slices plus the rectangle's dimensions in rune columns.
type blockShape struct {
	rows   []string
	width  int
	height int
}

// prepareBlock derives the rectangle to search for from a block selection.
// It reports false for degenerate rectangles: empty, wider than maxWidth,
// or covering no text at all (every row slice empty).
func prepareBlock(sel Selection, maxWidth int) (blockShape, bool) {
	if len(sel.Lines) == 0 {
		return blockShape{}, false
	}
	width := sel.Region.Stop.Col - sel.Region.Start.Col + 1
	if width < 1 || (maxWidth > 0 && width > maxWidth) {
		return blockShape{}, false
	}

	rows := make([]string, len(sel.Lines))
	covered := false
	for i, row := range sel.Lines {
		rows[i] = strings.TrimSpace(row)
		if rows[i] != "" {
			covered = true
		}
	}
	if !covered {
		return blockShape{}, false
	}
	return blockShape{rows: rows, width: width, height: len(rows)}, true
}

// scanWindowBlock slides the rectangle over one candidate window and
// returns every full-rectangle occurrence in whole-buffer coordinates.
func scanWindowBlock(b blockShape, win textbuf.Window) []Match {
	first, last, ok := windowBounds(win, b.height)
	if !ok {
		return nil
	}
	lines := win.Buf.Slice(first, last)
	if len(lines) < b.height {
		return nil
	}

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}

	var matches []Match
	for top := 0; top+b.height <= len(rows); top++ {
		limit := len(rows[top])
		for left := 0; left < limit; {
			if !rectangleAt(b, rows, top, left) {
				left++
				continue
			}
			matches = append(matches, Match{
				Buffer: win.Buf.ID(),
				Region: Region{
					Start: Point{Line: first + top, Col: left + 1},
					Stop:  Point{Line: first + top + b.height - 1, Col: left + b.width},
				},
			})
			// keep rectangles on the same rows non-overlapping
			left += b.width
		}
	}
	return matches
}

// rectangleAt reports whether every selection row reappears at the given
// top-left corner. Rows shorter than the rectangle contribute their
// remaining text only; the trimmed comparison makes trailing shortfall
// equivalent to trailing whitespace.
func rectangleAt(b blockShape, rows [][]rune, top, left int) bool {
	for k := 0; k < b.height; k++ {
		row := rows[top+k]
		slice := ""
		if left < len(row) {
			end := min(left+b.width, len(row))
			slice = string(row[left:end])
		}
		if strings.TrimSpace(slice) != b.rows[k] {
			return false
		}
	}
	return true
}

package textutil

import (
	"github.com/mattn/go-runewidth"
)

const DefaultTabWidth = 4

// CellWidth returns the screen width of r when drawn at screen column col.
// Tabs expand to the next tab stop; zero-width runes still occupy one cell
// so every buffer column stays addressable.
func CellWidth(r rune, col, tabWidth int) int {
	if r == '\t' {
		if tabWidth <= 0 {
			tabWidth = DefaultTabWidth
		}
		return tabWidth - col%tabWidth
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	return w
}

// DisplayWidth reports the printable width of text with tabs expanded.
func DisplayWidth(text string, tabWidth int) int {
	col := 0
	for _, r := range text {
		col += CellWidth(r, col, tabWidth)
	}
	return col
}

// DisplayRune replaces control and invisible formatting runes with a
// visible placeholder so buffer text cannot corrupt the terminal grid.
// Tabs pass through; the renderer expands them itself.
func DisplayRune(r rune) rune {
	if r == '\t' {
		return r
	}
	if r < 0x20 || r == 0x7f {
		return '?'
	}
	if isFormattingRune(r) {
		return '?'
	}
	return r
}

func isFormattingRune(r rune) bool {
	switch {
	case r == 0x00AD || r == 0x061C || r == 0x180E || r == 0xFEFF:
		return true
	case r >= 0x200B && r <= 0x200F:
		return true
	case r >= 0x2028 && r <= 0x202E:
		return true
	case r >= 0x2060 && r <= 0x2069:
		return true
	case r >= 0x206A && r <= 0x206F:
		return true
	}
	return false
}

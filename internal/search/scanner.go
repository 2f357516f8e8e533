package search

import (
	"strings"

	"github.com/kk-code-lab/selscan/internal/textbuf"
)

// windowBounds pads the visible range by the selection's own line count,
// so an occurrence straddling the visible boundary by up to the selection's
// height is still found, and clamps the result to the buffer. This bound is
// what keeps scan cost proportional to screen size rather than document
// size.
func windowBounds(win textbuf.Window, pad int) (first, last int, ok bool) {
	first = max(1, win.Top-pad)
	last = min(win.Buf.LineCount(), win.Bottom+pad)
	return first, last, first <= last
}

// scanWindow finds every occurrence of the pattern inside one candidate
// window and returns the matches in whole-buffer coordinates. When fold is
// set, both the pattern and the window's text are case-folded; folding is
// rune-stable, so mapped columns stay valid for the unfolded buffer.
func scanWindow(p *pattern, win textbuf.Window, pad int, fold bool) []Match {
	first, last, ok := windowBounds(win, pad)
	if !ok {
		return nil
	}
	lines := win.Buf.Slice(first, last)

	src := p.src
	if fold {
		src = p.foldedSrc()
		lines = foldLines(lines)
	}

	spans := findAll(src, strings.Join(lines, "\n"))
	if len(spans) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(spans))
	for _, region := range mapSpans(lines, spans) {
		region.Start.Line += first - 1
		region.Stop.Line += first - 1
		matches = append(matches, Match{Region: region, Buffer: win.Buf.ID()})
	}
	return matches
}

func foldLines(lines []string) []string {
	folded := make([]string, len(lines))
	for i, line := range lines {
		folded[i] = foldCase(line)
	}
	return folded
}

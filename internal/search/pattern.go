package search

import (
	"regexp"
	"strings"
)

// whitespaceRun matches one or more whitespace characters of any kind the
// pattern source can contain, including the line separator. Collapsed
// whitespace in a pattern is rewritten to this token.
const whitespaceRun = `\s+`

// pattern is a literal search pattern built from a selection's text.
// The case-folded variant is computed at most once per pass and shared
// across every candidate window, since folding costs a full scan of the
// source.
type pattern struct {
	src       string
	folded    string
	hasFolded bool
}

// buildPattern turns the selection's covered lines into a regexp source
// that matches the text literally. Lines are joined with a single newline
// and the result is trimmed; a selection that is empty after trimming
// yields no pattern. Unless strictSpacing is set, every interior run of
// whitespace is collapsed into a wildcard matching any whitespace run,
// line breaks included.
func buildPattern(lines []string, strictSpacing bool) *pattern {
	trimmed := strings.TrimSpace(strings.Join(lines, "\n"))
	if trimmed == "" {
		return nil
	}
	src := regexp.QuoteMeta(trimmed)
	if !strictSpacing {
		src = collapseSpacing(src)
	}
	return &pattern{src: src}
}

// foldedSrc returns the case-folded pattern source, computing it lazily.
func (p *pattern) foldedSrc() string {
	if !p.hasFolded {
		p.folded = foldCase(p.src)
		p.hasFolded = true
	}
	return p.folded
}

// foldCase lowercases text rune by rune. The mapping is one rune to one
// rune, so folding never changes rune counts and column coordinates
// computed against folded text remain valid for the original.
func foldCase(text string) string {
	return strings.ToLower(text)
}

// collapseSpacing replaces every maximal run of whitespace in an escaped
// pattern source with the whitespace wildcard. QuoteMeta leaves whitespace
// bytes untouched, so runs can be found directly in the escaped text.
func collapseSpacing(src string) string {
	if !strings.ContainsAny(src, spacingChars) {
		return src
	}
	var b strings.Builder
	b.Grow(len(src))
	for i := 0; i < len(src); {
		if !isSpacingByte(src[i]) {
			b.WriteByte(src[i])
			i++
			continue
		}
		for i < len(src) && isSpacingByte(src[i]) {
			i++
		}
		b.WriteString(whitespaceRun)
	}
	return b.String()
}

// spacingChars is exactly the byte set the wildcard's \s class matches.
const spacingChars = "\t\n\f\r "

func isSpacingByte(b byte) bool {
	switch b {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

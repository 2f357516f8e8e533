package search

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// directSourceLimit caps the pattern size the direct path accepts.
	// Long patterns built from big selections over repetitive text are
	// exactly the inputs that make a single compiled scan degenerate, so
	// they are routed through the chunked fallback instead.
	directSourceLimit = 1000

	// chunkTargetSize is the split size of the chunked fallback. Chunk
	// boundaries are extended past escape sequences and whitespace
	// wildcards, so actual chunks can run slightly longer.
	chunkTargetSize = 100
)

// errOverload marks a pattern the direct matching path refuses to run.
var errOverload = errors.New("pattern overloads direct matcher")

// flatSpan is a half-open byte range into a flattened haystack.
type flatSpan struct {
	start int
	end   int
}

// findAll returns every non-overlapping occurrence of the pattern source in
// hay, scanning left to right; each search resumes immediately past the end
// of the previous match. The direct single-pass scan is tried first; the
// chunked scan runs only when the direct path rejects the pattern, never
// speculatively.
func findAll(src, hay string) []flatSpan {
	spans, err := findDirect(src, hay)
	if err == nil {
		return spans
	}
	return findChunked(src, hay)
}

func findDirect(src, hay string) ([]flatSpan, error) {
	if len(src) > directSourceLimit {
		return nil, errOverload
	}
	re, err := regexp.Compile(src)
	if err != nil {
		// Machine-built sources only fail to compile when they blow the
		// engine's size limits.
		return nil, errOverload
	}

	var spans []flatSpan
	at := 0
	for at <= len(hay) {
		loc := re.FindStringIndex(hay[at:])
		if loc == nil || loc[1] == loc[0] {
			break
		}
		spans = append(spans, flatSpan{at + loc[0], at + loc[1]})
		at += loc[1]
	}
	return spans, nil
}

// findChunked matches the pattern piecewise: the first chunk is searched
// freely, every following chunk must match anchored immediately after the
// previous chunk's end. A continuation failure abandons that starting
// position and the scan resumes one rune past it. This trades the inputs
// the direct path cannot handle for a bounded sequence of small scans; an
// occurrence whose first chunk does not independently match is missed,
// an accepted limitation of the fallback.
func findChunked(src, hay string) []flatSpan {
	chunks := splitSource(src, chunkTargetSize)
	if len(chunks) == 0 {
		return nil
	}

	head, err := regexp.Compile(chunks[0])
	if err != nil {
		return nil
	}
	rest := make([]*regexp.Regexp, 0, len(chunks)-1)
	for _, c := range chunks[1:] {
		re, err := regexp.Compile(`\A(?:` + c + `)`)
		if err != nil {
			return nil
		}
		rest = append(rest, re)
	}

	var spans []flatSpan
	at := 0
	for at <= len(hay) {
		loc := head.FindStringIndex(hay[at:])
		if loc == nil || loc[1] == loc[0] {
			break
		}
		start, end := at+loc[0], at+loc[1]

		matched := true
		for _, re := range rest {
			cont := re.FindStringIndex(hay[end:])
			if cont == nil {
				matched = false
				break
			}
			end += cont[1]
		}

		if matched {
			spans = append(spans, flatSpan{start, end})
			at = end
			continue
		}
		_, size := utf8.DecodeRuneInString(hay[start:])
		if size < 1 {
			size = 1
		}
		at = start + size
	}
	return spans
}

// splitSource cuts a pattern source into chunks of roughly size bytes.
// A cut never lands inside an escape sequence or a whitespace wildcard;
// the chunk is extended until the token clears.
func splitSource(src string, size int) []string {
	if size < 1 {
		size = 1
	}
	var chunks []string
	start := 0
	for start < len(src) {
		end := start
		for end < len(src) && end-start < size {
			end = nextToken(src, end)
		}
		chunks = append(chunks, src[start:end])
		start = end
	}
	return chunks
}

// nextToken returns the end of the pattern token starting at i: a
// whitespace wildcard, an escape sequence, or a single literal rune.
func nextToken(src string, i int) int {
	if src[i] == '\\' {
		if strings.HasPrefix(src[i:], whitespaceRun) {
			return i + len(whitespaceRun)
		}
		if i+1 < len(src) {
			_, size := utf8.DecodeRuneInString(src[i+1:])
			return i + 1 + size
		}
		return i + 1
	}
	_, size := utf8.DecodeRuneInString(src[i:])
	return i + size
}

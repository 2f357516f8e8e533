package textbuf

import (
	"path/filepath"
	"strings"
)

// ID identifies an open buffer for the lifetime of the process.
type ID int

// Buffer is an immutable, line-oriented view of a document. Line numbers
// are 1-based everywhere; accessors clamp out-of-range requests instead of
// failing, since a buffer can shrink between the event that referenced a
// line and the scan that reads it.
type Buffer struct {
	id    ID
	name  string
	kind  string
	lines []string
}

// New creates a buffer from pre-split lines. Lines must not contain
// line terminators.
func New(id ID, name, kind string, lines []string) *Buffer {
	return &Buffer{id: id, name: name, kind: kind, lines: lines}
}

func (b *Buffer) ID() ID       { return b.id }
func (b *Buffer) Name() string { return b.name }

// Kind is the document kind tag, derived from the file extension at load
// time. Used for per-kind case-folding rules and the same-kind window policy.
func (b *Buffer) Kind() string { return b.kind }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the 1-based line n, or "" when n is out of range.
func (b *Buffer) Line(n int) string {
	if n < 1 || n > len(b.lines) {
		return ""
	}
	return b.lines[n-1]
}

// Slice returns lines first..last inclusive, clamped to the buffer.
// The returned slice aliases the buffer's backing storage.
func (b *Buffer) Slice(first, last int) []string {
	if first < 1 {
		first = 1
	}
	if last > len(b.lines) {
		last = len(b.lines)
	}
	if first > last {
		return nil
	}
	return b.lines[first-1 : last]
}

// KindOf derives a document kind tag from a file path.
func KindOf(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "plain"
	}
	return ext
}

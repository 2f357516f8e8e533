package search

import (
	"fmt"

	"github.com/kk-code-lab/selscan/internal/textbuf"
)

// WindowPolicy names a built-in rule for choosing which open windows are
// scanned during a pass.
type WindowPolicy string

const (
	// PolicyCurrentOnly scans only the selection's own buffer.
	PolicyCurrentOnly WindowPolicy = "current-buffer-only"
	// PolicySameKind scans windows whose buffer kind matches the
	// selection's buffer kind.
	PolicySameKind WindowPolicy = "same-kind-as-current"
	// PolicyAllOpen scans every open window.
	PolicyAllOpen WindowPolicy = "all-open"
)

// CaseFoldRule decides which document kinds match case-insensitively:
// either all of them, or an explicit kind set.
type CaseFoldRule struct {
	All   bool
	Kinds map[string]bool
}

func (r CaseFoldRule) appliesTo(kind string) bool {
	return r.All || r.Kinds[kind]
}

// Config carries the engine's thresholds and policies. None of the values
// affect the matching algorithms themselves, only when they run and over
// which windows.
type Config struct {
	// MinSelectedChars is the lower bound on selected runes before any
	// matching happens.
	MinSelectedChars int
	// MaxSelectedLines is the upper bound on the selection's line count.
	MaxSelectedLines int
	// StrictSpacing disables whitespace-run collapsing in built patterns.
	StrictSpacing bool
	// CaseFold selects the document kinds that match case-insensitively.
	// A pass folds when either the selection's or the candidate window's
	// kind is covered.
	CaseFold CaseFoldRule
	// MaxBlockWidth rejects block selections wider than this many columns.
	MaxBlockWidth int
	// Policy picks candidate windows by name; Predicate, when non-nil,
	// overrides it with an arbitrary buffer filter.
	Policy    WindowPolicy
	Predicate func(textbuf.ID) bool
}

// DefaultConfig returns the thresholds the viewer starts with.
func DefaultConfig() Config {
	return Config{
		MinSelectedChars: 2,
		MaxSelectedLines: 200,
		MaxBlockWidth:    120,
		Policy:           PolicyAllOpen,
	}
}

// Validate rejects configurations the engine cannot act on. An unknown
// window policy is fatal at setup time, never silently ignored.
func (c Config) Validate() error {
	if c.Predicate == nil {
		switch c.Policy {
		case PolicyCurrentOnly, PolicySameKind, PolicyAllOpen:
		default:
			return fmt.Errorf("unknown candidate-window policy %q", string(c.Policy))
		}
	}
	if c.MinSelectedChars < 0 {
		return fmt.Errorf("min selected characters must not be negative, got %d", c.MinSelectedChars)
	}
	if c.MaxSelectedLines < 1 {
		return fmt.Errorf("max selected lines must be positive, got %d", c.MaxSelectedLines)
	}
	if c.MaxBlockWidth < 1 {
		return fmt.Errorf("max block width must be positive, got %d", c.MaxBlockWidth)
	}
	return nil
}

// ResolveWindows filters the open windows down to the candidates a pass
// should scan, according to the predicate or named policy.
func ResolveWindows(c Config, current *textbuf.Buffer, open []textbuf.Window) []textbuf.Window {
	keep := func(w textbuf.Window) bool {
		switch {
		case c.Predicate != nil:
			return c.Predicate(w.Buf.ID())
		case c.Policy == PolicyCurrentOnly:
			return w.Buf.ID() == current.ID()
		case c.Policy == PolicySameKind:
			return w.Buf.Kind() == current.Kind()
		default:
			return true
		}
	}

	var windows []textbuf.Window
	for _, w := range open {
		if w.Buf != nil && keep(w) {
			windows = append(windows, w)
		}
	}
	return windows
}

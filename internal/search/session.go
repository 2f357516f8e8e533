package search

import (
	"github.com/kk-code-lab/selscan/internal/textbuf"
)

// Session owns the active selection and the match set computed from it.
// The host calls Recompute synchronously from its event loop on every
// qualifying editor event; the previous match set is discarded wholesale
// and rebuilt, never diffed. A Session is not safe for concurrent use.
type Session struct {
	cfg     Config
	sel     Selection
	active  bool
	matches []Match
}

// NewSession validates the configuration and creates an idle session.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Session{cfg: cfg}, nil
}

func (s *Session) Config() Config { return s.cfg }

// Selection returns the active selection, if any.
func (s *Session) Selection() (Selection, bool) {
	return s.sel, s.active
}

// Matches returns the match set from the most recent recompute. Callers
// must treat the slice as read-only.
func (s *Session) Matches() []Match {
	return s.matches
}

// Clear drops the active selection and its matches, returning the session
// to idle.
func (s *Session) Clear() {
	s.sel = Selection{}
	s.active = false
	s.matches = nil
}

// Recompute replaces the active selection and rebuilds the match set from
// scratch against the given candidate windows. Selections below the
// character gate or above the line gate stay active but produce no
// matches, as do selections that are empty once trimmed.
func (s *Session) Recompute(sel Selection, windows []textbuf.Window) []Match {
	s.sel = sel
	s.active = true
	s.matches = nil

	if len(sel.Lines) == 0 ||
		sel.CharCount() < s.cfg.MinSelectedChars ||
		len(sel.Lines) > s.cfg.MaxSelectedLines {
		return nil
	}

	var matches []Match
	if sel.Shape == ShapeBlock {
		block, ok := prepareBlock(sel, s.cfg.MaxBlockWidth)
		if !ok {
			return nil
		}
		for _, win := range windows {
			matches = append(matches, scanWindowBlock(block, win)...)
		}
	} else {
		p := buildPattern(sel.Lines, s.cfg.StrictSpacing)
		if p == nil {
			return nil
		}
		pad := len(sel.Lines)
		for _, win := range windows {
			fold := s.cfg.CaseFold.appliesTo(sel.Kind) ||
				s.cfg.CaseFold.appliesTo(win.Buf.Kind())
			matches = append(matches, scanWindow(p, win, pad, fold)...)
		}
	}

	s.matches = dropSelfOverlap(matches, sel.Buffer, sel.Region)
	return s.matches
}

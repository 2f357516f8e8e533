package search

import "github.com/kk-code-lab/selscan/internal/textbuf"

// dropSelfOverlap removes matches that intersect the originating selection's
// own region. Comparison is at point granularity: a match sharing only a
// line with the selection boundary survives as long as its columns lie
// entirely before or after the selection.
func dropSelfOverlap(matches []Match, buf textbuf.ID, sel Region) []Match {
	kept := matches[:0]
	for _, m := range matches {
		if m.Buffer == buf && m.Region.Overlaps(sel) {
			continue
		}
		kept = append(kept, m)
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

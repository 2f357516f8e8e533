package textbuf

// Window is one candidate scan target: a buffer plus the line range
// currently visible in it. Top and Bottom are 1-based and inclusive;
// the engine clamps them against the buffer, so a window may describe
// lines the buffer no longer has.
type Window struct {
	Buf    *Buffer
	Top    int
	Bottom int
}

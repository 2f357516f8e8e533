// Package app wires the search engine to a tcell viewer. The event loop is
// single-threaded: every qualifying key event synchronously recomputes the
// session's match set before the next event is handled, so rendered matches
// always reflect the latest selection.
package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/selscan/internal/search"
	"github.com/kk-code-lab/selscan/internal/textbuf"
	"github.com/kk-code-lab/selscan/internal/ui"
)

const blinkInterval = 500 * time.Millisecond

// Application owns the screen, the loaded buffers, and the engine session.
type Application struct {
	screen  tcell.Screen
	session *search.Session
	view    *ui.View
	blink   *Blinker

	bufs    []*textbuf.Buffer
	tops    []int // scroll position per buffer
	current int

	cursor    search.Point
	selecting bool
	shape     search.Shape
	anchor    search.Point

	blinkOn bool
	quit    bool
}

// New validates the configuration, loads every path into a buffer, and
// initializes the terminal.
func New(cfg search.Config, paths []string) (*Application, error) {
	session, err := search.NewSession(cfg)
	if err != nil {
		return nil, err
	}

	var bufs []*textbuf.Buffer
	for i, path := range paths {
		buf, err := textbuf.Load(textbuf.ID(i+1), path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		bufs = append(bufs, buf)
	}
	if len(bufs) == 0 {
		return nil, fmt.Errorf("no files to open")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	return &Application{
		screen:  screen,
		session: session,
		view:    ui.NewView(screen),
		blink:   NewBlinker(blinkInterval),
		bufs:    bufs,
		tops:    make([]int, len(bufs)),
		cursor:  search.Point{Line: 1, Col: 1},
	}, nil
}

// Close releases the terminal.
func (app *Application) Close() {
	app.blink.Stop()
	app.screen.Fini()
}

func (app *Application) buffer() *textbuf.Buffer {
	return app.bufs[app.current]
}

// top returns the current buffer's first visible line, 1-based.
func (app *Application) top() int {
	if app.tops[app.current] < 1 {
		app.tops[app.current] = 1
	}
	return app.tops[app.current]
}

// openWindows describes every buffer's visible range for the engine.
// Buffers other than the current one expose their last scroll position.
func (app *Application) openWindows() []textbuf.Window {
	rows := max(1, app.view.TextRows())
	windows := make([]textbuf.Window, 0, len(app.bufs))
	for i, buf := range app.bufs {
		top := max(1, app.tops[i])
		windows = append(windows, textbuf.Window{
			Buf:    buf,
			Top:    top,
			Bottom: top + rows - 1,
		})
	}
	return windows
}

// recompute rebuilds the match set for the current selection and restarts
// the blink cycle so the emphasis phase starts fresh.
func (app *Application) recompute() {
	sel := search.Resolve(app.buffer(), app.shape, app.anchor, app.cursor)
	windows := search.ResolveWindows(app.session.Config(), app.buffer(), app.openWindows())
	app.session.Recompute(sel, windows)
	app.blinkOn = false
	app.blink.Start()
}

// dropSelection leaves selecting mode and clears the session.
func (app *Application) dropSelection() {
	app.selecting = false
	app.session.Clear()
	app.blink.Stop()
	app.blinkOn = false
}

func (app *Application) render() {
	sel, active := app.session.Selection()
	status := fmt.Sprintf(" %s  %d:%d", app.buffer().Name(), app.cursor.Line, app.cursor.Col)
	if app.selecting {
		status += fmt.Sprintf("  [%s select]  %d matches", app.shape, len(app.session.Matches()))
	}
	if len(app.bufs) > 1 {
		status += fmt.Sprintf("  (buffer %d/%d, tab switches)", app.current+1, len(app.bufs))
	}
	app.view.Render(ui.Frame{
		Buf:       app.buffer(),
		Top:       app.top(),
		Cursor:    app.cursor,
		Selection: sel,
		Selecting: app.selecting && active,
		Blink:     app.blinkOn,
		Matches:   app.session.Matches(),
		Status:    status,
	})
}

package app

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/selscan/internal/search"
)

// Run drives the event loop until quit. Engine recomputation happens
// inline in the handler for each event; the only other wakeup source is
// the blink ticker, which merely flips a display flag.
func (app *Application) Run() {
	defer app.Close()

	app.render()

	events := make(chan tcell.Event)
	go func() {
		for {
			events <- app.screen.PollEvent()
		}
	}()

	for !app.quit {
		select {
		case ev := <-events:
			app.handleEvent(ev)
		case <-app.blink.C():
			app.blinkOn = !app.blinkOn
		}
		if !app.quit {
			app.render()
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		app.screen.Sync()
		if app.selecting {
			app.recompute()
		}
	case *tcell.EventKey:
		app.handleKey(ev)
	}
}

func (app *Application) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		app.quit = true
		return
	case tcell.KeyEscape:
		if app.selecting {
			app.dropSelection()
		}
		return
	case tcell.KeyUp:
		app.moveCursor(-1, 0)
	case tcell.KeyDown:
		app.moveCursor(1, 0)
	case tcell.KeyLeft:
		app.moveCursor(0, -1)
	case tcell.KeyRight:
		app.moveCursor(0, 1)
	case tcell.KeyPgUp:
		app.moveCursor(-app.view.TextRows(), 0)
	case tcell.KeyPgDn:
		app.moveCursor(app.view.TextRows(), 0)
	case tcell.KeyHome:
		app.cursor.Col = 1
		app.afterMove()
	case tcell.KeyEnd:
		app.cursor.Col = lineRunes(app.buffer().Line(app.cursor.Line)) + 1
		app.afterMove()
	case tcell.KeyTab:
		app.switchBuffer()
	case tcell.KeyCtrlV:
		app.toggleSelect(search.ShapeBlock)
	case tcell.KeyRune:
		app.handleRune(ev.Rune())
	}
}

func (app *Application) handleRune(r rune) {
	switch r {
	case 'q':
		app.quit = true
	case 'h':
		app.moveCursor(0, -1)
	case 'j':
		app.moveCursor(1, 0)
	case 'k':
		app.moveCursor(-1, 0)
	case 'l':
		app.moveCursor(0, 1)
	case 'g':
		app.cursor = search.Point{Line: 1, Col: 1}
		app.afterMove()
	case 'G':
		app.cursor = search.Point{Line: max(1, app.buffer().LineCount()), Col: 1}
		app.afterMove()
	case 'v':
		app.toggleSelect(search.ShapeSpan)
	case 'V':
		app.toggleSelect(search.ShapeLines)
	}
}

// toggleSelect enters selecting mode with the given shape, switches shape
// when already selecting, or leaves the mode when the same shape repeats.
func (app *Application) toggleSelect(shape search.Shape) {
	if app.selecting && app.shape == shape {
		app.dropSelection()
		return
	}
	if !app.selecting {
		app.anchor = app.cursor
		app.selecting = true
	}
	app.shape = shape
	app.recompute()
}

func (app *Application) moveCursor(dLine, dCol int) {
	app.cursor.Line += dLine
	app.cursor.Col += dCol
	app.afterMove()
}

// afterMove clamps the cursor, keeps it scrolled into view, and recomputes
// matches when a selection is in progress.
func (app *Application) afterMove() {
	buf := app.buffer()
	app.cursor.Line = min(max(1, app.cursor.Line), max(1, buf.LineCount()))
	app.cursor.Col = min(max(1, app.cursor.Col), lineRunes(buf.Line(app.cursor.Line))+1)

	rows := max(1, app.view.TextRows())
	top := app.top()
	if app.cursor.Line < top {
		app.tops[app.current] = app.cursor.Line
	} else if app.cursor.Line >= top+rows {
		app.tops[app.current] = app.cursor.Line - rows + 1
	}

	if app.selecting {
		app.recompute()
	}
}

// switchBuffer cycles to the next buffer, dropping any selection in
// progress along with its matches.
func (app *Application) switchBuffer() {
	if len(app.bufs) < 2 {
		return
	}
	if app.selecting {
		app.dropSelection()
	}
	app.current = (app.current + 1) % len(app.bufs)
	app.cursor = search.Point{Line: 1, Col: 1}
}

func lineRunes(s string) int {
	return utf8.RuneCountInString(s)
}

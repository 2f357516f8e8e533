package app

import "time"

// Blinker drives the cosmetic pulse of the active selection. It owns its
// ticker's lifecycle: Start replaces any running ticker instead of stacking
// a second one, and a stopped blinker exposes a nil channel, which blocks
// forever in a select. The blinker never touches match state; the event
// loop reads C and flips a display flag.
type Blinker struct {
	interval time.Duration
	ticker   *time.Ticker
}

func NewBlinker(interval time.Duration) *Blinker {
	return &Blinker{interval: interval}
}

// Start begins a fresh blink cycle, cancelling any previous one.
func (b *Blinker) Start() {
	b.Stop()
	b.ticker = time.NewTicker(b.interval)
}

// Stop halts blinking. Safe to call repeatedly.
func (b *Blinker) Stop() {
	if b.ticker != nil {
		b.ticker.Stop()
		b.ticker = nil
	}
}

// C returns the tick channel, or nil when stopped.
func (b *Blinker) C() <-chan time.Time {
	if b.ticker == nil {
		return nil
	}
	return b.ticker.C
}

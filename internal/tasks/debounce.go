package tasks

import (
	"sync"
	"time"
	"unicode/utf8"
)

// DefaultDebounceDelay is the pause after the last keystroke before a
// prediction fetch fires.
const DefaultDebounceDelay = 500 * time.Millisecond

// MinQueryLength is the shortest query that triggers a prediction
// fetch; anything shorter clears the suggestion list instead.
const MinQueryLength = 2

// DebounceState enumerates the timer machine states.
type DebounceState int

const (
	DebounceIdle DebounceState = iota
	DebouncePending
	DebounceFired
)

func (s DebounceState) String() string {
	switch s {
	case DebounceIdle:
		return "idle"
	case DebouncePending:
		return "pending"
	case DebounceFired:
		return "fired"
	default:
		return ""
	}
}

// Debouncer throttles prediction requests while the user types.
//
// Each input event cancels any pending timer and arms a new one for the
// configured delay from that event. An event arriving before the timer
// fires discards the pending fire entirely, so a stale fire is never
// delivered. On fire, queries of at least [MinQueryLength] characters
// invoke the fire callback with the query as of the last input; shorter
// queries invoke the clear callback.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	fire  func(query string)
	clear func()

	timer *time.Timer
	state DebounceState
	seq   uint64
	query string
}

// NewDebouncer creates a Debouncer with the given delay and callbacks.
// A non-positive delay falls back to [DefaultDebounceDelay].
func NewDebouncer(delay time.Duration, fire func(query string), clear func()) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}

	return &Debouncer{
		delay: delay,
		fire:  fire,
		clear: clear,
	}
}

// Input records a keystroke, cancelling any pending fire and arming a
// fresh timer for the debounce delay.
func (d *Debouncer) Input(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.seq++
	seq := d.seq
	d.query = query
	d.state = DebouncePending
	d.timer = time.AfterFunc(d.delay, func() { d.fireNow(seq) })
}

// Cancel discards any pending fire and returns the machine to idle.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
	d.state = DebounceIdle
}

// State returns the current machine state.
func (d *Debouncer) State() DebounceState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// fireNow runs on timer expiry. A sequence mismatch means a newer input
// or Cancel superseded this fire, which is then dropped entirely.
func (d *Debouncer) fireNow(seq uint64) {
	d.mu.Lock()
	if seq != d.seq || d.state != DebouncePending {
		d.mu.Unlock()
		return
	}

	query := d.query
	d.state = DebounceFired
	d.timer = nil
	d.mu.Unlock()

	if utf8.RuneCountInString(query) >= MinQueryLength {
		d.fire(query)
	} else if d.clear != nil {
		d.clear()
	}

	d.mu.Lock()
	if seq == d.seq {
		d.state = DebounceIdle
	}
	d.mu.Unlock()
}

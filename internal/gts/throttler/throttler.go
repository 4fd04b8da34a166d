// Package throttler coalesces bursts of events, such as resizes, into at most
// one callback per tick in the Gtk main thread.
package throttler

import (
	"time"

	"github.com/gotk3/gotk3/glib"
)

const TPS = 15 // tps

// State is not thread-safe; it must only be used in the Gtk main thread.
type State struct {
	interval time.Duration
	pending  bool
	fn       func()
}

// New creates a throttler that calls fn at most tps times a second. If tps is
// 0 or less, TPS is used.
func New(tps int, fn func()) *State {
	if tps <= 0 {
		tps = TPS
	}

	return &State{
		interval: time.Second / time.Duration(tps),
		fn:       fn,
	}
}

// Trigger schedules the callback for the next tick. Triggers arriving before
// that tick are merged into it.
func (s *State) Trigger() {
	if s.pending {
		return
	}

	s.pending = true

	glib.TimeoutAdd(uint(s.interval/time.Millisecond), func() bool {
		s.pending = false
		s.fn()
		// Don't repeat.
		return false
	})
}

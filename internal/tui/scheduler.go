package tui

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/johnconnor-sec/autocomplete-go/internal/autocomplete"
	"github.com/johnconnor-sec/autocomplete-go/internal/output"
)

// poster is the part of tcell.Screen used to wake the event loop.
type poster interface {
	PostEvent(ev tcell.Event) error
}

// loopScheduler runs timer callbacks on the event loop by posting them as
// interrupts, so they never race with event handling.
type loopScheduler struct {
	screen poster
	log    *output.Logger
}

type loopTimer struct {
	timer *time.Timer
	done  atomic.Bool
}

// loopCall is the interrupt payload of a fired timer.
type loopCall struct {
	timer *loopTimer
	f     func()
}

func (c loopCall) run() {
	if c.timer.done.CompareAndSwap(false, true) {
		c.f()
	}
}

func (s *loopScheduler) AfterFunc(d time.Duration, f func()) autocomplete.Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		if err := s.screen.PostEvent(tcell.NewEventInterrupt(loopCall{timer: t, f: f})); err != nil {
			s.log.Warn("Dropped timer callback", map[string]any{"error": err.Error()})
		}
	})
	return t
}

// Stop cancels the call. It reports false if the call already ran or was
// stopped before.
func (t *loopTimer) Stop() bool {
	t.timer.Stop()
	return t.done.CompareAndSwap(false, true)
}

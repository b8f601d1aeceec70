package ewmh

import (
	"sync"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/sirupsen/logrus"
)

// watchInterval is the pause between event drain cycles. The loop polls
// already-queued events instead of blocking in WaitForEvent because the
// connection is shared with synchronous request/reply callers; a blocking
// read would race their replies.
const watchInterval = 100 * time.Millisecond

// eventPoller is the narrow slice of the connection the poll loop needs.
type eventPoller interface {
	PollForEvent() (xgb.Event, xgb.Error)
}

type watchState int

const (
	watchIdle watchState = iota
	watchRunning
	watchPaused
	watchStopped
)

// Watchdog filters the display's event queue for one target window and
// hands matching events to a callback on a single background goroutine.
// Lifecycle: Idle → Running ⇄ Paused → Stopped; Stopped is terminal.
type Watchdog struct {
	d        *Display
	target   xproto.Window
	poller   eventPoller
	setMask  func(uint32) error
	interval time.Duration

	mu     sync.Mutex
	cond   *sync.Cond
	state  watchState
	types  map[byte]bool
	cb     func(xgb.Event)
	quit   chan struct{}
	joined chan struct{}
}

// NewWatchdog creates a watchdog for the given target window. Nothing
// runs until Start.
func (d *Display) NewWatchdog(target xproto.Window) *Watchdog {
	w := &Watchdog{
		d:        d,
		target:   target,
		poller:   d.conn,
		interval: watchInterval,
		quit:     make(chan struct{}),
		joined:   make(chan struct{}),
	}
	w.cond = sync.NewCond(&w.mu)
	w.setMask = func(mask uint32) error {
		return xproto.ChangeWindowAttributesChecked(
			d.conn, d.root, xproto.CwEventMask, []uint32{mask},
		).Check()
	}
	return w
}

// Start subscribes the root window to mask, records which event codes to
// forward (xproto.PropertyNotify, xproto.ConfigureNotify, ...) and
// ensures exactly one poller goroutine runs. Calling Start on a running
// or paused watchdog updates the filter set and callback in place and
// resumes it; it never spawns a second poller.
func (w *Watchdog) Start(types []byte, mask uint32, cb func(xgb.Event)) error {
	w.mu.Lock()
	if w.state == watchStopped {
		w.mu.Unlock()
		return ErrWatchdogStopped
	}
	w.mu.Unlock()

	if w.setMask != nil {
		if err := w.setMask(mask); err != nil {
			return err
		}
	}

	w.mu.Lock()
	if w.state == watchStopped {
		w.mu.Unlock()
		return ErrWatchdogStopped
	}
	set := make(map[byte]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	w.types = set
	w.cb = cb
	spawn := w.state == watchIdle
	w.state = watchRunning
	w.cond.Broadcast()
	w.mu.Unlock()

	if spawn {
		go w.loop()
	}
	return nil
}

// Pause stops dispatching without consuming further events. The poller
// blocks until Start or Stop.
func (w *Watchdog) Pause() {
	w.mu.Lock()
	if w.state == watchRunning {
		w.state = watchPaused
	}
	w.mu.Unlock()
}

// Stop terminates the watchdog and joins the poller goroutine. No
// callback runs after Stop returns. Stop is idempotent.
func (w *Watchdog) Stop() {
	w.mu.Lock()
	prev := w.state
	w.state = watchStopped
	w.cond.Broadcast()
	if prev != watchStopped {
		close(w.quit)
	}
	w.mu.Unlock()
	if prev == watchRunning || prev == watchPaused {
		<-w.joined
	}
}

func (w *Watchdog) loop() {
	defer close(w.joined)
	for {
		w.mu.Lock()
		for w.state == watchPaused {
			w.cond.Wait()
		}
		if w.state == watchStopped {
			w.mu.Unlock()
			return
		}
		types := w.types
		cb := w.cb
		w.mu.Unlock()

		w.drain(types, cb)

		select {
		case <-w.quit:
		case <-time.After(w.interval):
		}
	}
}

// drain consumes every currently queued event and dispatches the
// matching ones. It never blocks waiting for new events.
func (w *Watchdog) drain(types map[byte]bool, cb func(xgb.Event)) {
	for {
		ev, xerr := w.poller.PollForEvent()
		if ev == nil && xerr == nil {
			return
		}
		if xerr != nil {
			logrus.WithField("error", xerr.Error()).Debug("watchdog: X error event")
			continue
		}
		if !types[eventCode(ev)] {
			continue
		}
		win, ok := eventWindow(ev)
		if !ok {
			continue
		}
		// Some desktop environments report events against an ancestor
		// of the client window; search its subtree for the target.
		if win != w.target && !w.subtreeContains(win, w.target) {
			continue
		}
		w.dispatch(cb, ev)
	}
}

func (w *Watchdog) dispatch(cb func(xgb.Event), ev xgb.Event) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("watchdog: callback panicked")
		}
	}()
	if cb != nil {
		cb(ev)
	}
}

// subtreeContains walks the window tree under parent looking for target.
func (w *Watchdog) subtreeContains(parent, target xproto.Window) bool {
	if w.d == nil {
		return false
	}
	reply, err := xproto.QueryTree(w.d.conn, parent).Reply()
	if err != nil {
		return false
	}
	for _, child := range reply.Children {
		if child == target || w.subtreeContains(child, target) {
			return true
		}
	}
	return false
}

// eventCode extracts the X event code, ignoring the send_event bit.
func eventCode(ev xgb.Event) byte {
	b := ev.Bytes()
	if len(b) == 0 {
		return 0
	}
	return b[0] & 0x7f
}

// eventWindow pulls the subject window out of the structure and property
// events the watchdog can subscribe to.
func eventWindow(ev xgb.Event) (xproto.Window, bool) {
	switch e := ev.(type) {
	case xproto.PropertyNotifyEvent:
		return e.Window, true
	case xproto.CreateNotifyEvent:
		return e.Window, true
	case xproto.DestroyNotifyEvent:
		return e.Window, true
	case xproto.MapNotifyEvent:
		return e.Window, true
	case xproto.UnmapNotifyEvent:
		return e.Window, true
	case xproto.ConfigureNotifyEvent:
		return e.Window, true
	case xproto.ReparentNotifyEvent:
		return e.Window, true
	case xproto.GravityNotifyEvent:
		return e.Window, true
	case xproto.CirculateNotifyEvent:
		return e.Window, true
	case xproto.ClientMessageEvent:
		return e.Window, true
	default:
		return 0, false
	}
}

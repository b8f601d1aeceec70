package ewmh

import (
	"sync"
	"testing"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePoller feeds queued events to the watchdog without an X server.
type fakePoller struct {
	mu    sync.Mutex
	queue []xgb.Event
}

func (f *fakePoller) push(ev xgb.Event) {
	f.mu.Lock()
	f.queue = append(f.queue, ev)
	f.mu.Unlock()
}

func (f *fakePoller) PollForEvent() (xgb.Event, xgb.Error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queue) == 0 {
		return nil, nil
	}
	ev := f.queue[0]
	f.queue = f.queue[1:]
	return ev, nil
}

func newTestWatchdog(target xproto.Window, p eventPoller) *Watchdog {
	w := &Watchdog{
		target:   target,
		poller:   p,
		interval: time.Millisecond,
		quit:     make(chan struct{}),
		joined:   make(chan struct{}),
	}
	w.cond = sync.NewCond(&w.mu)
	return w
}

func propertyEvent(win xproto.Window) xgb.Event {
	return xproto.PropertyNotifyEvent{Window: win, Atom: 1, State: xproto.PropertyNewValue}
}

func collect(ch chan xgb.Event, wait time.Duration) []xgb.Event {
	var got []xgb.Event
	deadline := time.After(wait)
	for {
		select {
		case ev := <-ch:
			got = append(got, ev)
		case <-deadline:
			return got
		}
	}
}

func TestWatchdogDispatchesMatchingEvents(t *testing.T) {
	poller := &fakePoller{}
	w := newTestWatchdog(42, poller)
	defer w.Stop()

	got := make(chan xgb.Event, 8)
	require.NoError(t, w.Start(
		[]byte{xproto.PropertyNotify}, 0,
		func(ev xgb.Event) { got <- ev },
	))

	poller.push(propertyEvent(42))
	poller.push(propertyEvent(7))                                // wrong window
	poller.push(xproto.MapNotifyEvent{Window: 42})               // unsubscribed type
	poller.push(xproto.ConfigureNotifyEvent{Window: 42, Event: 42}) // unsubscribed type
	poller.push(propertyEvent(42))

	events := collect(got, 100*time.Millisecond)
	require.Len(t, events, 2)
	for _, ev := range events {
		pn, ok := ev.(xproto.PropertyNotifyEvent)
		require.True(t, ok)
		assert.EqualValues(t, 42, pn.Window)
	}
}

func TestWatchdogStartUpdatesFilterInPlace(t *testing.T) {
	poller := &fakePoller{}
	w := newTestWatchdog(42, poller)
	defer w.Stop()

	got := make(chan xgb.Event, 8)
	cb := func(ev xgb.Event) { got <- ev }
	require.NoError(t, w.Start([]byte{xproto.PropertyNotify}, 0, cb))

	// Re-invoking Start must swap the filter on the existing poller, not
	// spawn a second one.
	require.NoError(t, w.Start([]byte{xproto.MapNotify}, 0, cb))

	poller.push(propertyEvent(42))
	poller.push(xproto.MapNotifyEvent{Window: 42})

	events := collect(got, 100*time.Millisecond)
	require.Len(t, events, 1)
	_, ok := events[0].(xproto.MapNotifyEvent)
	assert.True(t, ok)
}

func TestWatchdogPause(t *testing.T) {
	poller := &fakePoller{}
	w := newTestWatchdog(42, poller)
	defer w.Stop()

	got := make(chan xgb.Event, 8)
	require.NoError(t, w.Start(
		[]byte{xproto.PropertyNotify}, 0,
		func(ev xgb.Event) { got <- ev },
	))

	w.Pause()
	time.Sleep(10 * time.Millisecond) // let the poller reach the pause wait
	poller.push(propertyEvent(42))
	assert.Empty(t, collect(got, 30*time.Millisecond))

	// Start resumes a paused watchdog; the queued event is then drained.
	require.NoError(t, w.Start(
		[]byte{xproto.PropertyNotify}, 0,
		func(ev xgb.Event) { got <- ev },
	))
	assert.Len(t, collect(got, 100*time.Millisecond), 1)
}

func TestWatchdogStopIsTerminal(t *testing.T) {
	poller := &fakePoller{}
	w := newTestWatchdog(42, poller)

	var calls int32
	var mu sync.Mutex
	require.NoError(t, w.Start(
		[]byte{xproto.PropertyNotify}, 0,
		func(ev xgb.Event) {
			mu.Lock()
			calls++
			mu.Unlock()
		},
	))

	w.Stop()

	// The poller has been joined: nothing delivered after Stop returns.
	poller.push(propertyEvent(42))
	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	assert.Zero(t, calls)
	mu.Unlock()

	assert.ErrorIs(t, w.Start([]byte{xproto.PropertyNotify}, 0, nil), ErrWatchdogStopped)

	// Stop is idempotent, including from the paused and idle states.
	w.Stop()
	idle := newTestWatchdog(1, poller)
	idle.Stop()
	assert.ErrorIs(t, idle.Start(nil, 0, nil), ErrWatchdogStopped)
}

func TestWatchdogSurvivesCallbackPanic(t *testing.T) {
	poller := &fakePoller{}
	w := newTestWatchdog(42, poller)
	defer w.Stop()

	got := make(chan xgb.Event, 8)
	first := true
	require.NoError(t, w.Start(
		[]byte{xproto.PropertyNotify}, 0,
		func(ev xgb.Event) {
			if first {
				first = false
				panic("boom")
			}
			got <- ev
		},
	))

	poller.push(propertyEvent(42))
	poller.push(propertyEvent(42))

	assert.Len(t, collect(got, 100*time.Millisecond), 1)
}

func TestEventCode(t *testing.T) {
	assert.EqualValues(t, xproto.PropertyNotify, eventCode(propertyEvent(1)))
	assert.EqualValues(t, xproto.ConfigureNotify, eventCode(xproto.ConfigureNotifyEvent{Window: 1, Event: 1}))
}

func TestEventWindow(t *testing.T) {
	win, ok := eventWindow(propertyEvent(99))
	require.True(t, ok)
	assert.EqualValues(t, 99, win)

	_, ok = eventWindow(xproto.KeyPressEvent{})
	assert.False(t, ok)
}

package ewmh

import "errors"

var (
	// ErrBadReply is returned when a property reply exists but its shape
	// does not match what was asked for (wrong type or format). Absence is
	// never an error; see Display.GetProperty.
	ErrBadReply = errors.New("ewmh: malformed property reply")

	// ErrBadAtom is returned by Display.AtomName for an id the server does
	// not know.
	ErrBadAtom = errors.New("ewmh: not a valid atom")

	// ErrWatchdogStopped is returned by Watchdog.Start after Stop: a
	// stopped watchdog is terminal and cannot be restarted.
	ErrWatchdogStopped = errors.New("ewmh: watchdog already stopped")
)

// Package ewmh is a client-side implementation of the freedesktop.org
// Extended Window Manager Hints protocol on top of the raw X protocol.
//
// It resolves atoms per connection, marshals property values (8-bit text
// lists and 32-bit word arrays), delivers the ClientMessage requests EWMH
// defines for state changes, and can watch the event stream for a single
// window. It is a client of whatever window manager is running: requests
// are delivered, not guaranteed to be honored, and callers that need to
// observe an effect must poll for it.
//
// A Display handle is opened explicitly and passed by reference; all
// state (atom caches, selected screen) is connection-local.
package ewmh

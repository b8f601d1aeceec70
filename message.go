package ewmh

import (
	"github.com/BurntSushi/xgb/xproto"
)

// clientMessageMask is the event mask EWMH mandates for requests sent to
// the root window.
const clientMessageMask = xproto.EventMaskSubstructureRedirect |
	xproto.EventMaskSubstructureNotify

// clientMessageData fixes the payload to the 5-word ClientMessage layout;
// unused trailing words stay zero.
func clientMessageData(words []uint32) []uint32 {
	return padWords(words)
}

// newClientMessage builds a fresh 32-bit-format ClientMessage carrying up
// to five data words for the given window.
func newClientMessage(win xproto.Window, typ xproto.Atom, words []uint32) xproto.ClientMessageEvent {
	return xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   typ,
		Data:   xproto.ClientMessageDataUnionData32New(clientMessageData(words)),
	}
}

// SendClientMessage delivers an EWMH request concerning win to the root
// window. This is the only path for state-change requests: the window
// manager owns the state, so clients ask rather than write. A nil error
// means the request reached the server, not that the window manager
// honored it.
func (d *Display) SendClientMessage(win xproto.Window, name string, words ...uint32) error {
	atom, err := d.Atom(name)
	if err != nil {
		return err
	}
	return d.SendClientMessageAtom(win, atom, words...)
}

// SendClientMessageAtom is SendClientMessage for an already-resolved
// message type.
func (d *Display) SendClientMessageAtom(win xproto.Window, typ xproto.Atom, words ...uint32) error {
	ev := newClientMessage(win, typ, words)
	return xproto.SendEventChecked(
		d.conn,
		false,  // propagate
		d.root, // destination
		uint32(clientMessageMask),
		string(ev.Bytes()),
	).Check()
}

package ewmh

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// propertySlots is the fixed word count of format-32 payloads written
// through the generic codec, matching the ClientMessage data layout.
const propertySlots = 5

// defaultSizeHint bounds the initial GetProperty read, in 32-bit units.
// Purely a round-trip optimization; longer values are fetched in chunks.
const defaultSizeHint = 1024

// Property is one decoded GetProperty reply: an 8-bit text buffer or a
// 32-bit word array, plus its server-reported type.
type Property struct {
	Format byte
	Type   xproto.Atom
	Value  []byte
}

// GetProperty reads the named property from win. Absence — including a
// name that was never interned by anyone — returns (nil, nil). A reply
// whose type does not match typ returns ErrBadReply; connection failures
// propagate.
func (d *Display) GetProperty(win xproto.Window, name string, typ xproto.Atom, sizeHint uint32) (*Property, error) {
	atom, err := d.AtomIfExists(name)
	if err != nil {
		return nil, err
	}
	return d.GetPropertyAtom(win, atom, typ, sizeHint)
}

// GetPropertyAtom is GetProperty for an already-resolved atom. AtomNone
// short-circuits to absence without a server round trip.
func (d *Display) GetPropertyAtom(win xproto.Window, prop, typ xproto.Atom, sizeHint uint32) (*Property, error) {
	if prop == xproto.AtomNone {
		return nil, nil
	}
	if sizeHint == 0 {
		sizeHint = defaultSizeHint
	}
	var out Property
	var offset uint32
	for {
		reply, err := xproto.GetProperty(d.conn, false, win, prop, typ, offset, sizeHint).Reply()
		if err != nil {
			return nil, fmt.Errorf("get property %d on %d: %w", prop, win, err)
		}
		absent, err := checkPropertyReply(prop, typ, reply)
		if err != nil {
			return nil, err
		}
		if absent {
			return nil, nil
		}
		out.Format = reply.Format
		out.Type = reply.Type
		out.Value = append(out.Value, reply.Value...)
		if reply.BytesAfter == 0 {
			break
		}
		offset += uint32(len(reply.Value)) / 4
	}
	return &out, nil
}

// checkPropertyReply classifies one GetProperty reply: property absent,
// usable data, or a shape that can never satisfy the request. A wrong-typed
// property comes back with the actual nonzero format/type, an empty value
// and nonzero BytesAfter; treating it as data would re-issue the identical
// request forever.
func checkPropertyReply(prop, requested xproto.Atom, reply *xproto.GetPropertyReply) (absent bool, err error) {
	if reply.Format == 0 {
		if reply.Type == xproto.AtomNone {
			return true, nil
		}
		return false, fmt.Errorf("%w: property %d has format 0 with type %d",
			ErrBadReply, prop, reply.Type)
	}
	if requested != xproto.GetPropertyTypeAny && reply.Type != requested {
		return false, fmt.Errorf("%w: property %d is type %d, not %d",
			ErrBadReply, prop, reply.Type, requested)
	}
	if len(reply.Value) == 0 && reply.BytesAfter > 0 {
		return false, fmt.Errorf("%w: property %d: empty chunk with %d bytes remaining",
			ErrBadReply, prop, reply.BytesAfter)
	}
	return false, nil
}

// Strings decodes a format-8 payload as a NUL-segmented text list,
// dropping the conventional trailing empty segment. A single scalar comes
// back as a one-element list so callers always see the same shape.
func (p *Property) Strings() []string {
	if p == nil || len(p.Value) == 0 {
		return nil
	}
	return splitNullTerminated(p.Value)
}

// Cardinals decodes a format-32 payload as raw words: integers, window
// ids or unresolved atoms, whatever the property's type says they are.
func (p *Property) Cardinals() []uint32 {
	if p == nil {
		return nil
	}
	vals := make([]uint32, 0, len(p.Value)/4)
	for buf := p.Value; len(buf) >= 4; buf = buf[4:] {
		vals = append(vals, xgb.Get32(buf))
	}
	return vals
}

// Windows is Cardinals reinterpreted as window ids.
func (p *Property) Windows() []xproto.Window {
	vals := p.Cardinals()
	wins := make([]xproto.Window, len(vals))
	for i, v := range vals {
		wins[i] = xproto.Window(v)
	}
	return wins
}

// Atoms is Cardinals reinterpreted as atom ids.
func (p *Property) Atoms() []xproto.Atom {
	vals := p.Cardinals()
	atoms := make([]xproto.Atom, len(vals))
	for i, v := range vals {
		atoms[i] = xproto.Atom(v)
	}
	return atoms
}

// ResolveAtoms maps each nonzero word of a format-32 payload through the
// atom table, the caller-facing form of atom-typed properties.
func (d *Display) ResolveAtoms(p *Property) ([]string, error) {
	var names []string
	for _, a := range p.Atoms() {
		if a == xproto.AtomNone {
			continue
		}
		name, err := d.AtomName(a)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func splitNullTerminated(buf []byte) []string {
	parts := strings.Split(string(buf), "\x00")
	if n := len(parts); n > 0 && parts[n-1] == "" {
		parts = parts[:n-1]
	}
	return parts
}

// encodeTextList joins values into one format-8 buffer. List-valued text
// properties carry every element NUL-terminated on the wire; a single
// scalar is written bare, which is how toolkits write _NET_WM_NAME.
func encodeTextList(values []string) []byte {
	joined := strings.Join(values, "\x00")
	if len(values) > 1 {
		joined += "\x00"
	}
	return []byte(joined)
}

// padWords fixes a word list to exactly propertySlots elements, zero
// padding or truncating. Part of the codec's wire contract.
func padWords(words []uint32) []uint32 {
	out := make([]uint32, propertySlots)
	copy(out, words)
	return out
}

// encodeWords serializes words in the connection byte order.
func encodeWords(words []uint32) []byte {
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		xgb.Put32(buf[i*4:], w)
	}
	return buf
}

// ChangePropertyStrings writes a text property (format 8, UTF-8). mode is
// one of xproto.PropModeReplace/Append/Prepend. The Checked round trip
// guarantees the write has reached the server before the call returns.
func (d *Display) ChangePropertyStrings(win xproto.Window, name string, mode byte, typ xproto.Atom, values ...string) error {
	atom, err := d.Atom(name)
	if err != nil {
		return err
	}
	data := encodeTextList(values)
	return xproto.ChangePropertyChecked(
		d.conn, mode, win, atom, typ, 8, uint32(len(data)), data,
	).Check()
}

// ChangePropertyCardinals writes an integer property (format 32), padded
// or truncated to the fixed slot count.
func (d *Display) ChangePropertyCardinals(win xproto.Window, name string, mode byte, typ xproto.Atom, words ...uint32) error {
	atom, err := d.Atom(name)
	if err != nil {
		return err
	}
	return d.changeCardinalsRaw(win, atom, mode, typ, padWords(words))
}

// changeCardinalsRaw writes a format-32 property keeping the exact word
// count. Fixed-layout payloads (hints structs, struts) depend on this.
func (d *Display) changeCardinalsRaw(win xproto.Window, prop xproto.Atom, mode byte, typ xproto.Atom, words []uint32) error {
	data := encodeWords(words)
	return xproto.ChangePropertyChecked(
		d.conn, mode, win, prop, typ, 32, uint32(len(words)), data,
	).Check()
}

// DeleteProperty removes the named property from win.
func (d *Display) DeleteProperty(win xproto.Window, name string) error {
	atom, err := d.AtomIfExists(name)
	if err != nil {
		return err
	}
	if atom == xproto.AtomNone {
		return nil
	}
	return xproto.DeletePropertyChecked(d.conn, win, atom).Check()
}

// Scalar and list helpers shared by the hint accessors.

func (d *Display) cardinalProperty(win xproto.Window, name string, typ xproto.Atom) (uint32, bool, error) {
	prop, err := d.GetProperty(win, name, typ, 0)
	if err != nil || prop == nil {
		return 0, false, err
	}
	vals := prop.Cardinals()
	if len(vals) == 0 {
		return 0, false, nil
	}
	return vals[0], true, nil
}

func (d *Display) windowListProperty(win xproto.Window, name string) ([]xproto.Window, error) {
	prop, err := d.GetProperty(win, name, xproto.AtomWindow, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	return prop.Windows(), nil
}

func (d *Display) atomListProperty(win xproto.Window, name string) ([]xproto.Atom, error) {
	prop, err := d.GetProperty(win, name, xproto.AtomAtom, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	return prop.Atoms(), nil
}

func (d *Display) utf8Property(win xproto.Window, name string) (string, bool, error) {
	utf8, err := d.Atom(Utf8String)
	if err != nil {
		return "", false, err
	}
	prop, err := d.GetProperty(win, name, utf8, 0)
	if err != nil || prop == nil {
		return "", false, err
	}
	vals := prop.Strings()
	if len(vals) == 0 {
		return "", false, nil
	}
	return vals[0], true, nil
}

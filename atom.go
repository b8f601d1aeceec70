package ewmh

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// Atom interns name on this connection, creating it server-side if needed,
// and caches the result. Atom ids are connection-local: the cache lives on
// the Display and is never shared across connections.
func (d *Display) Atom(name string) (xproto.Atom, error) {
	d.atomMu.RLock()
	atom, ok := d.atoms[name]
	d.atomMu.RUnlock()
	if ok {
		return atom, nil
	}
	reply, err := xproto.InternAtom(d.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return xproto.AtomNone, fmt.Errorf("intern atom %q: %w", name, err)
	}
	d.rememberAtom(name, reply.Atom)
	return reply.Atom, nil
}

// AtomIfExists interns name without creating it. Returns AtomNone when no
// client has ever interned the name; that result is not cached, since a
// later client may still create the atom.
func (d *Display) AtomIfExists(name string) (xproto.Atom, error) {
	d.atomMu.RLock()
	atom, ok := d.atoms[name]
	d.atomMu.RUnlock()
	if ok {
		return atom, nil
	}
	reply, err := xproto.InternAtom(d.conn, true, uint16(len(name)), name).Reply()
	if err != nil {
		return xproto.AtomNone, fmt.Errorf("intern atom %q: %w", name, err)
	}
	if reply.Atom != xproto.AtomNone {
		d.rememberAtom(name, reply.Atom)
	}
	return reply.Atom, nil
}

// AtomName is the reverse lookup. An id the server does not know yields
// ErrBadAtom, not a panic.
func (d *Display) AtomName(atom xproto.Atom) (string, error) {
	d.atomMu.RLock()
	name, ok := d.atomNames[atom]
	d.atomMu.RUnlock()
	if ok {
		return name, nil
	}
	reply, err := xproto.GetAtomName(d.conn, atom).Reply()
	if err != nil {
		return "", atomNameError(atom, err)
	}
	d.rememberAtom(reply.Name, atom)
	return reply.Name, nil
}

// atomNameError separates an invalid id (the server answered BadAtom) from
// a connection-level failure, which keeps its own identity.
func atomNameError(atom xproto.Atom, err error) error {
	if _, ok := err.(xproto.AtomError); ok {
		return fmt.Errorf("%w: %d", ErrBadAtom, atom)
	}
	return fmt.Errorf("get atom name %d: %w", atom, err)
}

func (d *Display) rememberAtom(name string, atom xproto.Atom) {
	d.atomMu.Lock()
	d.atoms[name] = atom
	d.atomNames[atom] = name
	d.atomMu.Unlock()
}

// atomList interns every name in order.
func (d *Display) atomList(names []string) ([]xproto.Atom, error) {
	atoms := make([]xproto.Atom, 0, len(names))
	for _, n := range names {
		a, err := d.Atom(n)
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, a)
	}
	return atoms, nil
}

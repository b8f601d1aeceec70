package ewmh

import (
	"time"

	"github.com/BurntSushi/xgb/xproto"
)

// Window exposes the window-scoped EWMH and ICCCM hints of one client
// window. Most mutations are ClientMessage requests to the window
// manager; only client-owned properties (struts, window type, protocols)
// are written directly.
type Window struct {
	d    *Display
	id   xproto.Window
	root *Root
}

// Window returns the accessor for the given window id on this display.
func (d *Display) Window(id xproto.Window) *Window {
	return &Window{d: d, id: id, root: d.RootWindow()}
}

// ID returns the window id.
func (w *Window) ID() xproto.Window { return w.id }

// Name returns the window title, preferring _NET_WM_NAME and falling
// back to the ICCCM WM_NAME for clients predating EWMH.
func (w *Window) Name() (string, error) {
	name, ok, err := w.d.utf8Property(w.id, NetWMName)
	if err != nil || ok {
		return name, err
	}
	prop, err := w.d.GetProperty(w.id, WMName, xproto.GetPropertyTypeAny, 0)
	if err != nil || prop == nil {
		return "", err
	}
	if vals := prop.Strings(); len(vals) > 0 {
		return vals[0], nil
	}
	return "", nil
}

// SetName sets _NET_WM_NAME. Retitling a window owned by another client
// works but most toolkits will overwrite it at will.
func (w *Window) SetName(name string) error {
	utf8, err := w.d.Atom(Utf8String)
	if err != nil {
		return err
	}
	return w.d.ChangePropertyStrings(w.id, NetWMName, xproto.PropModeReplace, utf8, name)
}

// VisibleName returns the name the window manager actually displays
// (e.g. "title <2>" after deduplication), when published.
func (w *Window) VisibleName() (string, bool, error) {
	return w.d.utf8Property(w.id, NetWMVisibleName)
}

// IconName returns the iconified title.
func (w *Window) IconName() (string, bool, error) {
	return w.d.utf8Property(w.id, NetWMIconName)
}

// SetIconName sets the iconified title.
func (w *Window) SetIconName(name string) error {
	utf8, err := w.d.Atom(Utf8String)
	if err != nil {
		return err
	}
	return w.d.ChangePropertyStrings(w.id, NetWMIconName, xproto.PropModeReplace, utf8, name)
}

// VisibleIconName returns the displayed iconified title, when published.
func (w *Window) VisibleIconName() (string, bool, error) {
	return w.d.utf8Property(w.id, NetWMVisibleIconName)
}

// Class returns the ICCCM WM_CLASS (instance, class) pair.
func (w *Window) Class() (instance, class string, err error) {
	prop, err := w.d.GetProperty(w.id, WMClass, xproto.AtomString, 0)
	if err != nil || prop == nil {
		return "", "", err
	}
	vals := prop.Strings()
	if len(vals) > 0 {
		instance = vals[0]
	}
	if len(vals) > 1 {
		class = vals[1]
	}
	return instance, class, nil
}

// TransientFor returns the window this one is transient for, if any.
func (w *Window) TransientFor() (xproto.Window, bool, error) {
	v, ok, err := w.d.cardinalProperty(w.id, WMTransientFor, xproto.AtomWindow)
	return xproto.Window(v), ok, err
}

// Desktop reports which desktop the window sits on. 0xFFFFFFFF means the
// window is pinned to all desktops.
func (w *Window) Desktop() (uint32, bool, error) {
	return w.d.cardinalProperty(w.id, NetWMDesktop, xproto.AtomCardinal)
}

// SetDesktop requests moving the window to desktop n, skipping the
// request when the window already sits there.
func (w *Window) SetDesktop(n uint32, source Source) error {
	cur, ok, err := w.Desktop()
	if err != nil {
		return err
	}
	if ok && cur == n {
		return nil
	}
	return w.d.SendClientMessage(w.id, NetWMDesktop, n, uint32(source))
}

// Types returns the window's type atoms resolved to names, most specific
// first.
func (w *Window) Types() ([]string, error) {
	prop, err := w.d.GetProperty(w.id, NetWMWindowType, xproto.AtomAtom, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	return w.d.ResolveAtoms(prop)
}

// SetTypes writes the window type list. The type is a client-owned
// property read by the window manager at map time; changing it on a
// mapped window only takes effect on remap.
func (w *Window) SetTypes(names ...string) error {
	atoms, err := w.d.atomList(names)
	if err != nil {
		return err
	}
	prop, err := w.d.Atom(NetWMWindowType)
	if err != nil {
		return err
	}
	return w.d.changeCardinalsRaw(w.id, prop, xproto.PropModeReplace, xproto.AtomAtom, atomWords(atoms))
}

// State returns the window's current state atoms. The set belongs to the
// window manager; mutate it through ChangeState, never directly.
func (w *Window) State() ([]xproto.Atom, error) {
	return w.d.atomListProperty(w.id, NetWMState)
}

// StateNames is State resolved through the atom table.
func (w *Window) StateNames() ([]string, error) {
	prop, err := w.d.GetProperty(w.id, NetWMState, xproto.AtomAtom, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	return w.d.ResolveAtoms(prop)
}

// HasState reports whether the named state is currently set.
func (w *Window) HasState(name string) (bool, error) {
	atom, err := w.d.AtomIfExists(name)
	if err != nil || atom == xproto.AtomNone {
		return false, err
	}
	states, err := w.State()
	if err != nil {
		return false, err
	}
	return containsAtom(states, atom), nil
}

// stateChangeWords packs a two-state _NET_WM_STATE request payload.
// second may be AtomNone for single-state changes.
func stateChangeWords(action StateAction, first, second xproto.Atom, source Source) []uint32 {
	return []uint32{uint32(action), uint32(first), uint32(second), uint32(source)}
}

// ChangeState requests adding, removing or toggling up to two states in
// one message. state2 may be empty.
func (w *Window) ChangeState(action StateAction, state1, state2 string, source Source) error {
	a1, err := w.d.Atom(state1)
	if err != nil {
		return err
	}
	a2 := xproto.Atom(xproto.AtomNone)
	if state2 != "" {
		if a2, err = w.d.Atom(state2); err != nil {
			return err
		}
	}
	return w.d.SendClientMessage(w.id, NetWMState, stateChangeWords(action, a1, a2, source)...)
}

// stateRequest is one planned _NET_WM_STATE message.
type stateRequest struct {
	action StateAction
	first  xproto.Atom
	second xproto.Atom
}

// maximizePlan diffs the current state set against the wanted maximized
// combination and plans the minimal requests. Re-adding an already-set
// state is never planned: window managers treat a redundant Add as a
// fresh maximize and may clobber the saved geometry.
func maximizePlan(current []xproto.Atom, horz, vert bool, atomHorz, atomVert xproto.Atom) []stateRequest {
	var add, remove []xproto.Atom
	plan := func(want bool, atom xproto.Atom) {
		has := containsAtom(current, atom)
		switch {
		case want && !has:
			add = append(add, atom)
		case !want && has:
			remove = append(remove, atom)
		}
	}
	plan(horz, atomHorz)
	plan(vert, atomVert)

	var reqs []stateRequest
	if len(add) > 0 {
		r := stateRequest{action: StateAdd, first: add[0]}
		if len(add) > 1 {
			r.second = add[1]
		}
		reqs = append(reqs, r)
	}
	if len(remove) > 0 {
		r := stateRequest{action: StateRemove, first: remove[0]}
		if len(remove) > 1 {
			r.second = remove[1]
		}
		reqs = append(reqs, r)
	}
	return reqs
}

// SetMaximized drives the window to exactly the requested maximized
// combination, issuing only the Add/Remove requests the diff needs.
func (w *Window) SetMaximized(horz, vert bool) error {
	atomHorz, err := w.d.Atom(StateMaximizedHorz)
	if err != nil {
		return err
	}
	atomVert, err := w.d.Atom(StateMaximizedVert)
	if err != nil {
		return err
	}
	current, err := w.State()
	if err != nil {
		return err
	}
	for _, req := range maximizePlan(current, horz, vert, atomHorz, atomVert) {
		err := w.d.SendClientMessage(w.id, NetWMState,
			stateChangeWords(req.action, req.first, req.second, SourcePager)...)
		if err != nil {
			return err
		}
	}
	return nil
}

// Minimize iconifies the window via the ICCCM WM_CHANGE_STATE message.
// EWMH has no un-minimize request; activation restores the window.
func (w *Window) Minimize() error {
	return w.d.SendClientMessage(w.id, WMChangeState, IconicState)
}

// Activate requests focus and raising for the window.
func (w *Window) Activate(source Source) error {
	current, _, err := w.root.ActiveWindow()
	if err != nil {
		return err
	}
	return w.root.SetActiveWindow(w.id, source, current)
}

// Close asks the window manager to close the window.
func (w *Window) Close(source Source) error {
	return w.root.CloseWindow(w.id, source)
}

// MoveResize requests new geometry; nil fields are left alone.
func (w *Window) MoveResize(x, y, width, height *int, source Source) error {
	return w.root.MoveResizeWindow(w.id, 0, x, y, width, height, source)
}

// Restack requests restacking relative to sibling (which may be zero).
func (w *Window) Restack(sibling xproto.Window, detail uint32) error {
	return w.root.RestackWindow(w.id, sibling, detail)
}

// AllowedActions returns the actions the window manager permits on this
// window, resolved to names.
func (w *Window) AllowedActions() ([]string, error) {
	prop, err := w.d.GetProperty(w.id, NetWMAllowedActions, xproto.AtomAtom, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	return w.d.ResolveAtoms(prop)
}

// Strut mirrors _NET_WM_STRUT: screen edge space reserved by a dock.
type Strut struct {
	Left   uint32
	Right  uint32
	Top    uint32
	Bottom uint32
}

// StrutPartial mirrors _NET_WM_STRUT_PARTIAL, a strut bounded along its
// edge.
type StrutPartial struct {
	Strut
	LeftStartY   uint32
	LeftEndY     uint32
	RightStartY  uint32
	RightEndY    uint32
	TopStartX    uint32
	TopEndX      uint32
	BottomStartX uint32
	BottomEndX   uint32
}

// Strut returns the window's reserved screen edge space, if any.
func (w *Window) Strut() (*Strut, error) {
	prop, err := w.d.GetProperty(w.id, NetWMStrut, xproto.AtomCardinal, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	vals := prop.Cardinals()
	if len(vals) < 4 {
		return nil, ErrBadReply
	}
	return &Strut{Left: vals[0], Right: vals[1], Top: vals[2], Bottom: vals[3]}, nil
}

// SetStrut reserves screen edge space. A strut is client-owned, so this
// is a direct 4-word property write.
func (w *Window) SetStrut(s Strut) error {
	prop, err := w.d.Atom(NetWMStrut)
	if err != nil {
		return err
	}
	return w.d.changeCardinalsRaw(w.id, prop, xproto.PropModeReplace, xproto.AtomCardinal,
		[]uint32{s.Left, s.Right, s.Top, s.Bottom})
}

// StrutPartial returns the window's partial strut, if any.
func (w *Window) StrutPartial() (*StrutPartial, error) {
	prop, err := w.d.GetProperty(w.id, NetWMStrutPartial, xproto.AtomCardinal, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	vals := prop.Cardinals()
	if len(vals) < 12 {
		return nil, ErrBadReply
	}
	return &StrutPartial{
		Strut:        Strut{Left: vals[0], Right: vals[1], Top: vals[2], Bottom: vals[3]},
		LeftStartY:   vals[4],
		LeftEndY:     vals[5],
		RightStartY:  vals[6],
		RightEndY:    vals[7],
		TopStartX:    vals[8],
		TopEndX:      vals[9],
		BottomStartX: vals[10],
		BottomEndX:   vals[11],
	}, nil
}

// SetStrutPartial writes the full 12-word partial strut.
func (w *Window) SetStrutPartial(s StrutPartial) error {
	prop, err := w.d.Atom(NetWMStrutPartial)
	if err != nil {
		return err
	}
	return w.d.changeCardinalsRaw(w.id, prop, xproto.PropModeReplace, xproto.AtomCardinal,
		[]uint32{
			s.Left, s.Right, s.Top, s.Bottom,
			s.LeftStartY, s.LeftEndY, s.RightStartY, s.RightEndY,
			s.TopStartX, s.TopEndX, s.BottomStartX, s.BottomEndX,
		})
}

// IconGeometry returns where a pager displays the window's icon.
func (w *Window) IconGeometry() (*Geometry, error) {
	prop, err := w.d.GetProperty(w.id, NetWMIconGeometry, xproto.AtomCardinal, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	geoms := geometriesFromWords(prop.Cardinals())
	if len(geoms) == 0 {
		return nil, ErrBadReply
	}
	return &geoms[0], nil
}

// Pid returns the process id the client published, when it did.
func (w *Window) Pid() (uint32, bool, error) {
	return w.d.cardinalProperty(w.id, NetWMPid, xproto.AtomCardinal)
}

// HandledIcons reports whether the client announced that it handles
// iconified windows itself (the property carries no value; presence is
// the signal).
func (w *Window) HandledIcons() (bool, error) {
	prop, err := w.d.GetProperty(w.id, NetWMHandledIcons, xproto.AtomCardinal, 0)
	return prop != nil, err
}

// UserTime returns the last user activity timestamp the client recorded.
func (w *Window) UserTime() (uint32, bool, error) {
	return w.d.cardinalProperty(w.id, NetWMUserTime, xproto.AtomCardinal)
}

// Extents mirrors _NET_FRAME_EXTENTS: decoration sizes on each side.
type Extents struct {
	Left   uint32
	Right  uint32
	Top    uint32
	Bottom uint32
}

// FrameExtents returns the window manager's decoration extents, falling
// back to the GTK client-side-decoration variant when the standard
// property is missing.
func (w *Window) FrameExtents() (*Extents, error) {
	for _, name := range []string{NetFrameExtents, GtkFrameExtents} {
		prop, err := w.d.GetProperty(w.id, name, xproto.AtomCardinal, 0)
		if err != nil {
			return nil, err
		}
		if prop == nil {
			continue
		}
		vals := prop.Cardinals()
		if len(vals) < 4 {
			return nil, ErrBadReply
		}
		return &Extents{Left: vals[0], Right: vals[1], Top: vals[2], Bottom: vals[3]}, nil
	}
	return nil, nil
}

// OpaqueRegion returns the rectangles the client promised to paint
// opaquely, for compositor optimization.
func (w *Window) OpaqueRegion() ([]Geometry, error) {
	prop, err := w.d.GetProperty(w.id, NetWMOpaqueRegion, xproto.AtomCardinal, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	return geometriesFromWords(prop.Cardinals()), nil
}

// BypassCompositor returns the client's compositor bypass preference
// (0 none, 1 bypass, 2 never bypass).
func (w *Window) BypassCompositor() (uint32, bool, error) {
	return w.d.cardinalProperty(w.id, NetWMBypassCompositor, xproto.AtomCardinal)
}

// SetBypassCompositor writes the compositor bypass preference.
func (w *Window) SetBypassCompositor(v uint32) error {
	prop, err := w.d.Atom(NetWMBypassCompositor)
	if err != nil {
		return err
	}
	return w.d.changeCardinalsRaw(w.id, prop, xproto.PropModeReplace, xproto.AtomCardinal, []uint32{v})
}

// Protocols returns the ICCCM protocols the client participates in.
func (w *Window) Protocols() ([]string, error) {
	prop, err := w.d.GetProperty(w.id, WMProtocols, xproto.AtomAtom, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	return w.d.ResolveAtoms(prop)
}

// SetProtocols writes the WM_PROTOCOLS atom list.
func (w *Window) SetProtocols(names ...string) error {
	atoms, err := w.d.atomList(names)
	if err != nil {
		return err
	}
	prop, err := w.d.Atom(WMProtocols)
	if err != nil {
		return err
	}
	return w.d.changeCardinalsRaw(w.id, prop, xproto.PropModeReplace, xproto.AtomAtom, atomWords(atoms))
}

// Ping sends the _NET_WM_PING liveness probe. A compliant client echoes
// the exact payload back to the root with the window field rewritten;
// watching for that echo is the caller's business.
func (w *Window) Ping() error {
	ping, err := w.d.Atom(NetWMPing)
	if err != nil {
		return err
	}
	return w.d.SendClientMessage(w.id, WMProtocols,
		uint32(ping), uint32(time.Now().Unix()), uint32(w.id))
}

// SyncRequest sends the _NET_WM_SYNC_REQUEST counter value preceding a
// geometry change, so the client can tie its repaint to the configure.
func (w *Window) SyncRequest(low, high uint32) error {
	sync, err := w.d.Atom(NetWMSyncRequest)
	if err != nil {
		return err
	}
	return w.d.SendClientMessage(w.id, WMProtocols,
		uint32(sync), uint32(time.Now().Unix()), low, high)
}

func containsAtom(atoms []xproto.Atom, atom xproto.Atom) bool {
	for _, a := range atoms {
		if a == atom {
			return true
		}
	}
	return false
}

func atomWords(atoms []xproto.Atom) []uint32 {
	words := make([]uint32, len(atoms))
	for i, a := range atoms {
		words[i] = uint32(a)
	}
	return words
}

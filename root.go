package ewmh

import (
	"github.com/BurntSushi/xgb/xproto"
)

// Root exposes the root-scoped EWMH hints of a Display's selected screen.
// Read-only hints belong to the window manager and are never synthesized;
// mutations are requests the window manager may refuse.
type Root struct {
	d  *Display
	id xproto.Window
}

// RootWindow returns the accessor for the selected screen's root.
func (d *Display) RootWindow() *Root {
	return &Root{d: d, id: d.root}
}

// ID returns the root window id.
func (r *Root) ID() xproto.Window { return r.id }

// Size is a desktop geometry in pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// Point is a viewport origin in pixels.
type Point struct {
	X uint32
	Y uint32
}

// Geometry is a rectangle in root coordinates.
type Geometry struct {
	X      int32
	Y      int32
	Width  uint32
	Height uint32
}

// DesktopLayout mirrors _NET_DESKTOP_LAYOUT. Only a pager owning the
// manager selection may set it; this engine does not enforce ownership.
type DesktopLayout struct {
	Orientation    uint32
	Columns        uint32
	Rows           uint32
	StartingCorner uint32
}

// Supported returns the hints the window manager claims to support.
func (r *Root) Supported() ([]xproto.Atom, error) {
	return r.d.atomListProperty(r.id, NetSupported)
}

// SupportedNames is Supported resolved through the atom table.
func (r *Root) SupportedNames() ([]string, error) {
	prop, err := r.d.GetProperty(r.id, NetSupported, xproto.AtomAtom, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	return r.d.ResolveAtoms(prop)
}

// ClientList returns the window manager's client list in initial mapping
// order.
func (r *Root) ClientList() ([]xproto.Window, error) {
	return r.d.windowListProperty(r.id, NetClientList)
}

// ClientListStacking returns the client list in bottom-to-top stacking
// order.
func (r *Root) ClientListStacking() ([]xproto.Window, error) {
	return r.d.windowListProperty(r.id, NetClientListStack)
}

// NumberOfDesktops reports how many virtual desktops exist. ok is false
// when the hint is absent.
func (r *Root) NumberOfDesktops() (n uint32, ok bool, err error) {
	return r.d.cardinalProperty(r.id, NetNumberOfDesktops, xproto.AtomCardinal)
}

// SetNumberOfDesktops asks the window manager for n desktops. A request
// matching the current count is skipped.
func (r *Root) SetNumberOfDesktops(n uint32) error {
	cur, ok, err := r.NumberOfDesktops()
	if err != nil {
		return err
	}
	if ok && cur == n {
		return nil
	}
	return r.d.SendClientMessage(r.id, NetNumberOfDesktops, n)
}

// DesktopGeometry returns the common desktop size, which may exceed the
// screen size on viewport-scrolling window managers.
func (r *Root) DesktopGeometry() (*Size, error) {
	prop, err := r.d.GetProperty(r.id, NetDesktopGeometry, xproto.AtomCardinal, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	vals := prop.Cardinals()
	if len(vals) < 2 {
		return nil, ErrBadReply
	}
	return &Size{Width: vals[0], Height: vals[1]}, nil
}

// SetDesktopGeometry requests a new common desktop size, skipping the
// request when nothing would change.
func (r *Root) SetDesktopGeometry(width, height uint32) error {
	cur, err := r.DesktopGeometry()
	if err != nil {
		return err
	}
	if cur != nil && cur.Width == width && cur.Height == height {
		return nil
	}
	return r.d.SendClientMessage(r.id, NetDesktopGeometry, width, height)
}

// DesktopViewport returns each desktop's viewport origin.
func (r *Root) DesktopViewport() ([]Point, error) {
	prop, err := r.d.GetProperty(r.id, NetDesktopViewport, xproto.AtomCardinal, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	vals := prop.Cardinals()
	points := make([]Point, 0, len(vals)/2)
	for i := 0; i+1 < len(vals); i += 2 {
		points = append(points, Point{X: vals[i], Y: vals[i+1]})
	}
	return points, nil
}

// SetDesktopViewport requests scrolling the current desktop's viewport.
func (r *Root) SetDesktopViewport(x, y uint32) error {
	return r.d.SendClientMessage(r.id, NetDesktopViewport, x, y)
}

// DesktopNames returns the desktop names. The list length is independent
// of the desktop count; indices beyond it are simply unnamed.
func (r *Root) DesktopNames() ([]string, error) {
	utf8, err := r.d.Atom(Utf8String)
	if err != nil {
		return nil, err
	}
	prop, err := r.d.GetProperty(r.id, NetDesktopNames, utf8, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	return prop.Strings(), nil
}

// SetDesktopNames writes the desktop name list. Names are owned by pagers,
// not the window manager, so this is a direct property write.
func (r *Root) SetDesktopNames(names ...string) error {
	utf8, err := r.d.Atom(Utf8String)
	if err != nil {
		return err
	}
	return r.d.ChangePropertyStrings(r.id, NetDesktopNames, xproto.PropModeReplace, utf8, names...)
}

// CurrentDesktop reports the active desktop index.
func (r *Root) CurrentDesktop() (n uint32, ok bool, err error) {
	return r.d.cardinalProperty(r.id, NetCurrentDesktop, xproto.AtomCardinal)
}

// SetCurrentDesktop requests switching to desktop n, skipping the request
// when n is already current.
func (r *Root) SetCurrentDesktop(n uint32) error {
	cur, ok, err := r.CurrentDesktop()
	if err != nil {
		return err
	}
	if ok && cur == n {
		return nil
	}
	return r.d.SendClientMessage(r.id, NetCurrentDesktop, n, uint32(xproto.TimeCurrentTime))
}

// ActiveWindow reports the window manager's notion of the active window.
func (r *Root) ActiveWindow() (xproto.Window, bool, error) {
	v, ok, err := r.d.cardinalProperty(r.id, NetActiveWindow, xproto.AtomWindow)
	return xproto.Window(v), ok, err
}

// SetActiveWindow requests activation of win. current is the requestor's
// currently active window, or zero if unknown.
func (r *Root) SetActiveWindow(win xproto.Window, source Source, current xproto.Window) error {
	return r.d.SendClientMessage(win, NetActiveWindow,
		uint32(source), uint32(xproto.TimeCurrentTime), uint32(current))
}

// WorkArea returns the per-desktop geometry left free of docks and panels.
func (r *Root) WorkArea() ([]Geometry, error) {
	prop, err := r.d.GetProperty(r.id, NetWorkarea, xproto.AtomCardinal, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	return geometriesFromWords(prop.Cardinals()), nil
}

// SupportingWMCheck returns the child window an EWMH-compliant window
// manager maintains to identify itself.
func (r *Root) SupportingWMCheck() (xproto.Window, bool, error) {
	v, ok, err := r.d.cardinalProperty(r.id, NetSupportingWMCheck, xproto.AtomWindow)
	return xproto.Window(v), ok, err
}

// WMName identifies the running window manager via the supporting check
// window's _NET_WM_NAME. Empty when no compliant window manager runs.
func (r *Root) WMName() (string, error) {
	check, ok, err := r.SupportingWMCheck()
	if err != nil || !ok {
		return "", err
	}
	name, _, err := r.d.utf8Property(check, NetWMName)
	return name, err
}

// VirtualRoots lists virtual root windows on window managers that
// reparent into them.
func (r *Root) VirtualRoots() ([]xproto.Window, error) {
	return r.d.windowListProperty(r.id, NetVirtualRoots)
}

// ShowingDesktop reports whether "showing the desktop" mode is active.
func (r *Root) ShowingDesktop() (showing bool, ok bool, err error) {
	v, ok, err := r.d.cardinalProperty(r.id, NetShowingDesktop, xproto.AtomCardinal)
	return v != 0, ok, err
}

// SetShowingDesktop requests entering or leaving showing-desktop mode,
// skipping the request when already there.
func (r *Root) SetShowingDesktop(show bool) error {
	cur, ok, err := r.ShowingDesktop()
	if err != nil {
		return err
	}
	if ok && cur == show {
		return nil
	}
	var v uint32
	if show {
		v = 1
	}
	return r.d.SendClientMessage(r.id, NetShowingDesktop, v)
}

// DesktopLayout returns the pager's desktop layout, if one published it.
func (r *Root) DesktopLayout() (*DesktopLayout, error) {
	prop, err := r.d.GetProperty(r.id, NetDesktopLayout, xproto.AtomCardinal, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	vals := prop.Cardinals()
	if len(vals) < 3 {
		return nil, ErrBadReply
	}
	l := &DesktopLayout{Orientation: vals[0], Columns: vals[1], Rows: vals[2]}
	if len(vals) > 3 {
		l.StartingCorner = vals[3]
	}
	return l, nil
}

// SetDesktopLayout writes the desktop layout. The caller must own the
// _NET_DESKTOP_LAYOUT_Sn manager selection; that precondition is not
// checked here.
func (r *Root) SetDesktopLayout(l DesktopLayout) error {
	atom, err := r.d.Atom(NetDesktopLayout)
	if err != nil {
		return err
	}
	return r.d.changeCardinalsRaw(r.id, atom, xproto.PropModeReplace, xproto.AtomCardinal,
		[]uint32{l.Orientation, l.Columns, l.Rows, l.StartingCorner})
}

// CloseWindow asks the window manager to close win. Unlike a direct
// DestroyWindow this lets the window manager run the polite shutdown
// protocol with the client.
func (r *Root) CloseWindow(win xproto.Window, source Source) error {
	return r.d.SendClientMessage(win, NetCloseWindow,
		uint32(xproto.TimeCurrentTime), uint32(source))
}

// moveResizeFlags packs the _NET_MOVERESIZE_WINDOW flags word: gravity in
// the low byte (0 meaning the window's own WM_SIZE_HINTS gravity), bits
// 8-11 flagging which of x/y/width/height are present, bit 12 for an
// application-sourced and bit 13 for a pager-sourced request.
func moveResizeFlags(gravity uint32, x, y, width, height *int, source Source) uint32 {
	flags := gravity & 0xff
	if x != nil {
		flags |= 1 << 8
	}
	if y != nil {
		flags |= 1 << 9
	}
	if width != nil {
		flags |= 1 << 10
	}
	if height != nil {
		flags |= 1 << 11
	}
	switch source {
	case SourceApplication:
		flags |= 1 << 12
	case SourcePager:
		flags |= 1 << 13
	}
	return flags
}

func coordWord(v *int) uint32 {
	if v == nil {
		return 0
	}
	return uint32(int32(*v))
}

// MoveResizeWindow requests a geometry change for win. Nil coordinates
// are left to the window manager; gravity 0 defers to the window's own
// size hints.
func (r *Root) MoveResizeWindow(win xproto.Window, gravity uint32, x, y, width, height *int, source Source) error {
	return r.d.SendClientMessage(win, NetMoveResizeWindow,
		moveResizeFlags(gravity, x, y, width, height, source),
		coordWord(x), coordWord(y), coordWord(width), coordWord(height))
}

// StartMoveResize initiates an interactive, pointer-driven move or resize
// of win, as a titlebar drag would.
func (r *Root) StartMoveResize(win xproto.Window, rootX, rootY int, direction MoveResizeDirection, button uint32, source Source) error {
	return r.d.SendClientMessage(win, NetWMMoveResize,
		uint32(int32(rootX)), uint32(int32(rootY)), uint32(direction), button, uint32(source))
}

// RestackWindow requests restacking win relative to sibling using a core
// ConfigureWindow detail (xproto.StackModeAbove and friends). The source
// indication is always pager: EWMH reserves this request for pagers.
func (r *Root) RestackWindow(win, sibling xproto.Window, detail uint32) error {
	return r.d.SendClientMessage(win, NetRestackWindow,
		uint32(SourcePager), uint32(sibling), detail)
}

// RequestFrameExtents asks the window manager to publish an extents
// estimate for win, which need not be mapped yet.
func (r *Root) RequestFrameExtents(win xproto.Window) error {
	return r.d.SendClientMessage(win, NetRequestFrameExtents)
}

func geometriesFromWords(vals []uint32) []Geometry {
	geoms := make([]Geometry, 0, len(vals)/4)
	for i := 0; i+3 < len(vals); i += 4 {
		geoms = append(geoms, Geometry{
			X:      int32(vals[i]),
			Y:      int32(vals[i+1]),
			Width:  vals[i+2],
			Height: vals[i+3],
		})
	}
	return geoms
}

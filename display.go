package ewmh

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
)

// socketDir is where the X server exposes one socket per local display.
// Overridable so discovery can be exercised against a scratch directory.
var socketDir = "/tmp/.X11-unix"

// Display owns a connection to one X server and the per-connection state
// that depends on it: the selected screen/root and the atom caches. A
// Display is constructed explicitly with Open and passed by reference;
// there is no process-wide mutable default.
type Display struct {
	conn   *xgb.Conn
	setup  *xproto.SetupInfo
	screen *xproto.ScreenInfo
	root   xproto.Window
	name   string

	atomMu    sync.RWMutex
	atoms     map[string]xproto.Atom
	atomNames map[xproto.Atom]string
}

// Open connects to the named display (e.g. ":0"). An empty name follows
// $DISPLAY, like the underlying protocol library.
func Open(name string) (*Display, error) {
	if name == "" {
		name = os.Getenv("DISPLAY")
	}
	conn, err := xgb.NewConnDisplay(name)
	if err != nil {
		return nil, fmt.Errorf("open display %q: %w", name, err)
	}
	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)
	return &Display{
		conn:      conn,
		setup:     setup,
		screen:    screen,
		root:      screen.Root,
		name:      name,
		atoms:     make(map[string]xproto.Atom),
		atomNames: make(map[xproto.Atom]string),
	}, nil
}

// Close shuts the connection down. The Display must not be used afterward.
func (d *Display) Close() {
	d.conn.Close()
}

// Conn exposes the underlying connection for ad-hoc protocol calls the
// accessors do not cover.
func (d *Display) Conn() *xgb.Conn { return d.conn }

// Name returns the display string this handle was opened with.
func (d *Display) Name() string { return d.name }

// Root returns the root window of the selected screen.
func (d *Display) Root() xproto.Window { return d.root }

// Screen returns the selected screen.
func (d *Display) Screen() *xproto.ScreenInfo { return d.screen }

// selectScreen switches the Display to screen number i of its server.
func (d *Display) selectScreen(i int) {
	if i < 0 || i >= len(d.setup.Roots) {
		return
	}
	d.screen = &d.setup.Roots[i]
	d.root = d.screen.Root
}

// ScreenInfo describes one screen of an enumerated display.
type ScreenInfo struct {
	Number  int
	Root    xproto.Window
	Width   uint16
	Height  uint16
	Default bool
}

// HeadInfo describes one physical monitor attached to a screen, as
// reported by the Xinerama extension.
type HeadInfo struct {
	X      int16
	Y      int16
	Width  uint16
	Height uint16
}

// DisplayInfo describes one local display and its screens.
type DisplayInfo struct {
	Name    string
	Screens []ScreenInfo
	Heads   []HeadInfo
	Default bool
}

// displaySocketNames lists the display names (":0", ":1", ...) that have a
// socket in dir, sorted. Missing or unreadable directories yield nothing:
// discovery is best effort.
func displaySocketNames(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		n := e.Name()
		if !strings.HasPrefix(n, "X") || len(n) < 2 {
			continue
		}
		names = append(names, ":"+n[1:])
	}
	sort.Strings(names)
	return names
}

// sameDisplay reports whether two display strings refer to the same
// server, ignoring the screen suffix (":0.1" and ":0" match).
func sameDisplay(a, b string) bool {
	trim := func(s string) string {
		if i := strings.LastIndex(s, "."); i > strings.LastIndex(s, ":") {
			return s[:i]
		}
		return s
	}
	return trim(a) == trim(b)
}

// EnumerateDisplays opens every local display it can find, records its
// screens and attached monitors, and closes it again. A display or screen
// that fails to answer is skipped; enumeration never fails as a whole.
func EnumerateDisplays() []DisplayInfo {
	def := os.Getenv("DISPLAY")
	var infos []DisplayInfo
	for _, name := range displaySocketNames(socketDir) {
		d, err := Open(name)
		if err != nil {
			continue
		}
		info := DisplayInfo{
			Name:    name,
			Default: sameDisplay(name, def),
		}
		for i := range d.setup.Roots {
			s := &d.setup.Roots[i]
			info.Screens = append(info.Screens, ScreenInfo{
				Number:  i,
				Root:    s.Root,
				Width:   s.WidthInPixels,
				Height:  s.HeightInPixels,
				Default: info.Default && s.Root == d.root,
			})
		}
		info.Heads = queryHeads(d.conn)
		d.Close()
		infos = append(infos, info)
	}
	return infos
}

// queryHeads asks Xinerama for the physical monitor layout. Servers
// without the extension just yield no heads.
func queryHeads(conn *xgb.Conn) []HeadInfo {
	if err := xinerama.Init(conn); err != nil {
		return nil
	}
	reply, err := xinerama.QueryScreens(conn).Reply()
	if err != nil {
		return nil
	}
	var heads []HeadInfo
	for _, s := range reply.ScreenInfo {
		heads = append(heads, HeadInfo{
			X:      s.XOrg,
			Y:      s.YOrg,
			Width:  s.Width,
			Height: s.Height,
		})
	}
	return heads
}

// DisplayForWindow resolves the display and screen a window lives on by
// checking each display root's _NET_CLIENT_LIST for membership. With a
// single display and screen it short-circuits to the default. When no
// display claims the window the default is returned rather than an error;
// the window may be unmapped or unmanaged.
func DisplayForWindow(win xproto.Window) (*Display, error) {
	return scanDisplays(func(d *Display) bool {
		return d.clientListContains(win)
	})
}

// DisplayForRoot resolves the display and screen owning the given root.
func DisplayForRoot(root xproto.Window) (*Display, error) {
	return scanDisplays(func(d *Display) bool {
		return d.root == root
	})
}

// scanDisplays opens each local display, selects each of its screens in
// turn and applies match. The first matching handle is returned still
// open; all others are closed. Falls back to the process default.
func scanDisplays(match func(*Display) bool) (*Display, error) {
	def, err := Open("")
	if err != nil {
		return nil, err
	}
	names := displaySocketNames(socketDir)
	if len(names) <= 1 && len(def.setup.Roots) == 1 {
		return def, nil
	}
	for _, name := range names {
		var d *Display
		if sameDisplay(name, def.name) {
			d = def
		} else {
			var err error
			d, err = Open(name)
			if err != nil {
				continue
			}
		}
		for i := range d.setup.Roots {
			d.selectScreen(i)
			if match(d) {
				if d != def {
					def.Close()
				}
				return d, nil
			}
		}
		if d != def {
			d.Close()
		}
	}
	def.screen = def.setup.DefaultScreen(def.conn)
	def.root = def.screen.Root
	return def, nil
}

// clientListContains reports whether the current screen's root lists the
// window in _NET_CLIENT_LIST.
func (d *Display) clientListContains(win xproto.Window) bool {
	prop, err := d.GetProperty(d.root, NetClientList, xproto.AtomWindow, 0)
	if err != nil || prop == nil {
		return false
	}
	for _, w := range prop.Cardinals() {
		if xproto.Window(w) == win {
			return true
		}
	}
	return false
}

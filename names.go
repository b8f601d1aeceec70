package ewmh

// Atom names defined by the EWMH and ICCCM specifications. Names are
// case-exact; ids must be re-resolved per connection (see Display.Atom).

// Root window properties and messages.
const (
	NetSupported           = "_NET_SUPPORTED"
	NetClientList          = "_NET_CLIENT_LIST"
	NetClientListStack     = "_NET_CLIENT_LIST_STACKING"
	NetNumberOfDesktops    = "_NET_NUMBER_OF_DESKTOPS"
	NetDesktopGeometry     = "_NET_DESKTOP_GEOMETRY"
	NetDesktopViewport     = "_NET_DESKTOP_VIEWPORT"
	NetCurrentDesktop      = "_NET_CURRENT_DESKTOP"
	NetDesktopNames        = "_NET_DESKTOP_NAMES"
	NetActiveWindow        = "_NET_ACTIVE_WINDOW"
	NetWorkarea            = "_NET_WORKAREA"
	NetSupportingWMCheck   = "_NET_SUPPORTING_WM_CHECK"
	NetVirtualRoots        = "_NET_VIRTUAL_ROOTS"
	NetShowingDesktop      = "_NET_SHOWING_DESKTOP"
	NetDesktopLayout       = "_NET_DESKTOP_LAYOUT"
	NetCloseWindow         = "_NET_CLOSE_WINDOW"
	NetMoveResizeWindow    = "_NET_MOVERESIZE_WINDOW"
	NetWMMoveResize        = "_NET_WM_MOVERESIZE"
	NetRestackWindow       = "_NET_RESTACK_WINDOW"
	NetRequestFrameExtents = "_NET_REQUEST_FRAME_EXTENTS"
)

// Application window properties and messages.
const (
	NetWMName             = "_NET_WM_NAME"
	NetWMVisibleName      = "_NET_WM_VISIBLE_NAME"
	NetWMIconName         = "_NET_WM_ICON_NAME"
	NetWMVisibleIconName  = "_NET_WM_VISIBLE_ICON_NAME"
	NetWMDesktop          = "_NET_WM_DESKTOP"
	NetWMWindowType       = "_NET_WM_WINDOW_TYPE"
	NetWMState            = "_NET_WM_STATE"
	NetWMAllowedActions   = "_NET_WM_ALLOWED_ACTIONS"
	NetWMStrut            = "_NET_WM_STRUT"
	NetWMStrutPartial     = "_NET_WM_STRUT_PARTIAL"
	NetWMIconGeometry     = "_NET_WM_ICON_GEOMETRY"
	NetWMPid              = "_NET_WM_PID"
	NetWMHandledIcons     = "_NET_WM_HANDLED_ICONS"
	NetWMUserTime         = "_NET_WM_USER_TIME"
	NetFrameExtents       = "_NET_FRAME_EXTENTS"
	NetWMOpaqueRegion     = "_NET_WM_OPAQUE_REGION"
	NetWMBypassCompositor = "_NET_WM_BYPASS_COMPOSITOR"
	NetWMPing             = "_NET_WM_PING"
	NetWMSyncRequest      = "_NET_WM_SYNC_REQUEST"

	// Non-standard but widely deployed.
	GtkFrameExtents = "_GTK_FRAME_EXTENTS"
	MotifWMHints    = "_MOTIF_WM_HINTS"

	// ICCCM.
	WMProtocols    = "WM_PROTOCOLS"
	WMChangeState  = "WM_CHANGE_STATE"
	WMName         = "WM_NAME"
	WMIconName     = "WM_ICON_NAME"
	WMClass        = "WM_CLASS"
	WMTransientFor = "WM_TRANSIENT_FOR"
	WMDeleteWindow = "WM_DELETE_WINDOW"
	WMTakeFocus    = "WM_TAKE_FOCUS"

	Utf8String = "UTF8_STRING"
)

// _NET_WM_WINDOW_TYPE values.
const (
	WindowTypeDesktop = "_NET_WM_WINDOW_TYPE_DESKTOP"
	WindowTypeDock    = "_NET_WM_WINDOW_TYPE_DOCK"
	WindowTypeToolbar = "_NET_WM_WINDOW_TYPE_TOOLBAR"
	WindowTypeMenu    = "_NET_WM_WINDOW_TYPE_MENU"
	WindowTypeUtility = "_NET_WM_WINDOW_TYPE_UTILITY"
	WindowTypeSplash  = "_NET_WM_WINDOW_TYPE_SPLASH"
	WindowTypeDialog  = "_NET_WM_WINDOW_TYPE_DIALOG"
	WindowTypeNormal  = "_NET_WM_WINDOW_TYPE_NORMAL"
)

// _NET_WM_STATE values.
const (
	StateModal            = "_NET_WM_STATE_MODAL"
	StateSticky           = "_NET_WM_STATE_STICKY"
	StateMaximizedVert    = "_NET_WM_STATE_MAXIMIZED_VERT"
	StateMaximizedHorz    = "_NET_WM_STATE_MAXIMIZED_HORZ"
	StateShaded           = "_NET_WM_STATE_SHADED"
	StateSkipTaskbar      = "_NET_WM_STATE_SKIP_TASKBAR"
	StateSkipPager        = "_NET_WM_STATE_SKIP_PAGER"
	StateHidden           = "_NET_WM_STATE_HIDDEN"
	StateFullscreen       = "_NET_WM_STATE_FULLSCREEN"
	StateAbove            = "_NET_WM_STATE_ABOVE"
	StateBelow            = "_NET_WM_STATE_BELOW"
	StateDemandsAttention = "_NET_WM_STATE_DEMANDS_ATTENTION"
	StateFocused          = "_NET_WM_STATE_FOCUSED"
)

// _NET_WM_ALLOWED_ACTIONS values.
const (
	ActionMove          = "_NET_WM_ACTION_MOVE"
	ActionResize        = "_NET_WM_ACTION_RESIZE"
	ActionMinimize      = "_NET_WM_ACTION_MINIMIZE"
	ActionShade         = "_NET_WM_ACTION_SHADE"
	ActionStick         = "_NET_WM_ACTION_STICK"
	ActionMaximizeHorz  = "_NET_WM_ACTION_MAXIMIZE_HORZ"
	ActionMaximizeVert  = "_NET_WM_ACTION_MAXIMIZE_VERT"
	ActionFullscreen    = "_NET_WM_ACTION_FULLSCREEN"
	ActionChangeDesktop = "_NET_WM_ACTION_CHANGE_DESKTOP"
	ActionClose         = "_NET_WM_ACTION_CLOSE"
	ActionAbove         = "_NET_WM_ACTION_ABOVE"
	ActionBelow         = "_NET_WM_ACTION_BELOW"
)

// StateAction selects how a _NET_WM_STATE request mutates the state set.
// The window manager owns the set; clients only ever request deltas.
type StateAction uint32

const (
	StateRemove StateAction = 0
	StateAdd    StateAction = 1
	StateToggle StateAction = 2
)

// Source is the EWMH source indication carried by requests.
type Source uint32

const (
	SourceNone        Source = 0
	SourceApplication Source = 1
	SourcePager       Source = 2
)

// ICCCM WM_CHANGE_STATE argument values.
const (
	WithdrawnState uint32 = 0
	NormalState    uint32 = 1
	IconicState    uint32 = 3
)

// _NET_WM_MOVERESIZE directions.
type MoveResizeDirection uint32

const (
	MoveResizeSizeTopLeft     MoveResizeDirection = 0
	MoveResizeSizeTop         MoveResizeDirection = 1
	MoveResizeSizeTopRight    MoveResizeDirection = 2
	MoveResizeSizeRight       MoveResizeDirection = 3
	MoveResizeSizeBottomRight MoveResizeDirection = 4
	MoveResizeSizeBottom      MoveResizeDirection = 5
	MoveResizeSizeBottomLeft  MoveResizeDirection = 6
	MoveResizeSizeLeft        MoveResizeDirection = 7
	MoveResizeMove            MoveResizeDirection = 8
	MoveResizeSizeKeyboard    MoveResizeDirection = 9
	MoveResizeMoveKeyboard    MoveResizeDirection = 10
	MoveResizeCancel          MoveResizeDirection = 11
)

// _NET_DESKTOP_LAYOUT orientations and starting corners.
const (
	OrientationHorz uint32 = 0
	OrientationVert uint32 = 1

	TopLeft     uint32 = 0
	TopRight    uint32 = 1
	BottomRight uint32 = 2
	BottomLeft  uint32 = 3
)

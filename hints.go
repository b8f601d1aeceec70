package ewmh

import (
	"github.com/BurntSushi/xgb/xproto"
)

// ICCCM structured hints. Each optional field is present iff its flag bit
// is set; mutation is always a read-modify-write of the whole struct.

// WM_HINTS flag bits.
const (
	HintInput        uint32 = 1 << 0
	HintState        uint32 = 1 << 1
	HintIconPixmap   uint32 = 1 << 2
	HintIconWindow   uint32 = 1 << 3
	HintIconPosition uint32 = 1 << 4
	HintIconMask     uint32 = 1 << 5
	HintWindowGroup  uint32 = 1 << 6
	HintUrgency      uint32 = 1 << 8
)

// WM_NORMAL_HINTS (WM_SIZE_HINTS) flag bits.
const (
	HintUSPosition  uint32 = 1 << 0
	HintUSSize      uint32 = 1 << 1
	HintPPosition   uint32 = 1 << 2
	HintPSize       uint32 = 1 << 3
	HintPMinSize    uint32 = 1 << 4
	HintPMaxSize    uint32 = 1 << 5
	HintPResizeInc  uint32 = 1 << 6
	HintPAspect     uint32 = 1 << 7
	HintPBaseSize   uint32 = 1 << 8
	HintPWinGravity uint32 = 1 << 9
)

const (
	wmHintsWords       = 9
	wmNormalHintsWords = 18
	motifHintsWords    = 5
)

// WmHints mirrors the ICCCM WM_HINTS wire layout.
type WmHints struct {
	Flags        uint32
	Input        uint32
	InitialState uint32
	IconPixmap   xproto.Pixmap
	IconWindow   xproto.Window
	IconX        int32
	IconY        int32
	IconMask     xproto.Pixmap
	WindowGroup  xproto.Window
}

func (h *WmHints) words() []uint32 {
	return []uint32{
		h.Flags, h.Input, h.InitialState,
		uint32(h.IconPixmap), uint32(h.IconWindow),
		uint32(h.IconX), uint32(h.IconY),
		uint32(h.IconMask), uint32(h.WindowGroup),
	}
}

func wmHintsFromWords(vals []uint32) *WmHints {
	padded := make([]uint32, wmHintsWords)
	copy(padded, vals)
	return &WmHints{
		Flags:        padded[0],
		Input:        padded[1],
		InitialState: padded[2],
		IconPixmap:   xproto.Pixmap(padded[3]),
		IconWindow:   xproto.Window(padded[4]),
		IconX:        int32(padded[5]),
		IconY:        int32(padded[6]),
		IconMask:     xproto.Pixmap(padded[7]),
		WindowGroup:  xproto.Window(padded[8]),
	}
}

// WmNormalHints mirrors the ICCCM WM_SIZE_HINTS wire layout as used for
// WM_NORMAL_HINTS. The x/y/width/height slots are obsolete but kept so a
// read-modify-write never loses them.
type WmNormalHints struct {
	Flags        uint32
	X, Y         int32
	Width        uint32
	Height       uint32
	MinWidth     uint32
	MinHeight    uint32
	MaxWidth     uint32
	MaxHeight    uint32
	WidthInc     uint32
	HeightInc    uint32
	MinAspectNum uint32
	MinAspectDen uint32
	MaxAspectNum uint32
	MaxAspectDen uint32
	BaseWidth    uint32
	BaseHeight   uint32
	WinGravity   uint32
}

func (h *WmNormalHints) words() []uint32 {
	return []uint32{
		h.Flags, uint32(h.X), uint32(h.Y), h.Width, h.Height,
		h.MinWidth, h.MinHeight, h.MaxWidth, h.MaxHeight,
		h.WidthInc, h.HeightInc,
		h.MinAspectNum, h.MinAspectDen, h.MaxAspectNum, h.MaxAspectDen,
		h.BaseWidth, h.BaseHeight, h.WinGravity,
	}
}

func wmNormalHintsFromWords(vals []uint32) *WmNormalHints {
	padded := make([]uint32, wmNormalHintsWords)
	copy(padded, vals)
	return &WmNormalHints{
		Flags: padded[0],
		X:     int32(padded[1]), Y: int32(padded[2]),
		Width: padded[3], Height: padded[4],
		MinWidth: padded[5], MinHeight: padded[6],
		MaxWidth: padded[7], MaxHeight: padded[8],
		WidthInc: padded[9], HeightInc: padded[10],
		MinAspectNum: padded[11], MinAspectDen: padded[12],
		MaxAspectNum: padded[13], MaxAspectDen: padded[14],
		BaseWidth: padded[15], BaseHeight: padded[16],
		WinGravity: padded[17],
	}
}

// WmHints reads the window's WM_HINTS, or nil when absent.
func (w *Window) WmHints() (*WmHints, error) {
	prop, err := w.d.GetPropertyAtom(w.id, xproto.AtomWmHints, xproto.AtomWmHints, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	vals := prop.Cardinals()
	if len(vals) == 0 {
		return nil, ErrBadReply
	}
	return wmHintsFromWords(vals), nil
}

// SetWmHints writes the whole WM_HINTS struct back.
func (w *Window) SetWmHints(h *WmHints) error {
	return w.d.changeCardinalsRaw(w.id, xproto.AtomWmHints,
		xproto.PropModeReplace, xproto.AtomWmHints, h.words())
}

// WmNormalHints reads the window's WM_NORMAL_HINTS, or nil when absent.
func (w *Window) WmNormalHints() (*WmNormalHints, error) {
	prop, err := w.d.GetPropertyAtom(w.id, xproto.AtomWmNormalHints, xproto.AtomWmSizeHints, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	vals := prop.Cardinals()
	if len(vals) == 0 {
		return nil, ErrBadReply
	}
	return wmNormalHintsFromWords(vals), nil
}

// SetWmNormalHints writes the whole WM_NORMAL_HINTS struct back.
func (w *Window) SetWmNormalHints(h *WmNormalHints) error {
	return w.d.changeCardinalsRaw(w.id, xproto.AtomWmNormalHints,
		xproto.PropModeReplace, xproto.AtomWmSizeHints, h.words())
}

// Tri-state field mutation. The zero value of every op type is Keep, so
// an update struct only names the fields it touches. Remove clears the
// flag bit and leaves stale field data behind, which is how the protocol
// marks a field absent.

// OpKind tags a field operation.
type OpKind int

const (
	OpKeep OpKind = iota
	OpRemove
	OpSet
)

// CardOp mutates a single-word field.
type CardOp struct {
	Kind  OpKind
	Value uint32
}

// SetCard returns an op that sets the field and its flag bit.
func SetCard(v uint32) CardOp { return CardOp{Kind: OpSet, Value: v} }

// RemoveCard returns an op that clears the field's flag bit.
func RemoveCard() CardOp { return CardOp{Kind: OpRemove} }

// PointOp mutates an (x, y) field pair.
type PointOp struct {
	Kind OpKind
	X, Y int32
}

// SetPoint returns an op that sets both coordinates and the flag bit.
func SetPoint(x, y int32) PointOp { return PointOp{Kind: OpSet, X: x, Y: y} }

// RemovePoint returns an op that clears the pair's flag bit.
func RemovePoint() PointOp { return PointOp{Kind: OpRemove} }

// SizeOp mutates a (width, height) field pair.
type SizeOp struct {
	Kind          OpKind
	Width, Height uint32
}

// SetSize returns an op that sets both dimensions and the flag bit.
func SetSize(w, h uint32) SizeOp { return SizeOp{Kind: OpSet, Width: w, Height: h} }

// RemoveSize returns an op that clears the pair's flag bit.
func RemoveSize() SizeOp { return SizeOp{Kind: OpRemove} }

// AspectOp mutates the min/max aspect ratio quadruple, which shares one
// flag bit.
type AspectOp struct {
	Kind                           OpKind
	MinNum, MinDen, MaxNum, MaxDen uint32
}

// SetAspect returns an op setting both aspect ratios and the flag bit.
func SetAspect(minNum, minDen, maxNum, maxDen uint32) AspectOp {
	return AspectOp{Kind: OpSet, MinNum: minNum, MinDen: minDen, MaxNum: maxNum, MaxDen: maxDen}
}

// RemoveAspect returns an op that clears the aspect flag bit.
func RemoveAspect() AspectOp { return AspectOp{Kind: OpRemove} }

// WmHintsUpdate names the WM_HINTS fields to mutate; untouched fields
// keep both their value and their flag bit.
type WmHintsUpdate struct {
	Input        CardOp
	InitialState CardOp
	IconPixmap   CardOp
	IconWindow   CardOp
	IconPosition PointOp
	IconMask     CardOp
	WindowGroup  CardOp
	// Urgency is flag-only; its CardOp value is ignored.
	Urgency CardOp
}

func applyCard(op CardOp, flags *uint32, bit uint32, field *uint32) {
	switch op.Kind {
	case OpSet:
		*field = op.Value
		*flags |= bit
	case OpRemove:
		*flags &^= bit
	}
}

func (u WmHintsUpdate) apply(h *WmHints) {
	applyCard(u.Input, &h.Flags, HintInput, &h.Input)
	applyCard(u.InitialState, &h.Flags, HintState, &h.InitialState)

	pixmap := uint32(h.IconPixmap)
	applyCard(u.IconPixmap, &h.Flags, HintIconPixmap, &pixmap)
	h.IconPixmap = xproto.Pixmap(pixmap)

	win := uint32(h.IconWindow)
	applyCard(u.IconWindow, &h.Flags, HintIconWindow, &win)
	h.IconWindow = xproto.Window(win)

	switch u.IconPosition.Kind {
	case OpSet:
		h.IconX, h.IconY = u.IconPosition.X, u.IconPosition.Y
		h.Flags |= HintIconPosition
	case OpRemove:
		h.Flags &^= HintIconPosition
	}

	mask := uint32(h.IconMask)
	applyCard(u.IconMask, &h.Flags, HintIconMask, &mask)
	h.IconMask = xproto.Pixmap(mask)

	group := uint32(h.WindowGroup)
	applyCard(u.WindowGroup, &h.Flags, HintWindowGroup, &group)
	h.WindowGroup = xproto.Window(group)

	switch u.Urgency.Kind {
	case OpSet:
		h.Flags |= HintUrgency
	case OpRemove:
		h.Flags &^= HintUrgency
	}
}

// UpdateWmHints fetches WM_HINTS, applies the requested field mutations
// and writes the struct back in one pass. A window without hints starts
// from an all-absent struct.
func (w *Window) UpdateWmHints(u WmHintsUpdate) error {
	h, err := w.WmHints()
	if err != nil {
		return err
	}
	if h == nil {
		h = &WmHints{}
	}
	u.apply(h)
	return w.SetWmHints(h)
}

// WmNormalHintsUpdate names the WM_NORMAL_HINTS fields to mutate.
type WmNormalHintsUpdate struct {
	MinSize   SizeOp
	MaxSize   SizeOp
	ResizeInc SizeOp
	Aspect    AspectOp
	BaseSize  SizeOp
	Gravity   CardOp
}

func applySize(op SizeOp, flags *uint32, bit uint32, width, height *uint32) {
	switch op.Kind {
	case OpSet:
		*width, *height = op.Width, op.Height
		*flags |= bit
	case OpRemove:
		*flags &^= bit
	}
}

func (u WmNormalHintsUpdate) apply(h *WmNormalHints) {
	applySize(u.MinSize, &h.Flags, HintPMinSize, &h.MinWidth, &h.MinHeight)
	applySize(u.MaxSize, &h.Flags, HintPMaxSize, &h.MaxWidth, &h.MaxHeight)
	applySize(u.ResizeInc, &h.Flags, HintPResizeInc, &h.WidthInc, &h.HeightInc)
	applySize(u.BaseSize, &h.Flags, HintPBaseSize, &h.BaseWidth, &h.BaseHeight)

	switch u.Aspect.Kind {
	case OpSet:
		h.MinAspectNum, h.MinAspectDen = u.Aspect.MinNum, u.Aspect.MinDen
		h.MaxAspectNum, h.MaxAspectDen = u.Aspect.MaxNum, u.Aspect.MaxDen
		h.Flags |= HintPAspect
	case OpRemove:
		h.Flags &^= HintPAspect
	}

	applyCard(u.Gravity, &h.Flags, HintPWinGravity, &h.WinGravity)
}

// UpdateWmNormalHints is the WM_NORMAL_HINTS read-modify-write cycle.
func (w *Window) UpdateWmNormalHints(u WmNormalHintsUpdate) error {
	h, err := w.WmNormalHints()
	if err != nil {
		return err
	}
	if h == nil {
		h = &WmNormalHints{}
	}
	u.apply(h)
	return w.SetWmNormalHints(h)
}

// Motif WM hints, the pre-EWMH decoration protocol window managers still
// honor.

const (
	MotifHintFunctions   uint32 = 1 << 0
	MotifHintDecorations uint32 = 1 << 1
)

const (
	MotifFuncAll      uint32 = 1 << 0
	MotifFuncResize   uint32 = 1 << 1
	MotifFuncMove     uint32 = 1 << 2
	MotifFuncMinimize uint32 = 1 << 3
	MotifFuncMaximize uint32 = 1 << 4
	MotifFuncClose    uint32 = 1 << 5
)

const (
	MotifDecorAll      uint32 = 1 << 0
	MotifDecorBorder   uint32 = 1 << 1
	MotifDecorResizeH  uint32 = 1 << 2
	MotifDecorTitle    uint32 = 1 << 3
	MotifDecorMenu     uint32 = 1 << 4
	MotifDecorMinimize uint32 = 1 << 5
	MotifDecorMaximize uint32 = 1 << 6
)

// MotifHints mirrors the 5-word _MOTIF_WM_HINTS payload.
type MotifHints struct {
	Flags       uint32
	Functions   uint32
	Decorations uint32
	InputMode   uint32
	Status      uint32
}

// MotifHints reads the window's Motif hints, or nil when absent.
func (w *Window) MotifHints() (*MotifHints, error) {
	atom, err := w.d.AtomIfExists(MotifWMHints)
	if err != nil || atom == xproto.AtomNone {
		return nil, err
	}
	prop, err := w.d.GetPropertyAtom(w.id, atom, atom, 0)
	if err != nil || prop == nil {
		return nil, err
	}
	vals := prop.Cardinals()
	padded := make([]uint32, motifHintsWords)
	copy(padded, vals)
	return &MotifHints{
		Flags:       padded[0],
		Functions:   padded[1],
		Decorations: padded[2],
		InputMode:   padded[3],
		Status:      padded[4],
	}, nil
}

// SetMotifHints writes the Motif hints. The property is its own type.
func (w *Window) SetMotifHints(h *MotifHints) error {
	atom, err := w.d.Atom(MotifWMHints)
	if err != nil {
		return err
	}
	return w.d.changeCardinalsRaw(w.id, atom, xproto.PropModeReplace, atom,
		[]uint32{h.Flags, h.Functions, h.Decorations, h.InputMode, h.Status})
}

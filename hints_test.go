package ewmh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWmHintsWordsRoundTrip(t *testing.T) {
	h := &WmHints{
		Flags:        HintInput | HintState | HintIconPosition,
		Input:        1,
		InitialState: NormalState,
		IconX:        -5,
		IconY:        12,
		WindowGroup:  0x600001,
	}
	assert.Equal(t, h, wmHintsFromWords(h.words()))
	assert.Len(t, h.words(), wmHintsWords)
}

func TestWmNormalHintsWordsRoundTrip(t *testing.T) {
	h := &WmNormalHints{
		Flags:        HintPMinSize | HintPAspect | HintPWinGravity,
		MinWidth:     200,
		MinHeight:    100,
		MinAspectNum: 4,
		MinAspectDen: 3,
		MaxAspectNum: 16,
		MaxAspectDen: 9,
		WinGravity:   5,
	}
	assert.Equal(t, h, wmNormalHintsFromWords(h.words()))
	assert.Len(t, h.words(), wmNormalHintsWords)
}

func TestWmHintsFromShortReply(t *testing.T) {
	// Clients occasionally write truncated hint structs; missing words
	// read as zero rather than crashing the decode.
	h := wmHintsFromWords([]uint32{HintInput, 1})
	assert.Equal(t, HintInput, h.Flags)
	assert.Equal(t, uint32(1), h.Input)
	assert.Zero(t, h.InitialState)
}

func TestWmHintsUpdateApply(t *testing.T) {
	h := &WmHints{
		Flags:        HintInput | HintState,
		Input:        1,
		InitialState: IconicState,
	}

	u := WmHintsUpdate{
		// Keep Input untouched (zero value op).
		InitialState: RemoveCard(),
		WindowGroup:  SetCard(0x42),
		Urgency:      CardOp{Kind: OpSet},
	}
	u.apply(h)

	assert.Equal(t, HintInput|HintWindowGroup|HintUrgency, h.Flags)
	assert.Equal(t, uint32(1), h.Input)
	// Remove clears the flag but leaves the stale value in place.
	assert.Equal(t, IconicState, h.InitialState)
	assert.EqualValues(t, 0x42, h.WindowGroup)
}

func TestWmHintsUpdateZeroValueIsKeep(t *testing.T) {
	h := &WmHints{Flags: HintInput | HintUrgency, Input: 1}
	before := *h
	WmHintsUpdate{}.apply(h)
	assert.Equal(t, before, *h)
}

func TestWmNormalHintsUpdateApply(t *testing.T) {
	h := &WmNormalHints{
		Flags:     HintPMaxSize,
		MaxWidth:  800,
		MaxHeight: 600,
	}

	u := WmNormalHintsUpdate{
		MinSize: SetSize(320, 240),
		MaxSize: RemoveSize(),
		Aspect:  SetAspect(4, 3, 16, 9),
		Gravity: SetCard(10),
	}
	u.apply(h)

	assert.Equal(t, HintPMinSize|HintPAspect|HintPWinGravity, h.Flags)
	assert.Equal(t, uint32(320), h.MinWidth)
	assert.Equal(t, uint32(240), h.MinHeight)
	// Stale max size data survives; only the flag is gone.
	assert.Equal(t, uint32(800), h.MaxWidth)
	assert.Equal(t, uint32(4), h.MinAspectNum)
	assert.Equal(t, uint32(9), h.MaxAspectDen)
	assert.Equal(t, uint32(10), h.WinGravity)
}

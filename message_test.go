package ewmh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientMessageData(t *testing.T) {
	assert.Equal(t, []uint32{1, 2, 0, 0, 0}, clientMessageData([]uint32{1, 2}))
	assert.Equal(t, []uint32{0, 0, 0, 0, 0}, clientMessageData(nil))
	assert.Equal(t, []uint32{1, 2, 3, 4, 5}, clientMessageData([]uint32{1, 2, 3, 4, 5, 6}))
}

func TestNewClientMessage(t *testing.T) {
	ev := newClientMessage(0x420, 99, []uint32{7, 8})

	assert.Equal(t, byte(32), ev.Format)
	assert.EqualValues(t, 0x420, ev.Window)
	assert.EqualValues(t, 99, ev.Type)
	assert.Equal(t, []uint32{7, 8, 0, 0, 0}, ev.Data.Data32)
}

func TestMaximizeRequestWire(t *testing.T) {
	// Adding both maximized states must yield exactly
	// [action=Add, MAXIMIZED_HORZ, MAXIMIZED_VERT, source=pager] padded
	// to the 5-word ClientMessage layout.
	const atomHorz, atomVert = 301, 302

	words := stateChangeWords(StateAdd, atomHorz, atomVert, SourcePager)
	ev := newClientMessage(0x1000, 77, words)

	assert.Equal(t, []uint32{1, atomHorz, atomVert, 2, 0}, ev.Data.Data32)
}

package ewmh

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
)

func intp(v int) *int { return &v }

func TestMoveResizeFlags(t *testing.T) {
	// Every combination of present coordinates must set exactly its
	// presence bit (8=x, 9=y, 10=width, 11=height).
	for i := 0; i < 16; i++ {
		var x, y, w, h *int
		var want uint32
		if i&1 != 0 {
			x, want = intp(10), want|1<<8
		}
		if i&2 != 0 {
			y, want = intp(20), want|1<<9
		}
		if i&4 != 0 {
			w, want = intp(300), want|1<<10
		}
		if i&8 != 0 {
			h, want = intp(400), want|1<<11
		}
		assert.Equal(t, want, moveResizeFlags(0, x, y, w, h, SourceNone), "combination %04b", i)
		assert.Equal(t, want|1<<12, moveResizeFlags(0, x, y, w, h, SourceApplication), "combination %04b", i)
		assert.Equal(t, want|1<<13, moveResizeFlags(0, x, y, w, h, SourcePager), "combination %04b", i)
	}
}

func TestMoveResizeFlagsGravity(t *testing.T) {
	// Gravity occupies the low byte only; 0 defers to WM_SIZE_HINTS.
	flags := moveResizeFlags(5, nil, nil, intp(1), nil, SourceNone)
	assert.Equal(t, uint32(5|1<<10), flags)

	// Only width given, default gravity, no source: bit 10 alone.
	assert.Equal(t, uint32(1<<10), moveResizeFlags(0, nil, nil, intp(640), nil, SourceNone))
}

func TestCoordWord(t *testing.T) {
	assert.Equal(t, uint32(0), coordWord(nil))
	assert.Equal(t, uint32(25), coordWord(intp(25)))
	// Negative coordinates travel as 32-bit two's complement.
	assert.Equal(t, uint32(0xffffffff), coordWord(intp(-1)))
}

func TestMaximizePlan(t *testing.T) {
	const atomHorz, atomVert = xproto.Atom(11), xproto.Atom(12)

	tests := []struct {
		name       string
		current    []xproto.Atom
		horz, vert bool
		want       []stateRequest
	}{
		{
			name: "both from scratch",
			horz: true, vert: true,
			want: []stateRequest{{action: StateAdd, first: atomHorz, second: atomVert}},
		},
		{
			name:    "already maximized is a no-op",
			current: []xproto.Atom{atomHorz, atomVert},
			horz:    true, vert: true,
			want: nil,
		},
		{
			name:    "add only the missing axis",
			current: []xproto.Atom{atomHorz},
			horz:    true, vert: true,
			want: []stateRequest{{action: StateAdd, first: atomVert}},
		},
		{
			name:    "full restore",
			current: []xproto.Atom{atomHorz, atomVert},
			want:    []stateRequest{{action: StateRemove, first: atomHorz, second: atomVert}},
		},
		{
			name:    "swap axes",
			current: []xproto.Atom{atomHorz},
			vert:    true,
			want: []stateRequest{
				{action: StateAdd, first: atomVert},
				{action: StateRemove, first: atomHorz},
			},
		},
		{
			name: "nothing wanted, nothing set",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := maximizePlan(tt.current, tt.horz, tt.vert, atomHorz, atomVert)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStateChangeWords(t *testing.T) {
	words := stateChangeWords(StateToggle, 5, xproto.AtomNone, SourceApplication)
	assert.Equal(t, []uint32{2, 5, 0, 1}, words)
}

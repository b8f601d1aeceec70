package ewmh

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitNullTerminated(t *testing.T) {
	assert.Equal(t, []string{"one", "two"}, splitNullTerminated([]byte("one\x00two")))
	// The trailing empty segment of a NUL-terminated list is dropped.
	assert.Equal(t, []string{"one", "two"}, splitNullTerminated([]byte("one\x00two\x00")))
	assert.Equal(t, []string{"solo"}, splitNullTerminated([]byte("solo")))
	// An interior empty segment is real data.
	assert.Equal(t, []string{"a", "", "b"}, splitNullTerminated([]byte("a\x00\x00b")))
}

func TestTextListRoundTrip(t *testing.T) {
	lists := [][]string{
		{"Desktop 1"},
		{"alpha", "beta", "gamma"},
		{"with", "", "empty"},
	}
	for _, list := range lists {
		prop := &Property{Format: 8, Value: encodeTextList(list)}
		assert.Equal(t, list, prop.Strings())
	}
}

func TestPadWords(t *testing.T) {
	assert.Equal(t, []uint32{7, 0, 0, 0, 0}, padWords([]uint32{7}))
	assert.Equal(t, []uint32{1, 2, 3, 4, 5}, padWords([]uint32{1, 2, 3, 4, 5}))
	// Over-long payloads are truncated to the slot count.
	assert.Equal(t, []uint32{1, 2, 3, 4, 5}, padWords([]uint32{1, 2, 3, 4, 5, 6, 7}))
	assert.Equal(t, []uint32{0, 0, 0, 0, 0}, padWords(nil))
}

func TestCardinalRoundTrip(t *testing.T) {
	words := []uint32{3, 0xdeadbeef, 0}
	prop := &Property{Format: 32, Value: encodeWords(padWords(words))}
	assert.Equal(t, []uint32{3, 0xdeadbeef, 0, 0, 0}, prop.Cardinals())
}

func TestPropertyDecodeShapes(t *testing.T) {
	var nilProp *Property
	assert.Nil(t, nilProp.Strings())
	assert.Nil(t, nilProp.Cardinals())

	// A scalar still decodes as a one-element sequence.
	prop := &Property{Format: 32, Value: encodeWords([]uint32{42})}
	assert.Equal(t, []uint32{42}, prop.Cardinals())
	assert.Equal(t, []xproto.Window{42}, prop.Windows())
	assert.Equal(t, []xproto.Atom{42}, prop.Atoms())
}

func TestCheckPropertyReply(t *testing.T) {
	// Format 0 with type None is plain absence.
	absent, err := checkPropertyReply(5, xproto.AtomCardinal, &xproto.GetPropertyReply{})
	require.NoError(t, err)
	assert.True(t, absent)

	// A wrong-typed property answers with the actual format/type, an empty
	// value and nonzero BytesAfter. That must surface as a decode error,
	// never as an empty chunk to retry.
	absent, err = checkPropertyReply(5, 300, &xproto.GetPropertyReply{
		Format:     8,
		Type:       xproto.AtomString,
		BytesAfter: 12,
	})
	assert.False(t, absent)
	assert.ErrorIs(t, err, ErrBadReply)

	// Format 0 with a type set is malformed, not absent.
	_, err = checkPropertyReply(5, xproto.AtomCardinal, &xproto.GetPropertyReply{
		Type: xproto.AtomString,
	})
	assert.ErrorIs(t, err, ErrBadReply)

	// An any-typed request accepts whatever type the property has.
	absent, err = checkPropertyReply(5, xproto.GetPropertyTypeAny, &xproto.GetPropertyReply{
		Format: 8,
		Type:   xproto.AtomString,
		Value:  []byte("x"),
	})
	require.NoError(t, err)
	assert.False(t, absent)

	// A matching reply that claims more bytes but yields none can never
	// make progress.
	_, err = checkPropertyReply(5, xproto.AtomCardinal, &xproto.GetPropertyReply{
		Format:     32,
		Type:       xproto.AtomCardinal,
		BytesAfter: 4,
	})
	assert.ErrorIs(t, err, ErrBadReply)
}

func TestEncodeTextListTerminatesElements(t *testing.T) {
	// Every element of a list-valued property is NUL-terminated on the
	// wire, including the last one.
	assert.Equal(t, []byte("one\x00two\x00"), encodeTextList([]string{"one", "two"}))
	assert.Equal(t, []byte("a\x00\x00b\x00"), encodeTextList([]string{"a", "", "b"}))
	// A single scalar stays bare.
	assert.Equal(t, []byte("solo"), encodeTextList([]string{"solo"}))
	assert.Empty(t, encodeTextList(nil))
}

func TestGetPropertyNeverInterned(t *testing.T) {
	// An atom that resolved to None cannot name an existing property;
	// the read must short-circuit without touching the connection.
	d := &Display{}
	prop, err := d.GetPropertyAtom(1234, xproto.AtomNone, xproto.AtomCardinal, 0)
	require.NoError(t, err)
	assert.Nil(t, prop)
}

package ewmh

import (
	"errors"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
)

func TestAtomNameErrorClassification(t *testing.T) {
	// A BadAtom answer means the id itself is invalid.
	err := atomNameError(99, xproto.AtomError{})
	assert.ErrorIs(t, err, ErrBadAtom)

	// A connection-level failure keeps its own identity.
	err = atomNameError(99, errors.New("broken pipe"))
	assert.NotErrorIs(t, err, ErrBadAtom)
}

package ewmh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplaySocketNames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"X0", "X1", "X12"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	// Non-socket clutter is ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lock"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "X"), nil, 0o600))

	assert.Equal(t, []string{":0", ":1", ":12"}, displaySocketNames(dir))
}

func TestDisplaySocketNamesMissingDir(t *testing.T) {
	assert.Nil(t, displaySocketNames("/does/not/exist"))
}

func TestSameDisplay(t *testing.T) {
	assert.True(t, sameDisplay(":0", ":0"))
	// Screen suffixes are ignored.
	assert.True(t, sameDisplay(":0.1", ":0"))
	assert.True(t, sameDisplay("localhost:10.0", "localhost:10"))
	assert.False(t, sameDisplay(":1", ":0"))
	assert.False(t, sameDisplay("remote:0", ":0"))
}

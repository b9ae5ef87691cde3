package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransientFileRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packagesversions.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	require.NoError(t, NewTransientFileAdapter().Remove(path))
	assert.NoFileExists(t, path)
}

func TestTransientFileRemoveAbsent(t *testing.T) {
	err := NewTransientFileAdapter().Remove(filepath.Join(t.TempDir(), "packagesversions.txt"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

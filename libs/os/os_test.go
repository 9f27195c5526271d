package os_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tmos "github.com/cybornft/cyborstate/libs/os"
)

func TestEnsureDir(t *testing.T) {
	tmp := t.TempDir()

	// Should be possible to create a new directory.
	err := tmos.EnsureDir(filepath.Join(tmp, "dir"), 0755)
	require.NoError(t, err)
	require.DirExists(t, filepath.Join(tmp, "dir"))

	// Should succeed on existing directory.
	err = tmos.EnsureDir(filepath.Join(tmp, "dir"), 0755)
	require.NoError(t, err)

	// Should create nested directories.
	err = tmos.EnsureDir(filepath.Join(tmp, "a", "b", "c"), 0755)
	require.NoError(t, err)
	require.DirExists(t, filepath.Join(tmp, "a", "b", "c"))

	// Should fail on file.
	err = os.WriteFile(filepath.Join(tmp, "file"), []byte{}, 0644)
	require.NoError(t, err)
	err = tmos.EnsureDir(filepath.Join(tmp, "file", "sub"), 0755)
	require.Error(t, err)
	err = tmos.EnsureDir(filepath.Join(tmp, "file"), 0755)
	require.Error(t, err)
	assert.NoDirExists(t, filepath.Join(tmp, "file", "sub"))
}

func TestFileExists(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "state.hex")
	assert.False(t, tmos.FileExists(path))
	require.NoError(t, os.WriteFile(path, []byte("00"), 0600))
	assert.True(t, tmos.FileExists(path))
}

func TestReadFileOrStdin(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "state.hex")
	require.NoError(t, os.WriteFile(path, []byte("0104"), 0600))

	bz, err := tmos.ReadFileOrStdin(path, strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "0104", string(bz))

	bz, err = tmos.ReadFileOrStdin(tmos.StdinPath, strings.NewReader("00\n"))
	require.NoError(t, err)
	assert.Equal(t, "00\n", string(bz))

	_, err = tmos.ReadFileOrStdin(filepath.Join(tmp, "missing"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input")
}

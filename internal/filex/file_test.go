package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_RelativeCreatedInCWD(t *testing.T) {
	tmp, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	defer chdir(t, tmp)()

	got, err := EnsureDir("data")
	require.NoError(t, err)

	want := filepath.Join(tmp, "data")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureDir_AbsoluteAndIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	first, err := EnsureDir(dir)
	require.NoError(t, err)
	second, err := EnsureDir(dir)
	require.NoError(t, err)

	require.Equal(t, dir, first)
	require.Equal(t, first, second)
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o660))

	_, err := EnsureDir(path)
	require.Error(t, err)
}

func TestDataFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	got, err := DataFile(dir, "cobragpt.db")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "cobragpt.db"), got)

	_, err = os.Stat(dir)
	require.NoError(t, err)
}

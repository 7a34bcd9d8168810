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

func TestEnsureSubDir_DefaultsToCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureSubDir("", "preupload")
	require.NoError(t, err)

	// macOS temp dirs resolve through /private
	want, err := filepath.EvalSymlinks(filepath.Join(tmp, "preupload"))
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	require.Equal(t, want, gotResolved)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureSubDir_ExplicitBaseAndIdempotent(t *testing.T) {
	base := t.TempDir()

	first, err := EnsureSubDir(base, "preupload")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(base, "preupload"), first)

	second, err := EnsureSubDir(base, "preupload")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureSubDir_FailsIfFileWithSameNameExists(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "preupload"), []byte("x"), 0o660))

	_, err := EnsureSubDir(base, "preupload")
	require.Error(t, err)
}

func TestLocalPath(t *testing.T) {
	p, err := LocalPath("/tmp/img.jpg")
	require.NoError(t, err)
	require.Equal(t, "/tmp/img.jpg", p)

	if runtime.GOOS != "windows" {
		p, err = LocalPath("file:///tmp/my%20img.jpg")
		require.NoError(t, err)
		require.Equal(t, "/tmp/my img.jpg", p)
	}

	_, err = LocalPath("file://%zz")
	require.Error(t, err)
}

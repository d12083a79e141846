package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fresh/internal/adapters/fs"
)

func TestWalker_WalkDirs(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "src", "pkg"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".git", "objects"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, ".jj"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "node_modules", "dep"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "build"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "src", "main.c"), []byte("int main;"), 0o600))

	walker := fs.NewWalker()
	dirs := make([]string, 0)
	for dir := range walker.WalkDirs(tmpDir, []string{"build"}) {
		dirs = append(dirs, dir)
	}

	assert.ElementsMatch(t, []string{
		tmpDir,
		filepath.Join(tmpDir, "src"),
		filepath.Join(tmpDir, "src", "pkg"),
	}, dirs)
}

func TestWalker_WalkDirs_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "a", "b"), 0o750))

	count := 0
	for range fs.NewWalker().WalkDirs(tmpDir, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_Skip(t *testing.T) {
	walker := fs.NewWalker()

	assert.True(t, walker.Skip(".git", nil))
	assert.True(t, walker.Skip("node_modules", nil))
	assert.True(t, walker.Skip("dist", []string{"d*"}))
	assert.False(t, walker.Skip("src", []string{"d*"}))
}

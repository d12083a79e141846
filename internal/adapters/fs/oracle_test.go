package fs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fresh/internal/adapters/fs"
	"go.trai.ch/fresh/internal/core/domain"
)

func writeFileAt(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestOracle_Stamp(t *testing.T) {
	root := t.TempDir()
	mtime := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	writeFileAt(t, filepath.Join(root, "src", "a.txt"), mtime)
	require.NoError(t, os.Mkdir(filepath.Join(root, "dir"), 0o750))

	oracle := fs.NewOracle()

	t.Run("existing file", func(t *testing.T) {
		ts, err := oracle.Stamp(root, domain.NewInternedString("src/a.txt"))
		require.NoError(t, err)
		require.True(t, ts.Present())
		assert.True(t, ts.Time().Equal(mtime))
	})

	t.Run("absolute path ignores root", func(t *testing.T) {
		abs := filepath.Join(root, "src", "a.txt")
		ts, err := oracle.Stamp("/nonexistent", domain.NewInternedString(abs))
		require.NoError(t, err)
		assert.True(t, ts.Present())
	})

	t.Run("missing file is absent", func(t *testing.T) {
		ts, err := oracle.Stamp(root, domain.NewInternedString("missing.txt"))
		require.NoError(t, err)
		assert.False(t, ts.Present())
	})

	t.Run("directory is not a file", func(t *testing.T) {
		_, err := oracle.Stamp(root, domain.NewInternedString("dir"))
		require.ErrorIs(t, err, domain.ErrNotAFile)
	})
}

func TestOracle_StampAll_PreservesOrder(t *testing.T) {
	root := t.TempDir()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	names := make([]string, 0, 40)
	for i := range 40 {
		name := fmt.Sprintf("files/f%02d.txt", i)
		writeFileAt(t, filepath.Join(root, name), base.Add(time.Duration(i)*time.Second))
		names = append(names, name)
	}
	names = append(names, "missing.txt")

	stamps, err := fs.NewOracle().StampAll(t.Context(), root, domain.NewInternedStrings(names))
	require.NoError(t, err)
	require.Len(t, stamps, len(names))

	for i := range 40 {
		assert.True(t, stamps[i].Time().Equal(base.Add(time.Duration(i)*time.Second)), "stamp %d out of order", i)
	}
	assert.False(t, stamps[40].Present())
}

func TestOracle_StampAll_PropagatesErrors(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "dir"), 0o750))

	_, err := fs.NewOracle().StampAll(t.Context(), root, domain.NewInternedStrings([]string{"dir"}))
	require.ErrorIs(t, err, domain.ErrNotAFile)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("/root", "a.txt"), fs.Resolve("/root", "a.txt"))
	assert.Equal(t, "/abs/a.txt", fs.Resolve("/root", "/abs/a.txt"))
}

package core

import (
	"testing"

	"github.com/oneconcern/stringsync/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanFixtureFs(t *testing.T) afero.Fs {
	fs := afero.NewMemMapFs()
	files := []string{
		"loc/en.strings",
		"loc/de.strings",
		"loc/sub/fr.strings",
		"loc/readme.txt",
		"loc/.hidden/ja.strings",
	}
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte(""), 0644))
	}
	return fs
}

func TestScanFindsCandidates(t *testing.T) {
	fs := scanFixtureFs(t)

	paths, skipped, err := Scan(afero.NewBasePathFs(fs, "loc"), ".", ".strings")
	require.NoError(t, err)
	assert.Empty(t, skipped)
	// lexical walk order, dot-directories and foreign extensions excluded
	assert.Equal(t, []string{"de.strings", "en.strings", "sub/fr.strings"}, paths)
}

func TestScanExtensionFilter(t *testing.T) {
	fs := scanFixtureFs(t)

	paths, _, err := Scan(afero.NewBasePathFs(fs, "loc"), ".", ".txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"readme.txt"}, paths)
}

// denyFs fails Open on one directory to exercise unreadable-subtree
// handling.
type denyFs struct {
	afero.Fs
	deny string
}

var errDenied = errors.New("permission denied")

func (d denyFs) Open(name string) (afero.File, error) {
	if name == d.deny {
		return nil, errDenied
	}
	return d.Fs.Open(name)
}

func TestScanSkipsUnreadableSubtree(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "loc/ok/en.strings", []byte(""), 0644))
	require.NoError(t, afero.WriteFile(fs, "loc/locked/de.strings", []byte(""), 0644))

	denied := denyFs{Fs: afero.NewBasePathFs(fs, "loc"), deny: "locked"}
	paths, skipped, err := Scan(denied, ".", ".strings")
	require.NoError(t, err)

	assert.Equal(t, []string{"ok/en.strings"}, paths)
	require.Len(t, skipped, 1)
	assert.Equal(t, "locked", skipped[0].Path)
	assert.Contains(t, skipped[0].Error, "permission denied")
}

func TestScanUnreadableRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, _, err := Scan(denyFs{Fs: fs, deny: "."}, ".", ".strings")
	require.Error(t, err)
}

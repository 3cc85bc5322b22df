package localfs

import (
	"context"
	"strings"
	"testing"

	"github.com/oneconcern/stringsync/pkg/errors"
	"github.com/oneconcern/stringsync/pkg/status"
	"github.com/oneconcern/stringsync/pkg/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFSRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := New(fs)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "sub/de.strings", strings.NewReader("\"k\" = \"v\";\n")))

	has, err := store.Has(ctx, "sub/de.strings")
	require.NoError(t, err)
	assert.True(t, has)

	b, err := storage.ReadAll(ctx, store, "sub/de.strings")
	require.NoError(t, err)
	assert.Equal(t, "\"k\" = \"v\";\n", string(b))

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"sub/de.strings"}, keys)
}

func TestLocalFSGetMissing(t *testing.T) {
	store := New(afero.NewMemMapFs())
	_, err := store.Get(context.Background(), "nope.strings")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNotExists))
}

func TestAtomicPutStagesThenRenames(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewAtomic(fs)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "de.strings", strings.NewReader("content")))

	b, err := storage.ReadAll(ctx, store, "de.strings")
	require.NoError(t, err)
	assert.Equal(t, "content", string(b))

	// the staging area never leaks into Keys
	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"de.strings"}, keys)

	// nothing left behind in the staging area
	exists, err := afero.Exists(fs, ".put-stage/de.strings")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAtomicRejectsStageKeys(t *testing.T) {
	store := NewAtomic(afero.NewMemMapFs())

	err := store.Put(context.Background(), ".put-stage/x", strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrInvalidResource))
}

func TestAtomicStagingIsLazy(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewAtomic(fs)

	// constructing the store must not touch the tree
	exists, err := afero.DirExists(fs, ".put-stage")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Put(context.Background(), "de.strings", strings.NewReader("x")))
	exists, err = afero.DirExists(fs, ".put-stage")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAtomicOverwrite(t *testing.T) {
	store := NewAtomic(afero.NewMemMapFs())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "f.strings", strings.NewReader("one")))
	require.NoError(t, store.Put(ctx, "f.strings", strings.NewReader("two")))

	b, err := storage.ReadAll(ctx, store, "f.strings")
	require.NoError(t, err)
	assert.Equal(t, "two", string(b))
}

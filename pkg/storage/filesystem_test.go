package storage

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndOpen(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	stored, err := store.Save("001 Yamada/Lesson Notes/001 note.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "001 Yamada/Lesson Notes/001 note.pdf", stored)

	file, err := store.Open(stored)
	require.NoError(t, err)
	defer file.Close()

	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))
}

func TestLocalStorageListSkipsDirectories(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("folder/a.pdf", []byte("a"))
	require.NoError(t, err)
	_, err = store.Save("folder/nested/b.pdf", []byte("b"))
	require.NoError(t, err)

	names, err := store.List("folder")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.pdf"}, names)
}

func TestLocalStorageListMissingDirectory(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	names, err := store.List("never created")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalStorageDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("folder/a.pdf", []byte("a"))
	require.NoError(t, err)
	require.NoError(t, store.Delete("folder/a.pdf"))

	err = store.Delete("folder/a.pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLocalStorageResolveStaysUnderBase(t *testing.T) {
	base := t.TempDir()
	store, err := NewLocalStorage(base)
	require.NoError(t, err)

	stored, err := store.Save("../../escape.pdf", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "../../escape.pdf", stored)

	// The traversal components are cleaned away before joining.
	_, err = os.Stat(base + "/escape.pdf")
	require.NoError(t, err)
}

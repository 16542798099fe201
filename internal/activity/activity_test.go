package activity

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dairy_admin/internal/storage"
)

func newLog(t *testing.T) (*Log, storage.Blob) {
	t.Helper()
	blob, err := storage.NewFileBlob(t.TempDir())
	require.NoError(t, err)
	return NewLog(blob), blob
}

func TestLog_NewestFirst(t *testing.T) {
	l, _ := newLog(t)
	l.Record("create", "orders", "1", "Orders")
	l.Record("delete", "orders", "1", "Orders")

	entries := l.Recent(5)
	require.Len(t, entries, 2)
	assert.Equal(t, "delete", entries[0].Action)
	assert.Equal(t, "create", entries[1].Action)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestLog_CapsEntries(t *testing.T) {
	l, _ := newLog(t)
	for i := 0; i < maxEntries+10; i++ {
		l.Record("update", "products", fmt.Sprintf("%d", i), "Products")
	}
	assert.Len(t, l.Recent(maxEntries+10), maxEntries)
}

func TestLog_SurvivesReload(t *testing.T) {
	l, blob := newLog(t)
	l.Record("create", "stores", "1", "Stores")

	reloaded := NewLog(blob)
	entries := reloaded.Recent(1)
	require.Len(t, entries, 1)
	assert.Equal(t, "stores", entries[0].Entity)
}

func TestLog_CorruptBlobStartsEmpty(t *testing.T) {
	blob, err := storage.NewFileBlob(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, blob.Write(context.Background(), blobKey, []byte("not json")))

	l := NewLog(blob)
	assert.Empty(t, l.Recent(5))
}

package history

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_AppendAndLoad(t *testing.T) {
	seed := testEntry(1, "January", "1", "1", "1")
	store := NewMemoryStore(seed)

	added := testEntry(2, "February", "2", "2", "2")
	require.NoError(t, store.Append(added))

	history, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, 2, history.Len())
	last, ok := history.Last()
	require.True(t, ok)
	assert.True(t, added.Equal(last))
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	store := NewMemoryStore(testEntry(1, "January", "1", "1", "1"))

	history, err := store.Load()
	require.NoError(t, err)
	history.Entries[0].Month = "changed"

	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "January", again.Entries[0].Month)
}

func TestMemoryStore_InjectedErrors(t *testing.T) {
	store := NewMemoryStore()
	store.AppendError = errors.New("disk full")
	store.LoadError = errors.New("unreadable")

	assert.EqualError(t, store.Append(testEntry(1, "January", "1", "1", "1")), "disk full")
	_, err := store.Load()
	assert.EqualError(t, err, "unreadable")
}

var (
	_ Store = (*CSVStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	first := sampleRun(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	second := sampleRun(time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC))

	require.NoError(t, store.Save(first))
	require.NoError(t, store.Save(second))

	runs, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.WithinDuration(t, first.Timestamp, runs[0].Timestamp, time.Second)
	assert.Equal(t, first.Iterations, runs[0].Iterations)
	assert.Equal(t, first.Warmup, runs[0].Warmup)
	assert.Equal(t, first.Entries, runs[0].Entries)

	latest, err := store.LoadLatest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.WithinDuration(t, second.Timestamp, latest.Timestamp, time.Second)
}

func TestSQLiteStore_EmptyHistory(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, runs)

	latest, err := store.LoadLatest()
	require.NoError(t, err)
	assert.Nil(t, latest)
}

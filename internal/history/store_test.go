// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bookpress/pkg/types"
)

func TestRecordAndRecent(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	first := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	require.NoError(t, store.RecordRun(ctx, first, []types.Outcome{
		{File: "a.epub", Type: "epub", Status: types.StatusOK, Book: "book.xml"},
		{File: "b.pdf", Type: "pdf", Status: types.StatusNeedsManual},
	}))
	require.NoError(t, store.RecordRun(ctx, second, []types.Outcome{
		{File: "a.epub", Type: "epub", Status: "error: boom"},
	}))

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first.
	assert.Equal(t, "error: boom", entries[0].Status)
	assert.Equal(t, second.Format(time.RFC3339), entries[0].RunAt)
	assert.Equal(t, "b.pdf", entries[1].File)
	assert.Equal(t, "a.epub", entries[2].File)
	assert.Equal(t, "book.xml", entries[2].Book)
}

func TestRecentLimit(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	var outcomes []types.Outcome
	for i := 0; i < 5; i++ {
		outcomes = append(outcomes, types.Outcome{File: "f.epub", Type: "epub", Status: types.StatusOK})
	}
	require.NoError(t, store.RecordRun(ctx, time.Now(), outcomes))

	entries, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRecentEmpty(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	entries, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

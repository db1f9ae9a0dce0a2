package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/metamap-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *RunStore {
	t.Helper()
	store, err := NewRunStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// TestRunStore_SaveAndGet tests the persistence round trip
func TestRunStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := domain.ExtractionRun{
		ID:            "run-1",
		StartedAt:     time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
		Duration:      1500 * time.Millisecond,
		SentenceCount: 2,
		ConceptCount:  5,
	}
	require.NoError(t, store.SaveRun(ctx, run))

	got, err := store.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.ID)
	assert.Equal(t, 2, got.SentenceCount)
	assert.Equal(t, 5, got.ConceptCount)
	assert.Equal(t, 1500*time.Millisecond, got.Duration)
	assert.True(t, got.StartedAt.Equal(run.StartedAt))
	assert.Empty(t, got.ToolError)
}

// TestRunStore_GetMissing tests ErrNotFound for unknown runs
func TestRunStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetRun(context.Background(), "absent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestRunStore_ListNewestFirst tests ordering and limit
func TestRunStore_ListNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, store.SaveRun(ctx, domain.ExtractionRun{
			ID:        id,
			StartedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	runs, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "new", runs[0].ID)
	assert.Equal(t, "mid", runs[1].ID)
}

// TestRunStore_ToolErrorRoundTrip tests failed runs are kept verbatim
func TestRunStore_ToolErrorRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRun(ctx, domain.ExtractionRun{
		ID:        "failed",
		StartedAt: time.Now().UTC(),
		Filename:  "batch.txt",
		ToolError: "ERROR: no match",
	}))

	got, err := store.GetRun(ctx, "failed")
	require.NoError(t, err)
	assert.Equal(t, "ERROR: no match", got.ToolError)
	assert.Equal(t, "batch.txt", got.Filename)
}

// TestRunStore_ReopenKeepsData tests migrations are idempotent
func TestRunStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewRunStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.SaveRun(ctx, domain.ExtractionRun{
		ID:        "keep",
		StartedAt: time.Now().UTC(),
	}))
	require.NoError(t, first.Close())

	second, err := NewRunStore(dir)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.GetRun(ctx, "keep")
	require.NoError(t, err)
	assert.Equal(t, "keep", got.ID)
}

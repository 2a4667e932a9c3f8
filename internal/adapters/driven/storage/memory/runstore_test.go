package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/contentsync-cli/internal/core/domain"
)

func TestRunStore_RecordAndLastRun(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	last, err := store.LastRun(ctx)
	require.NoError(t, err)
	assert.Nil(t, last)

	first := &domain.RunReport{ID: "run-1", Trigger: domain.TriggerManual, StartedAt: time.Now()}
	require.NoError(t, store.Record(ctx, first))
	require.NoError(t, store.Record(ctx, &domain.RunReport{ID: "run-2", Trigger: domain.TriggerPeriodic}))

	last, err = store.LastRun(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "run-2", last.ID)
}

func TestRunStore_Record_NilReport(t *testing.T) {
	store := NewRunStore()
	err := store.Record(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunStore_History_MostRecentFirst(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	for _, id := range []string{"run-1", "run-2", "run-3"} {
		require.NoError(t, store.Record(ctx, &domain.RunReport{ID: id}))
	}

	history, err := store.History(ctx, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "run-3", history[0].ID)
	assert.Equal(t, "run-2", history[1].ID)
}

func TestRunStore_Prune(t *testing.T) {
	store := NewRunStore()
	ctx := context.Background()

	for _, id := range []string{"run-1", "run-2", "run-3", "run-4"} {
		require.NoError(t, store.Record(ctx, &domain.RunReport{ID: id}))
	}
	require.NoError(t, store.Prune(ctx, 2))

	history, err := store.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "run-4", history[0].ID)
	assert.Equal(t, "run-3", history[1].ID)
}

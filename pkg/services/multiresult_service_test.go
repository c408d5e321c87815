package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventor-project/symon/pkg/services"
	testdb "github.com/inventor-project/symon/test/database"
)

func TestMultiResultReplaceForOrchestrator(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := services.NewMultiResultService(client)

	first, err := svc.ReplaceForOrchestrator(ctx, "orch-1", "key-a")
	require.NoError(t, err)
	assert.Empty(t, first.TestIds)

	// A new init invalidates the previous view of the same orchestrator.
	second, err := svc.ReplaceForOrchestrator(ctx, "orch-1", "key-b")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	_, err = svc.GetMultiResult(ctx, first.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Other orchestrators keep theirs.
	other, err := svc.ReplaceForOrchestrator(ctx, "orch-2", "key-c")
	require.NoError(t, err)
	got, err := svc.GetMultiResult(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "key-b", got.Key)
	assert.Equal(t, 2, client.MultiResult.Query().CountX(ctx))
	_, err = svc.GetMultiResult(ctx, other.ID)
	require.NoError(t, err)
}

func TestMultiResultAddTestIsIdempotent(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := services.NewMultiResultService(client)

	mr, err := svc.ReplaceForOrchestrator(ctx, "orch-1", "key-a")
	require.NoError(t, err)

	ids, err := svc.AddTest(ctx, mr.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, ids)

	ids, err = svc.AddTest(ctx, mr.ID, 9)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 9}, ids)

	ids, err = svc.AddTest(ctx, mr.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 9}, ids, "adding twice is a no-op")

	_, err = svc.AddTest(ctx, 424242, 7)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestMultiResultDeleteOlderThanKeepsNeverUsed(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := services.NewMultiResultService(client)

	stale, err := svc.ReplaceForOrchestrator(ctx, "orch-1", "key-a")
	require.NoError(t, err)
	never, err := svc.ReplaceForOrchestrator(ctx, "orch-2", "key-b")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateLastUsedTime(ctx, stale.ID, time.Now().Add(-48*time.Hour)))

	n, err := svc.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []int{never.ID}, client.MultiResult.Query().IDsX(ctx))
}

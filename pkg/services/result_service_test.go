package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/ent/result"
	"github.com/inventor-project/symon/pkg/services"
	testdb "github.com/inventor-project/symon/test/database"
)

func createResult(t *testing.T, client *ent.Client, idTest int, status result.Status, finished time.Time) *ent.Result {
	t.Helper()
	return client.Result.Create().
		SetIDTest(idTest).
		SetVersion(1).
		SetPlanned(finished.Add(-time.Minute)).
		SetFinished(finished).
		SetStatus(status).
		SetData(`{"rtt_ms": 12}`).
		SaveX(context.Background())
}

func TestResultQueriesByIDWindow(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := services.NewResultService(client)

	now := time.Now()
	first := createResult(t, client, 1, result.StatusSuccess, now.Add(-3*time.Minute))
	second := createResult(t, client, 1, result.StatusError, now.Add(-2*time.Minute))
	third := createResult(t, client, 1, result.StatusSuccess, now.Add(-time.Minute))
	other := createResult(t, client, 2, result.StatusSuccess, now)

	all, err := svc.GetResultsByTest(ctx, 1)
	require.NoError(t, err)
	require.Len(t, all, 3)

	since, err := svc.GetResultsSinceID(ctx, 1, first.ID)
	require.NoError(t, err)
	require.Len(t, since, 2)
	assert.Equal(t, second.ID, since[0].ID)
	assert.Equal(t, third.ID, since[1].ID)

	ranged, err := svc.GetResultsInIDRange(ctx, 1, first.ID, second.ID)
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, second.ID, ranged[0].ID)

	lastID, err := svc.GetLastUsedID(ctx)
	require.NoError(t, err)
	assert.Equal(t, other.ID, lastID)
}

func TestResultGetLastUsedIDEmpty(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := services.NewResultService(client)

	lastID, err := svc.GetLastUsedID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, lastID)
}

func TestResultCountByCategory(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := services.NewResultService(client)

	now := time.Now()
	createResult(t, client, 1, result.StatusSuccess, now)
	createResult(t, client, 1, result.StatusSuccess, now)
	createResult(t, client, 1, result.StatusCrashed, now)

	counts, err := svc.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, counts["all"])
	assert.Equal(t, 2, counts["success"])
	assert.Equal(t, 1, counts["crashed"])
	assert.Equal(t, 0, counts["terminated"])
}

func TestResultDeleteOlderThan(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := services.NewResultService(client)

	createResult(t, client, 1, result.StatusSuccess, time.Now().Add(-48*time.Hour))
	kept := createResult(t, client, 1, result.StatusSuccess, time.Now())

	n, err := svc.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []int{kept.ID}, client.Result.Query().IDsX(ctx))
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventor-project/symon/ent/request"
	"github.com/inventor-project/symon/pkg/models"
	"github.com/inventor-project/symon/pkg/services"
	testdb "github.com/inventor-project/symon/test/database"
)

func newCreateTestRequest() models.CreateTestRequest {
	return models.CreateTestRequest{
		Name:        "dummy",
		Description: "a test fixture",
		State:       "enabled",
		TestParams:  `{"sleep": 1}`,
		Timeout:     30,
		KeyRO:       "ro-key",
		KeyRW:       "rw-key",
	}
}

func TestCreateTestWritesKickoffRequest(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := services.NewTestService(client)

	created, err := svc.CreateTest(ctx, newCreateTestRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, created.Version)

	requests := client.Request.Query().AllX(ctx)
	require.Len(t, requests, 1)
	assert.Equal(t, created.ID, requests[0].IDTest)
	assert.Equal(t, request.ReasonNew, requests[0].Reason)
}

func TestCreateTestDisabledSkipsKickoffRequest(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := services.NewTestService(client)

	req := newCreateTestRequest()
	req.State = "disabled"
	_, err := svc.CreateTest(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, 0, client.Request.Query().CountX(ctx))
}

func TestCreateTestValidation(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := services.NewTestService(client)

	tests := []struct {
		name   string
		mutate func(*models.CreateTestRequest)
	}{
		{"empty name", func(r *models.CreateTestRequest) { r.Name = "" }},
		{"zero timeout", func(r *models.CreateTestRequest) { r.Timeout = 0 }},
		{"unknown state", func(r *models.CreateTestRequest) { r.State = "paused" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newCreateTestRequest()
			tt.mutate(&req)
			_, err := svc.CreateTest(ctx, req)
			var verr *services.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestUpdateTestParamsChangeBumpsVersion(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := services.NewTestService(client)

	created, err := svc.CreateTest(ctx, newCreateTestRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateTest(ctx, created.ID, models.UpdateTestRequest{
		Description: created.Description,
		State:       "enabled",
		TestParams:  `{"sleep": 2}`,
		Timeout:     created.Timeout,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)

	// The outgoing params are snapshotted under the old version.
	snapshots := client.OldParam.Query().AllX(ctx)
	require.Len(t, snapshots, 1)
	assert.Equal(t, 1, snapshots[0].Version)
	assert.Equal(t, `{"sleep": 1}`, snapshots[0].TestParams)

	// No state change, so the kickoff request is the only one.
	assert.Equal(t, 1, client.Request.Query().CountX(ctx))
}

func TestUpdateTestStateChangeWritesUpdateRequest(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := services.NewTestService(client)

	created, err := svc.CreateTest(ctx, newCreateTestRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateTest(ctx, created.ID, models.UpdateTestRequest{
		Description: created.Description,
		State:       "disabled",
		TestParams:  created.TestParams,
		Timeout:     created.Timeout,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Version, "unchanged params keep the version")
	assert.Equal(t, 0, client.OldParam.Query().CountX(ctx))

	n := client.Request.Query().Where(request.ReasonEQ(request.ReasonUpdate)).CountX(ctx)
	assert.Equal(t, 1, n)
}

func TestUpdateTestNotFound(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := services.NewTestService(client)

	_, err := svc.UpdateTest(ctx, 424242, models.UpdateTestRequest{State: "enabled", Timeout: 30})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestTestCountByCategory(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := services.NewTestService(client)

	_, err := svc.CreateTest(ctx, newCreateTestRequest())
	require.NoError(t, err)
	disabled := newCreateTestRequest()
	disabled.State = "disabled"
	_, err = svc.CreateTest(ctx, disabled)
	require.NoError(t, err)

	counts, err := svc.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts["all"])
	assert.Equal(t, 1, counts["enabled"])
	assert.Equal(t, 1, counts["disabled"])
	assert.Equal(t, 0, counts["deleted"])
}

func TestTestDeleteOlderThanKeepsNeverDownloaded(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := services.NewTestService(client)

	stale, err := svc.CreateTest(ctx, newCreateTestRequest())
	require.NoError(t, err)
	fresh, err := svc.CreateTest(ctx, newCreateTestRequest())
	require.NoError(t, err)
	never, err := svc.CreateTest(ctx, newCreateTestRequest())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateLastDownloadedTime(ctx, stale.ID, time.Now().Add(-48*time.Hour)))
	require.NoError(t, svc.UpdateLastDownloadedTime(ctx, fresh.ID, time.Now()))

	n, err := svc.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	remaining := client.Test.Query().IDsX(ctx)
	assert.ElementsMatch(t, []int{fresh.ID, never.ID}, remaining)
}

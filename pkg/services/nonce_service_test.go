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

func TestNonceConsumeDetectsReplay(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := services.NewNonceService(client)

	require.NoError(t, svc.Consume(ctx, "abc123"))
	require.NoError(t, svc.Consume(ctx, "def456"))

	err := svc.Consume(ctx, "abc123")
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	counts, err := svc.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts["all"])
}

func TestNonceDeleteOlderThan(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := services.NewNonceService(client)

	client.Nonce.Create().
		SetNonce("old").
		SetUsedAt(time.Now().Add(-time.Hour)).
		ExecX(ctx)
	require.NoError(t, svc.Consume(ctx, "recent"))

	n, err := svc.DeleteOlderThan(ctx, time.Now().Add(-10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// The expired nonce can be used again.
	assert.NoError(t, svc.Consume(ctx, "old"))
}

package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventor-project/symon/ent/stat"
	"github.com/inventor-project/symon/pkg/services"
	testdb "github.com/inventor-project/symon/test/database"
)

func TestSampleOnceRecordsEveryTable(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client

	svc := NewService(
		services.NewStatService(client),
		services.NewTestService(client),
		services.NewRequestService(client),
		services.NewEventService(client),
		services.NewRunService(client),
		services.NewResultService(client),
		services.NewOldParamService(client),
		services.NewMultiResultService(client),
		services.NewOrchestratorService(client),
		services.NewNonceService(client),
	)

	client.Nonce.Create().SetNonce("abc").SetUsedAt(time.Now()).ExecX(ctx)

	sampleTime := time.Now().Truncate(time.Hour)
	svc.SampleOnce(ctx, sampleTime)

	tables, err := client.Stat.Query().
		GroupBy(stat.FieldTableName).
		Strings(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"tests", "requests", "events", "runs", "results",
		"old_params", "multi_results", "orchestrators", "nonces",
	}, tables)

	nonceSample := client.Stat.Query().
		Where(stat.TableName("nonces"), stat.Category("all")).
		OnlyX(ctx)
	assert.Equal(t, 1, nonceSample.Value)
	assert.WithinDuration(t, sampleTime, nonceSample.Time, time.Second)

	// Tests record one row per state bucket plus the total.
	n := client.Stat.Query().Where(stat.TableName("tests")).CountX(ctx)
	assert.Equal(t, 6, n)
}

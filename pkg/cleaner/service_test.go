package cleaner

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventor-project/symon/pkg/config"
	"github.com/inventor-project/symon/pkg/services"
	testdb "github.com/inventor-project/symon/test/database"
)

func TestConfigFromSettings(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(filepath.Join(dir, "config.ini"))
	require.NoError(t, err)
	require.NoError(t, config.EnsureDefaults(cfg, dir))

	c, err := ConfigFromSettings(cfg)
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, c.Interval)
	assert.Equal(t, 600*time.Second, c.Nonces)
	assert.Equal(t, 24*time.Hour, c.Results)
}

func TestConfigFromSettingsRejectsShortNonceRetention(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(filepath.Join(dir, "config.ini"))
	require.NoError(t, err)
	require.NoError(t, config.EnsureDefaults(cfg, dir))

	// A nonce pruned while its request is still valid reopens the replay
	// window.
	require.NoError(t, cfg.Set("cleaner", "nonces_int", "30"))
	require.NoError(t, cfg.Set("authorization", "request_validity_int", "60"))

	_, err = ConfigFromSettings(cfg)
	assert.Error(t, err)
}

func TestCleanAllPrunesExpiredRows(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client

	week := 7 * 24 * time.Hour
	svc := NewService(
		Config{
			Nonces:        week,
			Orchestrators: week,
			Results:       week,
			OldParams:     week,
			MultiResults:  week,
			Tests:         week,
			Runs:          week,
			Events:        week,
			Requests:      week,
			Stats:         week,
		},
		services.NewTestService(client),
		services.NewRequestService(client),
		services.NewEventService(client),
		services.NewRunService(client),
		services.NewResultService(client),
		services.NewOldParamService(client),
		services.NewMultiResultService(client),
		services.NewOrchestratorService(client),
		services.NewNonceService(client),
		services.NewStatService(client),
	)

	old := time.Now().Add(-8 * 24 * time.Hour)
	client.Nonce.Create().SetNonce("expired").SetUsedAt(old).ExecX(ctx)
	client.Nonce.Create().SetNonce("fresh").SetUsedAt(time.Now()).ExecX(ctx)
	client.Stat.Create().SetTime(old).SetTableName("tests").SetCategory("all").SetValue(1).ExecX(ctx)
	client.Stat.Create().SetTime(time.Now()).SetTableName("tests").SetCategory("all").SetValue(2).ExecX(ctx)

	svc.CleanAll(ctx)

	assert.Equal(t, 1, client.Nonce.Query().CountX(ctx))
	assert.Equal(t, 1, client.Stat.Query().CountX(ctx))
}

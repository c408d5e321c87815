package manager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/ent/request"
	"github.com/inventor-project/symon/ent/result"
	"github.com/inventor-project/symon/ent/run"
	"github.com/inventor-project/symon/ent/test"
	"github.com/inventor-project/symon/pkg/probes"
	testdb "github.com/inventor-project/symon/test/database"
)

// deadPid is a pid the kernel will not hand out during a test run.
const deadPid = 4194000

type spawnCall struct {
	probeName string
	params    string
	runID     int
}

type fakeSpawner struct {
	pid   int
	err   error
	calls []spawnCall
}

func (f *fakeSpawner) Spawn(probeName, paramsJSON string, runID int) (int, error) {
	f.calls = append(f.calls, spawnCall{probeName, paramsJSON, runID})
	if f.err != nil {
		return 0, f.err
	}
	return f.pid, nil
}

func newTestService(t *testing.T, cfg Config) (*Service, *ent.Client, *fakeSpawner) {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	spawner := &fakeSpawner{pid: 4321}
	svc := &Service{
		client:  client,
		config:  cfg,
		spawner: spawner,
		results: make(chan probes.Message, 16),
	}
	return svc, client, spawner
}

func seedTest(t *testing.T, client *ent.Client, state test.State) *ent.Test {
	t.Helper()
	return client.Test.Create().
		SetName("dummy").
		SetDescription("manager fixture").
		SetState(state).
		SetTestParams(`{"sleep": 1}`).
		SetTimeout(30).
		SetKeyRo("ro").
		SetKeyRw("rw").
		SetCreated(time.Now()).
		SaveX(context.Background())
}

func seedRun(t *testing.T, client *ent.Client, idTest int, state run.State, mutate func(*ent.RunCreate)) *ent.Run {
	t.Helper()
	builder := client.Run.Create().
		SetIDTest(idTest).
		SetVersion(1).
		SetState(state).
		SetPlanned(time.Now().Add(-time.Minute))
	if mutate != nil {
		mutate(builder)
	}
	return builder.SaveX(context.Background())
}

func TestHarvestSuccessResult(t *testing.T) {
	ctx := context.Background()
	svc, client, _ := newTestService(t, Config{})

	fixture := seedTest(t, client, test.StateEnabled)
	running := seedRun(t, client, fixture.ID, run.StateRunning, func(b *ent.RunCreate) {
		b.SetPid(deadPid).SetStarted(time.Now()).SetDeadline(time.Now().Add(time.Minute))
	})

	svc.results <- probes.Message{RunID: running.ID, Status: "success", Data: map[string]any{"rtt_ms": 12.5}}
	svc.ProcessOnce(ctx)

	results := client.Result.Query().AllX(ctx)
	require.Len(t, results, 1)
	assert.Equal(t, result.StatusSuccess, results[0].Status)
	assert.JSONEq(t, `{"rtt_ms": 12.5}`, results[0].Data)

	assert.Equal(t, 0, client.Run.Query().CountX(ctx), "the run is released")
	assert.Equal(t, 0, client.Request.Query().CountX(ctx), "success plans no recovery")

	stamped := client.Test.GetX(ctx, fixture.ID)
	require.NotNil(t, stamped.LastResultTime)
	assert.Equal(t, test.LastResultStatusSuccess, stamped.LastResultStatus)
}

func TestHarvestFailureCreatesRecoveryRequest(t *testing.T) {
	ctx := context.Background()
	svc, client, _ := newTestService(t, Config{})

	fixture := seedTest(t, client, test.StateEnabled)
	running := seedRun(t, client, fixture.ID, run.StateRunning, func(b *ent.RunCreate) {
		b.SetPid(deadPid).SetStarted(time.Now()).
			SetDeadline(time.Now().Add(time.Minute)).
			SetRecoveryAttempt(2)
	})

	svc.results <- probes.Message{RunID: running.ID, Status: "error", Data: map[string]any{"message": "timeout"}}
	svc.ProcessOnce(ctx)

	requests := client.Request.Query().AllX(ctx)
	require.Len(t, requests, 1)
	assert.Equal(t, request.ReasonFailed, requests[0].Reason)
	assert.Equal(t, 3, requests[0].RecoveryAttempt)
}

func TestHarvestRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, Config{})

	err := svc.harvestOne(ctx, probes.Message{RunID: 1, Status: "exploded"})
	assert.Error(t, err)
}

func TestHarvestAfterRunDeleted(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t, Config{})

	err := svc.harvestOne(ctx, probes.Message{RunID: 424242, Status: "success"})
	assert.Error(t, err)
}

func TestStartWaitingRunSpawnsProbe(t *testing.T) {
	ctx := context.Background()
	svc, client, spawner := newTestService(t, Config{})

	fixture := seedTest(t, client, test.StateEnabled)
	waiting := seedRun(t, client, fixture.ID, run.StateWaiting, nil)

	svc.ProcessOnce(ctx)

	require.Len(t, spawner.calls, 1)
	assert.Equal(t, "dummy", spawner.calls[0].probeName)
	assert.Equal(t, fixture.TestParams, spawner.calls[0].params)
	assert.Equal(t, waiting.ID, spawner.calls[0].runID)

	started := client.Run.GetX(ctx, waiting.ID)
	assert.Equal(t, run.StateRunning, started.State)
	require.NotNil(t, started.Pid)
	assert.Equal(t, 4321, *started.Pid)
	require.NotNil(t, started.Started)
	require.NotNil(t, started.Deadline)
	assert.WithinDuration(t, started.Started.Add(30*time.Second), *started.Deadline, time.Second)

	stamped := client.Test.GetX(ctx, fixture.ID)
	assert.NotNil(t, stamped.LastStartedTime)
}

func TestStartDropsRunOfDisabledTest(t *testing.T) {
	ctx := context.Background()
	svc, client, spawner := newTestService(t, Config{})

	fixture := seedTest(t, client, test.StateDisabled)
	seedRun(t, client, fixture.ID, run.StateWaiting, nil)

	svc.ProcessOnce(ctx)

	assert.Empty(t, spawner.calls)
	assert.Equal(t, 0, client.Run.Query().CountX(ctx))
}

func TestStartDropsRunOfMissingTest(t *testing.T) {
	ctx := context.Background()
	svc, client, spawner := newTestService(t, Config{})

	seedRun(t, client, 424242, run.StateWaiting, nil)

	svc.ProcessOnce(ctx)

	assert.Empty(t, spawner.calls)
	assert.Equal(t, 0, client.Run.Query().CountX(ctx))
}

func TestSpawnFailureDisablesTest(t *testing.T) {
	ctx := context.Background()
	svc, client, spawner := newTestService(t, Config{})
	spawner.err = assert.AnError

	fixture := seedTest(t, client, test.StateEnabled)
	seedRun(t, client, fixture.ID, run.StateWaiting, nil)

	svc.ProcessOnce(ctx)

	disabled := client.Test.GetX(ctx, fixture.ID)
	assert.Equal(t, test.StateDisabled, disabled.State)
}

func TestTerminateVanishedProcessRecordsCrash(t *testing.T) {
	ctx := context.Background()
	svc, client, _ := newTestService(t, Config{TerminatingGrace: time.Minute})

	fixture := seedTest(t, client, test.StateEnabled)
	seedRun(t, client, fixture.ID, run.StateRunning, func(b *ent.RunCreate) {
		b.SetPid(deadPid).SetStarted(time.Now().Add(-time.Minute)).
			SetDeadline(time.Now().Add(-time.Second))
	})

	svc.ProcessOnce(ctx)

	results := client.Result.Query().AllX(ctx)
	require.Len(t, results, 1)
	assert.Equal(t, result.StatusCrashed, results[0].Status)
	assert.Equal(t, 0, client.Run.Query().CountX(ctx))

	stamped := client.Test.GetX(ctx, fixture.ID)
	assert.Equal(t, test.LastResultStatusCrashed, stamped.LastResultStatus)
}

func TestKillingRunWithDeadProcessIsReleased(t *testing.T) {
	ctx := context.Background()
	svc, client, _ := newTestService(t, Config{KillingGrace: time.Minute})

	fixture := seedTest(t, client, test.StateEnabled)
	seedRun(t, client, fixture.ID, run.StateTerminating, func(b *ent.RunCreate) {
		b.SetPid(deadPid).SetDeadline(time.Now().Add(-time.Second))
	})

	svc.ProcessOnce(ctx)

	assert.Equal(t, 0, client.Run.Query().CountX(ctx))
	// The terminated result was already written when SIGTERM went out, so
	// none is added here.
	assert.Equal(t, 0, client.Result.Query().CountX(ctx))
}

func TestZombieWithDeadProcessIsReleased(t *testing.T) {
	ctx := context.Background()
	svc, client, _ := newTestService(t, Config{})

	fixture := seedTest(t, client, test.StateEnabled)
	seedRun(t, client, fixture.ID, run.StateZombie, func(b *ent.RunCreate) {
		b.SetPid(deadPid).SetDeadline(time.Now().Add(-time.Second))
	})

	svc.ProcessOnce(ctx)

	assert.Equal(t, 0, client.Run.Query().CountX(ctx))
}

package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/ent/event"
	"github.com/inventor-project/symon/ent/request"
	"github.com/inventor-project/symon/ent/run"
	"github.com/inventor-project/symon/ent/test"
	testdb "github.com/inventor-project/symon/test/database"
)

type testOptions struct {
	state                test.State
	schedulingInterval   *int
	schedulingFrom       *time.Time
	schedulingUntil      *time.Time
	recoveryInterval     *int
	recoveryAttemptLimit *int
}

func createTest(t *testing.T, client *ent.Client, opts testOptions) *ent.Test {
	t.Helper()
	if opts.state == "" {
		opts.state = test.StateEnabled
	}
	created, err := client.Test.Create().
		SetName("dummy").
		SetDescription("calendar test fixture").
		SetState(opts.state).
		SetTestParams(`{}`).
		SetTimeout(30).
		SetNillableSchedulingInterval(opts.schedulingInterval).
		SetNillableSchedulingFrom(opts.schedulingFrom).
		SetNillableSchedulingUntil(opts.schedulingUntil).
		SetNillableRecoveryInterval(opts.recoveryInterval).
		SetNillableRecoveryAttemptLimit(opts.recoveryAttemptLimit).
		SetKeyRo("ro").
		SetKeyRw("rw").
		SetCreated(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
	return created
}

func createRequest(t *testing.T, client *ent.Client, idTest int, reason request.Reason, attempt int) *ent.Request {
	t.Helper()
	created, err := client.Request.Create().
		SetIDTest(idTest).
		SetReason(reason).
		SetRecoveryAttempt(attempt).
		SetAddedTime(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
	return created
}

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func TestNewRequestPlansFirstEvent(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := NewService(client)

	interval := 300
	fixture := createTest(t, client, testOptions{schedulingInterval: &interval})
	createRequest(t, client, fixture.ID, request.ReasonNew, 0)

	svc.ProcessOnce(ctx)

	events := client.Event.Query().Where(event.IDTest(fixture.ID)).AllX(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, event.SourceCalendar, events[0].Source)
	assert.WithinDuration(t, time.Now().Add(time.Duration(interval)*time.Second), events[0].RunAt, 5*time.Second)

	count := client.Request.Query().CountX(ctx)
	assert.Equal(t, 0, count, "the request must be consumed")
}

func TestNewRequestWithFutureWindowPlansAtWindowStart(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := NewService(client)

	from := time.Now().Add(time.Hour)
	fixture := createTest(t, client, testOptions{
		schedulingInterval: intPtr(300),
		schedulingFrom:     timePtr(from),
	})
	createRequest(t, client, fixture.ID, request.ReasonNew, 0)

	svc.ProcessOnce(ctx)

	events := client.Event.Query().Where(event.IDTest(fixture.ID)).AllX(ctx)
	require.Len(t, events, 1)
	assert.Equal(t, event.SourceRequest, events[0].Source)
	assert.WithinDuration(t, from, events[0].RunAt, time.Second)
}

func TestNewRequestWithoutIntervalPlansNothing(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := NewService(client)

	fixture := createTest(t, client, testOptions{})
	createRequest(t, client, fixture.ID, request.ReasonNew, 0)

	svc.ProcessOnce(ctx)

	assert.Equal(t, 0, client.Event.Query().CountX(ctx))
	assert.Equal(t, 0, client.Request.Query().CountX(ctx))
}

func TestRequestForMissingTestIsConsumed(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := NewService(client)

	createRequest(t, client, 424242, request.ReasonNew, 0)

	svc.ProcessOnce(ctx)

	assert.Equal(t, 0, client.Request.Query().CountX(ctx))
}

func TestUpdateRequestForDisabledTestDropsEvents(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := NewService(client)

	fixture := createTest(t, client, testOptions{state: test.StateDisabled})
	client.Event.Create().
		SetIDTest(fixture.ID).
		SetRunAt(time.Now().Add(time.Hour)).
		SetSource(event.SourceCalendar).
		SaveX(ctx)
	createRequest(t, client, fixture.ID, request.ReasonUpdate, 0)

	svc.ProcessOnce(ctx)

	assert.Equal(t, 0, client.Event.Query().CountX(ctx))
}

func TestUpdateRequestForEnabledTestReplans(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := NewService(client)

	fixture := createTest(t, client, testOptions{schedulingInterval: intPtr(600)})
	createRequest(t, client, fixture.ID, request.ReasonUpdate, 0)

	svc.ProcessOnce(ctx)

	events := client.Event.Query().Where(event.IDTest(fixture.ID)).AllX(ctx)
	require.Len(t, events, 1)
}

func TestDueEventBecomesWaitingRunAndChains(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := NewService(client)

	interval := 300
	fixture := createTest(t, client, testOptions{schedulingInterval: &interval})
	due := client.Event.Create().
		SetIDTest(fixture.ID).
		SetRunAt(time.Now().Add(-time.Second)).
		SetSource(event.SourceCalendar).
		SaveX(ctx)

	svc.ProcessOnce(ctx)

	runs := client.Run.Query().Where(run.IDTest(fixture.ID)).AllX(ctx)
	require.Len(t, runs, 1)
	assert.Equal(t, run.StateWaiting, runs[0].State)
	assert.WithinDuration(t, due.RunAt, runs[0].Planned, time.Second)

	// The consumed event is replaced by the next periodic slot.
	events := client.Event.Query().Where(event.IDTest(fixture.ID)).AllX(ctx)
	require.Len(t, events, 1)
	assert.NotEqual(t, due.ID, events[0].ID)
	assert.True(t, events[0].RunAt.After(time.Now()))
}

func TestDueEventSkipsRunWhenOneIsWaiting(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := NewService(client)

	fixture := createTest(t, client, testOptions{schedulingInterval: intPtr(300)})
	client.Run.Create().
		SetIDTest(fixture.ID).
		SetVersion(fixture.Version).
		SetState(run.StateWaiting).
		SetPlanned(time.Now()).
		SaveX(ctx)
	client.Event.Create().
		SetIDTest(fixture.ID).
		SetRunAt(time.Now().Add(-time.Second)).
		SetSource(event.SourceCalendar).
		SaveX(ctx)

	svc.ProcessOnce(ctx)

	assert.Equal(t, 1, client.Run.Query().CountX(ctx), "no second waiting run")
	// The event is consumed regardless.
	assert.Equal(t, 1, client.Event.Query().CountX(ctx), "only the follow-up remains")
}

func TestRecoveryEventDoesNotChain(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := NewService(client)

	fixture := createTest(t, client, testOptions{schedulingInterval: intPtr(300)})
	client.Event.Create().
		SetIDTest(fixture.ID).
		SetRunAt(time.Now().Add(-time.Second)).
		SetSource(event.SourceRecovery).
		SetRecoveryAttempt(1).
		SaveX(ctx)

	svc.ProcessOnce(ctx)

	runs := client.Run.Query().Where(run.IDTest(fixture.ID)).AllX(ctx)
	require.Len(t, runs, 1)
	assert.Equal(t, 1, runs[0].RecoveryAttempt)
	assert.Equal(t, 0, client.Event.Query().CountX(ctx), "recovery events never chain")
}

func TestFailedRequestPlansRecovery(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t).Client
	svc := NewService(client)

	t.Run("recovery interval unset skips", func(t *testing.T) {
		fixture := createTest(t, client, testOptions{})
		createRequest(t, client, fixture.ID, request.ReasonFailed, 1)

		svc.ProcessOnce(ctx)

		assert.Equal(t, 0, client.Event.Query().Where(event.IDTest(fixture.ID)).CountX(ctx))
	})

	t.Run("within the limit plans a recovery event", func(t *testing.T) {
		fixture := createTest(t, client, testOptions{
			recoveryInterval:     intPtr(60),
			recoveryAttemptLimit: intPtr(3),
		})
		createRequest(t, client, fixture.ID, request.ReasonFailed, 2)

		svc.ProcessOnce(ctx)

		events := client.Event.Query().Where(event.IDTest(fixture.ID)).AllX(ctx)
		require.Len(t, events, 1)
		assert.Equal(t, event.SourceRecovery, events[0].Source)
		assert.Equal(t, 2, events[0].RecoveryAttempt)
	})

	t.Run("beyond the limit skips", func(t *testing.T) {
		fixture := createTest(t, client, testOptions{
			recoveryInterval:     intPtr(60),
			recoveryAttemptLimit: intPtr(3),
		})
		createRequest(t, client, fixture.ID, request.ReasonFailed, 4)

		svc.ProcessOnce(ctx)

		assert.Equal(t, 0, client.Event.Query().Where(event.IDTest(fixture.ID)).CountX(ctx))
	})

	t.Run("no limit means unlimited attempts", func(t *testing.T) {
		fixture := createTest(t, client, testOptions{recoveryInterval: intPtr(60)})
		createRequest(t, client, fixture.ID, request.ReasonFailed, 1000)

		svc.ProcessOnce(ctx)

		assert.Equal(t, 1, client.Event.Query().Where(event.IDTest(fixture.ID)).CountX(ctx))
	})

	t.Run("recovery after the window end skips", func(t *testing.T) {
		fixture := createTest(t, client, testOptions{
			recoveryInterval: intPtr(3600),
			schedulingUntil:  timePtr(time.Now().Add(time.Minute)),
		})
		createRequest(t, client, fixture.ID, request.ReasonFailed, 1)

		svc.ProcessOnce(ctx)

		assert.Equal(t, 0, client.Event.Query().Where(event.IDTest(fixture.ID)).CountX(ctx))
	})
}

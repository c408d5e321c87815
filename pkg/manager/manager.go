// Package manager executes test runs. It starts probe child processes for
// waiting runs, walks misbehaving processes through the
// terminating/killing/zombie escalation, and harvests finished results into
// the store.
package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/ent/request"
	"github.com/inventor-project/symon/ent/result"
	"github.com/inventor-project/symon/ent/run"
	"github.com/inventor-project/symon/ent/test"
	"github.com/inventor-project/symon/pkg/probes"
)

const (
	loopInterval = 100 * time.Millisecond

	// zombieRecheck is how often a run that survived SIGKILL is looked at
	// again.
	zombieRecheck = 10 * time.Second

	// resultsQueueSize bounds the in-flight unharvested results.
	resultsQueueSize = 1024
)

// Config carries the escalation grace periods.
type Config struct {
	// TerminatingGrace is how long a process has after SIGTERM before it
	// is killed.
	TerminatingGrace time.Duration
	// KillingGrace is how long a process has after SIGKILL before it is
	// declared a zombie.
	KillingGrace time.Duration
}

// Service is the tests manager process.
type Service struct {
	client  *ent.Client
	config  Config
	spawner spawner
	results chan probes.Message

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new tests manager.
func NewService(client *ent.Client, cfg Config) *Service {
	if client == nil {
		panic("manager.NewService: client must not be nil")
	}
	results := make(chan probes.Message, resultsQueueSize)
	return &Service{
		client:  client,
		config:  cfg,
		spawner: newExecSpawner(results),
		results: results,
	}
}

// Start launches the background processing loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Tests manager started",
		"terminating_grace", s.config.TerminatingGrace,
		"killing_grace", s.config.KillingGrace)
}

// Stop signals the processing loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Tests manager stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(loopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ProcessOnce(ctx)
		}
	}
}

// ProcessOnce runs one full manager pass. The order is harvest first, then
// start, then the escalation sweeps, so a finished run is recorded before
// its test can be started again.
func (s *Service) ProcessOnce(ctx context.Context) {
	s.harvestResults(ctx)
	s.startWaitingRuns(ctx)
	s.terminateOverdueRuns(ctx)
	s.killOverdueRuns(ctx)
	s.zombifyOverdueRuns(ctx)
	s.checkZombies(ctx)
}

// harvestResults drains the results queue. One transaction per result: a
// failed-run recovery request, the test's last-result update, the result
// insert and the run delete all land together.
func (s *Service) harvestResults(ctx context.Context) {
	for {
		select {
		case message := <-s.results:
			if err := s.harvestOne(ctx, message); err != nil {
				slog.Error("Failed to harvest a result", "run_id", message.RunID, "error", err)
			}
		default:
			return
		}
	}
}

func (s *Service) harvestOne(ctx context.Context, message probes.Message) error {
	status := result.Status(message.Status)
	if err := result.StatusValidator(status); err != nil {
		return fmt.Errorf("result message carries unknown status %q", message.Status)
	}
	data, err := json.Marshal(message.Data)
	if err != nil {
		return fmt.Errorf("result data is not serializable: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	r, err := tx.Run.Get(ctx, message.RunID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("the result arrived after the run was deleted")
		}
		return fmt.Errorf("failed to get run: %w", err)
	}

	slog.Debug("Processing result from queue", "run_id", r.ID, "status", status)
	finished := time.Now()

	if status != result.StatusSuccess {
		_, err = tx.Request.Create().
			SetIDTest(r.IDTest).
			SetReason(request.ReasonFailed).
			SetRecoveryAttempt(r.RecoveryAttempt + 1).
			SetAddedTime(finished).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create recovery request: %w", err)
		}
	}

	err = tx.Test.UpdateOneID(r.IDTest).
		SetLastResultStatus(test.LastResultStatus(status)).
		SetLastResultTime(finished).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to update test last result: %w", err)
	}

	_, err = tx.Result.Create().
		SetIDTest(r.IDTest).
		SetVersion(r.Version).
		SetPlanned(r.Planned).
		SetNillableStarted(r.Started).
		SetFinished(finished).
		SetStatus(status).
		SetRecoveryAttempt(r.RecoveryAttempt).
		SetData(string(data)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create result: %w", err)
	}

	if err := tx.Run.DeleteOneID(r.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return tx.Commit()
}

// startWaitingRuns spawns a probe process for every waiting run. A spawn
// failure disables the test so the calendar stops feeding it.
func (s *Service) startWaitingRuns(ctx context.Context) {
	runs, err := s.client.Run.Query().
		Where(run.StateEQ(run.StateWaiting)).
		Order(ent.Asc(run.FieldPlanned), ent.Asc(run.FieldID)).
		All(ctx)
	if err != nil {
		slog.Error("Failed to list waiting runs", "error", err)
		return
	}
	for _, r := range runs {
		if err := s.startOne(ctx, r); err != nil {
			slog.Error("Failed to start a run, disabling the test",
				"id_run", r.ID, "id_test", r.IDTest, "error", err)
			if derr := s.client.Test.UpdateOneID(r.IDTest).
				SetState(test.StateDisabled).
				Exec(ctx); derr != nil && !ent.IsNotFound(derr) {
				slog.Error("Failed to disable test", "id_test", r.IDTest, "error", derr)
			}
		}
	}
}

func (s *Service) startOne(ctx context.Context, r *ent.Run) error {
	slog.Debug("Starting new test based on the run", "id_run", r.ID)
	t, err := s.client.Test.Get(ctx, r.IDTest)
	if err != nil {
		if ent.IsNotFound(err) {
			return s.client.Run.DeleteOneID(r.ID).Exec(ctx)
		}
		return fmt.Errorf("failed to get test: %w", err)
	}
	if t.State != test.StateEnabled {
		slog.Debug("Test is not enabled, dropping the run", "id_test", t.ID, "state", t.State)
		return s.client.Run.DeleteOneID(r.ID).Exec(ctx)
	}

	started := time.Now()
	pid, err := s.spawner.Spawn(t.Name, t.TestParams, r.ID)
	if err != nil {
		return fmt.Errorf("failed to spawn probe process: %w", err)
	}
	slog.Debug("Started a new probe process", "probe", t.Name, "pid", pid)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.Test.UpdateOneID(t.ID).
		SetLastStartedTime(started).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update test last started time: %w", err)
	}

	deadline := started.Add(time.Duration(t.Timeout) * time.Second)
	err = tx.Run.UpdateOneID(r.ID).
		SetVersion(t.Version).
		SetPid(pid).
		SetState(run.StateRunning).
		SetStarted(started).
		SetDeadline(deadline).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}
	return tx.Commit()
}

// terminateOverdueRuns handles running runs past their deadline. A live
// process gets SIGTERM and a terminated result; a vanished one is recorded
// as crashed. Either way the test's last result is stamped in the same
// transaction.
func (s *Service) terminateOverdueRuns(ctx context.Context) {
	now := time.Now()
	runs, err := s.client.Run.Query().
		Where(run.StateEQ(run.StateRunning), run.DeadlineLTE(now)).
		All(ctx)
	if err != nil {
		slog.Error("Failed to list overdue running runs", "error", err)
		return
	}
	for _, r := range runs {
		if err := s.terminateOne(ctx, r); err != nil {
			slog.Error("Failed to terminate an overdue run", "id_run", r.ID, "error", err)
		}
	}
}

func (s *Service) terminateOne(ctx context.Context, r *ent.Run) error {
	slog.Debug("Terminating run because the deadline passed", "id_run", r.ID)
	finished := time.Now()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var status result.Status
	if r.Pid != nil && isProcessAlive(*r.Pid) {
		terminateProcess(*r.Pid)
		status = result.StatusTerminated
		deadline := finished.Add(s.config.TerminatingGrace)
		err = tx.Run.UpdateOneID(r.ID).
			SetState(run.StateTerminating).
			SetDeadline(deadline).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to move run to terminating: %w", err)
		}
	} else {
		status = result.StatusCrashed
		if err := tx.Run.DeleteOneID(r.ID).Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete crashed run: %w", err)
		}
	}

	_, err = tx.Result.Create().
		SetIDTest(r.IDTest).
		SetVersion(r.Version).
		SetPlanned(r.Planned).
		SetNillableStarted(r.Started).
		SetFinished(finished).
		SetStatus(status).
		SetRecoveryAttempt(r.RecoveryAttempt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create result: %w", err)
	}

	err = tx.Test.UpdateOneID(r.IDTest).
		SetLastResultStatus(test.LastResultStatus(status)).
		SetLastResultTime(finished).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to update test last result: %w", err)
	}
	return tx.Commit()
}

// killOverdueRuns handles terminating runs whose grace period passed: a
// still-live process is killed hard, a dead one is cleaned up. The
// terminated result was already written when SIGTERM was sent.
func (s *Service) killOverdueRuns(ctx context.Context) {
	now := time.Now()
	runs, err := s.client.Run.Query().
		Where(run.StateEQ(run.StateTerminating), run.DeadlineLTE(now)).
		All(ctx)
	if err != nil {
		slog.Error("Failed to list overdue terminating runs", "error", err)
		return
	}
	for _, r := range runs {
		if r.Pid != nil && isProcessAlive(*r.Pid) {
			slog.Debug("Killing run because the deadline passed", "id_run", r.ID)
			killProcess(*r.Pid)
			deadline := time.Now().Add(s.config.KillingGrace)
			err = s.client.Run.UpdateOneID(r.ID).
				SetState(run.StateKilling).
				SetDeadline(deadline).
				Exec(ctx)
		} else {
			err = s.client.Run.DeleteOneID(r.ID).Exec(ctx)
		}
		if err != nil {
			slog.Error("Failed to process a terminating run", "id_run", r.ID, "error", err)
		}
	}
}

// zombifyOverdueRuns marks killing runs that survived SIGKILL as zombies.
func (s *Service) zombifyOverdueRuns(ctx context.Context) {
	now := time.Now()
	runs, err := s.client.Run.Query().
		Where(run.StateEQ(run.StateKilling), run.DeadlineLTE(now)).
		All(ctx)
	if err != nil {
		slog.Error("Failed to list overdue killing runs", "error", err)
		return
	}
	for _, r := range runs {
		if r.Pid != nil && isProcessAlive(*r.Pid) {
			slog.Debug("Marking run as zombie, it has not been killed", "id_run", r.ID)
			err = s.client.Run.UpdateOneID(r.ID).
				SetState(run.StateZombie).
				SetDeadline(now.Add(zombieRecheck)).
				Exec(ctx)
		} else {
			err = s.client.Run.DeleteOneID(r.ID).Exec(ctx)
		}
		if err != nil {
			slog.Error("Failed to process a killing run", "id_run", r.ID, "error", err)
		}
	}
}

// checkZombies re-examines zombies; a finally dead process releases its run.
func (s *Service) checkZombies(ctx context.Context) {
	now := time.Now()
	runs, err := s.client.Run.Query().
		Where(run.StateEQ(run.StateZombie), run.DeadlineLTE(now)).
		All(ctx)
	if err != nil {
		slog.Error("Failed to list zombie runs", "error", err)
		return
	}
	for _, r := range runs {
		if r.Pid != nil && isProcessAlive(*r.Pid) {
			err = s.client.Run.UpdateOneID(r.ID).
				SetDeadline(now.Add(zombieRecheck)).
				Exec(ctx)
		} else {
			err = s.client.Run.DeleteOneID(r.ID).Exec(ctx)
		}
		if err != nil {
			slog.Error("Failed to process a zombie run", "id_run", r.ID, "error", err)
		}
	}
}

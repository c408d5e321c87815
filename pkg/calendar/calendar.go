// Package calendar plans test runs. It consumes asynchronous requests from
// the API and the tests manager, schedules future events, and turns due
// events into waiting runs for the tests manager.
package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/ent/event"
	"github.com/inventor-project/symon/ent/request"
	"github.com/inventor-project/symon/ent/run"
	"github.com/inventor-project/symon/ent/test"
)

// loopInterval is the idle sleep between processing passes.
const loopInterval = 100 * time.Millisecond

// Service is the calendar process. Single-writer over events; the API and
// tests manager only ever append requests.
type Service struct {
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new calendar service.
func NewService(client *ent.Client) *Service {
	if client == nil {
		panic("calendar.NewService: client must not be nil")
	}
	return &Service{client: client}
}

// Start launches the background planning loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Calendar service started")
}

// Stop signals the planning loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Calendar service stopped")
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

// ProcessOnce runs one full planning pass: all pending requests, then all
// due events. Failures are logged per item and never stop the pass.
func (s *Service) ProcessOnce(ctx context.Context) {
	now := time.Now()
	s.processRequests(ctx, now)
	s.processDueEvents(ctx, now)
}

func (s *Service) processRequests(ctx context.Context, now time.Time) {
	requests, err := s.client.Request.Query().
		Order(ent.Asc(request.FieldAddedTime), ent.Asc(request.FieldID)).
		All(ctx)
	if err != nil {
		slog.Error("Calendar: failed to list requests", "error", err)
		return
	}
	if len(requests) > 0 {
		slog.Debug("Calendar: found new requests", "count", len(requests))
	}
	for _, r := range requests {
		if err := s.processRequest(ctx, r, now); err != nil {
			slog.Error("Calendar: failed to process request",
				"id_request", r.ID, "id_test", r.IDTest, "error", err)
		}
	}
}

// processRequest handles one request and deletes it, in one transaction.
func (s *Service) processRequest(ctx context.Context, r *ent.Request, now time.Time) error {
	slog.Debug("Calendar: processing a request", "id_test", r.IDTest, "reason", r.Reason)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.Test.Get(ctx, r.IDTest)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to get test: %w", err)
	}

	if t != nil {
		switch r.Reason {
		case request.ReasonNew:
			err = s.planFromScratch(ctx, tx, t, now)
		case request.ReasonUpdate:
			err = s.applyUpdate(ctx, tx, t, now)
		case request.ReasonFailed:
			err = s.planRecovery(ctx, tx, t, r.RecoveryAttempt, now)
		}
		if err != nil {
			return err
		}
	}

	if err := tx.Request.DeleteOneID(r.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete request: %w", err)
	}
	return tx.Commit()
}

// planFromScratch plans the first event of an enabled test. A scheduling
// window starting in the future yields one event exactly at the window
// start; otherwise the first event lands one interval from now.
func (s *Service) planFromScratch(ctx context.Context, tx *ent.Tx, t *ent.Test, now time.Time) error {
	if t.SchedulingFrom != nil && now.Before(*t.SchedulingFrom) {
		slog.Debug("Calendar: planning first event at window start", "id_test", t.ID)
		return s.insertIntoCalendar(ctx, tx, t, *t.SchedulingFrom, event.SourceRequest, 0)
	}
	return s.planNextEvent(ctx, tx, t, now)
}

func (s *Service) applyUpdate(ctx context.Context, tx *ent.Tx, t *ent.Test, now time.Time) error {
	switch t.State {
	case test.StateDisabled, test.StateDeleted:
		slog.Debug("Calendar: test no longer schedulable, dropping its events",
			"id_test", t.ID, "state", t.State)
		_, err := tx.Event.Delete().Where(event.IDTest(t.ID)).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete events: %w", err)
		}
		return nil
	case test.StateEnabled:
		slog.Debug("Calendar: test re-enabled, planning a new event", "id_test", t.ID)
		return s.planFromScratch(ctx, tx, t, now)
	}
	return nil
}

// planRecovery plans one retry after a failed run. The attempt counter was
// already incremented by the tests manager. A nil limit means unlimited
// attempts, zero disables recovery entirely.
func (s *Service) planRecovery(ctx context.Context, tx *ent.Tx, t *ent.Test, attempt int, now time.Time) error {
	if t.RecoveryInterval == nil {
		slog.Debug("Calendar: recovery interval is not set", "id_test", t.ID)
		return nil
	}
	if t.RecoveryAttemptLimit != nil && attempt > *t.RecoveryAttemptLimit {
		slog.Debug("Calendar: reached the recovery limit", "id_test", t.ID, "attempt", attempt)
		return nil
	}
	recoveryAt := now.Add(time.Duration(*t.RecoveryInterval) * time.Second)
	if t.SchedulingUntil != nil && recoveryAt.After(*t.SchedulingUntil) {
		slog.Debug("Calendar: recovery time is after the scheduling window", "id_test", t.ID)
		return nil
	}
	return s.insertIntoCalendar(ctx, tx, t, recoveryAt, event.SourceRecovery, attempt)
}

// calculateNextEventTime computes the next periodic slot after previousRun.
// Returns the zero time when no further event should be planned.
func (s *Service) calculateNextEventTime(t *ent.Test, previousRun, now time.Time) time.Time {
	if t.SchedulingInterval == nil || *t.SchedulingInterval == 0 {
		slog.Debug("Calendar: scheduling interval is not set", "id_test", t.ID)
		return time.Time{}
	}

	next := previousRun.Add(time.Duration(*t.SchedulingInterval) * time.Second)
	if next.Before(now) {
		slog.Debug("Calendar: not possible to schedule an event in the past", "id_test", t.ID)
		next = now
	}
	if t.SchedulingUntil != nil && next.After(*t.SchedulingUntil) {
		slog.Debug("Calendar: next slot is after the scheduling window", "id_test", t.ID)
		return time.Time{}
	}
	return next
}

func (s *Service) planNextEvent(ctx context.Context, tx *ent.Tx, t *ent.Test, previousRun time.Time) error {
	next := s.calculateNextEventTime(t, previousRun, time.Now())
	if next.IsZero() {
		slog.Debug("Calendar: no further event planned", "id_test", t.ID)
		return nil
	}
	return s.insertIntoCalendar(ctx, tx, t, next, event.SourceCalendar, 0)
}

// insertIntoCalendar is the single event-creation point: it enforces the
// enablement gate, so a disabled test can never gain an event no matter
// which pipeline asks.
func (s *Service) insertIntoCalendar(ctx context.Context, tx *ent.Tx, t *ent.Test, runAt time.Time, source event.Source, recoveryAttempt int) error {
	if t.State != test.StateEnabled {
		slog.Debug("Calendar: event not planned, test is not enabled",
			"id_test", t.ID, "state", t.State)
		return nil
	}
	slog.Debug("Calendar: new event planned", "id_test", t.ID, "run_at", runAt, "source", source)
	_, err := tx.Event.Create().
		SetIDTest(t.ID).
		SetRunAt(runAt).
		SetSource(source).
		SetRecoveryAttempt(recoveryAttempt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (s *Service) processDueEvents(ctx context.Context, now time.Time) {
	events, err := s.client.Event.Query().
		Where(event.RunAtLTE(now)).
		Order(ent.Asc(event.FieldRunAt), ent.Asc(event.FieldID)).
		All(ctx)
	if err != nil {
		slog.Error("Calendar: failed to list due events", "error", err)
		return
	}
	if len(events) > 0 {
		slog.Debug("Calendar: found events to execute", "count", len(events))
	}
	for _, e := range events {
		if err := s.consumeEvent(ctx, e, now); err != nil {
			slog.Error("Calendar: failed to consume event",
				"id_event", e.ID, "id_test", e.IDTest, "error", err)
		}
	}
}

// consumeEvent turns one due event into a waiting run, plans the follow-up
// periodic event, and deletes the consumed event, all in one transaction.
// Recovery events never chain a follow-up.
func (s *Service) consumeEvent(ctx context.Context, e *ent.Event, now time.Time) error {
	slog.Debug("Calendar: processing an event", "id_test", e.IDTest, "source", e.Source)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.Test.Get(ctx, e.IDTest)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to get test: %w", err)
	}

	if t != nil {
		if err := s.startNewRun(ctx, tx, t, e); err != nil {
			return err
		}
		if e.Source != event.SourceRecovery {
			if err := s.planNextEvent(ctx, tx, t, e.RunAt); err != nil {
				return err
			}
		} else {
			slog.Debug("Calendar: no follow-up for a recovery event", "id_test", e.IDTest)
		}
	}

	if err := tx.Event.DeleteOneID(e.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return tx.Commit()
}

// startNewRun creates a waiting run for the event's test. A test with a run
// already waiting is skipped; the partial unique index on runs backs this
// check against concurrent planners.
func (s *Service) startNewRun(ctx context.Context, tx *ent.Tx, t *ent.Test, e *ent.Event) error {
	waiting, err := tx.Run.Query().
		Where(run.IDTest(t.ID), run.StateEQ(run.StateWaiting)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check waiting runs: %w", err)
	}
	if waiting {
		slog.Warn("Calendar: run not created, one is already waiting", "id_test", t.ID)
		return nil
	}

	_, err = tx.Run.Create().
		SetIDTest(t.ID).
		SetVersion(t.Version).
		SetState(run.StateWaiting).
		SetPlanned(e.RunAt).
		SetRecoveryAttempt(e.RecoveryAttempt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	slog.Debug("Calendar: created a run", "id_test", t.ID)
	return nil
}

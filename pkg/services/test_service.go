// Package services implements the persistence operations of the agent.
// Services take an Ent client, return Ent entities and sentinel errors;
// compound operations run inside a single transaction.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/ent/request"
	"github.com/inventor-project/symon/ent/test"
	"github.com/inventor-project/symon/pkg/models"
)

// TestService handles test definitions and their lifecycle.
type TestService struct {
	client *ent.Client
}

// NewTestService creates a new TestService.
func NewTestService(client *ent.Client) *TestService {
	if client == nil {
		panic("NewTestService: client must not be nil")
	}
	return &TestService{client: client}
}

// CreateTest stores a new test. When the test arrives enabled, a kickoff
// request for the calendar is written in the same transaction, so an enabled
// test is never left unplanned.
func (s *TestService) CreateTest(ctx context.Context, req models.CreateTestRequest) (*ent.Test, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Timeout <= 0 {
		return nil, NewValidationError("timeout", "must be positive")
	}
	state := test.State(req.State)
	if err := test.StateValidator(state); err != nil {
		return nil, NewValidationError("state", fmt.Sprintf("unknown state '%s'", req.State))
	}

	now := time.Now()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.Test.Create().
		SetName(req.Name).
		SetDescription(req.Description).
		SetState(state).
		SetTestParams(req.TestParams).
		SetTimeout(req.Timeout).
		SetNillableSchedulingInterval(req.SchedulingInterval).
		SetNillableSchedulingFrom(models.FromUnixSecondsPtr(req.SchedulingFrom)).
		SetNillableSchedulingUntil(models.FromUnixSecondsPtr(req.SchedulingUntil)).
		SetNillableRecoveryInterval(req.RecoveryInterval).
		SetNillableRecoveryAttemptLimit(req.RecoveryAttemptLimit).
		SetKeyRo(req.KeyRO).
		SetKeyRw(req.KeyRW).
		SetCreated(now)

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create test: %w", err)
	}

	if state == test.StateEnabled {
		_, err = tx.Request.Create().
			SetIDTest(created.ID).
			SetReason(request.ReasonNew).
			SetRecoveryAttempt(0).
			SetAddedTime(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create kickoff request: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

// GetTest retrieves one test by id.
func (s *TestService) GetTest(ctx context.Context, id int) (*ent.Test, error) {
	t, err := s.client.Test.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get test: %w", err)
	}
	return t, nil
}

// GetAllTests retrieves every test ordered by id.
func (s *TestService) GetAllTests(ctx context.Context) ([]*ent.Test, error) {
	tests, err := s.client.Test.Query().Order(ent.Asc(test.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tests: %w", err)
	}
	return tests, nil
}

// UpdateTest applies the mutable fields of a test. When the params change,
// the version is bumped and the outgoing params are snapshotted; when the
// state changes, an update request tells the calendar to re-plan. One
// transaction covers all three writes.
func (s *TestService) UpdateTest(ctx context.Context, id int, req models.UpdateTestRequest) (*ent.Test, error) {
	state := test.State(req.State)
	if err := test.StateValidator(state); err != nil {
		return nil, NewValidationError("state", fmt.Sprintf("unknown state '%s'", req.State))
	}

	now := time.Now()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := tx.Test.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get test: %w", err)
	}

	if state != current.State {
		_, err = tx.Request.Create().
			SetIDTest(id).
			SetReason(request.ReasonUpdate).
			SetRecoveryAttempt(0).
			SetAddedTime(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create update request: %w", err)
		}
	}

	newVersion := current.Version
	if req.TestParams != current.TestParams {
		newVersion++
		_, err = tx.OldParam.Create().
			SetIDTest(id).
			SetVersion(current.Version).
			SetTestParams(current.TestParams).
			SetChanged(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to snapshot old params: %w", err)
		}
	}

	updated, err := tx.Test.UpdateOneID(id).
		SetDescription(req.Description).
		SetState(state).
		SetTestParams(req.TestParams).
		SetTimeout(req.Timeout).
		SetVersion(newVersion).
		SetNillableSchedulingInterval(req.SchedulingInterval).
		SetNillableSchedulingFrom(models.FromUnixSecondsPtr(req.SchedulingFrom)).
		SetNillableSchedulingUntil(models.FromUnixSecondsPtr(req.SchedulingUntil)).
		SetNillableRecoveryInterval(req.RecoveryInterval).
		SetNillableRecoveryAttemptLimit(req.RecoveryAttemptLimit).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update test: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return updated, nil
}

// UpdateLastDownloadedTime marks the test's results as retrieved.
func (s *TestService) UpdateLastDownloadedTime(ctx context.Context, id int, at time.Time) error {
	err := s.client.Test.UpdateOneID(id).SetLastDownloadedTime(at).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update last downloaded time: %w", err)
	}
	return nil
}

// CountByCategory counts tests per state plus the "all" total.
func (s *TestService) CountByCategory(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		State string `json:"state"`
		Count int    `json:"count"`
	}
	err := s.client.Test.Query().
		GroupBy(test.FieldState).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count tests: %w", err)
	}
	counts := map[string]int{"all": 0}
	for _, state := range []test.State{
		test.StateEnabled, test.StateDisabled, test.StateDeleted,
		test.StateMigratingFrom, test.StateMigratingTo,
	} {
		counts[string(state)] = 0
	}
	for _, row := range rows {
		counts[row.State] = row.Count
		counts["all"] += row.Count
	}
	return counts, nil
}

// DeleteOlderThan removes tests whose results were last downloaded before
// the cutoff. Tests that were never downloaded are kept.
func (s *TestService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Test.Delete().
		Where(test.LastDownloadedTimeLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old tests: %w", err)
	}
	return n, nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/ent/run"
)

// RunService handles the run lifecycle records of the tests manager.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client) *RunService {
	if client == nil {
		panic("NewRunService: client must not be nil")
	}
	return &RunService{client: client}
}

// GetRunsByState returns the runs in one lifecycle state, oldest-first.
func (s *RunService) GetRunsByState(ctx context.Context, state run.State) ([]*ent.Run, error) {
	runs, err := s.client.Run.Query().
		Where(run.StateEQ(state)).
		Order(ent.Asc(run.FieldPlanned), ent.Asc(run.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s runs: %w", state, err)
	}
	return runs, nil
}

// GetRunsByStatePastDeadline returns the runs in one state whose deadline
// has passed.
func (s *RunService) GetRunsByStatePastDeadline(ctx context.Context, state run.State, now time.Time) ([]*ent.Run, error) {
	runs, err := s.client.Run.Query().
		Where(run.StateEQ(state), run.DeadlineLTE(now)).
		Order(ent.Asc(run.FieldDeadline)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue %s runs: %w", state, err)
	}
	return runs, nil
}

// GetRunsByTest returns every run of one test.
func (s *RunService) GetRunsByTest(ctx context.Context, idTest int) ([]*ent.Run, error) {
	runs, err := s.client.Run.Query().
		Where(run.IDTest(idTest)).
		Order(ent.Asc(run.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs for test %d: %w", idTest, err)
	}
	return runs, nil
}

// CountByCategory counts runs per lifecycle state plus the "all" total.
func (s *RunService) CountByCategory(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		State string `json:"state"`
		Count int    `json:"count"`
	}
	err := s.client.Run.Query().
		GroupBy(run.FieldState).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}
	counts := map[string]int{"all": 0}
	for _, state := range []run.State{
		run.StateWaiting, run.StateRunning, run.StateTerminating,
		run.StateKilling, run.StateZombie,
	} {
		counts[string(state)] = 0
	}
	for _, row := range rows {
		counts[row.State] = row.Count
		counts["all"] += row.Count
	}
	return counts, nil
}

// DeleteOlderThan removes runs planned before the cutoff. Healthy runs are
// harvested into results well before retention, so whatever this deletes
// was stuck.
func (s *RunService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Run.Delete().
		Where(run.PlannedLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old runs: %w", err)
	}
	return n, nil
}

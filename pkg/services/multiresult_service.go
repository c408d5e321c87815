package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/ent/multiresult"
)

// MultiResultService handles orchestrator bulk-download views.
type MultiResultService struct {
	client *ent.Client
}

// NewMultiResultService creates a new MultiResultService.
func NewMultiResultService(client *ent.Client) *MultiResultService {
	if client == nil {
		panic("NewMultiResultService: client must not be nil")
	}
	return &MultiResultService{client: client}
}

// ReplaceForOrchestrator drops the orchestrator's previous view and creates
// a fresh empty one under the given key, in one transaction. Each
// orchestrator owns at most one view.
func (s *MultiResultService) ReplaceForOrchestrator(ctx context.Context, orchestratorName, key string) (*ent.MultiResult, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.MultiResult.Delete().
		Where(multiresult.OrchestratorName(orchestratorName)).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to delete previous multi result: %w", err)
	}

	mr, err := tx.MultiResult.Create().
		SetOrchestratorName(orchestratorName).
		SetKey(key).
		SetTestIds([]int{}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi result: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return mr, nil
}

// GetMultiResult retrieves one view by id.
func (s *MultiResultService) GetMultiResult(ctx context.Context, id int) (*ent.MultiResult, error) {
	mr, err := s.client.MultiResult.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get multi result: %w", err)
	}
	return mr, nil
}

// AddTest attaches a test to a view, once. Returns the updated id list.
func (s *MultiResultService) AddTest(ctx context.Context, id, idTest int) ([]int, error) {
	mr, err := s.GetMultiResult(ctx, id)
	if err != nil {
		return nil, err
	}
	if slices.Contains(mr.TestIds, idTest) {
		return mr.TestIds, nil
	}
	ids := append(slices.Clone(mr.TestIds), idTest)
	err = s.client.MultiResult.UpdateOneID(id).
		SetTestIds(ids).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update multi result tests: %w", err)
	}
	return ids, nil
}

// UpdateLastUsedTime marks the view as downloaded from.
func (s *MultiResultService) UpdateLastUsedTime(ctx context.Context, id int, at time.Time) error {
	err := s.client.MultiResult.UpdateOneID(id).
		SetLastUsedTime(at).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update multi result last used time: %w", err)
	}
	return nil
}

// CountByCategory counts all views under the "all" key.
func (s *MultiResultService) CountByCategory(ctx context.Context) (map[string]int, error) {
	n, err := s.client.MultiResult.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count multi results: %w", err)
	}
	return map[string]int{"all": n}, nil
}

// DeleteOlderThan removes views last used before the cutoff. Views that
// were never used are kept.
func (s *MultiResultService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.MultiResult.Delete().
		Where(multiresult.LastUsedTimeLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old multi results: %w", err)
	}
	return n, nil
}

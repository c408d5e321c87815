package services

import (
	"context"
	"fmt"
	"time"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/ent/result"
)

// ResultService handles finished-run records.
type ResultService struct {
	client *ent.Client
}

// NewResultService creates a new ResultService.
func NewResultService(client *ent.Client) *ResultService {
	if client == nil {
		panic("NewResultService: client must not be nil")
	}
	return &ResultService{client: client}
}

// GetResultsByTest returns every stored result of one test.
func (s *ResultService) GetResultsByTest(ctx context.Context, idTest int) ([]*ent.Result, error) {
	results, err := s.client.Result.Query().
		Where(result.IDTest(idTest)).
		Order(ent.Asc(result.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list results for test %d: %w", idTest, err)
	}
	return results, nil
}

// GetResultsSinceID returns the results of one test with id greater than
// sinceID. Orchestrators poll with their last seen id.
func (s *ResultService) GetResultsSinceID(ctx context.Context, idTest, sinceID int) ([]*ent.Result, error) {
	results, err := s.client.Result.Query().
		Where(result.IDTest(idTest), result.IDGT(sinceID)).
		Order(ent.Asc(result.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list results for test %d since id %d: %w", idTest, sinceID, err)
	}
	return results, nil
}

// GetResultsInIDRange returns the results of one test with sinceID < id <=
// untilID. Multi-result downloads pin untilID so every test in the batch
// sees the same snapshot boundary.
func (s *ResultService) GetResultsInIDRange(ctx context.Context, idTest, sinceID, untilID int) ([]*ent.Result, error) {
	results, err := s.client.Result.Query().
		Where(result.IDTest(idTest), result.IDGT(sinceID), result.IDLTE(untilID)).
		Order(ent.Asc(result.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list results for test %d in id range: %w", idTest, err)
	}
	return results, nil
}

// GetLastUsedID returns the highest result id, 0 when there are none.
func (s *ResultService) GetLastUsedID(ctx context.Context) (int, error) {
	last, err := s.client.Result.Query().
		Order(ent.Desc(result.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get last result id: %w", err)
	}
	return last.ID, nil
}

// CountByCategory counts results per status plus the "all" total.
func (s *ResultService) CountByCategory(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.Result.Query().
		GroupBy(result.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count results: %w", err)
	}
	counts := map[string]int{"all": 0}
	for _, status := range []result.Status{
		result.StatusSuccess, result.StatusTerminated,
		result.StatusError, result.StatusCrashed,
	} {
		counts[string(status)] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
		counts["all"] += row.Count
	}
	return counts, nil
}

// DeleteOlderThan removes results finished before the cutoff.
func (s *ResultService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Result.Delete().
		Where(result.FinishedLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old results: %w", err)
	}
	return n, nil
}

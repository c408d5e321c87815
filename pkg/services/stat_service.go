package services

import (
	"context"
	"fmt"
	"time"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/ent/stat"
)

// StatService stores hourly per-table row count samples.
type StatService struct {
	client *ent.Client
}

// NewStatService creates a new StatService.
func NewStatService(client *ent.Client) *StatService {
	if client == nil {
		panic("NewStatService: client must not be nil")
	}
	return &StatService{client: client}
}

// RecordCounts writes one Stat row per category for one table, all stamped
// with the same sample time.
func (s *StatService) RecordCounts(ctx context.Context, sampleTime time.Time, tableName string, counts map[string]int) error {
	builders := make([]*ent.StatCreate, 0, len(counts))
	for category, value := range counts {
		builders = append(builders, s.client.Stat.Create().
			SetTime(sampleTime).
			SetTableName(tableName).
			SetCategory(category).
			SetValue(value))
	}
	if err := s.client.Stat.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("failed to record stats for table %s: %w", tableName, err)
	}
	return nil
}

// CountByCategory counts all stat rows under the "all" key.
func (s *StatService) CountByCategory(ctx context.Context) (map[string]int, error) {
	n, err := s.client.Stat.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count stats: %w", err)
	}
	return map[string]int{"all": n}, nil
}

// DeleteOlderThan removes samples taken before the cutoff.
func (s *StatService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Stat.Delete().
		Where(stat.TimeLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old stats: %w", err)
	}
	return n, nil
}

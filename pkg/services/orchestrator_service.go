package services

import (
	"context"
	"fmt"
	"time"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/ent/orchestrator"
)

// OrchestratorService tracks the remote clients of the agent.
type OrchestratorService struct {
	client *ent.Client
}

// NewOrchestratorService creates a new OrchestratorService.
func NewOrchestratorService(client *ent.Client) *OrchestratorService {
	if client == nil {
		panic("NewOrchestratorService: client must not be nil")
	}
	return &OrchestratorService{client: client}
}

// Touch upserts the orchestrator and stamps its last activity.
func (s *OrchestratorService) Touch(ctx context.Context, name string, seenAt time.Time) error {
	err := s.client.Orchestrator.Create().
		SetName(name).
		SetLastSeen(seenAt).
		OnConflictColumns(orchestrator.FieldName).
		SetLastSeen(seenAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert orchestrator %s: %w", name, err)
	}
	return nil
}

// GetAllOrchestrators returns every orchestrator that ever connected.
func (s *OrchestratorService) GetAllOrchestrators(ctx context.Context) ([]*ent.Orchestrator, error) {
	orchestrators, err := s.client.Orchestrator.Query().
		Order(ent.Asc(orchestrator.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orchestrators: %w", err)
	}
	return orchestrators, nil
}

// CountByCategory counts all orchestrators under the "all" key.
func (s *OrchestratorService) CountByCategory(ctx context.Context) (map[string]int, error) {
	n, err := s.client.Orchestrator.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orchestrators: %w", err)
	}
	return map[string]int{"all": n}, nil
}

// DeleteOlderThan removes orchestrators not seen since the cutoff.
func (s *OrchestratorService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Orchestrator.Delete().
		Where(orchestrator.LastSeenLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale orchestrators: %w", err)
	}
	return n, nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/ent/oldparam"
)

// OldParamService handles historical test parameter snapshots.
type OldParamService struct {
	client *ent.Client
}

// NewOldParamService creates a new OldParamService.
func NewOldParamService(client *ent.Client) *OldParamService {
	if client == nil {
		panic("NewOldParamService: client must not be nil")
	}
	return &OldParamService{client: client}
}

// GetOldParamsByTest returns every snapshot of one test.
func (s *OldParamService) GetOldParamsByTest(ctx context.Context, idTest int) ([]*ent.OldParam, error) {
	params, err := s.client.OldParam.Query().
		Where(oldparam.IDTest(idTest)).
		Order(ent.Asc(oldparam.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list old params for test %d: %w", idTest, err)
	}
	return params, nil
}

// GetOldParamsByVersion returns one test's snapshot for one version.
func (s *OldParamService) GetOldParamsByVersion(ctx context.Context, idTest, version int) (*ent.OldParam, error) {
	p, err := s.client.OldParam.Query().
		Where(oldparam.IDTest(idTest), oldparam.Version(version)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get old params for test %d version %d: %w", idTest, version, err)
	}
	return p, nil
}

// CountByCategory counts all snapshots under the "all" key.
func (s *OldParamService) CountByCategory(ctx context.Context) (map[string]int, error) {
	n, err := s.client.OldParam.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count old params: %w", err)
	}
	return map[string]int{"all": n}, nil
}

// DeleteOlderThan removes snapshots taken before the cutoff.
func (s *OldParamService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.OldParam.Delete().
		Where(oldparam.ChangedLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old params: %w", err)
	}
	return n, nil
}

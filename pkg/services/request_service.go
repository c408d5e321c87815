package services

import (
	"context"
	"fmt"
	"time"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/ent/request"
)

// RequestService handles the calendar's inbound request queue.
type RequestService struct {
	client *ent.Client
}

// NewRequestService creates a new RequestService.
func NewRequestService(client *ent.Client) *RequestService {
	if client == nil {
		panic("NewRequestService: client must not be nil")
	}
	return &RequestService{client: client}
}

// CreateRequest enqueues one request for the calendar.
func (s *RequestService) CreateRequest(ctx context.Context, idTest int, reason request.Reason, recoveryAttempt int) (*ent.Request, error) {
	r, err := s.client.Request.Create().
		SetIDTest(idTest).
		SetReason(reason).
		SetRecoveryAttempt(recoveryAttempt).
		SetAddedTime(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return r, nil
}

// GetAllRequests returns the queue oldest-first.
func (s *RequestService) GetAllRequests(ctx context.Context) ([]*ent.Request, error) {
	requests, err := s.client.Request.Query().
		Order(ent.Asc(request.FieldAddedTime), ent.Asc(request.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}

// GetRequestsByTest returns the pending requests of one test.
func (s *RequestService) GetRequestsByTest(ctx context.Context, idTest int) ([]*ent.Request, error) {
	requests, err := s.client.Request.Query().
		Where(request.IDTest(idTest)).
		Order(ent.Asc(request.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests for test %d: %w", idTest, err)
	}
	return requests, nil
}

// CountByCategory counts all requests under the "all" key.
func (s *RequestService) CountByCategory(ctx context.Context) (map[string]int, error) {
	n, err := s.client.Request.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count requests: %w", err)
	}
	return map[string]int{"all": n}, nil
}

// DeleteOlderThan removes requests added before the cutoff.
func (s *RequestService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Request.Delete().
		Where(request.AddedTimeLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old requests: %w", err)
	}
	return n, nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/ent/nonce"
)

// NonceService stores recently seen request nonces for replay detection.
type NonceService struct {
	client *ent.Client
}

// NewNonceService creates a new NonceService.
func NewNonceService(client *ent.Client) *NonceService {
	if client == nil {
		panic("NewNonceService: client must not be nil")
	}
	return &NonceService{client: client}
}

// Consume records a nonce. ErrAlreadyExists means the nonce was seen before
// and the request is a replay.
func (s *NonceService) Consume(ctx context.Context, value string) error {
	err := s.client.Nonce.Create().
		SetNonce(value).
		SetUsedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to store nonce: %w", err)
	}
	return nil
}

// CountByCategory counts all stored nonces under the "all" key.
func (s *NonceService) CountByCategory(ctx context.Context) (map[string]int, error) {
	n, err := s.client.Nonce.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count nonces: %w", err)
	}
	return map[string]int{"all": n}, nil
}

// DeleteOlderThan removes nonces used before the cutoff. The retention
// window must stay longer than the request validity window, otherwise a
// replayed request could slip through after its nonce is expired.
func (s *NonceService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Nonce.Delete().
		Where(nonce.UsedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired nonces: %w", err)
	}
	return n, nil
}

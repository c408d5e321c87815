package services

import (
	"context"
	"fmt"
	"time"

	"github.com/inventor-project/symon/ent"
	"github.com/inventor-project/symon/ent/event"
)

// EventService handles the planned-events calendar.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	if client == nil {
		panic("NewEventService: client must not be nil")
	}
	return &EventService{client: client}
}

// GetDueEvents returns the events whose run time has passed, oldest-first.
func (s *EventService) GetDueEvents(ctx context.Context, now time.Time) ([]*ent.Event, error) {
	events, err := s.client.Event.Query().
		Where(event.RunAtLTE(now)).
		Order(ent.Asc(event.FieldRunAt), ent.Asc(event.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list due events: %w", err)
	}
	return events, nil
}

// GetEventsByTest returns the planned events of one test.
func (s *EventService) GetEventsByTest(ctx context.Context, idTest int) ([]*ent.Event, error) {
	events, err := s.client.Event.Query().
		Where(event.IDTest(idTest)).
		Order(ent.Asc(event.FieldRunAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for test %d: %w", idTest, err)
	}
	return events, nil
}

// DeleteEventsByTest drops every planned event of one test. Used when a
// test's scheduling changes and the calendar re-plans from scratch.
func (s *EventService) DeleteEventsByTest(ctx context.Context, idTest int) (int, error) {
	n, err := s.client.Event.Delete().
		Where(event.IDTest(idTest)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete events for test %d: %w", idTest, err)
	}
	return n, nil
}

// CountByCategory counts all events under the "all" key.
func (s *EventService) CountByCategory(ctx context.Context) (map[string]int, error) {
	n, err := s.client.Event.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}
	return map[string]int{"all": n}, nil
}

// DeleteOlderThan removes events whose run time passed before the cutoff.
// Live events are consumed by the calendar long before retention kicks in;
// this only catches leftovers of tests that are gone.
func (s *EventService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Event.Delete().
		Where(event.RunAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old events: %w", err)
	}
	return n, nil
}

// Package stats samples per-table row counts on the hour so trends in the
// agent's workload can be read back later.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/inventor-project/symon/pkg/services"
)

// counter reports a table's row counts grouped by its category column.
type counter interface {
	CountByCategory(ctx context.Context) (map[string]int, error)
}

// Service takes one sample per hour, aligned to the hour boundary.
type Service struct {
	statService *services.StatService
	counters    map[string]counter

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new stats sampler over the counted tables.
func NewService(
	statService *services.StatService,
	testService *services.TestService,
	requestService *services.RequestService,
	eventService *services.EventService,
	runService *services.RunService,
	resultService *services.ResultService,
	oldParamService *services.OldParamService,
	multiResultService *services.MultiResultService,
	orchestratorService *services.OrchestratorService,
	nonceService *services.NonceService,
) *Service {
	if statService == nil {
		panic("stats.NewService: statService must not be nil")
	}
	return &Service{
		statService: statService,
		counters: map[string]counter{
			"tests":         testService,
			"requests":      requestService,
			"events":        eventService,
			"runs":          runService,
			"results":       resultService,
			"old_params":    oldParamService,
			"multi_results": multiResultService,
			"orchestrators": orchestratorService,
			"nonces":        nonceService,
		},
	}
}

// Start launches the background sampling loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Stats sampler started")
}

// Stop signals the sampling loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Stats sampler stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	for {
		next := time.Now().Truncate(time.Hour).Add(time.Hour)
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.SampleOnce(ctx, next)
		}
	}
}

// SampleOnce records one row-count sample per table and category. A failing
// table is logged and skipped.
func (s *Service) SampleOnce(ctx context.Context, sampleTime time.Time) {
	for table, c := range s.counters {
		counts, err := c.CountByCategory(ctx)
		if err != nil {
			slog.Error("Stats: failed to count rows", "table", table, "error", err)
			continue
		}
		if err := s.statService.RecordCounts(ctx, sampleTime, table, counts); err != nil {
			slog.Error("Stats: failed to record sample", "table", table, "error", err)
			continue
		}
		slog.Debug("Stats: recorded sample", "table", table, "categories", len(counts))
	}
}

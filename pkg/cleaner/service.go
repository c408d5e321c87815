// Package cleaner enforces data retention. Every table with a timestamped
// age column gets its own retention window, read from the cleaner section
// of the settings file.
package cleaner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/inventor-project/symon/pkg/config"
	"github.com/inventor-project/symon/pkg/services"
)

// retainer deletes rows older than a cutoff and reports how many went away.
type retainer interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// target binds one table's retention window to the service that prunes it.
type target struct {
	table     string
	retention time.Duration
	retainer  retainer
}

// Config carries the cleanup interval and the per-table retention windows.
type Config struct {
	Interval time.Duration

	Nonces        time.Duration
	Orchestrators time.Duration
	Results       time.Duration
	OldParams     time.Duration
	MultiResults  time.Duration
	Tests         time.Duration
	Runs          time.Duration
	Events        time.Duration
	Requests      time.Duration
	Stats         time.Duration
}

// ConfigFromSettings reads the cleaner section. A nonce must outlive the
// request validity window, otherwise a replayed request could slip through
// after its nonce was pruned.
func ConfigFromSettings(cfg *config.Config) (Config, error) {
	seconds := func(option string) time.Duration {
		return time.Duration(cfg.Int("cleaner", option)) * time.Second
	}
	c := Config{
		Interval:      seconds("interval_int"),
		Nonces:        seconds("nonces_int"),
		Orchestrators: seconds("orchestrators_int"),
		Results:       seconds("results_int"),
		OldParams:     seconds("old_params_int"),
		MultiResults:  seconds("multi_results_int"),
		Tests:         seconds("tests_int"),
		Runs:          seconds("runs_int"),
		Events:        seconds("events_int"),
		Requests:      seconds("requests_int"),
		Stats:         seconds("stats_int"),
	}
	requestValidity := time.Duration(cfg.Int("authorization", "request_validity_int")) * time.Second
	if c.Nonces <= requestValidity {
		return Config{}, fmt.Errorf(
			"cleaner/nonces_int (%s) must be greater than authorization/request_validity_int (%s)",
			c.Nonces, requestValidity)
	}
	return c, nil
}

// Service periodically prunes rows that fell out of their retention window.
// All operations are idempotent.
type Service struct {
	config  Config
	targets []target

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleaner service over the full set of retained
// tables.
func NewService(
	cfg Config,
	testService *services.TestService,
	requestService *services.RequestService,
	eventService *services.EventService,
	runService *services.RunService,
	resultService *services.ResultService,
	oldParamService *services.OldParamService,
	multiResultService *services.MultiResultService,
	orchestratorService *services.OrchestratorService,
	nonceService *services.NonceService,
	statService *services.StatService,
) *Service {
	return &Service{
		config: cfg,
		targets: []target{
			{"nonces", cfg.Nonces, nonceService},
			{"orchestrators", cfg.Orchestrators, orchestratorService},
			{"results", cfg.Results, resultService},
			{"old_params", cfg.OldParams, oldParamService},
			{"multi_results", cfg.MultiResults, multiResultService},
			{"tests", cfg.Tests, testService},
			{"runs", cfg.Runs, runService},
			{"events", cfg.Events, eventService},
			{"requests", cfg.Requests, requestService},
			{"stats", cfg.Stats, statService},
		},
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleaner started", "interval", s.config.Interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleaner stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.CleanAll(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CleanAll(ctx)
		}
	}
}

// CleanAll prunes every retained table once. A failing table is logged and
// skipped, the rest still get cleaned.
func (s *Service) CleanAll(ctx context.Context) {
	for _, t := range s.targets {
		cutoff := time.Now().Add(-t.retention)
		count, err := t.retainer.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			slog.Error("Retention: cleanup failed", "table", t.table, "error", err)
			continue
		}
		if count > 0 {
			slog.Info("Retention: deleted old rows", "table", t.table, "count", count)
		}
	}
}

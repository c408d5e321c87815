// Package api is the agent's HTTP surface. Every data endpoint sits behind
// two factors: a session token bound to the caller's address and a
// per-request digest proving possession of a resource key.
package api

import (
	"context"
	"database/sql"

	echo "github.com/labstack/echo/v5"

	"github.com/inventor-project/symon/pkg/config"
	"github.com/inventor-project/symon/pkg/logging"
	"github.com/inventor-project/symon/pkg/services"
)

// Server is the agent's HTTP API server.
type Server struct {
	cfg        *config.Config
	accounting *logging.Accounting
	db         *sql.DB

	testService         *services.TestService
	requestService      *services.RequestService
	eventService        *services.EventService
	runService          *services.RunService
	resultService       *services.ResultService
	oldParamService     *services.OldParamService
	multiResultService  *services.MultiResultService
	orchestratorService *services.OrchestratorService
	nonceService        *services.NonceService

	echo     *echo.Echo
	shutdown context.CancelFunc
	done     chan struct{}
}

// Services bundles the domain services the server depends on.
type Services struct {
	Tests         *services.TestService
	Requests      *services.RequestService
	Events        *services.EventService
	Runs          *services.RunService
	Results       *services.ResultService
	OldParams     *services.OldParamService
	MultiResults  *services.MultiResultService
	Orchestrators *services.OrchestratorService
	Nonces        *services.NonceService
}

// NewServer creates the API server and registers all routes.
func NewServer(cfg *config.Config, accounting *logging.Accounting, db *sql.DB, svcs Services) *Server {
	s := &Server{
		cfg:                 cfg,
		accounting:          accounting,
		db:                  db,
		testService:         svcs.Tests,
		requestService:      svcs.Requests,
		eventService:        svcs.Events,
		runService:          svcs.Runs,
		resultService:       svcs.Results,
		oldParamService:     svcs.OldParams,
		multiResultService:  svcs.MultiResults,
		orchestratorService: svcs.Orchestrators,
		nonceService:        svcs.Nonces,
	}

	e := echo.New()
	e.Use(securityHeaders())

	e.POST("/auth/token", s.postTokenHandler)
	e.GET("/auth/time", s.getTimeHandler)

	tests := e.Group("/test", s.sessionAuth())
	tests.GET("/all", s.getAllTestsHandler)
	tests.POST("", s.postTestHandler)
	tests.GET("/:id_test", s.getTestHandler)
	tests.PATCH("/:id_test", s.patchTestHandler)
	tests.GET("/:id_test/full", s.getTestFullHandler)
	tests.GET("/:id_test/results", s.getTestResultsHandler)
	tests.GET("/:id_test/events", s.getTestEventsHandler)
	tests.POST("/:id_test/request", s.postTestRequestHandler)
	tests.GET("/:id_test/old_params", s.getOldParamsHandler)
	tests.GET("/:id_test/old_params/:version", s.getOldParamsByVersionHandler)

	multiResults := e.Group("/multi-results", s.sessionAuth())
	multiResults.POST("/init", s.postMultiResultsInitHandler)
	multiResults.POST("/:id_multi_result", s.postMultiResultsHandler)
	multiResults.GET("/:id_multi_result", s.getMultiResultsHandler)

	system := e.Group("/system", s.sessionAuth())
	system.GET("/status", s.getSystemStatusHandler)
	system.GET("/config", s.getSystemConfigHandler)
	system.PATCH("/config", s.patchSystemConfigHandler)
	system.GET("/config/all", s.getSystemConfigAllHandler)
	system.GET("/orchestrators", s.getSystemOrchestratorsHandler)
	system.GET("/logs", s.getSystemLogsHandler)
	system.GET("/logs/stats", s.getSystemLogsStatsHandler)
	system.GET("/accounting", s.getSystemAccountingHandler)

	s.echo = e
	s.done = make(chan struct{})
	return s
}

// Start begins serving on addr. It blocks until the server stops.
func (s *Server) Start(addr string) error {
	ctx, cancel := context.WithCancel(context.Background())
	s.shutdown = cancel
	defer close(s.done)
	sc := echo.StartConfig{Address: addr}
	return sc.Start(ctx, s.echo)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.shutdown != nil {
		s.shutdown()
	}
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

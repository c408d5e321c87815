// Symon agent: one binary, many processes. The --task flag selects which
// process this invocation becomes: the API server, the calendar, the tests
// manager, the cleaner, the stats sampler, the UDP responder, the database
// initializer, or an internal probe child.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/inventor-project/symon/pkg/api"
	"github.com/inventor-project/symon/pkg/calendar"
	"github.com/inventor-project/symon/pkg/cleaner"
	"github.com/inventor-project/symon/pkg/config"
	"github.com/inventor-project/symon/pkg/database"
	"github.com/inventor-project/symon/pkg/logging"
	"github.com/inventor-project/symon/pkg/manager"
	"github.com/inventor-project/symon/pkg/probes"
	"github.com/inventor-project/symon/pkg/responder"
	"github.com/inventor-project/symon/pkg/services"
	"github.com/inventor-project/symon/pkg/stats"
	"github.com/inventor-project/symon/pkg/version"
)

func main() {
	task := flag.String("task", "", "Process to run: init_database|calendar|cleaner|responder|server|stats|tests_manager|probe")
	persistent := flag.String("persistent", "./persistent", "Path to the persistent directory (config.ini, .env, logs)")
	probeName := flag.String("probe", "", "Probe name (internal, probe task only)")
	runID := flag.Int("run-id", 0, "Run id (internal, probe task only)")
	flag.Parse()

	if *task == "probe" {
		runProbeChild(*probeName, *runID)
		return
	}

	envPath := filepath.Join(*persistent, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	cfg, err := config.Load(filepath.Join(*persistent, "config.ini"))
	if err != nil {
		slog.Error("Failed to load the settings file", "error", err)
		os.Exit(1)
	}
	if err := config.EnsureDefaults(cfg, *persistent); err != nil {
		slog.Error("Failed to initialize the settings file", "error", err)
		os.Exit(1)
	}

	if err := logging.Setup(*task,
		cfg.String("logging", "logs_file"),
		logging.ParseLevel(cfg.String("logging", "logs_file_level")),
		logging.ParseLevel(cfg.String("logging", "console_level")),
	); err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting symon", "task", *task, "version", version.Full(), "persistent", *persistent)

	switch *task {
	case "init_database":
		runInitDatabase()
	case "calendar":
		db := mustConnect()
		defer db.Close()
		runLoop(func(ctx context.Context) func() {
			svc := calendar.NewService(db.Client)
			svc.Start(ctx)
			return svc.Stop
		})
	case "cleaner":
		db := mustConnect()
		defer db.Close()
		runCleaner(cfg, db)
	case "responder":
		runResponder(cfg)
	case "server":
		db := mustConnect()
		defer db.Close()
		runServer(cfg, db)
	case "stats":
		db := mustConnect()
		defer db.Close()
		runStats(db)
	case "tests_manager":
		db := mustConnect()
		defer db.Close()
		runManager(cfg, db)
	default:
		logging.Critical("Unknown task name.", "task", *task)
	}
}

// runProbeChild executes one probe and exits. It runs before any logging or
// config setup: stdout belongs to the result message alone.
func runProbeChild(name string, runID int) {
	if err := probes.RunChild(context.Background(), name, runID, os.Stdin, os.Stdout); err != nil {
		slog.Error("Probe child failed", "probe", name, "run_id", runID, "error", err)
		os.Exit(1)
	}
}

// mustConnect opens the database or exits.
func mustConnect() *database.Client {
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		logging.Critical("Failed to load database config.", "error", err)
	}
	db, err := database.NewClient(context.Background(), dbConfig)
	if err != nil {
		logging.Critical("Failed to connect to database.", "error", err)
	}
	slog.Info("Connected to PostgreSQL database")
	return db
}

// runInitDatabase connects once, which applies all pending migrations, and
// exits.
func runInitDatabase() {
	db := mustConnect()
	defer db.Close()
	slog.Info("Database schema is up to date")
}

// runLoop starts one background service and blocks until SIGTERM or SIGINT.
func runLoop(start func(ctx context.Context) func()) {
	ctx := context.Background()
	stop := start(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	stop()
}

func runCleaner(cfg *config.Config, db *database.Client) {
	retention, err := cleaner.ConfigFromSettings(cfg)
	if err != nil {
		logging.Critical("Invalid retention configuration.", "error", err)
	}
	runLoop(func(ctx context.Context) func() {
		svc := cleaner.NewService(retention,
			services.NewTestService(db.Client),
			services.NewRequestService(db.Client),
			services.NewEventService(db.Client),
			services.NewRunService(db.Client),
			services.NewResultService(db.Client),
			services.NewOldParamService(db.Client),
			services.NewMultiResultService(db.Client),
			services.NewOrchestratorService(db.Client),
			services.NewNonceService(db.Client),
			services.NewStatService(db.Client),
		)
		svc.Start(ctx)
		return svc.Stop
	})
}

func runStats(db *database.Client) {
	runLoop(func(ctx context.Context) func() {
		svc := stats.NewService(
			services.NewStatService(db.Client),
			services.NewTestService(db.Client),
			services.NewRequestService(db.Client),
			services.NewEventService(db.Client),
			services.NewRunService(db.Client),
			services.NewResultService(db.Client),
			services.NewOldParamService(db.Client),
			services.NewMultiResultService(db.Client),
			services.NewOrchestratorService(db.Client),
			services.NewNonceService(db.Client),
		)
		svc.Start(ctx)
		return svc.Stop
	})
}

func runManager(cfg *config.Config, db *database.Client) {
	managerConfig := manager.Config{
		TerminatingGrace: time.Duration(cfg.Int("tests", "process_deadline_terminating_int")) * time.Second,
		KillingGrace:     time.Duration(cfg.Int("tests", "process_deadline_killing_int")) * time.Second,
	}
	runLoop(func(ctx context.Context) func() {
		svc := manager.NewService(db.Client, managerConfig)
		svc.Start(ctx)
		return svc.Stop
	})
}

func runResponder(cfg *config.Config) {
	addr := ""
	if cfg.Exists("responder", "ip") && cfg.Exists("responder", "port") {
		addr = net.JoinHostPort(cfg.String("responder", "ip"), cfg.String("responder", "port"))
	}
	runLoop(func(ctx context.Context) func() {
		svc := responder.NewService(addr)
		if err := svc.Start(ctx); err != nil {
			logging.Critical("Failed to start the UDP responder.", "error", err)
		}
		return svc.Stop
	})
}

func runServer(cfg *config.Config, db *database.Client) {
	accounting, err := logging.NewAccounting(cfg.String("accounting", "logs_file"))
	if err != nil {
		logging.Critical("Failed to open the accounting log.", "error", err)
	}
	defer accounting.Close()

	server := api.NewServer(cfg, accounting, db.DB(), api.Services{
		Tests:         services.NewTestService(db.Client),
		Requests:      services.NewRequestService(db.Client),
		Events:        services.NewEventService(db.Client),
		Runs:          services.NewRunService(db.Client),
		Results:       services.NewResultService(db.Client),
		OldParams:     services.NewOldParamService(db.Client),
		MultiResults:  services.NewMultiResultService(db.Client),
		Orchestrators: services.NewOrchestratorService(db.Client),
		Nonces:        services.NewNonceService(db.Client),
	})

	addr := net.JoinHostPort(
		cfg.String("api", "server_ip"),
		strconv.Itoa(cfg.Int("api", "server_port")),
	)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		errCh <- server.Start(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}

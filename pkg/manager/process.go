package manager

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/inventor-project/symon/pkg/probes"
)

// isProcessAlive reports whether a pid still exists.
func isProcessAlive(pid int) bool {
	alive, err := process.PidExists(int32(pid))
	if err != nil {
		slog.Warn("Unable to check process liveness", "pid", pid, "error", err)
		return false
	}
	return alive
}

// terminateProcess asks a probe process to exit gracefully (SIGTERM).
func terminateProcess(pid int) {
	slog.Debug("Terminating process", "pid", pid)
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		slog.Debug("Unable to terminate process, it is no longer running", "pid", pid)
		return
	}
	if err := p.Terminate(); err != nil {
		slog.Warn("Unable to terminate process", "pid", pid, "error", err)
	}
}

// killProcess kills a probe process and its children, children first, so a
// probe that forked helpers cannot leave them orphaned.
func killProcess(pid int) {
	slog.Debug("Killing process", "pid", pid)
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		slog.Debug("Unable to kill process, it is no longer running", "pid", pid)
		return
	}
	children, err := p.Children()
	if err == nil {
		for _, child := range children {
			if err := child.Kill(); err != nil {
				slog.Warn("Unable to kill child process", "pid", child.Pid, "error", err)
			}
		}
	}
	if err := p.Kill(); err != nil {
		slog.Warn("Unable to kill process", "pid", pid, "error", err)
	}
}

// spawner starts one probe run in a child process and reports its pid.
// Results arrive asynchronously on the manager's results queue.
type spawner interface {
	Spawn(probeName, paramsJSON string, runID int) (int, error)
}

// execSpawner re-executes the agent binary with the internal probe task.
// The child writes one JSON result message to stdout; a reader goroutine
// parses it onto the results queue, preserving the decoupling between probe
// completion and database writes.
type execSpawner struct {
	results chan<- probes.Message
}

func newExecSpawner(results chan<- probes.Message) *execSpawner {
	return &execSpawner{results: results}
}

func (s *execSpawner) Spawn(probeName, paramsJSON string, runID int) (int, error) {
	// Validate params here so a typo disables the test instead of
	// spawning a child doomed to fail.
	if paramsJSON != "" {
		var decoded map[string]any
		if err := json.Unmarshal([]byte(paramsJSON), &decoded); err != nil {
			return 0, fmt.Errorf("test params are not valid JSON: %w", err)
		}
	}

	executable, err := os.Executable()
	if err != nil {
		return 0, fmt.Errorf("failed to resolve agent binary: %w", err)
	}

	cmd := exec.Command(executable,
		"--task", "probe",
		"--probe", probeName,
		"--run-id", fmt.Sprintf("%d", runID))
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return 0, fmt.Errorf("failed to open probe stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 0, fmt.Errorf("failed to open probe stdout: %w", err)
	}
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start probe process: %w", err)
	}

	go func() {
		_, _ = stdin.Write([]byte(paramsJSON))
		_ = stdin.Close()
	}()

	go func() {
		decoder := json.NewDecoder(stdout)
		var message probes.Message
		decodeErr := decoder.Decode(&message)
		// Reap the child regardless of what it printed.
		waitErr := cmd.Wait()
		if decodeErr != nil {
			slog.Error("Probe process produced no parseable result",
				"probe", probeName, "run_id", runID, "error", decodeErr, "wait_error", waitErr)
			return
		}
		s.results <- message
	}()

	return cmd.Process.Pid, nil
}

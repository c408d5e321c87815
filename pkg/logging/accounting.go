package logging

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"
)

// Accounting appends one line per authenticated API request to a dedicated
// log file. The file doubles as the data source of the accounting endpoint.
type Accounting struct {
	mu   sync.Mutex
	file *os.File
	path string
}

// NewAccounting opens the accounting log for appending. An empty path
// disables accounting; Record becomes a no-op.
func NewAccounting(path string) (*Accounting, error) {
	a := &Accounting{path: path}
	if path == "" {
		return a, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open accounting log %s: %w", path, err)
	}
	a.file = f
	return a, nil
}

// Path returns the accounting log location, empty when disabled.
func (a *Accounting) Path() string {
	return a.path
}

// Record writes one request line. Failures are logged, never propagated;
// accounting must not break request handling.
func (a *Accounting) Record(orchestrator, method, path string, status int, query, body string) {
	if a.file == nil {
		return
	}
	line := fmt.Sprintf("%s | %-16s | %-6s | %-20s | %4d | %s | %s\n",
		time.Now().Format(TimeLayout), orchestrator, method, path, status, query, body)

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.file.WriteString(line); err != nil {
		slog.Error("Failed to write accounting record", "error", err)
	}
}

// Close releases the underlying file.
func (a *Accounting) Close() error {
	if a.file == nil {
		return nil
	}
	return a.file.Close()
}

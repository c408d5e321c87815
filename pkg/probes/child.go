package probes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// RunChild is the probe child process entry point. It reads the test params
// JSON from stdin, runs the named probe, and writes exactly one result
// message to stdout. The parent's reader goroutine picks the message up.
func RunChild(ctx context.Context, name string, runID int, stdin io.Reader, stdout io.Writer) error {
	probe, err := Get(name)
	if err != nil {
		return err
	}

	raw, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("failed to read probe params: %w", err)
	}
	params := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return fmt.Errorf("probe params are not valid JSON: %w", err)
		}
	}

	result := probe.Run(ctx, params)
	message := Message{RunID: runID, Status: result.Status, Data: result.Data}
	if err := json.NewEncoder(stdout).Encode(message); err != nil {
		return fmt.Errorf("failed to write probe result: %w", err)
	}
	return nil
}

// Package probes bundles the test implementations compiled into the agent.
// A probe runs in its own child process and reports exactly one result; it
// never touches the store.
package probes

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Result statuses. They mirror the result record statuses the tests manager
// stores; terminated and crashed are assigned by the manager, never by a
// probe.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is what a probe hands back to the agent.
type Result struct {
	Status string
	Data   map[string]any
}

// Message is the wire form a probe child process writes to stdout.
type Message struct {
	RunID  int            `json:"run_id"`
	Status string         `json:"status"`
	Data   map[string]any `json:"data"`
}

// Probe is one bundled test implementation. Params is the decoded
// test_params JSON of the test definition.
type Probe interface {
	Name() string
	Run(ctx context.Context, params map[string]any) Result
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Probe{}
)

// Register adds a probe to the registry. Called from the probe files' init
// functions; duplicate names are a programming error.
func Register(p Probe) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[p.Name()]; ok {
		panic(fmt.Sprintf("probes: duplicate probe name %q", p.Name()))
	}
	registry[p.Name()] = p
}

// Get resolves a probe by name.
func Get(name string) (Probe, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown probe %q", name)
	}
	return p, nil
}

// Names lists the registered probes, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ErrorResult builds an error result carrying one message.
func ErrorResult(msg string) Result {
	return Result{Status: StatusError, Data: map[string]any{"error": msg}}
}

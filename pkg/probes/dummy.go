package probes

import (
	"context"
	"math/rand"
	"time"
)

func init() {
	Register(&dummyProbe{})
}

// dummyProbe simulates a test with random duration and a 10% failure rate.
// Useful for exercising the scheduling and harvesting machinery without any
// external dependency.
type dummyProbe struct{}

func (p *dummyProbe) Name() string { return "dummy" }

func (p *dummyProbe) Run(ctx context.Context, params map[string]any) Result {
	maxSeconds := 30.0
	if v, ok := params["max_seconds"].(float64); ok {
		maxSeconds = v
	}
	delay := time.Duration(rand.Float64() * maxSeconds * float64(time.Second))
	select {
	case <-ctx.Done():
		return ErrorResult("interrupted")
	case <-time.After(delay):
	}

	if rand.Float64() < 0.1 {
		return Result{Status: StatusError, Data: map[string]any{"description": "bad luck"}}
	}
	return Result{Status: StatusSuccess, Data: map[string]any{"value": 1, "slept_seconds": delay.Seconds()}}
}

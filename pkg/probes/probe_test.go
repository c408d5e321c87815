package probes

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedProbe struct {
	name   string
	result Result
}

func (p *fixedProbe) Name() string { return p.name }

func (p *fixedProbe) Run(_ context.Context, params map[string]any) Result {
	if p.result.Data == nil {
		return Result{Status: p.result.Status, Data: params}
	}
	return p.result
}

func TestRegistry(t *testing.T) {
	probe := &fixedProbe{name: "testing.fixed", result: Result{Status: StatusSuccess}}
	Register(probe)

	got, err := Get("testing.fixed")
	require.NoError(t, err)
	assert.Same(t, probe, got)

	_, err = Get("no.such.probe")
	assert.Error(t, err)

	assert.Contains(t, Names(), "testing.fixed")
	assert.Contains(t, Names(), "dummy")
	assert.IsIncreasing(t, Names())

	assert.Panics(t, func() { Register(&fixedProbe{name: "testing.fixed"}) })
}

func TestErrorResult(t *testing.T) {
	r := ErrorResult("boom")
	assert.Equal(t, StatusError, r.Status)
	assert.Equal(t, map[string]any{"error": "boom"}, r.Data)
}

func TestRunChildEchoesParams(t *testing.T) {
	Register(&fixedProbe{name: "testing.echo", result: Result{Status: StatusSuccess}})

	var stdout bytes.Buffer
	stdin := strings.NewReader(`{"target": "example.com"}`)
	err := RunChild(context.Background(), "testing.echo", 42, stdin, &stdout)
	require.NoError(t, err)

	var message Message
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &message))
	assert.Equal(t, 42, message.RunID)
	assert.Equal(t, StatusSuccess, message.Status)
	assert.Equal(t, map[string]any{"target": "example.com"}, message.Data)
}

func TestRunChildUnknownProbe(t *testing.T) {
	err := RunChild(context.Background(), "no.such.probe", 1, strings.NewReader(""), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRunChildBadParams(t *testing.T) {
	Register(&fixedProbe{name: "testing.badparams", result: Result{Status: StatusSuccess}})

	err := RunChild(context.Background(), "testing.badparams", 1, strings.NewReader("{not json"), &bytes.Buffer{})
	assert.Error(t, err)
}

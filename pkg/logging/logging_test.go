package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("INFO"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, LevelCritical, ParseLevel("critical"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("nonsense"))
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelName(slog.LevelDebug))
	assert.Equal(t, "INFO", LevelName(slog.LevelInfo))
	assert.Equal(t, "WARNING", LevelName(slog.LevelWarn))
	assert.Equal(t, "ERROR", LevelName(slog.LevelError))
	assert.Equal(t, "CRITICAL", LevelName(LevelCritical))
}

func TestLineHandlerFormat(t *testing.T) {
	var out strings.Builder
	h := newLineHandler(&out, "server", slog.LevelDebug)
	logger := slog.New(h)

	logger.Info("Something happened", "id_test", 7, "state", "enabled")

	line := out.String()
	// 2026-08-26 12:00:00,000 | server   |     INFO | Something happened id_test=7 state=enabled
	pattern := regexp.MustCompile(
		`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3} \| server {3}\| {5}INFO \| Something happened id_test=7 state=enabled\n$`)
	assert.Regexp(t, pattern, line)

	// The timestamp prefix is fixed-width, exactly what the log extraction
	// endpoint parses.
	stamp := line[:len(TimeLayout)]
	_, err := time.Parse(TimeLayout, stamp)
	assert.NoError(t, err)
}

func TestLineHandlerWithAttrs(t *testing.T) {
	var out strings.Builder
	h := newLineHandler(&out, "server", slog.LevelInfo)
	logger := slog.New(h).With("orchestrator", "orch-1")

	logger.Warn("Request rejected")

	assert.Contains(t, out.String(), "WARNING | Request rejected orchestrator=orch-1")
}

func TestLineHandlerLevelFilter(t *testing.T) {
	var out strings.Builder
	h := newLineHandler(&out, "server", slog.LevelWarn)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
	assert.True(t, h.Enabled(context.Background(), LevelCritical))
}

func TestAccountingRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounting.log")
	a, err := NewAccounting(path)
	require.NoError(t, err)
	defer a.Close()

	a.Record("orch-1", "GET", "/test/all", 200, "since_id=5", "")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)
	assert.Contains(t, line, "orch-1")
	assert.Contains(t, line, "GET")
	assert.Contains(t, line, "/test/all")
	assert.Contains(t, line, " 200 ")
	assert.Contains(t, line, "since_id=5")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestAccountingDisabled(t *testing.T) {
	a, err := NewAccounting("")
	require.NoError(t, err)
	assert.Empty(t, a.Path())
	// Must not panic without a file.
	a.Record("orch-1", "GET", "/test/all", 200, "", "")
	assert.NoError(t, a.Close())
}

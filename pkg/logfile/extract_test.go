package logfile

import (
	"bytes"
	"compress/zlib"
	"encoding/ascii85"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLogFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "symon.log")
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReverseReader(t *testing.T) {
	t.Run("yields lines newest first", func(t *testing.T) {
		path := writeLogFile(t, "first", "second", "third")
		reader, err := OpenReverse(path)
		require.NoError(t, err)
		defer reader.Close()

		var got []string
		for {
			line, ok, err := reader.Next()
			require.NoError(t, err)
			if !ok {
				break
			}
			got = append(got, line)
		}
		assert.Equal(t, []string{"third", "second", "first"}, got)
	})

	t.Run("empty file yields nothing", func(t *testing.T) {
		path := writeLogFile(t)
		reader, err := OpenReverse(path)
		require.NoError(t, err)
		defer reader.Close()

		_, ok, err := reader.Next()
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("lines longer than the chunk size survive", func(t *testing.T) {
		long := strings.Repeat("x", 20000)
		path := writeLogFile(t, "short", long, "tail")
		reader, err := OpenReverse(path)
		require.NoError(t, err)
		defer reader.Close()

		line, ok, err := reader.Next()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "tail", line)

		line, ok, err = reader.Next()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, long, line)
	})
}

func TestGetLines(t *testing.T) {
	lines := []string{
		"2026-08-01 10:00:00,000 | server   |     INFO | one",
		"2026-08-01 10:00:01,000 | server   |     INFO | two",
		"2026-08-01 10:00:02,000 | server   |     INFO | three",
	}
	path := writeLogFile(t, lines...)

	t.Run("returns everything when since is empty", func(t *testing.T) {
		extracted, err := GetLines(path, "", 1000000, "")
		require.NoError(t, err)
		assert.Equal(t, strings.Join(lines, "\n")+"\n", extracted.Lines)
		require.NotNil(t, extracted.LastDatetime)
		assert.Equal(t, "2026-08-01 10:00:02,000", *extracted.LastDatetime)
		assert.False(t, extracted.MoreData)
	})

	t.Run("since excludes its own line", func(t *testing.T) {
		extracted, err := GetLines(path, "2026-08-01 10:00:01,000", 1000000, "")
		require.NoError(t, err)
		assert.Equal(t, lines[2]+"\n", extracted.Lines)
	})

	t.Run("maxSize cuts the page and sets more_data", func(t *testing.T) {
		extracted, err := GetLines(path, "", len(lines[0])+1, "")
		require.NoError(t, err)
		assert.Equal(t, lines[0]+"\n", extracted.Lines)
		require.NotNil(t, extracted.LastDatetime)
		assert.Equal(t, "2026-08-01 10:00:00,000", *extracted.LastDatetime)
		assert.True(t, extracted.MoreData)
	})

	t.Run("paging with last_datetime never repeats lines", func(t *testing.T) {
		var collected []string
		since := ""
		for {
			extracted, err := GetLines(path, since, len(lines[0])+1, "")
			require.NoError(t, err)
			if extracted.Lines == "" {
				break
			}
			collected = append(collected, strings.TrimSuffix(extracted.Lines, "\n"))
			require.NotNil(t, extracted.LastDatetime)
			since = *extracted.LastDatetime
		}
		assert.Equal(t, lines, collected)
	})

	t.Run("nothing matches", func(t *testing.T) {
		extracted, err := GetLines(path, "2026-08-01 10:00:02,000", 1000000, "")
		require.NoError(t, err)
		assert.Equal(t, "", extracted.Lines)
		assert.Nil(t, extracted.LastDatetime)
		assert.False(t, extracted.MoreData)
	})
}

func TestCompressRoundTrip(t *testing.T) {
	data := "2026-08-01 10:00:00,000 | server   |     INFO | hello\n"
	compressed, err := Compress(data, ZlibBase85)
	require.NoError(t, err)
	require.NotEqual(t, data, compressed)

	decoded := make([]byte, len(compressed))
	n, _, err := ascii85.Decode(decoded, []byte(compressed), true)
	require.NoError(t, err)
	zr, err := zlib.NewReader(bytes.NewReader(decoded[:n]))
	require.NoError(t, err)
	inflated, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, data, string(inflated))
}

func TestCompressUnknownAlgorithm(t *testing.T) {
	_, err := Compress("data", "gzip")
	assert.Error(t, err)
}

func TestStatistics(t *testing.T) {
	now := time.Now()
	stamp := func(d time.Duration) string {
		return now.Add(d).Format("2006-01-02 15:04:05,000")
	}
	path := writeLogFile(t,
		stamp(-2*time.Hour)+" | server   |    ERROR | old error",
		stamp(-10*time.Minute)+" | server   |     INFO | recent info",
		stamp(-5*time.Minute)+" | server   |  WARNING | recent warning",
		stamp(-1*time.Minute)+" | server   |     INFO | another info",
	)

	stats, err := Statistics(path, 30)
	require.NoError(t, err)
	assert.Equal(t, 2, stats["info"])
	assert.Equal(t, 1, stats["warning"])
	assert.Equal(t, 0, stats["error"])
	assert.Equal(t, 0, stats["unknown"])
}

// Package logfile extracts paged log data from the agent's own log files.
//
// Lines start with a "YYYY-MM-DD HH:MM:SS,mmm" timestamp (see pkg/logging),
// so plain string comparison orders them chronologically and a timestamp
// prefix works as a resumption cursor.
package logfile

import (
	"compress/zlib"
	"encoding/ascii85"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// CompressionAlg selects the optional payload compression.
type CompressionAlg string

// ZlibBase85 is zlib deflate wrapped in base85 text armor.
const ZlibBase85 CompressionAlg = "zlib_base85"

// datetimePrefixLen is the length of the line timestamp prefix.
var datetimePrefixLen = len("1970-01-01 00:00:00,000")

// ExtractedLines is one page of log data.
type ExtractedLines struct {
	// Lines holds the selected lines oldest-first, newline-terminated,
	// possibly compressed.
	Lines string `json:"lines"`
	// LastDatetime is the timestamp prefix of the newest included line,
	// to be passed back as the next page's "since". Nil when no line fit.
	LastDatetime *string `json:"last_datetime"`
	// MoreData reports that the page size limit cut the selection short.
	MoreData bool `json:"more_data"`
}

// GetLines returns the lines newer than since, oldest-first, up to maxSize
// bytes, optionally compressed. A since equal to a line's timestamp prefix
// excludes that line, so paging never repeats data.
func GetLines(file, since string, maxSize int, alg CompressionAlg) (ExtractedLines, error) {
	matched, err := findLinesSince(file, since)
	if err != nil {
		return ExtractedLines{}, err
	}
	extracted := selectUntilLimit(matched, maxSize)
	if alg != "" {
		compressed, err := Compress(extracted.Lines, alg)
		if err != nil {
			return ExtractedLines{}, err
		}
		extracted.Lines = compressed
	}
	return extracted, nil
}

// findLinesSince collects the lines strictly newer than since, newest-first.
// Appending "~" (which sorts after every timestamp character) to since turns
// the > comparison strict even for lines that begin with since itself.
func findLinesSince(file, since string) ([]string, error) {
	since += "~"
	reader, err := OpenReverse(file)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var matched []string
	for {
		line, ok, err := reader.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return matched, nil
		}
		if line > since {
			matched = append(matched, line)
		}
	}
}

// selectUntilLimit accumulates lines oldest-first until adding one would
// pass maxSize.
func selectUntilLimit(matched []string, maxSize int) ExtractedLines {
	var b strings.Builder
	var lastDatetime *string
	moreData := false
	for i := len(matched) - 1; i >= 0; i-- {
		line := matched[i]
		if b.Len()+len(line) > maxSize {
			moreData = true
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
		prefix := line
		if len(prefix) > datetimePrefixLen {
			prefix = prefix[:datetimePrefixLen]
		}
		lastDatetime = &prefix
	}
	return ExtractedLines{Lines: b.String(), LastDatetime: lastDatetime, MoreData: moreData}
}

// Compress encodes data with the requested algorithm.
func Compress(data string, alg CompressionAlg) (string, error) {
	switch alg {
	case ZlibBase85:
		var deflated strings.Builder
		zw := zlib.NewWriter(&deflated)
		if _, err := zw.Write([]byte(data)); err != nil {
			return "", fmt.Errorf("failed to compress log data: %w", err)
		}
		if err := zw.Close(); err != nil {
			return "", fmt.Errorf("failed to compress log data: %w", err)
		}
		raw := []byte(deflated.String())
		encoded := make([]byte, ascii85.MaxEncodedLen(len(raw)))
		n := ascii85.Encode(encoded, raw)
		return string(encoded[:n]), nil
	default:
		return "", fmt.Errorf("unknown compression algorithm %q", alg)
	}
}

// Statistics counts the lines of the last deltaMinutes by severity.
// Severity is detected by substring, lines without a known severity land in
// the unknown bucket.
func Statistics(file string, deltaMinutes int) (map[string]int, error) {
	counters := map[string]int{
		"debug":    0,
		"info":     0,
		"warning":  0,
		"error":    0,
		"critical": 0,
		"unknown":  0,
	}
	threshold := time.Now().Add(-time.Duration(deltaMinutes) * time.Minute).
		Format("2006-01-02 15:04:05")

	reader, err := OpenReverse(file)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	for {
		line, ok, err := reader.Next()
		if err != nil {
			return nil, err
		}
		if !ok || line <= threshold {
			return counters, nil
		}
		counters[detectSeverity(line)]++
	}
}

func detectSeverity(line string) string {
	for _, severity := range []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"} {
		if strings.Contains(line, severity) {
			return strings.ToLower(severity)
		}
	}
	slog.Error("Detected a log record with unknown severity", "line", line)
	return "unknown"
}

package logfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

const reverseBufSize = 8192

// ReverseReader yields the lines of a file newest-first. Log files are
// chronological, so reading backwards reaches recent entries without
// scanning gigabytes of history.
type ReverseReader struct {
	f         *os.File
	fileSize  int64
	remaining int64
	offset    int64
	segment   []byte
	pending   [][]byte
	started   bool
	done      bool
}

// OpenReverse opens the file for backward line iteration.
func OpenReverse(path string) (*ReverseReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to seek log file %s: %w", path, err)
	}
	return &ReverseReader{f: f, fileSize: size, remaining: size}, nil
}

// Next returns the next line walking backwards. The second return is false
// once the beginning of the file has been passed.
func (r *ReverseReader) Next() (string, bool, error) {
	for {
		if len(r.pending) > 0 {
			line := r.pending[len(r.pending)-1]
			r.pending = r.pending[:len(r.pending)-1]
			return string(line), true, nil
		}
		if r.remaining <= 0 {
			if r.done {
				return "", false, nil
			}
			r.done = true
			// The leftover head segment is the file's first line.
			if r.segment != nil {
				return string(r.segment), true, nil
			}
			return "", false, nil
		}

		r.offset = min64(r.fileSize, r.offset+reverseBufSize)
		if _, err := r.f.Seek(r.fileSize-r.offset, io.SeekStart); err != nil {
			return "", false, fmt.Errorf("failed to seek log file: %w", err)
		}
		buf := make([]byte, min64(r.remaining, reverseBufSize))
		if _, err := io.ReadFull(r.f, buf); err != nil {
			return "", false, fmt.Errorf("failed to read log file: %w", err)
		}
		// Drop the file's trailing newline, only in the first chunk read.
		if !r.started && len(buf) > 0 && buf[len(buf)-1] == '\n' {
			buf = buf[:len(buf)-1]
		}
		r.started = true
		r.remaining -= reverseBufSize

		lines := bytes.Split(buf, []byte("\n"))
		// The previous chunk's head segment completes this chunk's last line.
		if r.segment != nil {
			lines[len(lines)-1] = append(lines[len(lines)-1], r.segment...)
		}
		r.segment = lines[0]
		r.pending = lines[1:]
	}
}

// Close releases the underlying file.
func (r *ReverseReader) Close() error {
	return r.f.Close()
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

package eventlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Logger appends events to a per-session CSV file. The file gets a header
// row on first write; rows are never rewritten. Every append is flushed
// and synced before returning, so a crash right after an event call never
// loses that event.
type Logger struct {
	path string
}

// NewLogger creates a logger targeting the given file path. The file is
// created lazily on first append.
func NewLogger(path string) *Logger {
	return &Logger{path: path}
}

// Path returns the log's file path.
func (l *Logger) Path() string {
	return l.path
}

// Append writes one event row.
func (l *Logger) Append(e Event) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening event log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat event log: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("writing event log header: %w", err)
		}
	}
	if err := w.Write(e.record()); err != nil {
		return fmt.Errorf("writing event row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing event row: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("syncing event log: %w", err)
	}
	return nil
}

// Remove deletes the log file. Removing an already-removed log is a no-op;
// this is the withdrawal path.
func (l *Logger) Remove() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing event log: %w", err)
	}
	return nil
}

// Package oplog appends timestamped, human-readable operation records to an
// append-only log file.
//
// Logging is strictly best-effort: a file that cannot be opened or written
// produces a warning on the process logger and nothing else. No calling
// operation is ever aborted by a logging failure.
package oplog

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"
)

// timestampLayout renders "[YYYY-MM-DD HH:MM:SS]".
const timestampLayout = "[2006-01-02 15:04:05]"

// Logger appends records to a single log file. The path is explicit
// configuration; Logger holds no other state between calls.
type Logger struct {
	mu   sync.Mutex
	path string
	now  func() time.Time // injectable clock for tests
}

// New creates a Logger appending to the given path. The file is created on
// first write.
func New(path string) *Logger {
	return &Logger{path: path, now: time.Now}
}

// Operation appends a free-form operation description.
func (l *Logger) Operation(desc string) {
	if desc == "" {
		return
	}
	l.append(desc)
}

// PathQuery appends a structured path-query record: source name,
// destination name, and total distance in kilometres.
func (l *Logger) PathQuery(srcName, destName string, distance int64) {
	if srcName == "" || destName == "" {
		return
	}
	l.append(fmt.Sprintf("Shortest path query: %s -> %s (%d km)", srcName, destName, distance))
}

// append writes one timestamped line. Failure is a warning, never an error.
func (l *Logger) append(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Warn("could not open operation log", "path", l.path, "err", err)
		return
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s %s\n", l.now().Format(timestampLayout), line); err != nil {
		slog.Warn("could not write operation log", "path", l.path, "err", err)
	}
}

// Package logx is the file logger. The TUI owns the terminal, so log lines
// only go to the log file, gated by verbosity.
package logx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mitchellh/go-homedir"
)

// Logger writes timestamped lines to w. A nil *Logger discards everything.
type Logger struct {
	mu        sync.Mutex
	w         io.Writer
	closer    io.Closer
	verbosity int
	now       func() time.Time
}

// New logs to w. Verbosity 0 keeps Printf only, 1 adds Infof, 2 adds Debugf.
func New(w io.Writer, verbosity int) *Logger {
	return &Logger{w: w, verbosity: verbosity, now: time.Now}
}

// Open appends to the file at path, creating it and its directory if
// missing, and writes a start banner. An empty path gives a nil Logger.
func Open(path, version string, verbosity int) (*Logger, error) {
	if path == "" {
		return nil, nil
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	_, _ = fmt.Fprintf(f, "=== txtpad %s started at %s ===\n", version, time.Now().Format(time.RFC3339))
	l := New(f, verbosity)
	l.closer = f
	return l, nil
}

func (l *Logger) write(level, format string, args ...any) {
	if l == nil || l.w == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.w, "%s [%s] %s\n", l.now().Format("15:04:05"), level, fmt.Sprintf(format, args...))
}

// Printf always logs.
func (l *Logger) Printf(format string, args ...any) { l.write("log", format, args...) }

func (l *Logger) Infof(format string, args ...any) {
	if l != nil && l.verbosity > 0 {
		l.write("info", format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...any) {
	if l != nil && l.verbosity > 1 {
		l.write("debug", format, args...)
	}
}

func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

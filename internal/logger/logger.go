package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger keeps lines of host activity (config, population milestones, snapshots) in memory and
// appends them to a file on disk. The in-memory copy is what the overlays read back.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
}

// New returns a Logger writing to path and ensures its directory exists. An empty path keeps lines in memory only.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0)}
}

// Log appends a line to the logger and to the log file. Each entry is prefixed with [timestamp] using computer time.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to format and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Population logs growth milestones: every power of two, and the cap once it is reached.
// last is the population previously reported; the new watermark is returned.
func (l *Logger) Population(last, n, max int) int {
	if n <= last {
		return last
	}
	capped := n == max && last < max
	for p := 1; p <= n; p <<= 1 {
		// A power-of-two cap is reported once, by the cap line below.
		if p > last && !(capped && p == max) {
			l.Logf("population %d/%d", p, max)
		}
	}
	if capped {
		l.Logf("population %d/%d (cap reached)", n, max)
	}
	return n
}

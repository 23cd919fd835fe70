package game

import (
	"sync"

	"github.com/sirupsen/logrus"
)

const consoleCapacity = 200

// Console is a bounded ring of activity-log lines rendered at the bottom
// of the dashboard. Oldest lines fall off when the ring is full. The
// mutex is here because the logrus hook below may fire from background
// goroutines (the host monitor logs its own warnings).
type Console struct {
	mu    sync.Mutex
	lines []string
}

func NewConsole() *Console {
	return &Console{}
}

// Append adds one line, evicting the oldest beyond capacity.
func (c *Console) Append(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, line)
	if n := len(c.lines) - consoleCapacity; n > 0 {
		c.lines = append(c.lines[:0], c.lines[n:]...)
	}
}

// Tail returns a copy of the last n lines, newest last.
func (c *Console) Tail(n int) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n > len(c.lines) {
		n = len(c.lines)
	}
	out := make([]string, n)
	copy(out, c.lines[len(c.lines)-n:])
	return out
}

// consoleHook mirrors every log entry into the on-screen console, so the
// activity log and stderr always agree.
type consoleHook struct {
	c *Console
}

func (h *consoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *consoleHook) Fire(e *logrus.Entry) error {
	h.c.Append(e.Time.Format("15:04:05") + "  " + e.Message)
	return nil
}

// AttachConsole registers the console as a logrus sink.
func AttachConsole(c *Console) {
	logrus.AddHook(&consoleHook{c: c})
}

// ABOUTME: Append-only output channel for raw package-manager output and failures
// ABOUTME: Backed by a log file; every line is mirrored to the debug log

package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Channel is a named, append-only text sink. A nil *Channel discards lines.
type Channel struct {
	mu     sync.Mutex
	name   string
	w      io.Writer
	closer io.Closer
}

// NewChannel returns a Channel writing to w.
func NewChannel(name string, w io.Writer) *Channel {
	return &Channel{name: name, w: w}
}

// OpenChannel opens (or creates) the log file at path for appending.
func OpenChannel(name, path string) (*Channel, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening output channel %s: %w", name, err)
	}
	return &Channel{name: name, w: f, closer: f}, nil
}

// Name returns the channel name.
func (c *Channel) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Append writes line followed by a newline. Write failures are reported to
// the debug log only.
func (c *Channel) Append(line string) {
	if c == nil {
		return
	}
	Debug("[%s] %s", c.name, line)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.w == nil {
		return
	}
	if _, err := io.WriteString(c.w, strings.TrimRight(line, "\n")+"\n"); err != nil {
		Debug("output channel %s: %v", c.name, err)
	}
}

// Appendf formats and appends a line.
func (c *Channel) Appendf(format string, args ...any) {
	c.Append(fmt.Sprintf(format, args...))
}

// Close closes the underlying file, if the channel owns one.
func (c *Channel) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closer == nil {
		return nil
	}
	err := c.closer.Close()
	c.closer = nil
	c.w = nil
	return err
}

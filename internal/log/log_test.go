// ABOUTME: Tests for leveled logging and the append-only output channel
// ABOUTME: Validates level filtering, file appends, and nil-channel safety

package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// Level tests mutate package state and cannot run in parallel.

func TestSetLevel(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	saved := GetLevel()
	var buf bytes.Buffer
	SetOutput(&buf)
	defer func() {
		SetOutput(os.Stderr)
		SetLevel(saved)
	}()

	SetLevel(LevelInfo)
	Debug("hidden %s", "detail")
	Info("shown %s", "detail")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line emitted at info level: %q", out)
	}
	if !strings.Contains(out, "shown detail") {
		t.Errorf("info line missing: %q", out)
	}
}

func TestDebugEmittedAtDebugLevel(t *testing.T) {
	saved := GetLevel()
	var buf bytes.Buffer
	SetOutput(&buf)
	defer func() {
		SetOutput(os.Stderr)
		SetLevel(saved)
	}()

	SetLevel(LevelDebug)
	Debug("visible %d", 42)

	if !strings.Contains(buf.String(), "visible 42") {
		t.Errorf("debug line missing: %q", buf.String())
	}
}

func TestChannel_Append(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := NewChannel("pkgfind", &buf)
	c.Append("first")
	c.Append("second\n")
	c.Appendf("third %d", 3)

	if got, want := buf.String(), "first\nsecond\nthird 3\n"; got != want {
		t.Errorf("channel content = %q; want %q", got, want)
	}
	if c.Name() != "pkgfind" {
		t.Errorf("Name() = %q; want %q", c.Name(), "pkgfind")
	}
}

func TestChannel_NilIsNoop(t *testing.T) {
	t.Parallel()

	var c *Channel
	c.Append("dropped")
	if err := c.Close(); err != nil {
		t.Errorf("Close on nil channel: %v", err)
	}
}

func TestOpenChannel_AppendsAcrossOpens(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "pkgfind.log")

	c, err := OpenChannel("pkgfind", path)
	if err != nil {
		t.Fatalf("OpenChannel: %v", err)
	}
	c.Append("one")
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	c.Append("after close is dropped")

	c, err = OpenChannel("pkgfind", path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	c.Append("two")
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "one\ntwo\n"; got != want {
		t.Errorf("log file = %q; want %q", got, want)
	}
}

func TestChannel_ConcurrentAppends(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := NewChannel("pkgfind", &buf)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Appendf("line %d", i)
		}()
	}
	wg.Wait()

	if n := strings.Count(buf.String(), "\n"); n != 20 {
		t.Errorf("got %d lines; want 20", n)
	}
}

// ABOUTME: Plain is a line-oriented Prompter for pipes and dumb terminals
// ABOUTME: Lists items numbered from 1; an empty answer or EOF cancels

package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Plain reads answers one line at a time.
type Plain struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPlain wraps in and out.
func NewPlain(in io.Reader, out io.Writer) *Plain {
	return &Plain{in: bufio.NewReader(in), out: out}
}

// Text prints title and reads one line. An empty line or EOF cancels.
func (p *Plain) Text(ctx context.Context, title, _ string) (string, bool, error) {
	fmt.Fprintf(p.out, "%s: ", title)
	line, err := p.readLine(ctx)
	if err != nil {
		return "", false, err
	}
	if line == "" {
		return "", false, nil
	}
	return line, true, nil
}

// Select prints the numbered items and reads a choice, asking again on
// answers that are not a valid number.
func (p *Plain) Select(ctx context.Context, title string, items []ListItem) (ListItem, bool, error) {
	if len(items) == 0 {
		return ListItem{}, false, nil
	}

	fmt.Fprintln(p.out, title)
	for i, item := range items {
		fmt.Fprintf(p.out, "%3d) %s\n", i+1, strings.TrimSpace(formatListItem(ThemeStyles{}, item, 0, false)))
	}

	for {
		fmt.Fprintf(p.out, "Select [1-%d]: ", len(items))
		line, err := p.readLine(ctx)
		if err != nil {
			return ListItem{}, false, err
		}
		if line == "" {
			return ListItem{}, false, nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(items) {
			fmt.Fprintf(p.out, "%q is not a number between 1 and %d\n", line, len(items))
			continue
		}
		return items[n-1], true, nil
	}
}

// readLine returns the next trimmed line. EOF yields "" so callers treat it
// as a cancel.
func (p *Plain) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

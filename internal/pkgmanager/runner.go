// ABOUTME: Runs package-manager command lines in-process through mvdan/sh
// ABOUTME: Captures stdout on success; non-zero exits become a ProcessError with stderr

package pkgmanager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Runner executes a shell command line, optionally in dir, and returns its
// standard output.
type Runner interface {
	Run(ctx context.Context, command, dir string) (string, error)
}

// ProcessError reports a command that exited non-zero.
type ProcessError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ProcessError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s: exit status %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s: exit status %d: %s", e.Command, e.ExitCode, msg)
}

// ShellRunner implements Runner with the mvdan/sh interpreter.
// External programs are resolved from PATH as a POSIX shell would.
type ShellRunner struct {
	// Env is the environment for the command. Nil inherits os.Environ().
	Env []string
}

// Run parses and executes command. A dir of "" uses the current directory.
func (r *ShellRunner) Run(ctx context.Context, command, dir string) (string, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return "", fmt.Errorf("parsing command %q: %w", command, err)
	}

	env := r.Env
	if env == nil {
		env = os.Environ()
	}

	var stdout, stderr bytes.Buffer
	opts := []interp.RunnerOption{
		interp.StdIO(nil, &stdout, &stderr),
		interp.Env(expand.ListEnviron(env...)),
	}
	if dir != "" {
		opts = append(opts, interp.Dir(dir))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return "", fmt.Errorf("creating interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			return "", &ProcessError{
				Command:  command,
				ExitCode: int(status),
				Stderr:   stderr.String(),
			}
		}
		return "", fmt.Errorf("running %q: %w", command, err)
	}
	return stdout.String(), nil
}

// quoteArgs shell-quotes each argument and joins them with spaces.
func quoteArgs(args []string) (string, error) {
	quoted := make([]string, len(args))
	for i, a := range args {
		q, err := syntax.Quote(a, syntax.LangPOSIX)
		if err != nil {
			return "", fmt.Errorf("quoting %q: %w", a, err)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " "), nil
}

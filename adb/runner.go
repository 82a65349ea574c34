package adb

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner spawns the device-bridge binary with an argument vector.
type Runner interface {
	// Output runs the binary and returns its standard output.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// ToFile runs the binary and streams its standard output into dest.
	ToFile(ctx context.Context, dest string, name string, args ...string) error
}

// CommandError describes a failed bridge invocation.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// CommandRunner runs the bridge as a child process without a shell.
type CommandRunner struct{}

// Output runs name with args and returns its standard output.
func (r *CommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	stdout := &bytes.Buffer{}
	if err := r.run(ctx, stdout, name, args...); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}

// ToFile runs name with args, writing its standard output to dest.
func (r *CommandRunner) ToFile(ctx context.Context, dest string, name string, args ...string) error {
	file, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", dest, err)
	}
	runErr := r.run(ctx, file, name, args...)
	if err = file.Close(); runErr == nil && err != nil {
		return fmt.Errorf("failed to close %v: %w", dest, err)
	}
	return runErr
}

func (r *CommandRunner) run(ctx context.Context, stdout io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	stderr := &bytes.Buffer{}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		ret := &CommandError{
			Args:     append([]string{name}, args...),
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			ret.ExitCode = exitErr.ExitCode()
		}
		return ret
	}
	return nil
}

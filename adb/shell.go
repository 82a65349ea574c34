package adb

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/viant/gosh"
	"github.com/viant/gosh/runner/local"
)

// ShellRunner runs the bridge inside a persistent gosh shell session.
// Every argument is single-quoted before it reaches the shell.
type ShellRunner struct {
	service *gosh.Service
	mux     sync.Mutex
}

// Output runs name with args and returns the session output.
func (r *ShellRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	output, err := r.run(ctx, ShellCommand(name, args...), name, args...)
	if err != nil {
		return nil, err
	}
	return []byte(output), nil
}

// ToFile runs name with args, redirecting standard output to dest.
func (r *ShellRunner) ToFile(ctx context.Context, dest string, name string, args ...string) error {
	command := ShellCommand(name, args...) + " > " + ShellQuote(dest)
	_, err := r.run(ctx, command, name, args...)
	return err
}

func (r *ShellRunner) run(ctx context.Context, command string, name string, args ...string) (string, error) {
	r.mux.Lock()
	defer r.mux.Unlock()
	output, code, err := r.service.Run(ctx, command)
	if err != nil {
		return "", &CommandError{Args: append([]string{name}, args...), ExitCode: -1, Err: err}
	}
	if code != 0 {
		return "", &CommandError{
			Args:     append([]string{name}, args...),
			ExitCode: code,
			Stderr:   strings.TrimSpace(output),
			Err:      fmt.Errorf("exit status %d", code),
		}
	}
	return output, nil
}

// ShellCommand joins name and args into a shell command line with every word quoted.
func ShellCommand(name string, args ...string) string {
	words := make([]string, 0, len(args)+1)
	words = append(words, ShellQuote(name))
	for _, arg := range args {
		words = append(words, ShellQuote(arg))
	}
	return strings.Join(words, " ")
}

// ShellQuote wraps s in single quotes so the shell treats it as one literal word.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// NewShellRunner starts a local gosh session.
func NewShellRunner(ctx context.Context) (*ShellRunner, error) {
	service, err := gosh.New(ctx, local.New())
	if err != nil {
		return nil, fmt.Errorf("failed to start shell session: %w", err)
	}
	return &ShellRunner{service: service}, nil
}

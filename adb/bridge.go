package adb

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// DefaultPath is the bridge binary looked up on PATH when no path is configured.
const DefaultPath = "adb"

// ErrEmptyCapture reports a screen capture that produced no data.
var ErrEmptyCapture = errors.New("empty capture")

// Bridge builds adb argument vectors and executes them through a Runner.
type Bridge struct {
	path   string
	runner Runner
	logger *log.Logger
}

// Option configures a Bridge.
type Option func(b *Bridge)

// WithRunner sets the process runner.
func WithRunner(runner Runner) Option {
	return func(b *Bridge) {
		b.runner = runner
	}
}

// WithLogger sets the logger used to report executed commands.
func WithLogger(logger *log.Logger) Option {
	return func(b *Bridge) {
		b.logger = logger
	}
}

// Path returns the bridge binary path.
func (b *Bridge) Path() string {
	return b.path
}

// Version runs `adb version`; it fails when the binary is not reachable.
func (b *Bridge) Version(ctx context.Context) (string, error) {
	output, err := b.output(ctx, b.args("", "version")...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// Devices lists every device adb knows about, whatever its state.
func (b *Bridge) Devices(ctx context.Context) ([]*Device, error) {
	output, err := b.output(ctx, b.args("", "devices")...)
	if err != nil {
		return nil, err
	}
	return ParseDevices(string(output)), nil
}

// Capture writes a raw PNG screen capture of the device to dest.
func (b *Bridge) Capture(ctx context.Context, deviceID string, dest string) error {
	args := b.args(deviceID, "exec-out", "screencap", "-p")
	b.logf("Executing: %v > %v", ShellCommand(b.path, args...), dest)
	return b.runner.ToFile(ctx, dest, b.path, args...)
}

// PressKey injects a key event with the given code.
func (b *Bridge) PressKey(ctx context.Context, deviceID string, code int) error {
	_, err := b.output(ctx, b.args(deviceID, "shell", "input", "keyevent", strconv.Itoa(code))...)
	return err
}

func (b *Bridge) output(ctx context.Context, args ...string) ([]byte, error) {
	b.logf("Executing: %v", ShellCommand(b.path, args...))
	return b.runner.Output(ctx, b.path, args...)
}

// args prefixes args with the device selector when deviceID is set.
func (b *Bridge) args(deviceID string, args ...string) []string {
	if deviceID == "" {
		return args
	}
	return append([]string{"-s", deviceID}, args...)
}

func (b *Bridge) logf(format string, args ...interface{}) {
	b.logger.Printf(format, args...)
}

// New creates a bridge for the binary at path, or DefaultPath when empty.
func New(path string, options ...Option) *Bridge {
	if path == "" {
		path = DefaultPath
	}
	ret := &Bridge{
		path:   path,
		runner: &CommandRunner{},
		logger: log.New(os.Stderr, "adb: ", log.LstdFlags),
	}
	for _, option := range options {
		option(ret)
	}
	if ret.logger == nil {
		ret.logger = log.New(io.Discard, "", 0)
	}
	return ret
}

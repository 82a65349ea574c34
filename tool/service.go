package tool

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/isseikz/mcp-adb/adb"
	"github.com/isseikz/mcp-adb/registry"
	"github.com/isseikz/mcp-adb/screenshot"
)

const (
	// ScreenshotName is the tool name of the capture operation.
	ScreenshotName = "screenshot"
	// PressKeyName is the tool name of the key-press operation.
	PressKeyName = "pressKey"
)

// Store keeps captures between the bridge writing them and clients reading them back.
type Store interface {
	NewName() string
	Path(name string) (string, error)
	Size(ctx context.Context, name string) (int64, error)
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
	Delete(ctx context.Context, name string) error
	Prune(ctx context.Context, keep int) ([]string, error)
}

// Service holds the dependencies shared by the tools.
type Service struct {
	bridge       *adb.Bridge
	store        Store
	maxDimension int
	keep         int
	logger       *log.Logger
}

// Option configures a Service.
type Option func(s *Service)

// WithMaxDimension sets the longest side of returned captures; 0 disables resizing.
func WithMaxDimension(maxDimension int) Option {
	return func(s *Service) {
		s.maxDimension = maxDimension
	}
}

// WithKeep prunes all but the newest keep captures after each capture.
func WithKeep(keep int) Option {
	return func(s *Service) {
		s.keep = keep
	}
}

// WithLogger sets the process logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// Register adds the screenshot and pressKey tools to r.
func (s *Service) Register(r *registry.Registry) error {
	if err := registry.RegisterTool[ScreenshotInput](r, ScreenshotName,
		"Capture the screen of the connected Android device and return it as a PNG image",
		s.Screenshot); err != nil {
		return err
	}
	return registry.RegisterTool[PressKeyInput](r, PressKeyName,
		"Press a key on the connected Android device",
		s.PressKey, registry.WithEnum("keycode", adb.KeyNames()...))
}

// New creates a tool service.
func New(bridge *adb.Bridge, store Store, options ...Option) *Service {
	ret := &Service{
		bridge:       bridge,
		store:        store,
		maxDimension: screenshot.DefaultMaxDimension,
		logger:       log.New(os.Stderr, "tool: ", log.LstdFlags),
	}
	for _, option := range options {
		option(ret)
	}
	if ret.logger == nil {
		ret.logger = log.New(io.Discard, "", 0)
	}
	return ret
}

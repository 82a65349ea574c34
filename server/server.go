package server

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/isseikz/mcp-adb/internal/collection"
	"github.com/isseikz/mcp-adb/registry"
	"github.com/isseikz/mcp-adb/resource"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

// Server represents MCP protocol handler
type Server struct {
	info      schema.Implementation
	tools     *registry.Registry
	resources *resource.Registry

	instructions    *string
	protocolVersion string
	loggerName      string
	timeout         time.Duration
	logger          *log.Logger

	stdioServer
	httpServer
}

// NewHandler creates a handler for a new session; in-flight requests are tracked per session.
func (s *Server) NewHandler(ctx context.Context, transport transport.Transport) transport.Handler {
	return s.newHandler(ctx, transport)
}

func (s *Server) newHandler(_ context.Context, notifier transport.Notifier) *Handler {
	ret := &Handler{
		Server:         s,
		Notifier:       notifier,
		activeContexts: collection.NewSyncMap[string, *activeContext](),
		level:          &loggingLevel{},
	}
	ret.Logger = newLogger(s.loggerName, ret.level, notifier)
	return ret
}

// New creates a new Server instance
func New(options ...Option) (*Server, error) {
	s := &Server{
		info: schema.Implementation{
			Name:    "mcp-adb",
			Version: "0.1",
		},
		loggerName:      "adb",
		protocolVersion: schema.LatestProtocolVersion,
		logger:          log.New(os.Stderr, "mcp: ", log.LstdFlags),
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	if s.tools == nil {
		s.tools = registry.New()
	}
	if s.resources == nil {
		s.resources = resource.New()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}
	return s, nil
}

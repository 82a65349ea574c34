package server

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/isseikz/mcp-adb/registry"
	"github.com/isseikz/mcp-adb/resource"
	"github.com/viant/mcp-protocol/schema"
)

// Option is a function that configures the server.
type Option func(s *Server) error

// WithRegistry sets the tool registry.
func WithRegistry(tools *registry.Registry) Option {
	return func(s *Server) error {
		s.tools = tools
		return nil
	}
}

// WithResources sets the resource registry.
func WithResources(resources *resource.Registry) Option {
	return func(s *Server) error {
		s.resources = resources
		return nil
	}
}

// WithImplementation sets the server implementation.
func WithImplementation(implementation schema.Implementation) Option {
	return func(s *Server) error {
		s.info = implementation
		return nil
	}
}

// WithInstructions sets the instructions returned on initialize.
func WithInstructions(instructions string) Option {
	return func(s *Server) error {
		s.instructions = &instructions
		return nil
	}
}

// WithProtocolVersion sets the protocol version.
func WithProtocolVersion(version string) Option {
	return func(s *Server) error {
		s.protocolVersion = version
		return nil
	}
}

// WithLoggerName sets the logger name.
func WithLoggerName(name string) Option {
	return func(s *Server) error {
		s.loggerName = name
		return nil
	}
}

// WithTimeout bounds every request; 0 means no limit.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Server) error {
		if timeout < 0 {
			return fmt.Errorf("invalid timeout: %v", timeout)
		}
		s.timeout = timeout
		return nil
	}
}

// WithProcessLogger sets the logger for process diagnostics written to stderr.
func WithProcessLogger(logger *log.Logger) Option {
	return func(s *Server) error {
		s.logger = logger
		return nil
	}
}

// WithEndpointAddress sets the HTTP listen address.
func WithEndpointAddress(addr string) Option {
	return func(s *Server) error {
		s.addr = addr
		return nil
	}
}

// WithAllowedOrigins sets the browser origins accepted by the HTTP transports.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) error {
		s.allowedOrigins = origins
		return nil
	}
}

// WithStdio sets the streams used by the stdio transport; nil keeps stdin or stdout.
func WithStdio(reader io.Reader, writer io.Writer) Option {
	return func(s *Server) error {
		s.stdin = reader
		s.stdout = writer
		return nil
	}
}

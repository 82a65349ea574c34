package mcpadb

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/isseikz/mcp-adb/adb"
	"github.com/isseikz/mcp-adb/registry"
	"github.com/isseikz/mcp-adb/resource"
	"github.com/isseikz/mcp-adb/screenshot"
	"github.com/isseikz/mcp-adb/server"
	"github.com/isseikz/mcp-adb/tool"
	"github.com/viant/mcp-protocol/schema"
)

const instructions = "Use screenshot to see the Android screen and pressKey to navigate it. " +
	"Read adb://devices to find device serials for the deviceId argument."

// NewServer checks that adb is reachable, prepares the scratch directory and
// creates an MCP server exposing the adb tools and resources.
func NewServer(ctx context.Context, options *ServerOptions) (*server.Server, error) {
	if options == nil {
		options = &ServerOptions{}
	}
	options.Init()
	if err := options.Validate(); err != nil {
		return nil, err
	}
	logger := log.New(os.Stderr, "", log.LstdFlags)

	bridge, err := newBridge(ctx, options, logger)
	if err != nil {
		return nil, err
	}
	version, err := bridge.Version(ctx)
	if err != nil {
		return nil, fmt.Errorf("adb is not available at %v: %w", bridge.Path(), err)
	}
	logger.Printf("using %v (%v)", bridge.Path(), firstLine(version))

	store, err := screenshot.New(options.Scratch)
	if err != nil {
		return nil, err
	}
	if err = store.Ensure(ctx); err != nil {
		return nil, err
	}
	logger.Printf("screenshots are stored in %v", store.Dir())

	tools := registry.New()
	service := tool.New(bridge, store,
		tool.WithMaxDimension(options.MaxDimension),
		tool.WithKeep(options.Keep),
		tool.WithLogger(logger),
	)
	if err = service.Register(tools); err != nil {
		return nil, err
	}
	resources := resource.New()
	resources.AddResource(resource.Devices(bridge))
	resources.AddTemplate(resource.Screenshots(store))

	serverOptions := []server.Option{
		server.WithRegistry(tools),
		server.WithResources(resources),
		server.WithImplementation(schema.Implementation{Name: options.Name, Version: options.Version}),
		server.WithInstructions(instructions),
		server.WithTimeout(options.Timeout),
		server.WithProcessLogger(logger),
	}
	if options.ProtocolVersion != "" {
		serverOptions = append(serverOptions, server.WithProtocolVersion(options.ProtocolVersion))
	}
	if options.LoggerName != "" {
		serverOptions = append(serverOptions, server.WithLoggerName(options.LoggerName))
	}
	if options.Port > 0 {
		serverOptions = append(serverOptions, server.WithEndpointAddress(fmt.Sprintf("127.0.0.1:%v", options.Port)))
	}
	if len(options.AllowedOrigins) > 0 {
		serverOptions = append(serverOptions, server.WithAllowedOrigins(options.AllowedOrigins...))
	}
	srv, err := server.New(serverOptions...)
	if err != nil {
		return nil, err
	}
	srv.UseStreamableHTTP(options.Transport == TransportStreamable)
	return srv, nil
}

func newBridge(ctx context.Context, options *ServerOptions, logger *log.Logger) (*adb.Bridge, error) {
	bridgeOptions := []adb.Option{adb.WithLogger(logger)}
	if options.Runner == RunnerShell {
		runner, err := adb.NewShellRunner(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to start shell runner: %w", err)
		}
		bridgeOptions = append(bridgeOptions, adb.WithRunner(runner))
	}
	return adb.New(options.Adb, bridgeOptions...), nil
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return line
}

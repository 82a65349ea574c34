package mcpadb

import (
	"context"
	"fmt"
	"time"

	"github.com/isseikz/mcp-adb/adb"
	"github.com/isseikz/mcp-adb/screenshot"
	"github.com/jessevdk/go-flags"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

const (
	TransportStdio      = "stdio"
	TransportSSE        = "sse"
	TransportStreamable = "streamable"

	RunnerExec  = "exec"
	RunnerShell = "shell"
)

// ServerOptions defines options for configuring the adb MCP server.
type ServerOptions struct {
	Config          string        `yaml:"-" json:"-" short:"c" long:"config" description:"YAML config file"`
	Name            string        `yaml:"name" json:"name" long:"name" description:"server name reported on initialize"`
	Version         string        `yaml:"version" json:"version" long:"version" description:"server version reported on initialize"`
	ProtocolVersion string        `yaml:"protocol" json:"protocol" short:"p" long:"protocol" description:"mcp protocol"`
	LoggerName      string        `yaml:"loggerName" json:"loggerName" long:"logger-name" description:"logger name used in notifications/message"`
	Adb             string        `yaml:"adb" json:"adb" short:"a" long:"adb" env:"ADB_PATH" description:"adb binary path"`
	Runner          string        `yaml:"runner" json:"runner" long:"runner" description:"process runner" choice:"exec" choice:"shell"`
	Scratch         string        `yaml:"scratch" json:"scratch" short:"s" long:"scratch" env:"MCP_ADB_SCRATCH" description:"screenshot scratch directory"`
	MaxDimension    int           `yaml:"maxDimension" json:"maxDimension" long:"max-dimension" description:"longest side of returned screenshots in pixels (default 640)"`
	NoResize        bool          `yaml:"noResize" json:"noResize" long:"no-resize" description:"return screenshots at device resolution"`
	Keep            int           `yaml:"keep" json:"keep" short:"k" long:"keep" description:"number of screenshots kept in the scratch directory, 0 keeps all"`
	Timeout         time.Duration `yaml:"timeout" json:"timeout" short:"t" long:"timeout" description:"per request timeout, e.g. 30s; 0 disables"`
	Transport       string        `yaml:"transport" json:"transport" short:"T" long:"transport-type" description:"mcp transport type" choice:"stdio" choice:"sse" choice:"streamable"`
	Port            int           `yaml:"port" json:"port" long:"port" description:"HTTP port for sse and streamable transports"`
	AllowedOrigins  []string      `yaml:"allowedOrigins" json:"allowedOrigins" long:"allow-origin" description:"browser origin accepted by HTTP transports (repeatable)"`
}

// Init applies defaults.
func (o *ServerOptions) Init() {
	if o.Name == "" {
		o.Name = "mcp-adb"
	}
	if o.Version == "" {
		o.Version = "0.1.0"
	}
	if o.Adb == "" {
		o.Adb = adb.DefaultPath
	}
	if o.Runner == "" {
		o.Runner = RunnerExec
	}
	if o.Scratch == "" {
		o.Scratch = screenshot.DefaultDir()
	}
	if o.MaxDimension == 0 {
		o.MaxDimension = screenshot.DefaultMaxDimension
	}
	if o.NoResize {
		o.MaxDimension = 0
	}
	if o.Transport == "" {
		o.Transport = TransportStdio
	}
}

// Validate checks option consistency.
func (o *ServerOptions) Validate() error {
	switch o.Transport {
	case TransportStdio, TransportSSE, TransportStreamable:
	default:
		return fmt.Errorf("unsupported transport: %v", o.Transport)
	}
	switch o.Runner {
	case RunnerExec, RunnerShell:
	default:
		return fmt.Errorf("unsupported runner: %v", o.Runner)
	}
	if o.MaxDimension < 0 {
		return fmt.Errorf("invalid max dimension: %v", o.MaxDimension)
	}
	if o.Keep < 0 {
		return fmt.Errorf("invalid keep: %v", o.Keep)
	}
	if o.Timeout < 0 {
		return fmt.Errorf("invalid timeout: %v", o.Timeout)
	}
	if o.Port < 0 || o.Port > 65535 {
		return fmt.Errorf("invalid port: %v", o.Port)
	}
	return nil
}

// LoadOptions parses args; values from the --config file are overridden by flags and environment.
func LoadOptions(ctx context.Context, args []string) (*ServerOptions, error) {
	options := &ServerOptions{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return nil, err
	}
	if options.Config != "" {
		data, err := afs.New().DownloadWithURL(ctx, options.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %v: %w", options.Config, err)
		}
		options = &ServerOptions{}
		if err = yaml.Unmarshal(data, options); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		if _, err = flags.ParseArgs(options, args); err != nil {
			return nil, err
		}
	}
	options.Init()
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return options, nil
}

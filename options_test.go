package mcpadb

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	config := filepath.Join(t.TempDir(), "mcp-adb.yaml")
	require.NoError(t, os.WriteFile(config, []byte(`
adb: /opt/platform-tools/adb
scratch: /var/tmp/shots
keep: 20
timeout: 45s
transport: streamable
port: 7000
allowedOrigins:
  - http://tools.example
`), 0o644))

	var testCases = []struct {
		description string
		args        []string
		env         map[string]string
		expect      func(t *testing.T, options *ServerOptions)
		expectError bool
	}{
		{
			description: "defaults",
			expect: func(t *testing.T, options *ServerOptions) {
				assert.Equal(t, "adb", options.Adb)
				assert.Equal(t, 640, options.MaxDimension)
				assert.Equal(t, TransportStdio, options.Transport)
				assert.Equal(t, RunnerExec, options.Runner)
				assert.Equal(t, 0, options.Keep)
				assert.Equal(t, time.Duration(0), options.Timeout)
				assert.NotEmpty(t, options.Scratch)
			},
		},
		{
			description: "flags",
			args:        []string{"--adb", "/usr/local/bin/adb", "-s", "/tmp/scratch", "--max-dimension", "1024", "-k", "5", "-t", "10s", "-T", "sse", "--runner", "shell"},
			expect: func(t *testing.T, options *ServerOptions) {
				assert.Equal(t, "/usr/local/bin/adb", options.Adb)
				assert.Equal(t, "/tmp/scratch", options.Scratch)
				assert.Equal(t, 1024, options.MaxDimension)
				assert.Equal(t, 5, options.Keep)
				assert.Equal(t, 10*time.Second, options.Timeout)
				assert.Equal(t, TransportSSE, options.Transport)
				assert.Equal(t, RunnerShell, options.Runner)
			},
		},
		{
			description: "environment",
			env:         map[string]string{"ADB_PATH": "/env/adb", "MCP_ADB_SCRATCH": "/env/scratch"},
			expect: func(t *testing.T, options *ServerOptions) {
				assert.Equal(t, "/env/adb", options.Adb)
				assert.Equal(t, "/env/scratch", options.Scratch)
			},
		},
		{
			description: "no resize",
			args:        []string{"--no-resize"},
			expect: func(t *testing.T, options *ServerOptions) {
				assert.Equal(t, 0, options.MaxDimension)
			},
		},
		{
			description: "config file",
			args:        []string{"--config", config},
			expect: func(t *testing.T, options *ServerOptions) {
				assert.Equal(t, "/opt/platform-tools/adb", options.Adb)
				assert.Equal(t, "/var/tmp/shots", options.Scratch)
				assert.Equal(t, 20, options.Keep)
				assert.Equal(t, 45*time.Second, options.Timeout)
				assert.Equal(t, TransportStreamable, options.Transport)
				assert.Equal(t, 7000, options.Port)
				assert.Equal(t, []string{"http://tools.example"}, options.AllowedOrigins)
			},
		},
		{
			description: "flags override config file",
			args:        []string{"-c", config, "--keep", "3", "--transport-type", "stdio"},
			expect: func(t *testing.T, options *ServerOptions) {
				assert.Equal(t, "/opt/platform-tools/adb", options.Adb)
				assert.Equal(t, 3, options.Keep)
				assert.Equal(t, TransportStdio, options.Transport)
			},
		},
		{
			description: "invalid transport",
			args:        []string{"-T", "websocket"},
			expectError: true,
		},
		{
			description: "negative keep",
			args:        []string{"--keep=-1"},
			expectError: true,
		},
		{
			description: "missing config",
			args:        []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")},
			expectError: true,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			t.Setenv("ADB_PATH", "")
			t.Setenv("MCP_ADB_SCRATCH", "")
			for k, v := range testCase.env {
				t.Setenv(k, v)
			}
			options, err := LoadOptions(context.Background(), testCase.args)
			if testCase.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			testCase.expect(t, options)
		})
	}
}

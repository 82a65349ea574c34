package mcpadb

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/isseikz/mcp-adb/internal/adbtest"
	"github.com/isseikz/mcp-adb/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/mcp-protocol/schema"
)

func TestNewServer(t *testing.T) {
	stub := adbtest.NewStub(t)
	scratch := filepath.Join(t.TempDir(), "shots")
	ctx := context.Background()
	srv, err := NewServer(ctx, &ServerOptions{Adb: stub.Path, Scratch: scratch, Name: "adb-test"})
	require.NoError(t, err)

	info, err := os.Stat(scratch)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, []string{"version"}, stub.Calls())

	client := srv.AsClient(ctx, nil)
	initialized, err := client.Initialize(ctx)
	require.NoError(t, err)
	assert.Equal(t, "adb-test", initialized.ServerInfo.Name)
	require.NotNil(t, initialized.Instructions)

	stub.SetScreen(adbtest.PNG(t, 10, 10))
	result, err := client.CallTool(ctx, &schema.CallToolRequestParams{Name: "screenshot"})
	require.NoError(t, err)
	require.Len(t, result.Content, 2)
	image, err := registry.AsImage(result.Content[0])
	require.NoError(t, err)
	assert.Equal(t, "image/png", image.MimeType)
	link, err := registry.AsText(result.Content[1])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link.Text, "adb://screenshots/screenshot-"), link.Text)
}

func TestNewServer_Startup(t *testing.T) {
	var testCases = []struct {
		description string
		options     func(t *testing.T) *ServerOptions
	}{
		{
			description: "adb missing",
			options: func(t *testing.T) *ServerOptions {
				return &ServerOptions{Adb: filepath.Join(t.TempDir(), "adb"), Scratch: t.TempDir()}
			},
		},
		{
			description: "scratch not creatable",
			options: func(t *testing.T) *ServerOptions {
				blocker := filepath.Join(t.TempDir(), "file")
				require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
				return &ServerOptions{Adb: adbtest.NewStub(t).Path, Scratch: filepath.Join(blocker, "shots")}
			},
		},
		{
			description: "invalid runner",
			options: func(t *testing.T) *ServerOptions {
				return &ServerOptions{Adb: adbtest.NewStub(t).Path, Scratch: t.TempDir(), Runner: "ssh"}
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			_, err := NewServer(context.Background(), testCase.options(t))
			assert.Error(t, err)
		})
	}
}

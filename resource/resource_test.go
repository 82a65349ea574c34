package resource

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/isseikz/mcp-adb/adb"
	"github.com/isseikz/mcp-adb/internal/adbtest"
	"github.com/isseikz/mcp-adb/screenshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonrpc"
)

func newTestRegistry(t *testing.T) (*Registry, *adbtest.Stub, *screenshot.Store) {
	stub := adbtest.NewStub(t)
	store, err := screenshot.New(t.TempDir())
	require.NoError(t, err)
	registry := New()
	registry.AddResource(Devices(adb.New(stub.Path, adb.WithLogger(nil))))
	registry.AddTemplate(Screenshots(store))
	return registry, stub, store
}

func TestRegistry_Devices(t *testing.T) {
	var testCases = []struct {
		description string
		output      string
		expect      []*adb.Device
	}{
		{
			description: "online only",
			output: "* daemon not running; starting now at tcp:5037\n* daemon started successfully\n" +
				"List of devices attached\nemulator-5554\tdevice\nR58M12345\tunauthorized\n192.168.1.20:5555\toffline\n0123ABCD\tdevice\n\n",
			expect: []*adb.Device{{ID: "emulator-5554", Status: "device"}, {ID: "0123ABCD", Status: "device"}},
		},
		{
			description: "no devices",
			output:      "List of devices attached\n\n",
			expect:      []*adb.Device{},
		},
	}
	for _, testCase := range testCases {
		registry, stub, _ := newTestRegistry(t)
		stub.SetDevices(testCase.output)
		result, rpcErr := registry.Read(context.Background(), DevicesURI)
		require.Nil(t, rpcErr, testCase.description)
		require.Len(t, result.Contents, 1, testCase.description)
		content := result.Contents[0]
		assert.Equal(t, DevicesURI, content.Uri, testCase.description)
		require.NotNil(t, content.MimeType, testCase.description)
		assert.Equal(t, "application/json", *content.MimeType, testCase.description)
		var actual []*adb.Device
		require.NoError(t, json.Unmarshal([]byte(content.Text), &actual), testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
		assert.NotEqual(t, "null", content.Text, testCase.description)
	}
}

func TestRegistry_Screenshots(t *testing.T) {
	ctx := context.Background()
	registry, _, store := newTestRegistry(t)
	data := adbtest.PNG(t, 8, 8)
	name := store.NewName()
	require.NoError(t, store.Write(ctx, name, data))

	resources, rpcErr := registry.List(ctx)
	require.Nil(t, rpcErr)
	require.Len(t, resources, 2)
	assert.Equal(t, DevicesURI, resources[0].Uri)
	assert.Equal(t, screenshot.URI(name), resources[1].Uri)
	assert.Equal(t, name, resources[1].Name)

	templates := registry.Templates()
	require.Len(t, templates, 1)
	assert.Equal(t, "adb://screenshots/{filename}", templates[0].UriTemplate)

	result, rpcErr := registry.Read(ctx, screenshot.URI(name))
	require.Nil(t, rpcErr)
	require.Len(t, result.Contents, 1)
	require.NotNil(t, result.Contents[0].MimeType)
	assert.Equal(t, "image/png", *result.Contents[0].MimeType)
	actual, err := base64.StdEncoding.DecodeString(result.Contents[0].Blob)
	require.NoError(t, err)
	assert.Equal(t, data, actual)
}

func TestRegistry_NotFound(t *testing.T) {
	var testCases = []string{
		"adb://screenshots/does-not-exist.png",
		"adb://screenshots/screenshot-missing.png",
		"adb://screenshots/../../etc/passwd",
		"adb://screenshots/",
		"adb://unknown",
		"file:///etc/passwd",
	}
	for _, uri := range testCases {
		registry, _, _ := newTestRegistry(t)
		result, rpcErr := registry.Read(context.Background(), uri)
		assert.Nil(t, result, uri)
		require.NotNil(t, rpcErr, uri)
		assert.Equal(t, NotFound, rpcErr.Code, uri)
	}
}

func TestRegistry_ReadFailure(t *testing.T) {
	registry := New()
	registry.AddResource(Devices(adb.New("/nonexistent/adb", adb.WithLogger(nil))))
	_, rpcErr := registry.Read(context.Background(), DevicesURI)
	require.NotNil(t, rpcErr)
	assert.Equal(t, jsonrpc.InternalError, rpcErr.Code)
}

func TestRegistry_ScreenshotsIgnoreForeignFiles(t *testing.T) {
	ctx := context.Background()
	registry, _, store := newTestRegistry(t)
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "holiday.png"), adbtest.PNG(t, 2, 2), 0o644))

	resources, rpcErr := registry.List(ctx)
	require.Nil(t, rpcErr)
	require.Len(t, resources, 1)
	assert.Equal(t, DevicesURI, resources[0].Uri)

	_, rpcErr = registry.Read(ctx, "adb://screenshots/holiday.png")
	require.NotNil(t, rpcErr)
	assert.Equal(t, NotFound, rpcErr.Code)
}

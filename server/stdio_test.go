package server

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/isseikz/mcp-adb/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

type stdioResponse struct {
	Id     interface{}     `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *jsonrpc.Error  `json:"error"`
}

func readResponses(t *testing.T, scanner *bufio.Scanner, count int) map[interface{}]*stdioResponse {
	received := make(chan map[interface{}]*stdioResponse, 1)
	go func() {
		ret := map[interface{}]*stdioResponse{}
		for len(ret) < count && scanner.Scan() {
			response := &stdioResponse{}
			if err := json.Unmarshal(scanner.Bytes(), response); err == nil && response.Id != nil {
				ret[response.Id] = response
			}
		}
		received <- ret
	}()
	select {
	case ret := <-received:
		return ret
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for responses")
	}
	return nil
}

func TestStdio_CancelInFlight(t *testing.T) {
	started := make(chan string, 1)
	input, inputWriter := io.Pipe()
	outputReader, output := io.Pipe()
	srv, err := New(WithRegistry(blockingRegistry(t, started)), WithProcessLogger(nil), WithStdio(input, output))
	require.NoError(t, err)
	served := make(chan error, 1)
	go func() {
		served <- srv.Stdio(context.Background()).ListenAndServe()
	}()
	scanner := bufio.NewScanner(outputReader)

	_, err = io.WriteString(inputWriter, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"wait"}}`+"\n")
	require.NoError(t, err)
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("tool call did not start")
	}
	_, err = io.WriteString(inputWriter, `{"jsonrpc":"2.0","id":2,"method":"ping"}`+"\n")
	require.NoError(t, err)
	pong := readResponses(t, scanner, 1)
	require.Contains(t, pong, float64(2), "ping is answered while the call is in flight")

	_, err = io.WriteString(inputWriter, `{"jsonrpc":"2.0","method":"notifications/cancelled","params":{"requestId":1}}`+"\n")
	require.NoError(t, err)
	cancelled := readResponses(t, scanner, 1)
	require.Contains(t, cancelled, float64(1))
	require.Nil(t, cancelled[float64(1)].Error)
	result := &schema.CallToolResult{}
	require.NoError(t, json.Unmarshal(cancelled[float64(1)].Result, result))
	assert.True(t, registry.IsError(result))
	assert.Equal(t, context.Canceled.Error(), registry.FirstText(result))

	require.NoError(t, inputWriter.Close())
	select {
	case err = <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("stdio server did not stop at end of input")
	}
}

func TestStdio_WaitsForPendingResponses(t *testing.T) {
	input, inputWriter := io.Pipe()
	outputReader, output := io.Pipe()
	srv, err := New(WithRegistry(blockingRegistry(t, nil)), WithProcessLogger(nil), WithStdio(input, output))
	require.NoError(t, err)
	served := make(chan error, 1)
	go func() {
		served <- srv.Stdio(context.Background()).ListenAndServe()
	}()
	scanner := bufio.NewScanner(outputReader)
	go func() {
		_, _ = io.WriteString(inputWriter, `{"jsonrpc":"2.0","id":"a","method":"tools/call","params":{"name":"echo","arguments":{"tag":"done"}}}`+"\n")
		_ = inputWriter.Close()
	}()
	responses := readResponses(t, scanner, 1)
	require.Contains(t, responses, "a")
	result := &schema.CallToolResult{}
	require.NoError(t, json.Unmarshal(responses["a"].Result, result))
	assert.Equal(t, "done", registry.FirstText(result))
	select {
	case err = <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("stdio server did not stop at end of input")
	}
}

package registry

import (
	"fmt"

	"github.com/viant/jsonrpc"
)

// NewUnknownTool creates an invalid params error naming the requested tool.
func NewUnknownTool(name string) *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.InvalidParams, fmt.Sprintf("tool %q not found", name), nil)
}

// NewInvalidArguments creates an invalid params error for arguments rejected by a tool schema.
func NewInvalidArguments(name string, err error) *jsonrpc.Error {
	return jsonrpc.NewError(jsonrpc.InvalidParams, fmt.Sprintf("invalid arguments for tool %q: %v", name, err), nil)
}

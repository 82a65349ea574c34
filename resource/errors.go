package resource

import (
	"errors"

	"github.com/viant/jsonrpc"
)

// NotFound is the MCP error code for unknown resources.
const NotFound = -32002

// ErrNotFound is returned by readers for URIs they cannot resolve.
var ErrNotFound = errors.New("resource not found")

// NewResourceNotFound creates a resource not found error carrying the uri.
func NewResourceNotFound(uri string) *jsonrpc.Error {
	return jsonrpc.NewError(NotFound, "Resource not found", map[string]interface{}{"uri": uri})
}

package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// Registry keeps tools in registration order.
type Registry struct {
	tools []*Tool
	index map[string]*Tool
	mux   sync.RWMutex
}

// Register adds a tool; names must be unique.
func (r *Registry) Register(tool *Tool) error {
	if err := tool.init(); err != nil {
		return err
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.index[tool.Name]; ok {
		return fmt.Errorf("tool %v already registered", tool.Name)
	}
	r.index[tool.Name] = tool
	r.tools = append(r.tools, tool)
	return nil
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (*Tool, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	tool, ok := r.index[name]
	return tool, ok
}

// Tools returns tool definitions in registration order.
func (r *Registry) Tools() []schema.Tool {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]schema.Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		ret = append(ret, tool.Definition())
	}
	return ret
}

// Dispatch validates a tools/call invocation and runs the matching handler.
// Handler errors are returned as results flagged with isError.
func (r *Registry) Dispatch(ctx context.Context, params *schema.CallToolRequestParams) (*schema.CallToolResult, *jsonrpc.Error) {
	if params == nil {
		return nil, jsonrpc.NewInvalidParamsError("tool name was empty", nil)
	}
	tool, ok := r.Lookup(params.Name)
	if !ok {
		return nil, NewUnknownTool(params.Name)
	}
	arguments := map[string]interface{}(params.Arguments)
	if arguments == nil {
		arguments = map[string]interface{}{}
	}
	if err := tool.Validate(arguments); err != nil {
		return nil, NewInvalidArguments(tool.Name, err)
	}
	result, err := tool.Handler(ctx, arguments)
	if err != nil {
		return ErrorResult(err.Error()), nil
	}
	if result == nil {
		result = &schema.CallToolResult{}
	}
	return result, nil
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{index: make(map[string]*Tool)}
}

package server

import (
	"context"

	"github.com/isseikz/mcp-adb/registry"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// ListTools handles the tools/list method
func (h *Handler) ListTools(ctx context.Context, request *jsonrpc.Request) (*schema.ListToolsResult, *jsonrpc.Error) {
	params := &schema.ListToolsRequestParams{}
	if err := unmarshalParams(request, params); err != nil {
		return nil, err
	}
	return &schema.ListToolsResult{Tools: h.tools.Tools()}, nil
}

// CallTool handles the tools/call method
func (h *Handler) CallTool(ctx context.Context, request *jsonrpc.Request) (*schema.CallToolResult, *jsonrpc.Error) {
	params := &schema.CallToolRequestParams{}
	if err := unmarshalParams(request, params); err != nil {
		return nil, err
	}
	result, rpcErr := h.tools.Dispatch(ctx, params)
	if rpcErr != nil {
		h.logger.Printf("tool %v rejected: %v", params.Name, rpcErr.Message)
		return nil, rpcErr
	}
	if registry.IsError(result) {
		message := registry.FirstText(result)
		h.logger.Printf("tool %v failed: %v", params.Name, message)
		_ = h.Logger.Error(ctx, map[string]interface{}{"tool": params.Name, "error": message})
	}
	return result, nil
}

package server

import (
	"context"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// Initialize handles the initialize method
func (h *Handler) Initialize(ctx context.Context, request *jsonrpc.Request) (*schema.InitializeResult, *jsonrpc.Error) {
	params := &schema.InitializeRequestParams{}
	if err := unmarshalParams(request, params); err != nil {
		return nil, err
	}
	h.mux.Lock()
	h.clientInitialize = params
	h.mux.Unlock()
	return &schema.InitializeResult{
		ProtocolVersion: h.protocolVersion,
		ServerInfo:      h.info,
		Capabilities: schema.ServerCapabilities{
			Tools:     &schema.ServerCapabilitiesTools{},
			Resources: &schema.ServerCapabilitiesResources{},
		},
		Instructions: h.instructions,
	}, nil
}

// Ping handles the ping method
func (h *Handler) Ping(ctx context.Context, request *jsonrpc.Request) (*schema.PingResult, *jsonrpc.Error) {
	params := &schema.PingRequestParams{}
	if err := unmarshalParams(request, params); err != nil {
		return nil, err
	}
	return &schema.PingResult{}, nil
}

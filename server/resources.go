package server

import (
	"context"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// ListResources handles the resources/list method
func (h *Handler) ListResources(ctx context.Context, request *jsonrpc.Request) (*schema.ListResourcesResult, *jsonrpc.Error) {
	params := &schema.ListResourcesRequestParams{}
	if err := unmarshalParams(request, params); err != nil {
		return nil, err
	}
	resources, err := h.resources.List(ctx)
	if err != nil {
		return nil, err
	}
	return &schema.ListResourcesResult{Resources: resources}, nil
}

// ListResourceTemplates handles the resources/templates/list method
func (h *Handler) ListResourceTemplates(ctx context.Context, request *jsonrpc.Request) (*schema.ListResourceTemplatesResult, *jsonrpc.Error) {
	params := &schema.ListResourceTemplatesRequestParams{}
	if err := unmarshalParams(request, params); err != nil {
		return nil, err
	}
	return &schema.ListResourceTemplatesResult{ResourceTemplates: h.resources.Templates()}, nil
}

// ReadResource handles the resources/read method
func (h *Handler) ReadResource(ctx context.Context, request *jsonrpc.Request) (*schema.ReadResourceResult, *jsonrpc.Error) {
	params := &schema.ReadResourceRequestParams{}
	if err := unmarshalParams(request, params); err != nil {
		return nil, err
	}
	result, err := h.resources.Read(ctx, params.Uri)
	if err != nil {
		h.logger.Printf("resource %v: %v", params.Uri, err.Message)
		return nil, err
	}
	return result, nil
}

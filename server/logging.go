package server

import (
	"context"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// SetLevel handles the logging/setLevel method
func (h *Handler) SetLevel(ctx context.Context, request *jsonrpc.Request) (*schema.SetLevelResult, *jsonrpc.Error) {
	params := &schema.SetLevelRequestParams{}
	if err := unmarshalParams(request, params); err != nil {
		return nil, err
	}
	if params.Level == "" {
		return nil, jsonrpc.NewInvalidParamsError("logging level was empty", request.Params)
	}
	h.level.set(params.Level)
	return &schema.SetLevelResult{}, nil
}

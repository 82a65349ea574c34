package server

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

// Adapter calls a Handler in process, the way a connected client would.
type Adapter struct {
	handler *Handler
	seq     uint64
}

// Initialize initializes the session and sends the initialized notification.
func (a *Adapter) Initialize(ctx context.Context) (*schema.InitializeResult, error) {
	result, err := call[schema.InitializeResult](ctx, a, schema.MethodInitialize, &schema.InitializeRequestParams{})
	if err != nil {
		return nil, err
	}
	a.handler.OnNotification(ctx, &jsonrpc.Notification{Method: schema.MethodNotificationInitialized})
	return result, nil
}

// Ping pings the server
func (a *Adapter) Ping(ctx context.Context, params *schema.PingRequestParams) (*schema.PingResult, error) {
	return call[schema.PingResult](ctx, a, schema.MethodPing, params)
}

// ListTools lists tools
func (a *Adapter) ListTools(ctx context.Context, cursor *string) (*schema.ListToolsResult, error) {
	return call[schema.ListToolsResult](ctx, a, schema.MethodToolsList, &schema.ListToolsRequestParams{Cursor: cursor})
}

// CallTool calls a tool
func (a *Adapter) CallTool(ctx context.Context, params *schema.CallToolRequestParams) (*schema.CallToolResult, error) {
	return call[schema.CallToolResult](ctx, a, schema.MethodToolsCall, params)
}

// ListResources lists resources
func (a *Adapter) ListResources(ctx context.Context, cursor *string) (*schema.ListResourcesResult, error) {
	return call[schema.ListResourcesResult](ctx, a, schema.MethodResourcesList, &schema.ListResourcesRequestParams{Cursor: cursor})
}

// ListResourceTemplates lists resource templates
func (a *Adapter) ListResourceTemplates(ctx context.Context, cursor *string) (*schema.ListResourceTemplatesResult, error) {
	return call[schema.ListResourceTemplatesResult](ctx, a, schema.MethodResourcesTemplatesList, &schema.ListResourceTemplatesRequestParams{Cursor: cursor})
}

// ReadResource reads a resource
func (a *Adapter) ReadResource(ctx context.Context, params *schema.ReadResourceRequestParams) (*schema.ReadResourceResult, error) {
	return call[schema.ReadResourceResult](ctx, a, schema.MethodResourcesRead, params)
}

// SetLevel sets the logging level
func (a *Adapter) SetLevel(ctx context.Context, params *schema.SetLevelRequestParams) (*schema.SetLevelResult, error) {
	return call[schema.SetLevelResult](ctx, a, schema.MethodLoggingSetLevel, params)
}

// Cancel sends notifications/cancelled for an in-flight call; calls are numbered from 1.
func (a *Adapter) Cancel(ctx context.Context, id int, reason string) error {
	notification, err := jsonrpc.NewNotification(schema.MethodNotificationCanceled, &cancelledParams{RequestId: id, Reason: &reason})
	if err != nil {
		return err
	}
	a.handler.OnNotification(ctx, notification)
	return nil
}

func call[R any](ctx context.Context, adapter *Adapter, method string, params interface{}) (*R, error) {
	req, err := jsonrpc.NewRequest(method, params)
	if err != nil {
		return nil, err
	}
	req.Id = int(atomic.AddUint64(&adapter.seq, 1))
	response := &jsonrpc.Response{}
	adapter.handler.Serve(ctx, req, response)
	if response.Error != nil {
		return nil, response.Error
	}
	var result R
	if err = json.Unmarshal(response.Result, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// NewAdapter creates a new adapter for the given handler
func NewAdapter(handler *Handler) *Adapter {
	return &Adapter{handler: handler}
}

// AsClient returns an in-process client; notifications go to notifier.
func (s *Server) AsClient(ctx context.Context, notifier transport.Notifier) *Adapter {
	return NewAdapter(s.newHandler(ctx, notifier))
}

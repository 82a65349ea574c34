package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/isseikz/mcp-adb/internal/collection"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

// Handler serves one client session.
type Handler struct {
	transport.Notifier
	*Logger
	*Server
	activeContexts   *collection.SyncMap[string, *activeContext]
	level            *loggingLevel
	mux              sync.RWMutex
	clientInitialize *schema.InitializeRequestParams
	initialized      bool
}

// Serve handles incoming JSON-RPC requests
func (h *Handler) Serve(parent context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	if jsonrpc.Version != request.Jsonrpc {
		response.Error = jsonrpc.NewInvalidRequest("invalid JSON-RPC version", nil)
		return
	}

	var ctx context.Context
	var cancel context.CancelFunc
	if h.timeout > 0 {
		ctx, cancel = context.WithTimeout(parent, h.timeout)
	} else {
		ctx, cancel = context.WithCancel(parent)
	}
	activeContext, ctx := newActiveContext(ctx, cancel, request)
	key, ok := requestKey(request.Id)
	if ok {
		h.activeContexts.Put(key, activeContext)
	}
	defer h.release(key, activeContext)

	switch request.Method {
	case schema.MethodInitialize:
		result, err := h.Initialize(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodPing:
		result, err := h.Ping(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodResourcesList:
		result, err := h.ListResources(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodResourcesTemplatesList:
		result, err := h.ListResourceTemplates(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodResourcesRead:
		result, err := h.ReadResource(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodToolsList:
		result, err := h.ListTools(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodToolsCall:
		result, err := h.CallTool(ctx, request)
		h.setResponse(response, result, err)
	case schema.MethodLoggingSetLevel:
		result, err := h.SetLevel(ctx, request)
		h.setResponse(response, result, err)
	default:
		response.Error = jsonrpc.NewMethodNotFound(fmt.Sprintf("method: %v not found", request.Method), request.Params)
	}
}

// release cancels the request context and forgets it, unless a later request reused the id.
func (h *Handler) release(key string, active *activeContext) {
	active.CancelFunc()
	if key == "" {
		return
	}
	h.activeContexts.DeleteIf(key, func(v *activeContext) bool { return v == active })
}

func (h *Handler) cancelOperation(key string) bool {
	active, ok := h.activeContexts.Get(key)
	if !ok {
		return false
	}
	active.CancelFunc()
	return true
}

func (h *Handler) setResponse(response *jsonrpc.Response, result interface{}, rpcError *jsonrpc.Error) {
	if rpcError != nil {
		response.Error = rpcError
		return
	}
	var err error
	response.Result, err = json.Marshal(result)
	if err != nil {
		response.Error = jsonrpc.NewInternalError(err.Error(), []byte{})
	}
}

// OnNotification handles incoming JSON-RPC notifications
func (h *Handler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	switch notification.Method {
	case schema.MethodNotificationCanceled, schema.MethodNotificationCancel:
		if err := h.Cancel(ctx, notification); err != nil {
			h.logger.Printf("invalid cancellation: %v", err.Message)
		}
	case schema.MethodNotificationInitialized:
		h.mux.Lock()
		h.initialized = true
		h.mux.Unlock()
	}
}

// IsInitialized reports whether the client sent notifications/initialized.
func (h *Handler) IsInitialized() bool {
	h.mux.RLock()
	defer h.mux.RUnlock()
	return h.initialized
}

// unmarshalParams decodes request params; absent params leave v unchanged.
func unmarshalParams(request *jsonrpc.Request, v interface{}) *jsonrpc.Error {
	if len(request.Params) == 0 {
		return nil
	}
	if err := json.Unmarshal(request.Params, v); err != nil {
		return jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	return nil
}

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/viant/jsonrpc"
)

// cancelledParams mirrors notifications/cancelled params; requestId may be a number or a string.
type cancelledParams struct {
	RequestId jsonrpc.RequestId `json:"requestId"`
	Reason    *string           `json:"reason,omitempty"`
}

// Cancel cancels the in-flight request named by a notifications/cancelled message,
// which kills any bridge process it spawned.
func (h *Handler) Cancel(ctx context.Context, notification *jsonrpc.Notification) *jsonrpc.Error {
	var params cancelledParams
	if err := json.Unmarshal(notification.Params, &params); err != nil {
		return jsonrpc.NewParsingError(fmt.Sprintf("failed to parse notification: %v", err), notification.Params)
	}
	key, ok := requestKey(params.RequestId)
	if !ok {
		return jsonrpc.NewInvalidParamsError("invalid requestId", notification.Params)
	}
	if !h.cancelOperation(key) {
		h.logger.Printf("no request %v in flight to cancel", params.RequestId)
	}
	return nil
}

// requestKey identifies a request id within a session; 7 and "7" are distinct ids.
func requestKey(id jsonrpc.RequestId) (string, bool) {
	switch actual := id.(type) {
	case nil:
		return "", false
	case string:
		return "s:" + actual, true
	case json.Number:
		return "n:" + actual.String(), true
	case float64:
		if actual == math.Trunc(actual) && math.Abs(actual) < 1<<53 {
			return "n:" + strconv.FormatInt(int64(actual), 10), true
		}
		return "n:" + strconv.FormatFloat(actual, 'g', -1, 64), true
	case float32:
		return requestKey(float64(actual))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("n:%d", actual), true
	}
	return "", false
}

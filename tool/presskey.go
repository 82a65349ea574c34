package tool

import (
	"context"
	"fmt"

	"github.com/isseikz/mcp-adb/adb"
	"github.com/isseikz/mcp-adb/registry"
	"github.com/viant/mcp-protocol/schema"
)

// PressKeyInput represents pressKey tool arguments.
type PressKeyInput struct {
	Keycode  string `json:"keycode" jsonschema:"symbolic Android key name"`
	DeviceID string `json:"deviceId,omitempty" jsonschema:"serial of the target device, as listed by adb devices; defaults to the only connected device"`
}

// PressKey injects a single key event.
func (s *Service) PressKey(ctx context.Context, input *PressKeyInput) (*schema.CallToolResult, error) {
	code, ok := adb.KeyCode(input.Keycode)
	if !ok {
		return nil, fmt.Errorf("key press failed: unsupported keycode %q", input.Keycode)
	}
	if err := s.bridge.PressKey(ctx, input.DeviceID, code); err != nil {
		return nil, fmt.Errorf("key press failed: %w", err)
	}
	return registry.TextResult(fmt.Sprintf("Successfully pressed %v (keycode: %d)", input.Keycode, code)), nil
}

package tool

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/isseikz/mcp-adb/adb"
	"github.com/isseikz/mcp-adb/registry"
	"github.com/isseikz/mcp-adb/screenshot"
	"github.com/viant/mcp-protocol/schema"
)

// ScreenshotInput represents screenshot tool arguments.
type ScreenshotInput struct {
	DeviceID string `json:"deviceId,omitempty" jsonschema:"serial of the target device, as listed by adb devices; defaults to the only connected device"`
}

// Screenshot captures the device screen, stores it in the scratch directory and
// returns it as an image block followed by the capture resource URI.
func (s *Service) Screenshot(ctx context.Context, input *ScreenshotInput) (*schema.CallToolResult, error) {
	name, data, err := s.capture(ctx, input.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}
	if s.keep > 0 {
		removed, err := s.store.Prune(ctx, s.keep)
		if err != nil {
			s.logger.Printf("failed to prune scratch dir: %v", err)
		} else if len(removed) > 0 {
			s.logger.Printf("pruned %v captures", len(removed))
		}
	}
	uri := screenshot.URI(name)
	return &schema.CallToolResult{Content: []schema.CallToolResultContentElem{
		registry.ImageContent(base64.StdEncoding.EncodeToString(data), screenshot.MimeType),
		registry.TextContent(uri),
	}}, nil
}

func (s *Service) capture(ctx context.Context, deviceID string) (string, []byte, error) {
	name := s.store.NewName()
	location, err := s.store.Path(name)
	if err != nil {
		return "", nil, err
	}
	if err = s.bridge.Capture(ctx, deviceID, location); err != nil {
		s.discard(ctx, name)
		return "", nil, fmt.Errorf("capture failed: %w", err)
	}
	size, err := s.store.Size(ctx, name)
	switch {
	case errors.Is(err, screenshot.ErrNotFound), err == nil && size == 0:
		s.discard(ctx, name)
		return "", nil, fmt.Errorf("capture failed: %w", adb.ErrEmptyCapture)
	case err != nil:
		s.discard(ctx, name)
		return "", nil, fmt.Errorf("capture failed: %w", err)
	}
	data, err := s.store.Read(ctx, name)
	if err != nil {
		s.discard(ctx, name)
		return "", nil, fmt.Errorf("failed to read capture %v: %w", name, err)
	}
	fitted, resized, err := screenshot.Fit(data, s.maxDimension)
	if err != nil {
		s.discard(ctx, name)
		return "", nil, fmt.Errorf("capture failed: %w", err)
	}
	if resized {
		if err = s.store.Write(ctx, name, fitted); err != nil {
			s.discard(ctx, name)
			return "", nil, fmt.Errorf("failed to write capture %v: %w", name, err)
		}
	}
	s.logger.Printf("saved screenshot to %v (%d bytes)", location, len(fitted))
	return name, fitted, nil
}

func (s *Service) discard(ctx context.Context, name string) {
	_ = s.store.Delete(ctx, name)
}

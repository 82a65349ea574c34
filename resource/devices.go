package resource

import (
	"context"
	"encoding/json"

	"github.com/isseikz/mcp-adb/adb"
	"github.com/viant/mcp-protocol/schema"
)

// DevicesURI addresses the list of online devices.
const DevicesURI = "adb://devices"

// Devices returns the resource listing devices ready for commands.
func Devices(bridge *adb.Bridge) *Resource {
	mimeType := "application/json"
	description := "Android devices connected through adb and ready for commands"
	return &Resource{
		Metadata: schema.Resource{
			Name:        "devices",
			Uri:         DevicesURI,
			MimeType:    &mimeType,
			Description: &description,
		},
		Read: func(ctx context.Context, uri string) (*schema.ReadResourceResult, error) {
			devices, err := bridge.Devices(ctx)
			if err != nil {
				return nil, err
			}
			online := adb.OnlineDevices(devices)
			if online == nil {
				online = []*adb.Device{}
			}
			data, err := json.Marshal(online)
			if err != nil {
				return nil, err
			}
			return &schema.ReadResourceResult{Contents: []schema.ReadResourceResultContentsElem{{
				Uri:      uri,
				MimeType: &mimeType,
				Text:     string(data),
			}}}, nil
		},
	}
}

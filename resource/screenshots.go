package resource

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/isseikz/mcp-adb/screenshot"
	"github.com/viant/mcp-protocol/schema"
)

// Screenshots returns the template serving captures from store.
func Screenshots(store *screenshot.Store) *Template {
	mimeType := screenshot.MimeType
	description := "Screenshot captured by the screenshot tool"
	return &Template{
		Metadata: schema.ResourceTemplate{
			Name:        "screenshots",
			UriTemplate: screenshot.URIPrefix + "{filename}",
			MimeType:    &mimeType,
			Description: &description,
		},
		Prefix: screenshot.URIPrefix,
		List: func(ctx context.Context) ([]schema.Resource, error) {
			names, err := store.List(ctx)
			if err != nil {
				return nil, err
			}
			ret := make([]schema.Resource, 0, len(names))
			for _, name := range names {
				ret = append(ret, schema.Resource{
					Name:     name,
					Uri:      screenshot.URI(name),
					MimeType: &mimeType,
				})
			}
			return ret, nil
		},
		Read: func(ctx context.Context, uri string) (*schema.ReadResourceResult, error) {
			name, ok := screenshot.NameFromURI(uri)
			if !ok {
				return nil, fmt.Errorf("%w: %v", ErrNotFound, uri)
			}
			data, err := store.Read(ctx, name)
			if err != nil {
				if errors.Is(err, screenshot.ErrNotFound) {
					return nil, fmt.Errorf("%w: %v", ErrNotFound, uri)
				}
				return nil, err
			}
			return &schema.ReadResourceResult{Contents: []schema.ReadResourceResultContentsElem{{
				Uri:      uri,
				MimeType: &mimeType,
				Blob:     base64.StdEncoding.EncodeToString(data),
			}}}, nil
		},
	}
}

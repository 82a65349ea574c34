package registry

import (
	"encoding/json"
	"fmt"

	"github.com/viant/mcp-protocol/schema"
)

// TextResult creates a result with a single text block.
func TextResult(text string) *schema.CallToolResult {
	return &schema.CallToolResult{Content: []schema.CallToolResultContentElem{TextContent(text)}}
}

// ErrorResult creates a text result flagged with isError.
func ErrorResult(text string) *schema.CallToolResult {
	isError := true
	ret := TextResult(text)
	ret.IsError = &isError
	return ret
}

// TextContent creates a text content block.
func TextContent(text string) schema.CallToolResultContentElem {
	return schema.TextContent{Type: "text", Text: text}
}

// ImageContent creates an image content block holding base64 data.
func ImageContent(data, mimeType string) schema.CallToolResultContentElem {
	return schema.ImageContent{Type: "image", Data: data, MimeType: mimeType}
}

// IsError reports whether result is flagged as a tool failure.
func IsError(result *schema.CallToolResult) bool {
	return result != nil && result.IsError != nil && *result.IsError
}

// AsText returns elem as a text block. Elements decoded off the wire are generic
// maps, so anything but a TextContent value is re-decoded from its JSON form.
func AsText(elem schema.CallToolResultContentElem) (*schema.TextContent, error) {
	switch actual := elem.(type) {
	case schema.TextContent:
		return &actual, nil
	case *schema.TextContent:
		return actual, nil
	}
	ret := &schema.TextContent{}
	if err := redecode(elem, ret); err != nil {
		return nil, err
	}
	if ret.Type != "text" {
		return nil, fmt.Errorf("expected text content, but had %q", ret.Type)
	}
	return ret, nil
}

// AsImage returns elem as an image block.
func AsImage(elem schema.CallToolResultContentElem) (*schema.ImageContent, error) {
	switch actual := elem.(type) {
	case schema.ImageContent:
		return &actual, nil
	case *schema.ImageContent:
		return actual, nil
	}
	ret := &schema.ImageContent{}
	if err := redecode(elem, ret); err != nil {
		return nil, err
	}
	if ret.Type != "image" {
		return nil, fmt.Errorf("expected image content, but had %q", ret.Type)
	}
	return ret, nil
}

// FirstText returns the text of the first text block in result, if any.
func FirstText(result *schema.CallToolResult) string {
	if result == nil {
		return ""
	}
	for _, elem := range result.Content {
		if text, err := AsText(elem); err == nil {
			return text.Text
		}
	}
	return ""
}

func redecode(elem schema.CallToolResultContentElem, dest interface{}) error {
	data, err := json.Marshal(elem)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

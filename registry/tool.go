package registry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/viant/mcp-protocol/schema"
)

// Handler executes a tool with validated arguments.
type Handler func(ctx context.Context, arguments map[string]interface{}) (*schema.CallToolResult, error)

// Tool describes a remote-callable operation.
type Tool struct {
	Name        string
	Description string
	Input       *jsonschema.Schema
	Handler     Handler
	resolved    *jsonschema.Resolved
	definition  schema.Tool
}

// Definition returns the tools/list representation of the tool.
func (t *Tool) Definition() schema.Tool {
	return t.definition
}

// Validate checks arguments against the tool input schema.
func (t *Tool) Validate(arguments map[string]interface{}) error {
	return t.resolved.Validate(arguments)
}

func (t *Tool) init() error {
	if t.Name == "" {
		return fmt.Errorf("tool name was empty")
	}
	if t.Handler == nil {
		return fmt.Errorf("tool %v: handler was nil", t.Name)
	}
	if t.Input == nil {
		t.Input = &jsonschema.Schema{Type: "object"}
	}
	var err error
	if t.resolved, err = t.Input.Resolve(nil); err != nil {
		return fmt.Errorf("tool %v: invalid input schema: %w", t.Name, err)
	}
	data, err := json.Marshal(t.Input)
	if err != nil {
		return fmt.Errorf("tool %v: failed to marshal input schema: %w", t.Name, err)
	}
	t.definition = schema.Tool{Name: t.Name}
	if err = json.Unmarshal(data, &t.definition.InputSchema); err != nil {
		return fmt.Errorf("tool %v: failed to convert input schema: %w", t.Name, err)
	}
	if t.Description != "" {
		description := t.Description
		t.definition.Description = &description
	}
	return nil
}

// SchemaOption adjusts an inferred input schema.
type SchemaOption func(s *jsonschema.Schema) error

// WithEnum restricts property to the given values.
func WithEnum[V any](property string, values ...V) SchemaOption {
	return func(s *jsonschema.Schema) error {
		prop, ok := s.Properties[property]
		if !ok {
			return fmt.Errorf("unknown property: %v", property)
		}
		prop.Enum = make([]any, 0, len(values))
		for _, value := range values {
			prop.Enum = append(prop.Enum, value)
		}
		return nil
	}
}

// RegisterTool registers a tool whose input schema is inferred from T.
func RegisterTool[T any](r *Registry, name, description string, handler func(ctx context.Context, input *T) (*schema.CallToolResult, error), options ...SchemaOption) error {
	input, err := jsonschema.For[T](nil)
	if err != nil {
		return fmt.Errorf("tool %v: failed to infer input schema: %w", name, err)
	}
	for _, option := range options {
		if err = option(input); err != nil {
			return fmt.Errorf("tool %v: %w", name, err)
		}
	}
	return r.Register(&Tool{
		Name:        name,
		Description: description,
		Input:       input,
		Handler: func(ctx context.Context, arguments map[string]interface{}) (*schema.CallToolResult, error) {
			value := new(T)
			data, err := json.Marshal(arguments)
			if err != nil {
				return nil, err
			}
			if err = json.Unmarshal(data, value); err != nil {
				return nil, err
			}
			return handler(ctx, value)
		},
	})
}

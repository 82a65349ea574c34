package resource

import (
	"context"
	"errors"
	"strings"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// Reader reads the content addressed by uri.
type Reader func(ctx context.Context, uri string) (*schema.ReadResourceResult, error)

// Resource is a resource with a fixed URI.
type Resource struct {
	Metadata schema.Resource
	Read     Reader
}

// Template serves every URI starting with Prefix.
type Template struct {
	Metadata schema.ResourceTemplate
	Prefix   string
	// List enumerates the concrete resources currently behind the template.
	List func(ctx context.Context) ([]schema.Resource, error)
	Read Reader
}

// Registry resolves resource URIs to readers.
type Registry struct {
	resources []*Resource
	templates []*Template
}

// AddResource registers a fixed resource.
func (r *Registry) AddResource(resource *Resource) {
	r.resources = append(r.resources, resource)
}

// AddTemplate registers a resource template.
func (r *Registry) AddTemplate(template *Template) {
	r.templates = append(r.templates, template)
}

// List returns fixed resources followed by the resources behind each template.
func (r *Registry) List(ctx context.Context) ([]schema.Resource, *jsonrpc.Error) {
	ret := make([]schema.Resource, 0, len(r.resources))
	for _, resource := range r.resources {
		ret = append(ret, resource.Metadata)
	}
	for _, template := range r.templates {
		if template.List == nil {
			continue
		}
		resources, err := template.List(ctx)
		if err != nil {
			return nil, jsonrpc.NewInternalError(err.Error(), nil)
		}
		ret = append(ret, resources...)
	}
	return ret, nil
}

// Templates returns registered template metadata.
func (r *Registry) Templates() []schema.ResourceTemplate {
	ret := make([]schema.ResourceTemplate, 0, len(r.templates))
	for _, template := range r.templates {
		ret = append(ret, template.Metadata)
	}
	return ret
}

// Read reads uri; unresolvable URIs yield a resource not found error.
func (r *Registry) Read(ctx context.Context, uri string) (*schema.ReadResourceResult, *jsonrpc.Error) {
	reader := r.lookup(uri)
	if reader == nil {
		return nil, NewResourceNotFound(uri)
	}
	result, err := reader(ctx, uri)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, NewResourceNotFound(uri)
		}
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}
	return result, nil
}

func (r *Registry) lookup(uri string) Reader {
	for _, resource := range r.resources {
		if resource.Metadata.Uri == uri {
			return resource.Read
		}
	}
	for _, template := range r.templates {
		if strings.HasPrefix(uri, template.Prefix) {
			return template.Read
		}
	}
	return nil
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

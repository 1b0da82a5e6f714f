package oas

import (
	"slices"
	"strings"
)

// Location is the value of a parameter's "in" field.
type Location string

// Parameter locations defined by OpenAPI.
const (
	LocationPath   Location = "path"
	LocationQuery  Location = "query"
	LocationHeader Location = "header"
	LocationCookie Location = "cookie"

	// Swagger 2 only.
	LocationBody     Location = "body"
	LocationFormData Location = "formData"
)

// Locations lists every valid Location.
var Locations = []Location{
	LocationPath, LocationQuery, LocationHeader, LocationCookie,
	LocationBody, LocationFormData,
}

// Valid reports whether l is a location OpenAPI or Swagger 2 defines.
func (l Location) Valid() bool {
	return slices.Contains(Locations, l)
}

// Document is a decoded API description.
type Document struct {
	OpenAPI    string               `yaml:"openapi" json:"openapi,omitempty"`
	Swagger    string               `yaml:"swagger" json:"swagger,omitempty"`
	Info       Info                 `yaml:"info" json:"info"`
	Paths      map[string]*PathItem `yaml:"paths" json:"paths,omitempty"`
	Components Components           `yaml:"components" json:"components,omitempty"`

	// SharedParameters holds Swagger 2 top-level parameter definitions.
	SharedParameters map[string]*Parameter `yaml:"parameters" json:"parameters,omitempty"`
}

// Info is the document's info object.
type Info struct {
	Title   string `yaml:"title" json:"title"`
	Version string `yaml:"version" json:"version"`
}

// Components holds reusable OpenAPI 3 objects.
type Components struct {
	Parameters map[string]*Parameter `yaml:"parameters" json:"parameters,omitempty"`
}

// PathItem describes the operations available on one path.
type PathItem struct {
	Parameters []*Parameter `yaml:"parameters" json:"parameters,omitempty"`
	Get        *Operation   `yaml:"get" json:"get,omitempty"`
	Put        *Operation   `yaml:"put" json:"put,omitempty"`
	Post       *Operation   `yaml:"post" json:"post,omitempty"`
	Delete     *Operation   `yaml:"delete" json:"delete,omitempty"`
	Options    *Operation   `yaml:"options" json:"options,omitempty"`
	Head       *Operation   `yaml:"head" json:"head,omitempty"`
	Patch      *Operation   `yaml:"patch" json:"patch,omitempty"`
	Trace      *Operation   `yaml:"trace" json:"trace,omitempty"`
}

// methodOrder lists operation methods in the order OpenAPI declares them.
var methodOrder = []string{"GET", "PUT", "POST", "DELETE", "OPTIONS", "HEAD", "PATCH", "TRACE"}

// operation returns the item's operation for an upper-case method, or nil.
func (p *PathItem) operation(method string) *Operation {
	switch method {
	case "GET":
		return p.Get
	case "PUT":
		return p.Put
	case "POST":
		return p.Post
	case "DELETE":
		return p.Delete
	case "OPTIONS":
		return p.Options
	case "HEAD":
		return p.Head
	case "PATCH":
		return p.Patch
	case "TRACE":
		return p.Trace
	default:
		return nil
	}
}

// operations returns the item's operations in methodOrder. It does not
// modify the item.
func (p *PathItem) operations() []*Operation {
	var ops []*Operation
	for _, method := range methodOrder {
		if op := p.operation(method); op != nil {
			ops = append(ops, op)
		}
	}
	return ops
}

// Operation is a single API operation.
type Operation struct {
	OperationID string       `yaml:"operationId" json:"operationId,omitempty"`
	Summary     string       `yaml:"summary" json:"summary,omitempty"`
	Parameters  []*Parameter `yaml:"parameters" json:"parameters,omitempty"`

	// Method and Path are set by Parse and never change afterwards.
	Method string `yaml:"-" json:"-"`
	Path   string `yaml:"-" json:"-"`
}

// Parameter describes a single operation input.
type Parameter struct {
	Ref         string   `yaml:"$ref" json:"$ref,omitempty"`
	Name        string   `yaml:"name" json:"name"`
	In          Location `yaml:"in" json:"in"`
	Description string   `yaml:"description" json:"description,omitempty"`
	Required    bool     `yaml:"required" json:"required,omitempty"`
	Deprecated  bool     `yaml:"deprecated" json:"deprecated,omitempty"`
}

// key identifies a parameter within an operation. Header names are
// case-insensitive.
func (p *Parameter) key() string {
	name := p.Name
	if p.In == LocationHeader {
		name = strings.ToLower(name)
	}
	return string(p.In) + ":" + name
}

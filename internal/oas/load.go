package oas

import (
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/oaslint/internal/errors"
	"github.com/thoreinstein/oaslint/pkg/fileutil"
)

// Local reference prefixes for reusable parameters.
const (
	componentsParameterPrefix = "#/components/parameters/"
	swaggerParameterPrefix    = "#/parameters/"
)

// ParseError wraps errors that occur while loading a document with path context.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parsing API description %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parsing API description: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes a YAML or JSON document.
// It fails if the input is not an object carrying an "openapi" or "swagger" version.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decoding document"), errors.ErrInvalidDocument)
	}
	if doc.OpenAPI == "" && doc.Swagger == "" {
		return nil, errors.Wrap(errors.ErrInvalidDocument, `missing "openapi" or "swagger" version field`)
	}
	doc.link()
	return &doc, nil
}

// link records each operation's method and path. A decoded document is
// read-only afterwards, so it can be walked from several goroutines.
func (d *Document) link() {
	for path, item := range d.Paths {
		if item == nil {
			continue
		}
		for _, method := range methodOrder {
			if op := item.operation(method); op != nil {
				op.Method = method
				op.Path = path
			}
		}
	}
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	data, err := fileutil.ReadFileWithLimit(path, fileutil.MaxDocumentSize)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ParseError{Path: path, Err: errors.Wrap(errors.ErrNotFound, "no such file")}
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return doc, nil
}

// Parameters returns one wrapper per parameter occurrence.
//
// Paths are visited in sorted order and operations in OpenAPI method order.
// Path-level parameters are merged into each operation unless the operation
// redeclares the same name and location. Path-level parameters on a path
// without operations are returned with a nil operation. Local references are
// resolved; a dangling reference or an unknown location is an error.
// The document is not modified.
func (d *Document) Parameters() ([]ParameterWrapper, error) {
	paths := make([]string, 0, len(d.Paths))
	for p := range d.Paths {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	var out []ParameterWrapper
	for _, path := range paths {
		item := d.Paths[path]
		if item == nil {
			continue
		}

		shared, err := d.resolveAll(item.Parameters)
		if err != nil {
			return nil, errors.Wrapf(err, "path %s", path)
		}

		ops := item.operations()
		if len(ops) == 0 {
			for _, p := range shared {
				out = append(out, WrapParameter(p, nil, path))
			}
			continue
		}

		for _, op := range ops {
			own, err := d.resolveAll(op.Parameters)
			if err != nil {
				return nil, errors.Wrapf(err, "%s %s", op.Method, path)
			}
			for _, p := range mergeParameters(shared, own) {
				out = append(out, WrapParameter(p, op, path))
			}
		}
	}
	return out, nil
}

// mergeParameters returns inherited parameters not overridden by own,
// followed by own.
func mergeParameters(inherited, own []*Parameter) []*Parameter {
	declared := make(map[string]struct{}, len(own))
	for _, p := range own {
		declared[p.key()] = struct{}{}
	}
	merged := make([]*Parameter, 0, len(inherited)+len(own))
	for _, p := range inherited {
		if _, ok := declared[p.key()]; !ok {
			merged = append(merged, p)
		}
	}
	return append(merged, own...)
}

func (d *Document) resolveAll(params []*Parameter) ([]*Parameter, error) {
	resolved := make([]*Parameter, 0, len(params))
	for _, p := range params {
		if p == nil {
			continue
		}
		r, err := d.resolve(p, nil)
		if err != nil {
			return nil, err
		}
		if !r.In.Valid() {
			return nil, errors.Wrapf(errors.ErrInvalidDocument,
				"parameter %q has unknown location %q", r.Name, r.In)
		}
		resolved = append(resolved, r)
	}
	return resolved, nil
}

// resolve follows $ref chains. seen guards against cycles.
func (d *Document) resolve(p *Parameter, seen []string) (*Parameter, error) {
	if p.Ref == "" {
		return p, nil
	}
	if slices.Contains(seen, p.Ref) {
		return nil, errors.Wrapf(errors.ErrInvalidDocument, "circular reference %s", p.Ref)
	}

	var (
		target *Parameter
		ok     bool
	)
	switch {
	case strings.HasPrefix(p.Ref, componentsParameterPrefix):
		target, ok = d.Components.Parameters[strings.TrimPrefix(p.Ref, componentsParameterPrefix)]
	case strings.HasPrefix(p.Ref, swaggerParameterPrefix):
		target, ok = d.SharedParameters[strings.TrimPrefix(p.Ref, swaggerParameterPrefix)]
	default:
		return nil, errors.Wrapf(errors.ErrInvalidDocument, "unsupported reference %s", p.Ref)
	}
	if !ok || target == nil {
		return nil, errors.Wrapf(errors.ErrInvalidDocument, "unresolved reference %s", p.Ref)
	}
	return d.resolve(target, append(seen, p.Ref))
}

package oas

// ParameterWrapper is the subject parameter rules evaluate: a parameter plus
// the operation and path it was declared on. The parameter may be nil.
type ParameterWrapper struct {
	parameter *Parameter
	operation *Operation
	path      string
}

// WrapParameter creates a ParameterWrapper. Any argument may be zero.
func WrapParameter(p *Parameter, op *Operation, path string) ParameterWrapper {
	return ParameterWrapper{parameter: p, operation: op, path: path}
}

// Parameter returns the wrapped parameter, or nil.
func (w ParameterWrapper) Parameter() *Parameter { return w.parameter }

// Operation returns the owning operation, or nil for path-level parameters
// on a path without operations.
func (w ParameterWrapper) Operation() *Operation { return w.operation }

// Path returns the path template the parameter belongs to.
func (w ParameterWrapper) Path() string { return w.path }

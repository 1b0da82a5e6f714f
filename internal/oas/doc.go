// Package oas holds the slice of the OpenAPI object model the validators need:
// documents, path items, operations and parameters.
//
// [Parse] and [Load] decode OpenAPI 3 and Swagger 2 documents in YAML or
// JSON. [Document.Parameters] flattens a document into one
// [ParameterWrapper] per parameter occurrence, with local references
// resolved and the owning operation attached, in a deterministic order.
package oas

// Package validations contains the OpenAPI rules and the validators built
// from them.
//
// Rules are registered in declarative tables of [validator.Entry] rows; the
// configuration decides which rows become part of a validator. Adding a rule
// means adding a row and, if it is optional, a flag.
package validations

/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

package submitresult

import (
	"errors"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/santosh898/git-ranker/agents/schema"
)

// Options configures the submit_result tool wiring.
type Options[Response any] struct {
	ToolName           string
	Description        string
	SuccessMessage     string
	PayloadFieldName   string
	PayloadDescription string
	Generator          *schema.Generator
}

func (o *Options[Response]) setDefaults() {
	if o.ToolName == "" {
		o.ToolName = "submit_result"
	}
	if o.Description == "" {
		o.Description = "Submit the final result and complete the analysis."
	}
	if o.SuccessMessage == "" {
		o.SuccessMessage = "Result submitted successfully."
	}
	if o.PayloadFieldName == "" {
		o.PayloadFieldName = "result"
	}
	if o.PayloadDescription == "" {
		o.PayloadDescription = "Structured result payload."
	}
	if o.Generator == nil {
		o.Generator = schema.NewGenerator()
	}
}

func (o *Options[Response]) validate() error {
	if o.PayloadFieldName == "reasoning" {
		return errors.New(`payload field name "reasoning" collides with the reasoning parameter`)
	}
	return nil
}

// schemaForResponse reflects the schema of Response, looking through one
// level of pointer.
func (o *Options[Response]) schemaForResponse() *jsonschema.Schema {
	return o.Generator.Reflect(newResponse[Response]())
}

// newResponse allocates a value to decode a Response into: a *T for both
// T and *T responses.
func newResponse[Response any]() any {
	typ := reflect.TypeFor[Response]()
	if typ.Kind() == reflect.Pointer {
		return reflect.New(typ.Elem()).Interface()
	}
	return reflect.New(typ).Interface()
}

// fromDecoded turns what newResponse allocated back into a Response.
func fromDecoded[Response any](dest any) Response {
	if r, ok := dest.(Response); ok {
		return r
	}
	return reflect.ValueOf(dest).Elem().Interface().(Response)
}

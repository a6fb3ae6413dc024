/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package ingest

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"

	"chainguard.dev/datareport/reports/model"
	"github.com/invopop/jsonschema"
)

// Document is a complete report document.
type Document struct {
	Label  string        `json:"label,omitempty" jsonschema:"description=Report label"`
	Result model.Payload `json:"result" jsonschema:"required,description=Report items and category colors"`
}

// Generator wraps jsonschema.Reflector with the defaults used for report documents.
type Generator struct {
	reflector jsonschema.Reflector
}

// NewGenerator constructs a generator that maps the ordered category maps to
// JSON objects and keeps recursive items as references.
func NewGenerator() *Generator {
	return &Generator{
		reflector: jsonschema.Reflector{
			RequiredFromJSONSchemaTags: true,
			ExpandedStruct:             true,
			AllowAdditionalProperties:  true,
			Anonymous:                  true,
			Mapper:                     mapType,
		},
	}
}

// Reflect returns the JSON schema for the provided value.
func (g *Generator) Reflect(v any) *jsonschema.Schema {
	return g.reflector.Reflect(v)
}

// Schema returns the report document schema as indented JSON.
func Schema() ([]byte, error) {
	return json.MarshalIndent(NewGenerator().Reflect(&Document{}), "", "  ")
}

func mapType(t reflect.Type) *jsonschema.Schema {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t {
	case reflect.TypeFor[model.Values]():
		return &jsonschema.Schema{
			Type: "object",
			AdditionalProperties: &jsonschema.Schema{
				Type:    "number",
				Minimum: json.Number("0"),
				Maximum: json.Number(strconv.FormatFloat(math.MaxFloat64, 'g', -1, 64)),
			},
		}
	case reflect.TypeFor[model.Colors]():
		return &jsonschema.Schema{
			Type: "object",
			AdditionalProperties: &jsonschema.Schema{
				Type: "string",
			},
		}
	}
	return nil
}

// seehuhn.de/go/auditreport - render audit and eligibility reports as PDF
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package input decodes audit and eligibility results from JSON or YAML.
//
// Documents are checked against an embedded JSON Schema before they are
// decoded.  The schemas only check the shape of a document; scores outside
// the range 0-100 and unknown enumeration values are accepted and handled
// by the renderers.
package input

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/auditreport/model"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Format is the serialisation of an input document.
type Format string

// These are the supported input formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for unknown formats and file extensions.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ErrUnknownKind is returned for report kinds other than audit and
// eligibility.
var ErrUnknownKind = errors.New("unknown report kind")

// FormatFromPath determines the input format from a file name extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// SchemaError lists the violations found when validating a document.
type SchemaError struct {
	Kind       model.Kind
	Violations []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid %s result: %s", e.Kind, strings.Join(e.Violations, "; "))
}

// Result is a decoded document.  Exactly one of Audit and Eligibility is
// set, according to Kind.
type Result struct {
	Kind        model.Kind
	Audit       *model.AuditResult
	Eligibility *model.EligibilityResult
}

// Decode reads a document of the given kind from r.
func Decode(r io.Reader, format Format, kind model.Kind) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
	case FormatYAML:
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	return DecodeJSON(data, kind)
}

// DecodeJSON validates and decodes a JSON document of the given kind.
func DecodeJSON(data []byte, kind model.Kind) (*Result, error) {
	if err := Validate(data, kind); err != nil {
		return nil, err
	}

	res := &Result{Kind: kind}
	var target any
	switch kind {
	case model.KindAudit:
		res.Audit = &model.AuditResult{}
		target = res.Audit
	case model.KindEligibility:
		res.Eligibility = &model.EligibilityResult{}
		target = res.Eligibility
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(target); err != nil {
		return nil, fmt.Errorf("decoding %s result: %w", kind, err)
	}
	return res, nil
}

// Validate checks a JSON document against the schema for kind.
func Validate(data []byte, kind model.Kind) error {
	schema, err := schemaFor(kind)
	if err != nil {
		return err
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("reading %s result: %w", kind, err)
	}
	if result.Valid() {
		return nil
	}
	e := &SchemaError{Kind: kind}
	for _, v := range result.Errors() {
		e.Violations = append(e.Violations, v.String())
	}
	return e
}

var (
	schemaOnce  sync.Once
	schemas     map[model.Kind]*gojsonschema.Schema
	schemaErr   error
	schemaFiles = map[model.Kind]string{
		model.KindAudit:       "schemas/audit.json",
		model.KindEligibility: "schemas/eligibility.json",
	}
)

func schemaFor(kind model.Kind) (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schemas = make(map[model.Kind]*gojsonschema.Schema, len(schemaFiles))
		for k, name := range schemaFiles {
			raw, err := schemaFS.ReadFile(name)
			if err != nil {
				schemaErr = err
				return
			}
			s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
			if err != nil {
				schemaErr = fmt.Errorf("compiling %s: %w", name, err)
				return
			}
			schemas[k] = s
		}
	})
	if schemaErr != nil {
		return nil, schemaErr
	}
	s, ok := schemas[kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
	return s, nil
}

// yamlToJSON converts a YAML document to JSON, so that both formats share
// the same validation and decoding path.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	doc, err := jsonCompatible(doc)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// jsonCompatible replaces the map[any]any values, which yaml.v3 produces
// for mappings with non-string keys, by map[string]any.
func jsonCompatible(v any) (any, error) {
	switch v := v.(type) {
	case map[string]any:
		for key, val := range v {
			conv, err := jsonCompatible(val)
			if err != nil {
				return nil, err
			}
			v[key] = conv
		}
		return v, nil
	case map[any]any:
		m := make(map[string]any, len(v))
		for key, val := range v {
			s, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("YAML mapping key %v is not a string", key)
			}
			conv, err := jsonCompatible(val)
			if err != nil {
				return nil, err
			}
			m[s] = conv
		}
		return m, nil
	case []any:
		for i, val := range v {
			conv, err := jsonCompatible(val)
			if err != nil {
				return nil, err
			}
			v[i] = conv
		}
		return v, nil
	}
	return v, nil
}

// Package openapi converts the panel operations of an OpenAPI document into
// panel descriptors using kin-openapi. Each operation becomes one panel; the
// properties of its request schema become the panel fields.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-uekit/pkg/panels"
)

const (
	extensionOrder       = "x-uekit-order"
	extensionSubmit      = "x-uekit-submit"
	extensionCode        = "x-uekit-code"
	extensionWidget      = "x-uekit-widget"
	extensionPlaceholder = "x-uekit-placeholder"
	extensionMin         = "x-uekit-min"
	extensionMax         = "x-uekit-max"
	extensionStep        = "x-uekit-step"

	defaultSubmitLabel = "Generate"
)

// Options configures the parser.
type Options struct {
	// SkipValidation disables openapi3.T.Validate after loading.
	SkipValidation bool
}

// Option mutates Options.
type Option func(*Options)

// WithoutValidation skips document validation.
func WithoutValidation() Option {
	return func(o *Options) {
		o.SkipValidation = true
	}
}

// Parser extracts panel descriptors from OpenAPI documents.
type Parser struct {
	options Options
}

// New constructs a Parser.
func New(options ...Option) *Parser {
	p := &Parser{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&p.options)
	}
	return p
}

// Descriptors loads raw (JSON or YAML) and returns one descriptor per
// operation, ordered by x-uekit-order then operation ID.
func (p *Parser) Descriptors(ctx context.Context, raw []byte) ([]panels.Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi parser: document does not contain any paths")
	}
	if !p.options.SkipValidation {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}

	var out []panels.Descriptor
	seen := make(map[string]struct{})
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, method := range []string{"GET", "POST", "PUT", "PATCH"} {
			op := item.GetOperation(method)
			if op == nil {
				continue
			}
			desc := convertOperation(method, path, op)
			if _, dup := seen[desc.ID]; dup {
				return nil, fmt.Errorf("openapi parser: duplicate operation id %q", desc.ID)
			}
			seen[desc.ID] = struct{}{}
			out = append(out, desc)
		}
	}

	if len(out) == 0 {
		return nil, errors.New("openapi parser: no operations extracted")
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order == out[j].Order {
			return out[i].ID < out[j].ID
		}
		return out[i].Order < out[j].Order
	})
	return out, nil
}

func convertOperation(method, path string, op *openapi3.Operation) panels.Descriptor {
	id := strings.TrimSpace(op.OperationID)
	if id == "" {
		id = strings.ToLower(method) + ":" + path
	}

	desc := panels.Descriptor{
		ID:          id,
		Title:       firstNonEmpty(op.Summary, id),
		Description: strings.TrimSpace(op.Description),
		Submit:      firstNonEmpty(extString(op.Extensions, extensionSubmit), defaultSubmitLabel),
		Code:        extBool(op.Extensions, extensionCode),
		Method:      method,
		Path:        path,
		Order:       extInt(op.Extensions, extensionOrder),
	}

	schema := requestSchema(op.RequestBody)
	if schema == nil {
		return desc
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}
	for name, ref := range schema.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		_, isRequired := required[name]
		desc.Fields = append(desc.Fields, convertField(name, ref.Value, isRequired))
	}
	panels.SortFields(desc.Fields)
	return desc
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/x-www-form-urlencoded", "application/json", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func convertField(name string, schema *openapi3.Schema, required bool) panels.Field {
	field := panels.Field{
		Name:        name,
		Label:       firstNonEmpty(schema.Title, name),
		Description: strings.TrimSpace(schema.Description),
		Default:     scalarString(schema.Default),
		Placeholder: extString(schema.Extensions, extensionPlaceholder),
		Min:         firstNonEmpty(extString(schema.Extensions, extensionMin), floatPtrString(schema.Min)),
		Max:         firstNonEmpty(extString(schema.Extensions, extensionMax), floatPtrString(schema.Max)),
		Step:        extString(schema.Extensions, extensionStep),
		Required:    required,
		Order:       extInt(schema.Extensions, extensionOrder),
	}
	for _, value := range schema.Enum {
		field.Options = append(field.Options, scalarString(value))
	}
	field.Kind = fieldKind(schema, extString(schema.Extensions, extensionWidget), len(field.Options) > 0)
	return field
}

func fieldKind(schema *openapi3.Schema, widget string, hasOptions bool) panels.FieldKind {
	switch panels.FieldKind(widget) {
	case panels.FieldKindText, panels.FieldKindNumber, panels.FieldKindSelect, panels.FieldKindColor, panels.FieldKindRange:
		return panels.FieldKind(widget)
	}
	if hasOptions {
		return panels.FieldKindSelect
	}
	if schema.Type != nil {
		for _, typ := range schema.Type.Slice() {
			if typ == openapi3.TypeInteger || typ == openapi3.TypeNumber {
				return panels.FieldKindNumber
			}
		}
	}
	return panels.FieldKindText
}

func extString(ext map[string]any, key string) string {
	if len(ext) == 0 {
		return ""
	}
	return scalarString(ext[key])
}

func extBool(ext map[string]any, key string) bool {
	if len(ext) == 0 {
		return false
	}
	switch v := ext[key].(type) {
	case bool:
		return v
	case string:
		parsed, _ := strconv.ParseBool(v)
		return parsed
	default:
		return false
	}
}

func extInt(ext map[string]any, key string) int {
	if len(ext) == 0 {
		return 0
	}
	switch v := ext[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case string:
		parsed, _ := strconv.Atoi(strings.TrimSpace(v))
		return parsed
	default:
		return 0
	}
}

func scalarString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func floatPtrString(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

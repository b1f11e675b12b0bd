package panels

import (
	"sort"
	"strings"
)

// FieldKind selects the input widget used for a field.
type FieldKind string

const (
	FieldKindText   FieldKind = "text"
	FieldKindNumber FieldKind = "number"
	FieldKindSelect FieldKind = "select"
	FieldKindColor  FieldKind = "color"
	FieldKindRange  FieldKind = "range"
)

// Field describes one form input.
type Field struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"kind"`
	Description string    `json:"description,omitempty"`
	Default     string    `json:"default,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty"`
	Min         string    `json:"min,omitempty"`
	Max         string    `json:"max,omitempty"`
	Step        string    `json:"step,omitempty"`
	Required    bool      `json:"required,omitempty"`
	Order       int       `json:"-"`
}

// Descriptor describes a panel and its fields.
type Descriptor struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Submit      string  `json:"submit"`
	Code        bool    `json:"code,omitempty"`
	Method      string  `json:"method,omitempty"`
	Path        string  `json:"path,omitempty"`
	Fields      []Field `json:"fields"`
	Order       int     `json:"-"`
}

// Field returns the field with the given name.
func (d Descriptor) Field(name string) (Field, bool) {
	for _, field := range d.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// SortFields orders fields by Order, then Name.
func SortFields(fields []Field) {
	sort.SliceStable(fields, func(i, j int) bool {
		if fields[i].Order == fields[j].Order {
			return fields[i].Name < fields[j].Name
		}
		return fields[i].Order < fields[j].Order
	})
}

// Values holds raw field input keyed by field name.
type Values map[string]string

// Get returns the raw value for name; missing keys yield "".
func (v Values) Get(name string) string {
	if v == nil {
		return ""
	}
	return v[name]
}

// WithDefaults returns a copy of v where fields absent from v take their
// descriptor default. Present but empty values are kept as entered.
func (v Values) WithDefaults(desc Descriptor) Values {
	out := make(Values, len(desc.Fields)+len(v))
	for key, value := range v {
		out[key] = value
	}
	for _, field := range desc.Fields {
		if _, ok := out[field.Name]; !ok && field.Default != "" {
			out[field.Name] = field.Default
		}
	}
	return out
}

// Normalize trims the field names of v and drops blank keys.
func (v Values) Normalize() Values {
	out := make(Values, len(v))
	for key, value := range v {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out[key] = value
	}
	return out
}

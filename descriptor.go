package valdoc

// Descriptor is a JSON-Schema compatible description of the values a schema
// accepts. Nested descriptors are Descriptor values, properties is a
// map[string]Descriptor, anyOf and allOf are []Descriptor.
type Descriptor map[string]any

// Descriptor keys.
const (
	KeyType                 = "type"
	KeyMinimum              = "minimum"
	KeyMaximum              = "maximum"
	KeyMinLength            = "minLength"
	KeyMaxLength            = "maxLength"
	KeyFormat               = "format"
	KeyPattern              = "pattern"
	KeyEnum                 = "enum"
	KeyNullable             = "nullable"
	KeyDescription          = "description"
	KeyDefault              = "default"
	KeyProperties           = "properties"
	KeyRequired             = "required"
	KeyAdditionalProperties = "additionalProperties"
	KeyItems                = "items"
	KeyAnyOf                = "anyOf"
	KeyAllOf                = "allOf"
)

// JSON types.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// Clone returns a deep copy of d. Maps and slices reachable from d are
// copied; scalar values are shared.
func (d Descriptor) Clone() Descriptor {
	if d == nil {
		return nil
	}
	out := make(Descriptor, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case Descriptor:
		return v.Clone()
	case map[string]any:
		return map[string]any(Descriptor(v).Clone())
	case map[string]Descriptor:
		out := make(map[string]Descriptor, len(v))
		for k, d := range v {
			out[k] = d.Clone()
		}
		return out
	case []Descriptor:
		out := make([]Descriptor, len(v))
		for i, d := range v {
			out[i] = d.Clone()
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), v...)
	default:
		return v
	}
}

// isEnum reports whether d is exactly {"enum": [...]}.
func (d Descriptor) isEnum() bool {
	if len(d) != 1 {
		return false
	}
	_, ok := d[KeyEnum].([]any)
	return ok
}

package valdoc

import (
	"reflect"
	"strings"
)

// convertStruct converts a struct type to an object descriptor. Exported
// fields become properties named by their json tag; the doc tag sets the
// description and required:"true" marks the field required. Constraint tags
// are applied by applyConstraintTags.
func (c *converter) convertStruct(path string, t reflect.Type) (Descriptor, error) {
	if c.visiting[t] {
		return Descriptor{KeyType: TypeObject}, nil
	}
	c.visiting[t] = true
	defer delete(c.visiting, t)

	props := make(map[string]Descriptor)
	required := []string{}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name := jsonFieldName(f)
		if name == "-" {
			continue
		}

		prop, err := c.convert(joinPath(path, KeyProperties+"."+name), f.Type)
		if err != nil {
			return nil, err
		}

		if doc := f.Tag.Get("doc"); doc != "" {
			prop[KeyDescription] = doc
		}
		applyConstraintTags(f, prop)

		props[name] = prop

		if f.Tag.Get("required") == "true" {
			required = append(required, name)
		}
	}

	return Descriptor{
		KeyType:       TypeObject,
		KeyProperties: props,
		KeyRequired:   required,
	}, nil
}

// jsonFieldName returns the JSON field name for a struct field.
func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

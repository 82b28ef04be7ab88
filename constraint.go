package valdoc

import (
	"reflect"
	"strconv"
	"strings"
)

// applyConstraintTags copies the constraint tags of a struct field onto its
// property descriptor. Tags that don't parse are ignored.
func applyConstraintTags(f reflect.StructField, d Descriptor) {
	if tag := f.Tag.Get("minimum"); tag != "" {
		if v, err := strconv.ParseFloat(tag, 64); err == nil {
			d[KeyMinimum] = v
		}
	}
	if tag := f.Tag.Get("maximum"); tag != "" {
		if v, err := strconv.ParseFloat(tag, 64); err == nil {
			d[KeyMaximum] = v
		}
	}
	if tag := f.Tag.Get("minLength"); tag != "" {
		if n, err := strconv.Atoi(tag); err == nil {
			d[KeyMinLength] = n
		}
	}
	if tag := f.Tag.Get("maxLength"); tag != "" {
		if n, err := strconv.Atoi(tag); err == nil {
			d[KeyMaxLength] = n
		}
	}
	if tag := f.Tag.Get("pattern"); tag != "" {
		d[KeyPattern] = tag
	}
	if tag := f.Tag.Get("format"); tag != "" {
		d[KeyFormat] = tag
	}
	if tag := f.Tag.Get("enum"); tag != "" {
		allowed := strings.Split(tag, ",")
		values := make([]any, len(allowed))
		for i, a := range allowed {
			values[i] = a
		}
		d[KeyEnum] = values
	}
}

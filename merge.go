package valdoc

import "reflect"

// mergeAll folds the descriptors of a conjunction into one object. A later
// format replaces an earlier one. Any other key present in two parts with
// different values makes the conjunction conflicting, and it is kept as an
// allOf of its non-empty parts so that no bound is dropped.
func mergeAll(parts []Descriptor) (Descriptor, bool) {
	merged := Descriptor{}
	nonEmpty := make([]Descriptor, 0, len(parts))
	conflict := false

	for _, part := range parts {
		if len(part) == 0 {
			continue
		}
		nonEmpty = append(nonEmpty, part)
		if conflict {
			continue
		}
		for k, v := range part {
			prev, ok := merged[k]
			switch {
			case !ok:
				merged[k] = v
			case isFormatOverride(k, prev, v):
				merged[k] = v
			case reflect.DeepEqual(prev, v):
			default:
				conflict = true
			}
		}
	}

	if conflict {
		return Descriptor{KeyAllOf: nonEmpty}, true
	}
	return merged, false
}

func isFormatOverride(key string, prev, next any) bool {
	if key != KeyFormat {
		return false
	}
	_, prevOK := prev.(string)
	_, nextOK := next.(string)
	return prevOK && nextOK
}

// mergeAny builds the descriptor of a disjunction. Branches that are all
// pure enums fuse into one enum, first occurrence wins; otherwise branches
// are kept in order under anyOf.
func mergeAny(parts []Descriptor) Descriptor {
	if len(parts) == 0 {
		return Descriptor{}
	}

	for _, part := range parts {
		if !part.isEnum() {
			return Descriptor{KeyAnyOf: parts}
		}
	}

	values := []any{}
	for _, part := range parts {
		for _, v := range part[KeyEnum].([]any) {
			if !containsValue(values, v) {
				values = append(values, v)
			}
		}
	}
	return Descriptor{KeyEnum: values}
}

func containsValue(values []any, v any) bool {
	for _, existing := range values {
		if sameValue(existing, v) {
			return true
		}
	}
	return false
}

// sameValue reports whether a and b encode to the same JSON value. Numbers
// compare by value across Go numeric types, so 1 and 1.0 are equal.
func sameValue(a, b any) bool {
	fa, aNum := numericValue(a)
	fb, bNum := numericValue(b)
	if aNum && bNum {
		return fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func numericValue(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	//exhaustive:ignore
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

package valdoc

import (
	"fmt"
	"reflect"
	"slices"
)

// stringItems is the item and property schema used when nothing narrower is
// known.
func stringItems() Descriptor {
	return Descriptor{KeyType: TypeString}
}

// convertArray converts a sequence type or literal.
func (c *converter) convertArray(path string, cl classification) (Descriptor, error) {
	items := stringItems()
	if cl.hasItems {
		d, err := c.convert(joinPath(path, KeyItems), cl.items)
		if err != nil {
			return nil, err
		}
		if len(d) > 0 {
			items = d
		}
	}
	return Descriptor{KeyType: TypeArray, KeyItems: items}, nil
}

// convertMapping converts a map type. An unconstrained value type allows any
// additional property.
func (c *converter) convertMapping(path string, value any) (Descriptor, error) {
	d, err := c.convert(joinPath(path, KeyAdditionalProperties), value)
	if err != nil {
		return nil, err
	}
	return Descriptor{KeyType: TypeObject, KeyAdditionalProperties: additional(d)}, nil
}

func additional(d Descriptor) any {
	if len(d) == 0 {
		return true
	}
	return d
}

// objectKey is one documented key of a Map schema and the marker, if any,
// that applies to it.
type objectKey struct {
	name   string
	marker *Marker
}

// convertObject converts a Map schema. Keys are visited in declared order;
// a generic string key supplies additionalProperties instead of a property.
func (c *converter) convertObject(path string, entries Map, extra ExtraPolicy) (Descriptor, error) {
	props := make(map[string]Descriptor)
	required := []string{}
	var extraProps any
	if extra == AllowExtra {
		extraProps = true
	}

	for _, e := range entries {
		keys, generic, allowExtra := c.expandKey(path, e.Key, nil)

		if generic {
			d, err := c.convert(joinPath(path, KeyAdditionalProperties), e.Value)
			if err != nil {
				return nil, err
			}
			extraProps = additional(d)
		}
		if allowExtra && extraProps == nil {
			extraProps = true
		}

		for _, k := range keys {
			d, err := c.convertProperty(joinPath(path, KeyProperties+"."+k.name), e.Value, k.marker)
			if err != nil {
				return nil, err
			}
			props[k.name] = d
			if k.marker != nil && k.marker.required() && !slices.Contains(required, k.name) {
				required = append(required, k.name)
			}
		}
	}

	d := Descriptor{KeyType: TypeObject}
	if len(props) > 0 || extraProps == nil {
		d[KeyProperties] = props
		d[KeyRequired] = required
	}
	if extraProps != nil {
		d[KeyAdditionalProperties] = extraProps
	}
	return d, nil
}

// convertProperty converts the value schema of one property and applies the
// marker's description and default. Each property gets its own descriptor.
func (c *converter) convertProperty(path string, value any, marker *Marker) (Descriptor, error) {
	d, err := c.convert(path, value)
	if err != nil {
		return nil, err
	}
	if len(d) == 0 {
		d = stringItems()
	}
	if marker == nil {
		return d, nil
	}
	if marker.Description != "" {
		d[KeyDescription] = marker.Description
	}
	if marker.HasDefault {
		d[KeyDefault] = cloneValue(marker.defaultValue())
	}
	return d, nil
}

// expandKey resolves a Map key into the property names it documents. An
// AnyOf key documents each of its members; the innermost marker applies.
// generic reports a string-typed key, allowExtra an Extra key.
func (c *converter) expandKey(path string, key any, outer *Marker) (keys []objectKey, generic, allowExtra bool) {
	switch k := key.(type) {
	case string:
		return []objectKey{{name: k, marker: outer}}, false, false
	case Marker:
		if k.Kind == MarkerRemove {
			return nil, false, false
		}
		return c.expandKey(path, k.Key, &k)
	case AnyOf:
		for _, member := range k.Validators {
			ks, g, x := c.expandKey(path, member, outer)
			keys = append(keys, ks...)
			generic = generic || g
			allowExtra = allowExtra || x
		}
		return keys, generic, allowExtra
	case ExtraKey:
		return nil, false, true
	case reflect.Type:
		if k.Kind() == reflect.String {
			return nil, true, false
		}
	}

	rv := reflect.ValueOf(key)
	//exhaustive:ignore
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return []objectKey{{name: fmt.Sprint(key), marker: outer}}, false, false
	}

	c.logger.Debug("undocumented schema key", "path", displayPath(path), "type", fmt.Sprintf("%T", key))
	return nil, false, false
}

package valdoc

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
)

// Serializer converts nodes the built-in rules don't cover, or overrides
// them. It is consulted for every node before the built-in rules. Returning
// ErrUnsupported declines the node; any descriptor returned with a nil
// error, including an empty one, is used as is. Other errors abort the
// conversion.
type Serializer func(node any) (Descriptor, error)

// Option configures a conversion.
type Option func(*converter)

// WithSerializer sets the custom serializer.
func WithSerializer(s Serializer) Option {
	return func(c *converter) {
		c.serializer = s
	}
}

// WithLogger sets the logger used for debug output about unrecognized nodes
// and conflicting conjunctions. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *converter) {
		c.logger = logger
	}
}

// converter holds the settings and per-call state of one conversion.
type converter struct {
	serializer Serializer
	logger     *slog.Logger

	// structs being converted, to stop on self-referencing types.
	visiting map[reflect.Type]bool
}

func newConverter(opts []Option) *converter {
	c := &converter{
		logger:   slog.New(slog.DiscardHandler),
		visiting: make(map[reflect.Type]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert returns the descriptor of node. Unrecognized nodes convert to the
// unconstrained descriptor {}. The only error source is the serializer; its
// errors are returned as *ConvertError.
func Convert(node any, opts ...Option) (Descriptor, error) {
	return newConverter(opts).convert("", node)
}

// MustConvert is like Convert but panics on error. It is meant for schemas
// declared at package level.
func MustConvert(node any, opts ...Option) Descriptor {
	d, err := Convert(node, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

func (c *converter) convert(path string, node any) (Descriptor, error) {
	if c.serializer != nil {
		d, err := c.serializer(node)
		switch {
		case err == nil:
			if d == nil {
				return Descriptor{}, nil
			}
			return d.Clone(), nil
		case !errors.Is(err, ErrUnsupported):
			return nil, &ConvertError{Path: displayPath(path), Err: err}
		}
	}

	cl := classify(node)
	d, err := c.dispatch(path, node, cl)
	if err != nil {
		return nil, err
	}
	if cl.nullable && len(d) > 0 {
		d[KeyNullable] = true
	}
	return d, nil
}

func (c *converter) dispatch(path string, node any, cl classification) (Descriptor, error) {
	switch cl.kind {
	case kindPrimitive:
		d := Descriptor{KeyType: cl.jsonType}
		if cl.format != "" {
			d[KeyFormat] = cl.format
		}
		return d, nil

	case kindConstant:
		return Descriptor{KeyEnum: []any{cl.value}}, nil

	case kindEnum:
		return Descriptor{KeyEnum: cl.values}, nil

	case kindNumberRange:
		d := Descriptor{}
		if cl.minimum != nil {
			d[KeyMinimum] = *cl.minimum
		}
		if cl.maximum != nil {
			d[KeyMaximum] = *cl.maximum
		}
		return d, nil

	case kindLengthRange:
		d := Descriptor{}
		if cl.minLength != nil {
			d[KeyMinLength] = *cl.minLength
		}
		if cl.maxLength != nil {
			d[KeyMaxLength] = *cl.maxLength
		}
		return d, nil

	case kindPattern:
		return Descriptor{KeyType: TypeString, KeyPattern: cl.pattern}, nil

	case kindArray:
		return c.convertArray(path, cl)

	case kindObject:
		return c.convertObject(path, cl.entries, cl.extra)

	case kindMapping:
		return c.convertMapping(path, cl.valueSchema)

	case kindStruct:
		return c.convertStruct(path, cl.typ)

	case kindAllOf:
		return c.convertAll(path, cl.members)

	case kindAnyOf:
		return c.convertAny(path, cl.members)

	case kindWrapped:
		return c.convert(path, cl.inner)

	default:
		if node != nil {
			c.logger.Debug("unrecognized schema node", "path", displayPath(path), "type", fmt.Sprintf("%T", node))
		}
		return Descriptor{}, nil
	}
}

// convertAll converts a conjunction.
func (c *converter) convertAll(path string, members []any) (Descriptor, error) {
	parts, err := c.convertEach(joinPath(path, KeyAllOf), members)
	if err != nil {
		return nil, err
	}
	d, conflict := mergeAll(parts)
	if conflict {
		c.logger.Debug("conflicting constraints kept as allOf", "path", displayPath(path), "parts", len(d[KeyAllOf].([]Descriptor)))
	}
	return d, nil
}

// convertAny converts a disjunction.
func (c *converter) convertAny(path string, members []any) (Descriptor, error) {
	parts, err := c.convertEach(joinPath(path, KeyAnyOf), members)
	if err != nil {
		return nil, err
	}
	return mergeAny(parts), nil
}

func (c *converter) convertEach(path string, nodes []any) ([]Descriptor, error) {
	parts := make([]Descriptor, 0, len(nodes))
	for i, n := range nodes {
		d, err := c.convert(joinPath(path, strconv.Itoa(i)), n)
		if err != nil {
			return nil, err
		}
		parts = append(parts, d)
	}
	return parts, nil
}

func joinPath(path, elem string) string {
	if path == "" {
		return elem
	}
	return path + "." + elem
}

func displayPath(path string) string {
	if path == "" {
		return "$"
	}
	return path
}

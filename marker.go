package valdoc

// MarkerKind identifies how a Map key is treated by a validator.
type MarkerKind int

// Marker kinds.
const (
	MarkerRequired MarkerKind = iota + 1
	MarkerOptional
	MarkerExclusive
	MarkerInclusive
	MarkerRemove
)

// Marker wraps a Map key with requiredness, a default and a description.
// Group names the exclusion or inclusion group of Exclusive and Inclusive
// markers.
type Marker struct {
	Key         any
	Kind        MarkerKind
	Description string
	Default     any
	HasDefault  bool
	Group       string
}

// MarkerOption configures a Marker.
type MarkerOption func(*Marker)

// WithDescription sets the human-readable description of a key.
func WithDescription(desc string) MarkerOption {
	return func(m *Marker) {
		m.Description = desc
	}
}

// WithDefault sets the default value of a key. A func() any default is
// called each time the default is needed.
func WithDefault(v any) MarkerOption {
	return func(m *Marker) {
		m.Default = v
		m.HasDefault = true
	}
}

func newMarker(key any, kind MarkerKind, opts []MarkerOption) Marker {
	m := Marker{Key: key, Kind: kind}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Required marks key as required.
func Required(key any, opts ...MarkerOption) Marker {
	return newMarker(key, MarkerRequired, opts)
}

// Optional marks key as optional.
func Optional(key any, opts ...MarkerOption) Marker {
	return newMarker(key, MarkerOptional, opts)
}

// Exclusive marks key as optional and mutually exclusive with the other
// keys of group.
func Exclusive(key any, group string, opts ...MarkerOption) Marker {
	m := newMarker(key, MarkerExclusive, opts)
	m.Group = group
	return m
}

// Inclusive marks key as optional but required together with the other keys
// of group.
func Inclusive(key any, group string, opts ...MarkerOption) Marker {
	m := newMarker(key, MarkerInclusive, opts)
	m.Group = group
	return m
}

// Remove marks key as removed from validated output. Removed keys are not
// documented.
func Remove(key any) Marker {
	return Marker{Key: key, Kind: MarkerRemove}
}

// required reports whether the marker puts its key in the required list.
func (m Marker) required() bool {
	return m.Kind == MarkerRequired
}

// defaultValue resolves the marker default, calling default factories.
func (m Marker) defaultValue() any {
	if f, ok := m.Default.(func() any); ok {
		return f()
	}
	return m.Default
}

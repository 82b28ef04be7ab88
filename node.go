package valdoc

import (
	"reflect"
	"time"
)

// Type objects for the primitive and container types. Any reflect.Type is a
// valid schema node; these are the common ones.
var (
	Int   = reflect.TypeFor[int]()
	Float = reflect.TypeFor[float64]()
	Str   = reflect.TypeFor[string]()
	Bool  = reflect.TypeFor[bool]()
	Dict  = reflect.TypeFor[map[string]any]()
	List  = reflect.TypeFor[[]any]()
	Set   = reflect.TypeFor[map[any]struct{}]()
)

// TypeOf returns the type object for T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// NullType is the type of None.
type NullType struct{}

// None is the null value used as a schema constant or union member.
var None = NullType{}

// Wildcard matches any value.
type Wildcard struct{}

// Anything is the wildcard node. It converts to the unconstrained descriptor.
var Anything = Wildcard{}

// TypeParam is an unbound type parameter in a declared input type.
type TypeParam struct {
	Name string
}

// Enumeration is implemented by types with a fixed set of values. The values
// are what a validator stores, not the names of the members.
type Enumeration interface {
	EnumValues() []any
}

// Coercion converts its input to Type before validating it.
type Coercion struct {
	Type any
}

// Coerce returns a coercion to t.
func Coerce(t any) Coercion {
	return Coercion{Type: t}
}

// NumberRange bounds a numeric value. Clamp marks a range that clamps
// instead of rejecting.
type NumberRange struct {
	Min   *float64
	Max   *float64
	Clamp bool
}

// LengthRange bounds the length of a string or collection.
type LengthRange struct {
	Min *int
	Max *int
}

// BoundOption sets one side of a range.
type BoundOption func(*bounds)

type bounds struct {
	min *float64
	max *float64
}

// Min sets the lower bound.
func Min(v float64) BoundOption {
	return func(b *bounds) {
		b.min = &v
	}
}

// Max sets the upper bound.
func Max(v float64) BoundOption {
	return func(b *bounds) {
		b.max = &v
	}
}

func collectBounds(opts []BoundOption) bounds {
	var b bounds
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Range returns a numeric range constraint.
func Range(opts ...BoundOption) NumberRange {
	b := collectBounds(opts)
	return NumberRange{Min: b.min, Max: b.max}
}

// Clamp returns a numeric range that clamps out-of-range values.
func Clamp(opts ...BoundOption) NumberRange {
	b := collectBounds(opts)
	return NumberRange{Min: b.min, Max: b.max, Clamp: true}
}

// Length returns a length constraint. Fractional bounds are truncated.
func Length(opts ...BoundOption) LengthRange {
	b := collectBounds(opts)
	var r LengthRange
	if b.min != nil {
		n := int(*b.min)
		r.Min = &n
	}
	if b.max != nil {
		n := int(*b.max)
		r.Max = &n
	}
	return r
}

// StringFormat is a string transform or validation modifier. Its value is
// the format tag written to the descriptor.
type StringFormat string

// String modifiers.
const (
	Lower      StringFormat = "lower"
	Upper      StringFormat = "upper"
	Capitalize StringFormat = "capitalize"
	Title      StringFormat = "title"
	Strip      StringFormat = "strip"
	Email      StringFormat = "email"
	URL        StringFormat = "url"
	FqdnURL    StringFormat = "fqdnurl"
)

// DatetimeValidator accepts strings parsed with Layout.
type DatetimeValidator struct {
	Layout string
}

// Datetime returns a date-time validator. The layout defaults to RFC 3339.
func Datetime(layout ...string) DatetimeValidator {
	v := DatetimeValidator{Layout: time.RFC3339}
	if len(layout) > 0 {
		v.Layout = layout[0]
	}
	return v
}

// Pattern accepts strings matching a regular expression.
type Pattern struct {
	Expr string
}

// Match returns a regular expression validator.
func Match(expr string) Pattern {
	return Pattern{Expr: expr}
}

// Membership accepts values contained in Container: a slice of values or a
// Map, whose keys are the accepted values.
type Membership struct {
	Container any
}

// In returns a membership validator over values.
func In(values ...any) Membership {
	return Membership{Container: values}
}

// InMap returns a membership validator over the keys of m.
func InMap(m Map) Membership {
	return Membership{Container: m}
}

// Nullable accepts null or whatever Node accepts.
type Nullable struct {
	Node any
}

// Maybe returns a validator that also accepts null.
func Maybe(node any) Nullable {
	return Nullable{Node: node}
}

// AllOf requires every validator to hold, applied in order.
type AllOf struct {
	Validators []any
}

// All returns a conjunction of validators.
func All(validators ...any) AllOf {
	return AllOf{Validators: validators}
}

// AnyOf requires at least one validator to hold.
type AnyOf struct {
	Validators []any
}

// Any returns a disjunction of validators.
func Any(validators ...any) AnyOf {
	return AnyOf{Validators: validators}
}

// ExtraPolicy controls keys not declared by a Map schema.
type ExtraPolicy int

// Extra key policies.
const (
	PreventExtra ExtraPolicy = iota
	AllowExtra
	RemoveExtra
)

// Schema wraps a node with schema-level settings.
type Schema struct {
	Node  any
	Extra ExtraPolicy
}

// Entry is a single key/value pair of a Map schema.
type Entry struct {
	Key   any
	Value any
}

// Map is a dict-shaped schema. Entries keep their declared order.
type Map []Entry

// ExtraKey is the type of Extra.
type ExtraKey struct{}

// Extra used as a Map key accepts any undeclared key.
var Extra = ExtraKey{}

// Func is a callable validator whose single parameter has the declared type
// Input. A nil Input means the parameter is unannotated.
type Func struct {
	Name  string
	Input any
}

// Union is a declared type that is one of its members. A nil or None
// member makes the union nullable.
type Union []any

// OrNone returns the declared type t | None.
func OrNone(t any) Union {
	return Union{t, None}
}

package valdoc

import (
	"fmt"
	"reflect"
	"slices"
	"time"
)

// kind is the classification of a schema node.
type kind int

const (
	kindUnconstrained kind = iota
	kindPrimitive
	kindConstant
	kindEnum
	kindNumberRange
	kindLengthRange
	kindPattern
	kindArray
	kindObject
	kindMapping
	kindStruct
	kindAllOf
	kindAnyOf
	kindWrapped
)

// classification is the result of classifying one node, with the data the
// converter needs for that kind.
type classification struct {
	kind     kind
	nullable bool

	jsonType string // kindPrimitive
	format   string // kindPrimitive

	value  any   // kindConstant
	values []any // kindEnum

	minimum, maximum     *float64 // kindNumberRange
	minLength, maxLength *int     // kindLengthRange
	pattern              string   // kindPattern

	items    any  // kindArray
	hasItems bool // kindArray

	entries Map         // kindObject
	extra   ExtraPolicy // kindObject

	valueSchema any          // kindMapping
	typ         reflect.Type // kindStruct
	members     []any        // kindAllOf, kindAnyOf
	inner       any          // kindWrapped
}

var (
	enumerationType = reflect.TypeFor[Enumeration]()
	timeType        = reflect.TypeFor[time.Time]()
	durationType    = reflect.TypeFor[time.Duration]()
	nullType        = reflect.TypeFor[NullType]()
	emptyStructType = reflect.TypeFor[struct{}]()
)

// classify determines the kind of node. Unrecognized nodes classify as
// unconstrained.
func classify(node any) classification {
	switch n := node.(type) {
	case nil, NullType:
		return classification{kind: kindConstant, value: nil}
	case Wildcard, TypeParam, ExtraKey:
		return classification{kind: kindUnconstrained}
	case reflect.Type:
		return classifyType(n)
	case Coercion:
		if t, ok := n.Type.(reflect.Type); ok {
			return classifyType(t)
		}
		return classification{kind: kindWrapped, inner: n.Type}
	case StringFormat:
		return classification{kind: kindPrimitive, jsonType: TypeString, format: string(n)}
	case DatetimeValidator:
		return classification{kind: kindPrimitive, jsonType: TypeString, format: "date-time"}
	case Pattern:
		return classification{kind: kindPattern, pattern: n.Expr}
	case NumberRange:
		return classification{kind: kindNumberRange, minimum: n.Min, maximum: n.Max}
	case LengthRange:
		return classification{kind: kindLengthRange, minLength: n.Min, maxLength: n.Max}
	case Membership:
		return classification{kind: kindEnum, values: containerValues(n.Container)}
	case Nullable:
		return classification{kind: kindWrapped, inner: n.Node, nullable: true}
	case AllOf:
		return classification{kind: kindAllOf, members: n.Validators}
	case AnyOf:
		return classification{kind: kindAnyOf, members: n.Validators}
	case Schema:
		if m, ok := n.Node.(Map); ok {
			return classification{kind: kindObject, entries: m, extra: n.Extra}
		}
		return classification{kind: kindWrapped, inner: n.Node}
	case Map:
		return classification{kind: kindObject, entries: n}
	case Func:
		if n.Input == nil {
			return classification{kind: kindUnconstrained}
		}
		return classifyDeclared(n.Input)
	case Union:
		return classifyDeclared(n)
	case []any:
		return sequenceLiteral(n)
	}

	rv := reflect.ValueOf(node)
	//exhaustive:ignore
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return classification{kind: kindConstant, value: node}
	case reflect.Func:
		return classifyFunc(rv.Type())
	case reflect.Slice, reflect.Array:
		elems := make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
		return sequenceLiteral(elems)
	default:
		return classification{kind: kindUnconstrained}
	}
}

// classifyType classifies a type object.
func classifyType(t reflect.Type) classification {
	if values, ok := enumValues(t); ok {
		return classification{kind: kindEnum, values: values}
	}

	switch t {
	case timeType:
		return classification{kind: kindPrimitive, jsonType: TypeString, format: "date-time"}
	case durationType:
		return classification{kind: kindPrimitive, jsonType: TypeString, format: "duration"}
	case nullType:
		return classification{kind: kindConstant, value: nil}
	}

	//exhaustive:ignore
	switch t.Kind() {
	case reflect.Bool:
		return classification{kind: kindPrimitive, jsonType: TypeBoolean}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return classification{kind: kindPrimitive, jsonType: TypeInteger}
	case reflect.Float32, reflect.Float64:
		return classification{kind: kindPrimitive, jsonType: TypeNumber}
	case reflect.String:
		return classification{kind: kindPrimitive, jsonType: TypeString}
	case reflect.Pointer:
		return classification{kind: kindWrapped, inner: t.Elem(), nullable: true}
	case reflect.Slice, reflect.Array:
		return classification{kind: kindArray, items: t.Elem(), hasItems: true}
	case reflect.Map:
		if t.Elem() == emptyStructType {
			return classification{kind: kindArray, items: t.Key(), hasItems: true}
		}
		return classification{kind: kindMapping, valueSchema: t.Elem()}
	case reflect.Struct:
		return classification{kind: kindStruct, typ: t}
	case reflect.Func:
		return classifyFunc(t)
	default:
		return classification{kind: kindUnconstrained}
	}
}

// classifyFunc classifies a callable by the static type of its single
// parameter.
func classifyFunc(t reflect.Type) classification {
	if t.NumIn() != 1 {
		return classification{kind: kindUnconstrained}
	}
	return classifyDeclared(t.In(0))
}

// classifyDeclared classifies the declared input type of a callable. Null
// members of a union make the result nullable and are dropped.
func classifyDeclared(decl any) classification {
	u, ok := decl.(Union)
	if !ok {
		return classification{kind: kindWrapped, inner: decl}
	}

	members := make([]any, 0, len(u))
	for _, m := range u {
		if isNullMember(m) {
			continue
		}
		members = append(members, m)
	}
	nullable := len(members) < len(u)

	switch len(members) {
	case 0:
		return classification{kind: kindConstant, value: nil}
	case 1:
		return classification{kind: kindWrapped, inner: members[0], nullable: nullable}
	default:
		return classification{kind: kindAnyOf, members: members, nullable: nullable}
	}
}

func isNullMember(m any) bool {
	switch m := m.(type) {
	case nil, NullType:
		return true
	case reflect.Type:
		return m == nullType
	default:
		return false
	}
}

// sequenceLiteral classifies a literal sequence of schemas. One element is
// the item schema; several are alternatives.
func sequenceLiteral(elems []any) classification {
	switch len(elems) {
	case 0:
		return classification{kind: kindArray}
	case 1:
		return classification{kind: kindArray, items: elems[0], hasItems: true}
	default:
		return classification{kind: kindArray, items: AnyOf{Validators: elems}, hasItems: true}
	}
}

// enumValues returns the values of an enumeration type. Methods declared
// on the pointer receiver are found too.
func enumValues(t reflect.Type) ([]any, bool) {
	var v reflect.Value
	switch {
	case t.Kind() == reflect.Pointer && t.Implements(enumerationType):
		v = reflect.New(t.Elem())
	case t.Kind() != reflect.Interface && t.Implements(enumerationType):
		v = reflect.Zero(t)
	case t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(enumerationType):
		v = reflect.New(t)
	default:
		return nil, false
	}
	e, ok := v.Interface().(Enumeration)
	if !ok {
		return nil, false
	}
	return slices.Clone(e.EnumValues()), true
}

// containerValues returns the members of a membership container in order.
// Go maps have no order, so their keys are sorted by their printed form.
func containerValues(container any) []any {
	switch c := container.(type) {
	case []any:
		return slices.Clone(c)
	case Map:
		keys := make([]any, len(c))
		for i, e := range c {
			keys[i] = e.Key
		}
		return keys
	}

	rv := reflect.ValueOf(container)
	//exhaustive:ignore
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	case reflect.Map:
		keys := rv.MapKeys()
		out := make([]any, len(keys))
		for i, k := range keys {
			out[i] = k.Interface()
		}
		slices.SortFunc(out, func(a, b any) int {
			sa, sb := fmt.Sprint(a), fmt.Sprint(b)
			switch {
			case sa < sb:
				return -1
			case sa > sb:
				return 1
			default:
				return 0
			}
		})
		return out
	default:
		return []any{}
	}
}

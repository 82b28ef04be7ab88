package valdoc

// Test-only exports for internal functions.
var (
	MergeAll            = mergeAll
	MergeAny            = mergeAny
	JSONFieldName       = jsonFieldName
	ApplyConstraintTags = applyConstraintTags
)

var kindNames = map[kind]string{
	kindUnconstrained: "unconstrained",
	kindPrimitive:     "primitive",
	kindConstant:      "constant",
	kindEnum:          "enum",
	kindNumberRange:   "range",
	kindLengthRange:   "length",
	kindPattern:       "pattern",
	kindArray:         "array",
	kindObject:        "object",
	kindMapping:       "mapping",
	kindStruct:        "struct",
	kindAllOf:         "allOf",
	kindAnyOf:         "anyOf",
	kindWrapped:       "wrapped",
}

// Classification is the exported view of a node classification.
type Classification struct {
	Kind     string
	Nullable bool
	JSONType string
	Format   string
	Values   []any
}

// Classify classifies node.
func Classify(node any) Classification {
	c := classify(node)
	return Classification{
		Kind:     kindNames[c.kind],
		Nullable: c.nullable,
		JSONType: c.jsonType,
		Format:   c.format,
		Values:   c.values,
	}
}

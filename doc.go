// Package valdoc converts composable validation schemas into JSON-Schema
// compatible descriptors for API documentation. Validation rules are the
// source of truth: the same values that describe what a validator accepts
// are turned into OpenAPI schema objects and parameters.
//
// A schema is built from plain values:
//
//	schema := valdoc.Map{
//	    {Key: valdoc.Required("name", valdoc.WithDescription("Display name")), Value: valdoc.All(valdoc.Str, valdoc.Length(valdoc.Min(5)))},
//	    {Key: valdoc.Required("age"), Value: valdoc.All(valdoc.Coerce(valdoc.Int), valdoc.Range(valdoc.Min(18)))},
//	    {Key: valdoc.Optional("hobby", valdoc.WithDefault("none")), Value: valdoc.Str},
//	}
//
//	d, err := valdoc.Convert(schema)
//
// Conversion never fails on an unknown node; it degrades to the
// unconstrained descriptor {}. Callers extend or override conversion with a
// Serializer, consulted at every depth before the built-in rules:
//
//	d, err := valdoc.Convert(schema, valdoc.WithSerializer(func(node any) (valdoc.Descriptor, error) {
//	    if node == valdoc.Str {
//	        return valdoc.Descriptor{"type": "string", "pattern": "^[a-z]+$"}, nil
//	    }
//	    return nil, valdoc.ErrUnsupported
//	}))
//
// Named schemas can be collected in a Catalog and served as an OpenAPI 3.1
// components document:
//
//	c := valdoc.NewCatalog(valdoc.WithTitle("Schemas"), valdoc.WithVersion("1.0.0"))
//	c.Add("User", schema)
//	http.ListenAndServe(":8080", c.Handler())
package valdoc

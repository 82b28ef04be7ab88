package valdoc

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Document is an OpenAPI 3.1 document holding named component schemas.
type Document struct {
	OpenAPI    string     `json:"openapi" yaml:"openapi"`
	Info       Info       `json:"info" yaml:"info"`
	Components Components `json:"components" yaml:"components"`
}

// Info holds document metadata.
type Info struct {
	Title   string `json:"title" yaml:"title"`
	Version string `json:"version" yaml:"version"`
}

// Components holds the reusable schemas of a document.
type Components struct {
	Schemas map[string]Descriptor `json:"schemas" yaml:"schemas"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string     `json:"name" yaml:"name"`
	In          string     `json:"in" yaml:"in"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool       `json:"required,omitempty" yaml:"required,omitempty"`
	Schema      Descriptor `json:"schema" yaml:"schema"`
}

// Parameters converts an object schema into one parameter per property,
// located in in ("path", "query", "header" or "cookie"). Parameters are
// sorted by name. Property descriptions move to the parameter, and path
// parameters are always required. A schema that doesn't convert to an
// object yields no parameters.
func Parameters(node any, in string, opts ...Option) ([]Parameter, error) {
	d, err := Convert(node, opts...)
	if err != nil {
		return nil, err
	}

	props, _ := d[KeyProperties].(map[string]Descriptor)
	required, _ := d[KeyRequired].([]string)

	params := make([]Parameter, 0, len(props))
	for _, name := range slices.Sorted(maps.Keys(props)) {
		schema := props[name]
		p := Parameter{
			Name:     name,
			In:       in,
			Required: in == "path" || slices.Contains(required, name),
			Schema:   schema,
		}
		if desc, ok := schema[KeyDescription].(string); ok {
			p.Description = desc
			delete(schema, KeyDescription)
		}
		params = append(params, p)
	}
	return params, nil
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithTitle sets the document title.
func WithTitle(title string) CatalogOption {
	return func(c *Catalog) {
		c.title = title
	}
}

// WithVersion sets the document version.
func WithVersion(version string) CatalogOption {
	return func(c *Catalog) {
		c.version = version
	}
}

// WithConvertOptions sets the options used to convert every schema.
func WithConvertOptions(opts ...Option) CatalogOption {
	return func(c *Catalog) {
		c.convertOpts = append(c.convertOpts, opts...)
	}
}

// WithMiddleware adds middleware to the catalog handler. The first
// middleware is the outermost.
func WithMiddleware(mw ...Middleware) CatalogOption {
	return func(c *Catalog) {
		c.middleware = append(c.middleware, mw...)
	}
}

// Catalog is a named collection of schemas. It is safe for concurrent use.
type Catalog struct {
	title       string
	version     string
	convertOpts []Option
	middleware  []Middleware

	mu    sync.RWMutex
	names []string
	nodes map[string]any
}

// NewCatalog creates an empty catalog.
func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{
		title:   "Schemas",
		version: "1.0.0",
		nodes:   make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add registers node under name. Names must be non-empty, free of slashes
// and whitespace, and unique within the catalog.
func (c *Catalog) Add(name string, node any) error {
	if name == "" || strings.ContainsAny(name, "/ \t\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.nodes[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	c.names = append(c.names, name)
	c.nodes[name] = node
	return nil
}

// Names returns the registered names in registration order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.names)
}

// Schema converts the schema registered under name.
func (c *Catalog) Schema(name string) (Descriptor, error) {
	c.mu.RLock()
	node, ok := c.nodes[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, name)
	}

	d, err := Convert(node, c.convertOpts...)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", name, err)
	}
	return d, nil
}

// Document converts every registered schema into an OpenAPI document.
func (c *Catalog) Document() (Document, error) {
	doc := Document{
		OpenAPI: "3.1.0",
		Info: Info{
			Title:   c.title,
			Version: c.version,
		},
		Components: Components{
			Schemas: make(map[string]Descriptor),
		},
	}

	for _, name := range c.Names() {
		d, err := c.Schema(name)
		if err != nil {
			return Document{}, err
		}
		doc.Components.Schemas[name] = d
	}
	return doc, nil
}

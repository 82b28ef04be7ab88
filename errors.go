package valdoc

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned by a Serializer to decline a node. Conversion
// then continues with the built-in rules.
var ErrUnsupported = errors.New("valdoc: unsupported node")

// Catalog errors.
var (
	ErrInvalidName   = errors.New("invalid schema name")
	ErrDuplicateName = errors.New("duplicate schema name")
	ErrUnknownSchema = errors.New("unknown schema")
)

// ConvertError reports a Serializer failure and where in the schema it
// happened. Path is a dotted descriptor path such as "properties.name.items";
// the root is "$".
type ConvertError struct {
	Path string
	Err  error
}

// Error returns the path and the underlying error.
func (e *ConvertError) Error() string {
	return fmt.Sprintf("convert %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConvertError) Unwrap() error { return e.Err }

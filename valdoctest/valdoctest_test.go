package valdoctest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/valdoc"
	"github.com/bjaus/valdoc/valdoctest"
)

func TestJSONEq(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		node any
		want string
	}{
		"bounded integer": {
			node: valdoc.All(valdoc.Coerce(valdoc.Int), valdoc.Range(valdoc.Min(1))),
			want: `{"type": "integer", "minimum": 1}`,
		},
		"object": {
			node: valdoc.Map{{Key: valdoc.Required("id"), Value: valdoc.Str}},
			want: `{"type": "object", "properties": {"id": {"type": "string"}}, "required": ["id"]}`,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			valdoctest.JSONEq(t, tc.want, tc.node)
		})
	}
}

func TestEqual_ignoresNumericGoTypes(t *testing.T) {
	t.Parallel()

	// minLength converts to an int; an int64 or float64 in the expectation
	// encodes the same way.
	valdoctest.Equal(t,
		valdoc.Descriptor{"type": "string", "minLength": int64(3)},
		valdoc.All(valdoc.Str, valdoc.Length(valdoc.Min(3))),
	)
}

func TestConvert_withOptions(t *testing.T) {
	t.Parallel()

	serializer := func(node any) (valdoc.Descriptor, error) {
		if node == valdoc.Bool {
			return valdoc.Descriptor{"type": "boolean", "default": false}, nil
		}
		return nil, valdoc.ErrUnsupported
	}

	d := valdoctest.Convert(t, valdoc.Bool, valdoc.WithSerializer(serializer))
	assert.Equal(t, false, d["default"])
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `{"enum":["a"]}`, valdoctest.Marshal(t, valdoc.Descriptor{"enum": []any{"a"}}))
}

// Package valdoctest provides test helpers for code that documents its
// validation schemas with valdoc.
package valdoctest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/valdoc"
)

// Convert converts node and fails the test on error.
func Convert(t testing.TB, node any, opts ...valdoc.Option) valdoc.Descriptor {
	t.Helper()
	d, err := valdoc.Convert(node, opts...)
	require.NoError(t, err, "valdoctest: convert")
	return d
}

// JSONEq asserts that node converts to the descriptor encoded by want.
// Comparison is on the JSON form, so numeric Go types don't matter.
func JSONEq(t testing.TB, want string, node any, opts ...valdoc.Option) bool {
	t.Helper()
	return assert.JSONEq(t, want, Marshal(t, Convert(t, node, opts...)))
}

// Equal asserts that node converts to want, compared on the JSON form.
func Equal(t testing.TB, want valdoc.Descriptor, node any, opts ...valdoc.Option) bool {
	t.Helper()
	return assert.JSONEq(t, Marshal(t, want), Marshal(t, Convert(t, node, opts...)))
}

// Marshal encodes v as JSON and fails the test on error.
func Marshal(t testing.TB, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err, "valdoctest: marshal")
	return string(b)
}

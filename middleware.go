package valdoc

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Middleware is the standard middleware signature compatible with the entire
// Go middleware ecosystem.
type Middleware func(next http.Handler) http.Handler

// chain wraps h so that mw[0] is the outermost middleware.
func chain(h http.Handler, mw []Middleware) http.Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

// Recovery returns middleware that turns a panic while converting a catalog
// schema, typically from a Serializer, into a 500. The log record names the
// catalog route and the schema being served.
func Recovery() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				slog.ErrorContext(r.Context(), "schema conversion panicked",
					"route", r.Pattern,
					"schema", schemaName(r),
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// schemaName returns the schema a catalog request addresses, or "*" for the
// whole document. It is only meaningful once the catalog mux has matched r.
func schemaName(r *http.Request) string {
	if name := r.PathValue("name"); name != "" {
		return name
	}
	return "*"
}

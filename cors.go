package valdoc

import (
	"net/http"
	"slices"
	"strconv"
)

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	AllowOrigins []string // default: "*"
	MaxAge       int      // preflight cache in seconds
}

// CORS returns middleware that lets browser-based documentation viewers on
// other origins fetch the catalog. The catalog is read-only, so only GET and
// HEAD are advertised.
func CORS(cfg ...CORSConfig) Middleware {
	c := CORSConfig{AllowOrigins: []string{"*"}}
	if len(cfg) > 0 {
		c = cfg[0]
	}
	anyOrigin := len(c.AllowOrigins) == 0 || slices.Contains(c.AllowOrigins, "*")

	maxAge := ""
	if c.MaxAge > 0 {
		maxAge = strconv.Itoa(c.MaxAge)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			w.Header().Add("Vary", "Origin")

			switch {
			case anyOrigin:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.Contains(c.AllowOrigins, origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "If-None-Match")
				if maxAge != "" {
					w.Header().Set("Access-Control-Max-Age", maxAge)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			w.Header().Set("Access-Control-Expose-Headers", "ETag")
			next.ServeHTTP(w, r)
		})
	}
}

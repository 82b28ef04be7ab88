package valdoc

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// WriteJSON writes v as indented JSON to w.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteYAML writes v as YAML to w.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// WriteJSON writes the catalog document as indented JSON to w.
func (c *Catalog) WriteJSON(w io.Writer) error {
	doc, err := c.Document()
	if err != nil {
		return err
	}
	return WriteJSON(w, doc)
}

// WriteYAML writes the catalog document as YAML to w.
func (c *Catalog) WriteYAML(w io.Writer) error {
	doc, err := c.Document()
	if err != nil {
		return err
	}
	return WriteYAML(w, doc)
}

// Handler returns an http.Handler serving the catalog:
//
//	GET /schemas.json   the document as JSON
//	GET /schemas.yaml   the document as YAML
//	GET /schemas/{name} one schema as JSON
//
// Conversion is deterministic, so every response carries an ETag derived
// from its body and a matching If-None-Match yields 304. Middleware added
// with WithMiddleware wraps every route.
func (c *Catalog) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /schemas.json", func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := c.WriteJSON(&buf); err != nil {
			serveError(w, r, err)
			return
		}
		serveBody(w, r, "application/json", buf.Bytes())
	})

	mux.HandleFunc("GET /schemas.yaml", func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := c.WriteYAML(&buf); err != nil {
			serveError(w, r, err)
			return
		}
		serveBody(w, r, "application/yaml", buf.Bytes())
	})

	mux.HandleFunc("GET /schemas/{name}", func(w http.ResponseWriter, r *http.Request) {
		d, err := c.Schema(r.PathValue("name"))
		if err != nil {
			serveError(w, r, err)
			return
		}
		var buf bytes.Buffer
		if err := WriteJSON(&buf, d); err != nil {
			serveError(w, r, err)
			return
		}
		serveBody(w, r, "application/json", buf.Bytes())
	})

	return chain(mux, c.middleware)
}

// serveBody writes body with a strong ETag, or 304 when the client already
// holds it.
func serveBody(w http.ResponseWriter, r *http.Request, contentType string, body []byte) {
	etag := bodyETag(body)
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && (match == "*" || strings.Contains(match, etag)) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	//nolint:errcheck,gosec // best-effort write
	w.Write(body)
}

func bodyETag(body []byte) string {
	hash := sha256.Sum256(body)
	return `"` + hex.EncodeToString(hash[:8]) + `"`
}

func serveError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrUnknownSchema) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	slog.ErrorContext(r.Context(), "schema conversion failed", "path", r.URL.Path, "err", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

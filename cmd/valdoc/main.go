// Command valdoc prints or serves the documentation of a sample catalog of
// validation schemas.
//
// Print the OpenAPI components document:
//
//	go run ./cmd/valdoc dump
//	go run ./cmd/valdoc dump --format yaml
//	go run ./cmd/valdoc dump --name User -o user.json
//
// Serve it:
//
//	go run ./cmd/valdoc serve --addr :8080 --cors https://docs.example.com
//
//	GET http://localhost:8080/schemas.json
//	GET http://localhost:8080/schemas.yaml
//	GET http://localhost:8080/schemas/User
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/bjaus/valdoc"
)

func main() {
	if err := run(); err != nil {
		slog.Error("valdoc failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.Command{
		Name:  "valdoc",
		Usage: "Document validation schemas as JSON Schema",
		Commands: []*cli.Command{
			{
				Name:  "dump",
				Usage: "Print the schema document",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "json",
						Usage:   "Output format (json or yaml)",
					},
					&cli.StringFlag{
						Name:    "name",
						Aliases: []string{"n"},
						Usage:   "Print only the named schema",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file (default: stdout)",
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					return dump(newCatalog(), c.String("format"), c.String("name"), c.String("output"))
				},
			},
			{
				Name:  "serve",
				Usage: "Serve the schema document over HTTP",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Value: ":8080",
						Usage: "Listen address",
					},
					&cli.FloatFlag{
						Name:  "rate",
						Value: 10,
						Usage: "Requests per second allowed per client",
					},
					&cli.IntFlag{
						Name:  "burst",
						Value: 20,
						Usage: "Request burst allowed per client",
					},
					&cli.StringSliceFlag{
						Name:  "cors",
						Usage: "Origins allowed to fetch the document from a browser (* for any)",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return serve(ctx, serveConfig{
						addr:    c.String("addr"),
						rate:    c.Float("rate"),
						burst:   int(c.Int("burst")),
						origins: c.StringSlice("cors"),
					})
				},
			},
		},
	}

	return app.Run(context.Background(), os.Args)
}

func dump(catalog *valdoc.Catalog, format, name, outFile string) (err error) {
	var w io.Writer = os.Stdout
	if outFile != "" {
		f, createErr := os.Create(outFile) //nolint:gosec // user-provided CLI flag
		if createErr != nil {
			return createErr
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		w = f
	}

	var v any
	if name != "" {
		d, schemaErr := catalog.Schema(name)
		if schemaErr != nil {
			return schemaErr
		}
		v = d
	} else {
		doc, docErr := catalog.Document()
		if docErr != nil {
			return docErr
		}
		v = doc
	}

	switch format {
	case "json":
		return valdoc.WriteJSON(w, v)
	case "yaml":
		return valdoc.WriteYAML(w, v)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

type serveConfig struct {
	addr    string
	rate    float64
	burst   int
	origins []string
}

// middleware returns the handler middleware for cfg, outermost first.
func (cfg serveConfig) middleware(logger *slog.Logger) []valdoc.Middleware {
	mw := []valdoc.Middleware{
		valdoc.Recovery(),
		valdoc.Logger(logger),
	}
	if len(cfg.origins) > 0 {
		mw = append(mw, valdoc.CORS(valdoc.CORSConfig{AllowOrigins: cfg.origins, MaxAge: 600}))
	}
	return append(mw, valdoc.RateLimit(valdoc.RateLimitConfig{Rate: cfg.rate, Burst: cfg.burst}))
}

func serve(ctx context.Context, cfg serveConfig) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	catalog := newCatalog(
		valdoc.WithConvertOptions(valdoc.WithLogger(logger)),
		valdoc.WithMiddleware(cfg.middleware(logger)...),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.addr,
		Handler:           catalog.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	slog.Info("serving schemas", "addr", cfg.addr, "schemas", catalog.Names())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		slog.Info("server stopped")
		return nil
	}
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/flowcanvas/flowcanvas/pkg/pipeline"
)

// maxSourceBytes caps the request body of the render endpoint.
const maxSourceBytes = 8 << 20

// contentTypes maps output formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:   "image/svg+xml",
	pipeline.FormatPNG:   "image/png",
	pipeline.FormatPDF:   "application/pdf",
	pipeline.FormatDOT:   "text/vnd.graphviz",
	pipeline.FormatGraph: "image/svg+xml",
	pipeline.FormatJSON:  "application/json",
}

// serveCommand creates the serve command, which runs the rendering pipeline
// as an HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the rendering pipeline as an HTTP service",
		Long: `Serve accepts parsed flow trees over HTTP and returns rendered diagrams.

POST /render with the tree JSON as the request body; the format, scale and
tooltips query parameters select the output. GET /healthz reports liveness.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd, noCache, redisAddr)
			if err != nil {
				return err
			}
			defer runner.Close()
			return c.runServe(cmd.Context(), addr, runner)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "shared Redis cache address (host:port)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the pipeline cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, runner *pipeline.Runner) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           c.newRouter(runner),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newRouter builds the HTTP routing table.
func (c *CLI) newRouter(runner *pipeline.Runner) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(c.requestLogger)

	r.Get("/healthz", handleHealth)
	r.Post("/render", handleRender(runner))

	return r
}

// requestLogger attaches a per-request logger and logs each request once it
// completes.
func (c *CLI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		logger := c.Logger.With("request", middleware.GetReqID(req.Context()))
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)

		next.ServeHTTP(ww, req.WithContext(withLogger(req.Context(), logger)))

		logger.Info("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "ok")
}

// handleRender renders the tree in the request body and responds with the
// requested artifact.
func handleRender(runner *pipeline.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logger := loggerFromContext(req.Context())

		source, err := io.ReadAll(io.LimitReader(req.Body, maxSourceBytes))
		if err != nil {
			http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if len(source) == 0 {
			http.Error(w, "empty request body", http.StatusBadRequest)
			return
		}

		opts, err := renderOptions(req, source)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		result, err := runner.Execute(req.Context(), opts)
		if err != nil {
			logger.Error("render failed", "err", err)
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		format := opts.Formats[0]
		w.Header().Set("Content-Type", contentTypes[format])
		w.Header().Set("X-Tree-Hash", result.TreeHash)
		_, _ = w.Write(result.Artifacts[format])
	}
}

// renderOptions translates request query parameters into pipeline options.
func renderOptions(req *http.Request, source []byte) (pipeline.Options, error) {
	q := req.URL.Query()

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return pipeline.Options{}, err
	}

	opts := pipeline.Options{
		Source:   source,
		Formats:  []string{format},
		Tooltips: q.Get("tooltips") == "1" || q.Get("tooltips") == "true",
	}
	if s := q.Get("scale"); s != "" {
		scale, err := strconv.ParseFloat(s, 64)
		if err != nil || scale <= 0 {
			return pipeline.Options{}, fmt.Errorf("invalid scale: %q", s)
		}
		opts.Scale = scale
	}
	return opts, nil
}

// Package server exposes tasks and evaluation over HTTP.
//
// Routes:
//
//	GET  /healthz                 liveness and build version
//	GET  /tasks                   task IDs with solution status
//	GET  /tasks/{id}              task document
//	POST /tasks/{id}/solve        evaluate the registered solution
//	GET  /tasks/{id}/render       task artifact (?format=svg|png|tiff|dot|json)
//
// Errors are JSON objects {"code": "...", "error": "..."} where code is one
// of the [arcerrors.Code] values.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/arcgrid/pkg/buildinfo"
	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
	"github.com/matzehuels/arcgrid/pkg/observability"
	"github.com/matzehuels/arcgrid/pkg/pipeline"
	"github.com/matzehuels/arcgrid/pkg/solutions"
	"github.com/matzehuels/arcgrid/pkg/task"
)

// Server serves one tasks directory.
type Server struct {
	dir    string
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server for the tasks in dir. A nil logger uses the runner's.
func New(dir string, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	s := &Server{dir: dir, runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Post("/solve", s.handleSolve)
			r.Get("/render", s.handleRender)
		})
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "tasks", s.dir)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		hooks := observability.Server()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)
		start := time.Now()
		next.ServeHTTP(ww, r)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), time.Since(start))
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// TaskSummary is one entry of GET /tasks.
type TaskSummary struct {
	ID     string `json:"id"`
	Solved bool   `json:"solved"` // a solution is registered
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := task.List(s.dir)
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make([]TaskSummary, len(ids))
	for i, id := range ids {
		out[i] = TaskSummary{ID: id, Solved: solutions.Find(id) != nil}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	t, err := task.LoadID(s.dir, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		ID string `json:"id"`
		*task.Task
	}{t.ID, t})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	t, err := task.LoadID(s.dir, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	res, err := s.runner.Evaluate(r.Context(), t)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, err)
		return
	}

	t, err := task.LoadID(s.dir, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	// Predictions are drawn when a solution exists; otherwise the bare task.
	res, err := s.runner.Evaluate(r.Context(), t)
	if err != nil && !arcerrors.Is(err, arcerrors.ErrCodeSolutionMissing) {
		s.writeError(w, err)
		return
	}

	artifacts, err := pipeline.Render(t, res, pipeline.RenderOptions{Formats: []string{format}})
	if err != nil {
		s.writeError(w, arcerrors.Wrap(arcerrors.ErrCodeInternal, err, "render %s", t.ID))
		return
	}
	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code  arcerrors.Code `json:"code"`
	Error string         `json:"error"`
}

// statusFor maps error codes to HTTP status codes.
func statusFor(code arcerrors.Code) int {
	switch code {
	case arcerrors.ErrCodeInvalidInput, arcerrors.ErrCodeInvalidGrid,
		arcerrors.ErrCodeInvalidTask, arcerrors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case arcerrors.ErrCodeTaskNotFound, arcerrors.ErrCodeFileNotFound,
		arcerrors.ErrCodeSolutionMissing:
		return http.StatusNotFound
	case arcerrors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := arcerrors.GetCode(err)
	if code == "" {
		code = arcerrors.ErrCodeInternal
	}
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, ErrorResponse{Code: code, Error: arcerrors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Package server exposes page extraction over HTTP.
//
// Routes:
//
//	GET  /healthz                      liveness probe
//	GET  /v1/editions                  supported edition codes
//	GET  /v1/{edition}/entries/{title} extract a page from the page store
//	POST /v1/{edition}/extract         extract a page given in the body
//
// Titles may contain slashes (translation subpages); everything after
// /entries/ is the title. The optional "lang" query parameter restricts
// the captured languages, as a comma-separated list of codes.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	werrors "github.com/matzehuels/wikiextract/pkg/errors"
	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/extract/languages"
	"github.com/matzehuels/wikiextract/pkg/pagestore"
	"github.com/matzehuels/wikiextract/pkg/pipeline"
)

// MaxBodyBytes bounds the request body of the extract endpoint.
const MaxBodyBytes = 8 << 20

// Options configure the handler.
type Options struct {
	// Config is the capture configuration applied to every request.
	Config extract.Config

	// Timeout bounds each request. Zero disables the timeout.
	Timeout time.Duration

	Logger *log.Logger
}

// ExtractRequest is the body of POST /v1/{edition}/extract.
type ExtractRequest struct {
	Title     string   `json:"title"`
	Text      string   `json:"text"`
	Languages []string `json:"languages,omitempty"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type server struct {
	runner *pipeline.Runner
	opts   Options
}

// New returns the HTTP handler serving runner.
func New(runner *pipeline.Runner, opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	s := &server{runner: runner, opts: opts}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(opts.Logger))
	r.Use(middleware.Recoverer)
	if opts.Timeout > 0 {
		r.Use(middleware.Timeout(opts.Timeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/editions", s.editions)
		r.Get("/{edition}/entries/*", s.entries)
		r.Post("/{edition}/extract", s.extract)
	})
	return r
}

func (s *server) editions(w http.ResponseWriter, r *http.Request) {
	type edition struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
	out := make([]edition, len(languages.All))
	for i, l := range languages.All {
		out[i] = edition{Code: l.Code, Name: l.Name}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) entries(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r, nil)
	if err != nil {
		writeError(w, err)
		return
	}
	title := chi.URLParam(r, "*")
	if r.URL.RawPath != "" {
		if t, err := url.PathUnescape(title); err == nil {
			title = t
		}
	}
	res, err := s.runner.ExtractTitle(r.Context(), opts, title)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) extract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, werrors.Wrap(werrors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	opts, err := s.options(r, req.Languages)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.runner.ExtractPage(r.Context(), opts, pagestore.Page{Title: req.Title, Body: req.Text})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// options builds validated pipeline options for the request. Languages
// from the body take precedence over the query parameter.
func (s *server) options(r *http.Request, langs []string) (pipeline.Options, error) {
	cfg := s.opts.Config
	if len(langs) == 0 {
		if q := r.URL.Query().Get("lang"); q != "" {
			langs = strings.Split(q, ",")
		}
	}
	if len(langs) > 0 {
		cfg.Languages = langs
	}
	opts := pipeline.Options{
		Edition: chi.URLParam(r, "edition"),
		Config:  cfg,
		Refresh: r.URL.Query().Get("refresh") == "true",
		Logger:  s.opts.Logger,
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return http.StatusRequestEntityTooLarge
	}
	switch werrors.GetCode(err) {
	case werrors.ErrCodeInvalidInput, werrors.ErrCodeInvalidEdition,
		werrors.ErrCodeInvalidTitle, werrors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case werrors.ErrCodePageNotFound:
		return http.StatusNotFound
	case werrors.ErrCodeStoreUnavailable, werrors.ErrCodeNetwork:
		return http.StatusServiceUnavailable
	case werrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case werrors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	code := werrors.GetCode(err)
	if code == "" {
		code = werrors.ErrCodeInternal
	}
	writeJSON(w, statusFor(err), ErrorResponse{Code: string(code), Message: werrors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

// requestID assigns a UUID to requests that arrive without an id, so that
// ids in logs are unique across restarts.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(middleware.RequestIDHeader) == "" {
			r.Header.Set(middleware.RequestIDHeader, uuid.NewString())
		}
		w.Header().Set(middleware.RequestIDHeader, r.Header.Get(middleware.RequestIDHeader))
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				logger.Info("request",
					"id", middleware.GetReqID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"remote", r.RemoteAddr,
					"duration", time.Since(start).Round(time.Microsecond),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/tree"
)

// Content types written by the handler.
const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// PropertyResponse is the body of GET /v1/properties/{path}.
type PropertyResponse struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

// FormatRequest is the body of POST /v1/format.
type FormatRequest struct {
	Template   string            `json:"template"`
	Properties map[string]string `json:"properties,omitempty"`
}

// FormatResponse is the body returned by POST /v1/format.
type FormatResponse struct {
	Result string `json:"result"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

type handler struct {
	cfg *conf.Configuration
}

// NewHandler returns the HTTP query surface of cfg:
//
//	GET  /v1/properties/{path...}   resolved value at path; ?raw=true skips resolution
//	POST /v1/format                 resolves a template with extra properties
//	GET  /v1/resolved               whole resolved document; ?format=yaml|toml|json
//	GET  /healthz                   liveness
//
// Requests pass through request ID, access log, recovery, CORS when
// settings.AllowedOrigins is set, a request timeout and a body size limit.
// Zero settings fall back to the package defaults.
func NewHandler(cfg *conf.Configuration, settings Config) http.Handler {
	h := &handler{cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/properties/{path...}", h.property)
	mux.HandleFunc("POST /v1/format", h.format)
	mux.HandleFunc("GET /v1/resolved", h.resolved)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentTypeText)
		_, _ = w.Write([]byte("ok"))
	})

	if settings.MaxBodyBytes <= 0 {
		settings.MaxBodyBytes = DefaultMaxBodyBytes
	}

	if settings.RequestTimeout <= 0 {
		settings.RequestTimeout = DefaultRequestTimeout
	}

	middlewares := []middleware{requestID(), accessLog(), recovery()}
	if len(settings.AllowedOrigins) > 0 {
		middlewares = append(middlewares, cors(settings.AllowedOrigins))
	}

	middlewares = append(middlewares, timeout(settings.RequestTimeout), maxBodySize(settings.MaxBodyBytes))

	return chain(mux, middlewares...)
}

func (h *handler) property(w http.ResponseWriter, r *http.Request) {
	path := r.PathValue("path")

	var (
		value string
		ok    bool
	)

	if r.URL.Query().Get("raw") == "true" {
		node, found := h.cfg.Node(path)
		if found {
			value, ok = tree.Render(node)
		}
	} else {
		value, ok = h.cfg.Get(path)
	}

	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "path not found: " + path})

		return
	}

	writeJSON(w, http.StatusOK, PropertyResponse{Path: path, Value: value})
}

func (h *handler) format(w http.ResponseWriter, r *http.Request) {
	var request FormatRequest

	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})

			return
		}

		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})

		return
	}

	result := h.cfg.Format(request.Template, request.Properties)

	writeJSON(w, http.StatusOK, FormatResponse{Result: result})
}

func (h *handler) resolved(w http.ResponseWriter, r *http.Request) {
	var (
		encoded []byte
		err     error
	)

	if format := r.URL.Query().Get("format"); format != "" {
		encoded, err = conf.ParserFor(format).Encode(h.cfg.Resolve())
	} else {
		encoded, err = h.cfg.ResolveBytes()
	}

	if err != nil {
		slog.Warn("encoding resolved document failed", "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})

		return
	}

	w.Header().Set("Content-Type", contentTypeText)
	_, _ = w.Write(encoded)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Error("writing response failed", "error", err)
	}
}

package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"
)

// RequestIDHeader is the HTTP header carrying the request ID.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

type requestIDKeyType struct{}

//nolint:gochecknoglobals // context key.
var requestIDKey = requestIDKeyType{}

type middleware func(http.Handler) http.Handler

// chain wraps h so that the first middleware sees the request first.
func chain(h http.Handler, middlewares ...middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}

	return h
}

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// requestID reuses a printable incoming X-Request-ID or generates a random
// one, and echoes it in the response.
func requestID() middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLength || !printable(id) {
				id = newRequestID()
			}

			w.Header().Set(RequestIDHeader, id)

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
		})
	}
}

func newRequestID() string {
	var buf [8]byte

	_, _ = rand.Read(buf[:])

	return hex.EncodeToString(buf[:])
}

func printable(s string) bool {
	for i := range len(s) {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}

	return true
}

// statusWriter captures the status code for the access log.
type statusWriter struct {
	http.ResponseWriter

	status int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}

	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	return w.ResponseWriter.Write(b) //nolint:wrapcheck
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// accessLog logs one line per request via global slog: Info for 2xx/3xx,
// Warn for 4xx, Error for 5xx.
func accessLog() middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: 0}

			next.ServeHTTP(sw, r)

			if sw.status == 0 {
				sw.status = http.StatusOK
			}

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", RequestID(r.Context())),
			}

			switch {
			case sw.status >= http.StatusInternalServerError:
				slog.Error("http request", attrs...)
			case sw.status >= http.StatusBadRequest:
				slog.Warn("http request", attrs...)
			default:
				slog.Info("http request", attrs...)
			}
		})
	}
}

// recovery turns a handler panic into a 500 reply and an error log with the
// stack. http.ErrAbortHandler is re-raised.
func recovery() middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() { //nolint:contextcheck
				rec := recover()
				if rec == nil {
					return
				}

				if err, ok := rec.(error); ok && err == http.ErrAbortHandler { //nolint:errorlint,err113
					panic(rec)
				}

				slog.Error("panic recovered",
					slog.String("panic", fmt.Sprintf("%v", rec)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", RequestID(r.Context())),
				)

				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// maxBodySize limits request bodies with http.MaxBytesReader.
func maxBodySize(limit int64) middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// timeout answers 503 when the handler does not finish within d.
func timeout(d time.Duration) middleware {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, "Service Unavailable")
	}
}

// cors allows browser reads from the given origins. Entries are bare
// hostnames matched against the hostname of the Origin header; "*" matches
// any origin. Preflight requests are answered directly.
func cors(origins []string) middleware {
	allowed := make(map[string]struct{}, len(origins))
	wildcard := false

	for _, origin := range origins {
		if origin == "*" {
			wildcard = true

			continue
		}

		allowed[strings.ToLower(origin)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)

				return
			}

			_, matched := allowed[strings.ToLower(originHostname(origin))]
			if !matched && !wildcard {
				next.ServeHTTP(w, r)

				return
			}

			if wildcard {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				w.Header().Set("Access-Control-Allow-Origin", origin)
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", corsMethods)
				w.Header().Set("Access-Control-Allow-Headers", corsHeaders)
				w.Header().Set("Access-Control-Max-Age", corsMaxAge)
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

const (
	corsMethods = "GET, HEAD, POST"
	corsHeaders = "Content-Type, " + RequestIDHeader
	corsMaxAge  = "3600"
)

func originHostname(origin string) string {
	u, err := url.Parse(origin)
	if err != nil {
		return ""
	}

	return u.Hostname()
}

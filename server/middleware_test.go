package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen string

	h := requestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	testCases := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "generated", incoming: "", reused: false},
		{name: "reused", incoming: "abc-123", reused: true},
		{name: "too long", incoming: strings.Repeat("a", maxRequestIDLength+1), reused: false},
		{name: "not printable", incoming: "bad\x01id", reused: false},
	}

	for _, testCase := range testCases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if testCase.incoming != "" {
			req.Header.Set(RequestIDHeader, testCase.incoming)
		}

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.NotEmpty(t, seen, testCase.name)
		assert.Equal(t, seen, rec.Header().Get(RequestIDHeader), testCase.name)

		if testCase.reused {
			assert.Equal(t, testCase.incoming, seen, testCase.name)
		} else {
			assert.NotEqual(t, testCase.incoming, seen, testCase.name)
			assert.Len(t, seen, 16, testCase.name)
		}
	}
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	h := recovery()(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestRecovery_AbortHandlerPropagates(t *testing.T) {
	t.Parallel()

	h := recovery()(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

//nolint:paralleltest // replaces the default logger.
func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer

	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	h := chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), requestID(), accessLog())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/properties/a", nil))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "path=/v1/properties/a")
	assert.Contains(t, out, "request_id=")
}

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var order []string

	mark := func(name string) middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := chain(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		order = append(order, "handler")
	}), mark("first"), mark("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)

	h := timeout(10 * time.Millisecond)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestOriginHostname(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "example.com", originHostname("https://example.com:8443"))
	assert.Equal(t, "example.com", originHostname("http://example.com"))
	assert.Empty(t, originHostname("://bad"))
}

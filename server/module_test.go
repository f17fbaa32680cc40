package server_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"

	conf "github.com/0xalexb/hjarta-conf"
	"github.com/0xalexb/hjarta-conf/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func freePort(t *testing.T) string {
	t.Helper()

	listenCfg := net.ListenConfig{}

	ln, err := listenCfg.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer func() { _ = ln.Close() }()

	return ln.Addr().String()
}

func fetch(t *testing.T, url string) (int, string) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req) //nolint:gosec // test code, URL from test server
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestNewModule_WithOptions(t *testing.T) {
	t.Parallel()

	addr := freePort(t)
	cfg := conf.New(nil, conf.WithoutEnvironment(), conf.WithoutSystem())
	require.True(t, cfg.Put("greeting", "hello"))

	app := fxtest.New(t,
		fx.Supply(cfg),
		server.NewModule("http", server.WithAddress(addr)),
	)

	app.RequireStart()
	defer app.RequireStop()

	status, body := fetch(t, "http://"+addr+"/v1/properties/greeting")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"path": "greeting", "value": "hello"}`, body)
}

func TestNewModule_ConfigFromDocument(t *testing.T) {
	t.Parallel()

	addr := freePort(t)
	document := "listen:\n  host: 127.0.0.1\nserver:\n  address: ${listen.host}:" + addr[strings.LastIndex(addr, ":")+1:] + "\n" +
		"  request_timeout: 5s\n  allowed_origins: [dashboard.local]\n"

	cfg, err := conf.LoadReader(strings.NewReader(document), conf.WithoutEnvironment())
	require.NoError(t, err)

	app := fxtest.New(t,
		fx.Supply(cfg),
		server.NewModule("http"),
	)

	app.RequireStart()
	defer app.RequireStop()

	status, body := fetch(t, "http://"+addr+"/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body)
}

func TestNewModule_EmptyName(t *testing.T) {
	t.Parallel()

	app := fx.New(fx.NopLogger, server.NewModule(""))

	require.ErrorIs(t, app.Err(), server.ErrEmptyName)
}

func TestNewModule_InvalidDocumentConfig(t *testing.T) {
	t.Parallel()

	cfg, err := conf.LoadReader(strings.NewReader("server:\n  max_body_bytes: -5\n"), conf.WithoutEnvironment())
	require.NoError(t, err)

	app := fx.New(fx.NopLogger, fx.Supply(cfg), server.NewModule("http"))

	require.ErrorIs(t, app.Err(), server.ErrInvalidBodyLimit)
}

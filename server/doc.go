// Package server exposes a resolved configuration over HTTP.
//
// NewHandler serves single values, template formatting and the whole
// resolved document as JSON and text. Server manages the listener
// lifecycle, and NewModule wires both into an Fx application around the
// *conf.Configuration in the graph:
//
//	fx.New(
//	    config.NewModule("config.yaml"),
//	    server.NewModule("http", server.WithAddress("127.0.0.1:8080")),
//	)
//
// Settings are read from the "server" section of the document, tokens
// resolved, before options apply:
//
//	server:
//	  address: ${HTTP_ADDR | ':8080'}
//	  max_body_bytes: 1048576
//	  request_timeout: 30s
//	  allowed_origins: [dashboard.example.com]
package server

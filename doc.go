// Package conf loads configuration documents whose values may reference
// other values, environment variables or system properties through
// placeholder tokens, and resolves those tokens on read.
//
// A document such as
//
//	app:
//	  root: /storage
//	  path: ${app.root}/data
//	  url: ${APP_URL | 'http://localhost:${app.port | '8080'}'}
//
// is loaded with LoadFile, LoadReader or Load and read through a
// Configuration:
//
//	cfg, err := conf.LoadFile("config.yaml")
//	...
//	path, ok := cfg.Get("app.path")          // "/storage/data"
//	line := cfg.Format("root is ${app.root}")
//
// Paths use "." between fields and "[n]" for sequence indices, e.g.
// "servers[0].host". Tokens are resolved by the resolver package against
// the tree first, then against the property sources of the configuration:
// the environment, the system properties and any custom source.
// Unresolvable or cyclic tokens are left in place rather than reported as
// errors.
//
// YAML, TOML and JSON with comments are supported; LoadFile picks the
// parser from the file extension.
package conf

// Command hjarta-conf reads a configuration document, resolves its
// placeholder tokens and prints values, formatted templates or the whole
// resolved document. It can also serve the configuration over HTTP.
//
//	hjarta-conf -c app.yaml get app.storage.path
//	hjarta-conf -c app.yaml format 'url ${scheme | "http"}://${host}' -D host=example.com
//	hjarta-conf -c app.toml resolve --output json
//	hjarta-conf -c app.yaml serve --address 127.0.0.1:8080
//
// Without --config the document is read from standard input as YAML.
package main

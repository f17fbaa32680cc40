// Package yaml reads and writes YAML configuration documents as trees.
//
// This package uses github.com/goccy/go-yaml with ordered maps, so encoding a
// parsed tree keeps the key order of the source document.
//
// Usage:
//
//	parser := yaml.NewParser()
//	root, err := parser.Parse(data)
//	...
//	out, err := parser.Encode(root)
//
// Decode fills a Go value from a tree node using the same yaml struct tags
// as a direct unmarshal would.
package yaml

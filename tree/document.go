package tree

import (
	"github.com/0xalexb/hjarta-conf/property"
)

// Document binds a root node to the property navigator.
// A Document is safe for concurrent reads; Put must not run concurrently
// with other calls.
type Document struct {
	root Node
}

// NewDocument wraps root. A nil root yields an empty mapping.
func NewDocument(root Node) *Document {
	if root == nil {
		root = NewMapping()
	}

	return &Document{root: root}
}

// Root returns the root node.
func (d *Document) Root() Node {
	if d == nil {
		return nil
	}

	return d.root
}

// Node returns the node at path.
func (d *Document) Node(path string) (Node, bool) {
	if d == nil {
		return nil, false
	}

	return property.Lookup[Node](Accessor{}, d.root, path)
}

// Has reports whether path leads to a non-null node.
func (d *Document) Has(path string) bool {
	if d == nil {
		return false
	}

	return property.Has[Node](Accessor{}, d.root, path)
}

// Lookup returns the text form of the node at path.
func (d *Document) Lookup(path string) (string, bool) {
	node, ok := d.Node(path)
	if !ok {
		return "", false
	}

	return Render(node)
}

// Put writes value at path and reports whether the write was applied.
func (d *Document) Put(path string, value Node) bool {
	if d == nil {
		return false
	}

	return property.Set[Node](Accessor{}, d.root, path, value)
}

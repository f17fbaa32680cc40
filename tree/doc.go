// Package tree is the tagged value model for configuration documents.
//
// A tree is built from Mapping, Sequence and Scalar nodes, plus host types
// implementing Record. Accessor reads and writes single properties of any
// node kind and plugs into the property navigator, so a Document can be
// queried with paths like "app.servers[0].host" without reflection.
package tree

// Package toml reads and writes TOML configuration documents as trees.
//
// Decoding goes through github.com/pelletier/go-toml/v2. Integers, floats,
// booleans and dates keep their TOML types as scalar values; strings holding
// placeholder tokens are left untouched for the resolver.
package toml

// Package jsonc reads JSON configuration documents that may contain // and
// /* */ comments or trailing commas.
//
// Comments are stripped with github.com/tidwall/jsonc before decoding.
// Encoded output is plain JSON, so comments do not survive a round trip.
package jsonc

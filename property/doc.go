// Package property parses dotted/bracketed property paths and walks them over
// arbitrary nested values.
//
// Path syntax:
//
//	"a.b.c"        -> a, b, c
//	"a.b[3]"       -> a, b, [3]
//	"a[0][1].c"    -> a, [0], [1], c
//
// Index segments keep their brackets verbatim. Navigation is generic over the
// value model: callers supply an Accessor that knows how to read and write one
// property of a value. Every failure during a walk is reported as absence,
// never as an error.
package property

// Package resolver expands placeholder tokens inside strings.
//
// A token is delimited by "${" and "}" and holds one or more alternatives
// separated by "|":
//
//	${db.host}                     tree path or property key
//	${DB_HOST | db.host}           first alternative that resolves wins
//	${scheme | 'http'}             quoted literal fallback
//	${ 'http://${host}:8080' }     literals may contain tokens
//	${${env}.url}                  inner tokens resolve first
//
// Values found for a token are resolved again before substitution, so
// references chain through the tree and the property maps. A key that is
// already being resolved higher up the chain is not followed again, and
// substitution stops once a pass produces a string seen before; cyclic or
// unknown references are therefore left in the output verbatim instead of
// failing.
//
// Delimiters, the separator and the quote characters are configurable with
// options passed to New.
package resolver

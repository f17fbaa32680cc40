package resolver

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// token is one delimited placeholder found in a string.
type token struct {
	// raw is the full delimited text, delimiters included.
	raw string
	// body is the text between the delimiters, untrimmed.
	body string
}

// scan returns the innermost tokens of text from left to right. A start
// delimiter resets the open position, so a token body never contains a start
// delimiter; the first end delimiter after an open start closes the token.
// Empty bodies are ignored. When both delimiters are the same string, a
// delimiter closes the open token if its body is non-empty and opens a new
// one otherwise, so "%%VAR%" yields "VAR".
func (r *Resolver) scan(text string) []token {
	var tokens []token

	open := -1
	symmetric := r.startToken == r.endToken

	for i := 0; i < len(text); {
		bodyStart := open + len(r.startToken)
		closes := open >= 0 && strings.HasPrefix(text[i:], r.endToken)

		switch {
		case closes && symmetric && i > bodyStart:
			tokens = append(tokens, token{
				raw:  text[open : i+len(r.endToken)],
				body: text[bodyStart:i],
			})
			open = -1
			i += len(r.endToken)
		case strings.HasPrefix(text[i:], r.startToken):
			open = i
			i += len(r.startToken)
		case closes:
			if i > bodyStart {
				tokens = append(tokens, token{
					raw:  text[open : i+len(r.endToken)],
					body: text[bodyStart:i],
				})
			}

			open = -1
			i += len(r.endToken)
		default:
			i++
		}
	}

	return tokens
}

// alternatives splits a token body on the separator and trims each part.
// An alternative that starts with a quote character keeps separators until
// its closing quote, so literals may contain the separator. When a quote is
// never closed the body is split on every separator instead. Empty parts are
// dropped.
func (r *Resolver) alternatives(body string) []string {
	if parts, balanced := r.splitQuoted(body); balanced {
		return parts
	}

	var parts []string

	for part := range strings.SplitSeq(body, r.separator) {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	return parts
}

func (r *Resolver) splitQuoted(body string) ([]string, bool) {
	var (
		parts   []string
		current strings.Builder
		quote   rune
		fresh   = true
	)

	flush := func() {
		if part := strings.TrimSpace(current.String()); part != "" {
			parts = append(parts, part)
		}

		current.Reset()

		fresh = true
	}

	for i := 0; i < len(body); {
		if quote == 0 && strings.HasPrefix(body[i:], r.separator) {
			flush()

			i += len(r.separator)

			continue
		}

		char, size := utf8.DecodeRuneInString(body[i:])

		switch {
		case fresh && unicode.IsSpace(char):
		case fresh && strings.ContainsRune(r.quotes, char):
			quote = char
			fresh = false
		case fresh:
			fresh = false
		case quote != 0 && char == quote:
			quote = 0
		}

		current.WriteString(body[i : i+size])
		i += size
	}

	flush()

	return parts, quote == 0
}

// literal reports whether alternative is wrapped in a matching pair of quote
// characters and returns the text between them.
func (r *Resolver) literal(alternative string) (string, bool) {
	first, firstSize := utf8.DecodeRuneInString(alternative)
	last, lastSize := utf8.DecodeLastRuneInString(alternative)

	if len(alternative) < firstSize+lastSize || first != last {
		return "", false
	}

	if !strings.ContainsRune(r.quotes, first) {
		return "", false
	}

	return alternative[firstSize : len(alternative)-lastSize], true
}

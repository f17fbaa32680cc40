package resolver

import (
	"log/slog"
	"maps"
	"strings"
)

// Default delimiters and quote characters.
const (
	DefaultStartToken = "${"
	DefaultEndToken   = "}"
	DefaultSeparator  = "|"
	DefaultQuotes     = `'"`
)

// Tree is a configuration tree that can render the value at a property path
// as text. It reports false when the path is absent.
type Tree interface {
	Lookup(path string) (string, bool)
}

// Resolver replaces placeholder tokens such as "${db.host | 'localhost'}"
// with values from a configuration tree and property maps.
//
// A Resolver is immutable after New and safe for concurrent use.
type Resolver struct {
	startToken string
	endToken   string
	separator  string
	quotes     string
	logger     *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithStartToken sets the start delimiter.
func WithStartToken(start string) Option {
	return func(r *Resolver) {
		r.startToken = start
	}
}

// WithEndToken sets the end delimiter.
func WithEndToken(end string) Option {
	return func(r *Resolver) {
		r.endToken = end
	}
}

// WithSeparator sets the separator between alternatives.
func WithSeparator(separator string) Option {
	return func(r *Resolver) {
		r.separator = separator
	}
}

// WithQuotes sets the characters that mark a literal alternative.
func WithQuotes(quotes string) Option {
	return func(r *Resolver) {
		r.quotes = quotes
	}
}

// WithLogger sets the logger used for debug output. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a Resolver. Empty delimiters or separator fall back to the
// defaults with a warning.
func New(opts ...Option) *Resolver {
	resolver := &Resolver{
		startToken: DefaultStartToken,
		endToken:   DefaultEndToken,
		separator:  DefaultSeparator,
		quotes:     DefaultQuotes,
		logger:     nil,
	}

	for _, apply := range opts {
		apply(resolver)
	}

	if resolver.logger == nil {
		resolver.logger = slog.Default()
	}

	resolver.startToken = orDefault(resolver.logger, "start token", resolver.startToken, DefaultStartToken)
	resolver.endToken = orDefault(resolver.logger, "end token", resolver.endToken, DefaultEndToken)
	resolver.separator = orDefault(resolver.logger, "separator", resolver.separator, DefaultSeparator)

	return resolver
}

func orDefault(logger *slog.Logger, name, value, fallback string) string {
	if value != "" {
		return value
	}

	logger.Warn("resolver: empty setting, using default", "setting", name, "default", fallback)

	return fallback
}

// StartToken returns the start delimiter.
func (r *Resolver) StartToken() string { return r.startToken }

// EndToken returns the end delimiter.
func (r *Resolver) EndToken() string { return r.endToken }

// Separator returns the alternative separator.
func (r *Resolver) Separator() string { return r.separator }

// Quotes returns the literal quote characters.
func (r *Resolver) Quotes() string { return r.quotes }

// Resolve replaces every resolvable token in text and returns the result.
//
// Each token holds alternatives tried left to right: a quoted literal, a
// path looked up in tree (which may be nil), or a key looked up in the
// merged property maps. Maps are merged in argument order, so a later map
// wins. The chosen value is itself resolved before substitution. Tokens that
// cannot be resolved, or that refer back to themselves, are left verbatim.
// Resolve never fails and always terminates. Resolving the result again
// yields the same string only for acyclic input; a value that refers to
// itself next to other tokens, such as "${q}-${p}" stored at p, grows by one
// expansion per call.
func (r *Resolver) Resolve(text string, tree Tree, propertyMaps ...map[string]string) string {
	merged := make(map[string]string)

	for _, properties := range propertyMaps {
		maps.Copy(merged, properties)
	}

	state := &resolution{
		tree:       tree,
		properties: merged,
		seen:       make(set),
	}

	return r.resolve(state, make(set), text)
}

type set map[string]struct{}

func (s set) has(key string) bool {
	_, ok := s[key]

	return ok
}

func (s set) with(key string) set {
	extended := maps.Clone(s)
	extended[key] = struct{}{}

	return extended
}

// resolution holds the state shared by every recursive step of one Resolve
// call.
type resolution struct {
	tree       Tree
	properties map[string]string
	// seen holds every intermediate string produced so far; producing one
	// again means a fixed point was reached.
	seen set
}

// resolve runs substitution passes over input until a pass yields a string
// that was already produced. guard holds the keys being resolved on the
// current call chain and grows with the tokens of each pass.
func (r *Resolver) resolve(state *resolution, guard set, input string) string {
	if input == "" {
		return input
	}

	working := input

	for {
		state.seen[working] = struct{}{}

		tokens := r.scan(working)
		replaced := make(set, len(tokens))

		for _, tok := range tokens {
			key := strings.TrimSpace(tok.body)
			if key == "" || guard.has(key) || replaced.has(tok.raw) {
				continue
			}

			value, alternative, ok := r.evaluate(state, guard, tok.body)
			if !ok {
				r.logger.Debug("resolver: token left unresolved", "token", tok.raw)

				continue
			}

			resolved := r.resolve(state, guard.with(alternative), value)
			working = strings.ReplaceAll(working, tok.raw, resolved)
			replaced[tok.raw] = struct{}{}
		}

		for _, tok := range tokens {
			guard[strings.TrimSpace(tok.body)] = struct{}{}
		}

		if state.seen.has(working) {
			return working
		}
	}
}

// evaluate tries the alternatives of a token body in order and returns the
// first value found together with the alternative that produced it.
func (r *Resolver) evaluate(state *resolution, guard set, body string) (string, string, bool) {
	for _, alternative := range r.alternatives(body) {
		if guard.has(alternative) {
			r.logger.Debug("resolver: cyclic reference skipped", "key", alternative)

			continue
		}

		if inner, ok := r.literal(alternative); ok {
			return inner, alternative, true
		}

		if state.tree != nil {
			if value, ok := state.tree.Lookup(alternative); ok {
				return value, alternative, true
			}
		}

		if value, ok := state.properties[alternative]; ok {
			return value, alternative, true
		}
	}

	return "", "", false
}

package property

// Accessor reads and writes a single named or indexed property of a value.
// Implementations cover every value kind of their model uniformly; Get must
// report false for unknown keys, out-of-range indices and null values.
type Accessor[V any] interface {
	Get(value V, name string) (V, bool)
	Set(value V, name string, newValue V) bool
}

// Get walks path over root and returns the value of the last segment.
// The first segment that cannot be read ends the walk with false.
func Get[V any](accessor Accessor[V], root V, path *Segment) (V, bool) {
	var zero V

	if path == nil {
		return zero, false
	}

	current := root

	for segment := range path.All() {
		next, ok := accessor.Get(current, segment.name)
		if !ok {
			return zero, false
		}

		current = next
	}

	return current, true
}

// Lookup parses path and walks it over root.
func Lookup[V any](accessor Accessor[V], root V, path string) (V, bool) {
	return Get(accessor, root, Parse(path))
}

// Has reports whether every segment of path can be read from root.
func Has[V any](accessor Accessor[V], root V, path string) bool {
	_, ok := Lookup(accessor, root, path)

	return ok
}

// Set walks to the parent of the last segment of path and writes value there.
// It reports false when the parent cannot be reached or the write is refused.
func Set[V any](accessor Accessor[V], root V, path string, value V) bool {
	segments := Parse(path)
	if segments == nil {
		return false
	}

	parent := root

	for segment := range segments.All() {
		if !segment.HasNext() {
			return accessor.Set(parent, segment.name, value)
		}

		next, ok := accessor.Get(parent, segment.name)
		if !ok {
			return false
		}

		parent = next
	}

	return false
}

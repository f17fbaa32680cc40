package property

import (
	"iter"
	"strings"
)

const (
	fieldSeparator = "."
	indexStart     = "["
	indexEnd       = "]"
)

// Segment is one step of a property path: a field name or a bracketed index
// kept verbatim (e.g. "[3]"). Segments form a singly linked chain.
type Segment struct {
	name string
	next *Segment
}

// Name returns the segment text as written in the path.
func (s *Segment) Name() string {
	return s.name
}

// Next returns the following segment, or nil for the terminal segment.
func (s *Segment) Next() *Segment {
	return s.next
}

// HasNext reports whether the segment has a successor.
func (s *Segment) HasNext() bool {
	return s.next != nil
}

// IsIndex reports whether the segment is a bracketed index such as "[3]".
func (s *Segment) IsIndex() bool {
	return len(s.name) > len(indexStart)+len(indexEnd) &&
		strings.HasPrefix(s.name, indexStart) &&
		strings.HasSuffix(s.name, indexEnd)
}

// Index returns the text between the brackets of an index segment.
// For field segments it returns the name unchanged.
func (s *Segment) Index() string {
	if !s.IsIndex() {
		return s.name
	}

	return s.name[len(indexStart) : len(s.name)-len(indexEnd)]
}

// All iterates over the segment and every successor in order.
func (s *Segment) All() iter.Seq[*Segment] {
	return func(yield func(*Segment) bool) {
		for current := s; current != nil; current = current.next {
			if !yield(current) {
				return
			}
		}
	}
}

// Len returns the number of segments in the chain starting at s.
func (s *Segment) Len() int {
	count := 0

	for range s.All() {
		count++
	}

	return count
}

// String rejoins the chain into path form.
func (s *Segment) String() string {
	var builder strings.Builder

	for segment := range s.All() {
		if builder.Len() > 0 && !segment.IsIndex() {
			builder.WriteString(fieldSeparator)
		}

		builder.WriteString(segment.name)
	}

	return builder.String()
}

// Parse turns a path such as "a.b[3][1].c" into a segment chain.
// It returns nil for an empty path. Malformed brackets are kept as plain
// field text.
func Parse(path string) *Segment {
	if path == "" {
		return nil
	}

	if !strings.Contains(path, fieldSeparator) && !hasIndexGroup(path) {
		return &Segment{name: path, next: nil}
	}

	var names []string

	for chunk := range strings.SplitSeq(path, fieldSeparator) {
		if chunk == "" {
			continue
		}

		names = append(names, splitChunk(chunk)...)
	}

	return link(names)
}

// splitChunk breaks a dot-free chunk into its field and index parts.
func splitChunk(chunk string) []string {
	var parts []string

	for chunk != "" {
		start, end, found := findIndexGroup(chunk)
		if !found {
			parts = append(parts, chunk)

			break
		}

		if start > 0 {
			parts = append(parts, chunk[:start])
		}

		parts = append(parts, chunk[start:end])
		chunk = chunk[end:]
	}

	return parts
}

// findIndexGroup locates the first "[x]" group with non-empty inner text.
// The returned end is exclusive.
func findIndexGroup(text string) (int, int, bool) {
	offset := 0

	for {
		open := strings.Index(text[offset:], indexStart)
		if open < 0 {
			return 0, 0, false
		}

		start := offset + open
		innerStart := start + len(indexStart)

		if innerStart >= len(text) {
			return 0, 0, false
		}

		// The inner text must hold at least one character, so the closing
		// bracket is searched for after it.
		closing := strings.Index(text[innerStart+1:], indexEnd)
		if closing >= 0 {
			end := innerStart + 1 + closing + len(indexEnd)

			return start, end, true
		}

		offset = innerStart
	}
}

func hasIndexGroup(text string) bool {
	_, _, found := findIndexGroup(text)

	return found
}

func link(names []string) *Segment {
	if len(names) == 0 {
		return nil
	}

	head := &Segment{name: names[0], next: nil}
	tail := head

	for _, name := range names[1:] {
		tail.next = &Segment{name: name, next: nil}
		tail = tail.next
	}

	return head
}

package tree

import (
	"fmt"
	"slices"
)

// Kind identifies the shape of a Node.
type Kind uint8

// Node kinds.
const (
	KindScalar Kind = iota
	KindMapping
	KindSequence
	KindRecord
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindRecord:
		return "record"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Node is one value of a configuration tree.
type Node interface {
	Kind() Kind
}

// Record is a host-defined structured value with named fields.
// It lets application types take part in navigation without reflection.
type Record interface {
	Node
	// Fields lists the field names in serialization order.
	Fields() []string
	Field(name string) (Node, bool)
	SetField(name string, value Node) bool
}

// Mapping is a set of uniquely keyed nodes. Insertion order is kept for
// serialization only.
type Mapping struct {
	keys   []string
	values map[string]Node
}

// NewMapping creates an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{
		keys:   nil,
		values: make(map[string]Node),
	}
}

// Kind implements Node.
func (m *Mapping) Kind() Kind { return KindMapping }

// Get returns the node stored under key.
func (m *Mapping) Get(key string) (Node, bool) {
	value, ok := m.values[key]

	return value, ok
}

// Set stores value under key, replacing any previous value.
func (m *Mapping) Set(key string, value Node) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Delete removes key and reports whether it was present.
func (m *Mapping) Delete(key string) bool {
	if _, exists := m.values[key]; !exists {
		return false
	}

	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })

	return true
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	return slices.Clone(m.keys)
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Sequence is an ordered list of nodes.
type Sequence struct {
	items []Node
}

// NewSequence creates a Sequence holding items.
func NewSequence(items ...Node) *Sequence {
	return &Sequence{items: items}
}

// Kind implements Node.
func (s *Sequence) Kind() Kind { return KindSequence }

// Index returns the item at position i.
func (s *Sequence) Index(i int) (Node, bool) {
	if i < 0 || i >= len(s.items) {
		return nil, false
	}

	return s.items[i], true
}

// SetIndex replaces the item at position i. Out-of-range writes are refused.
func (s *Sequence) SetIndex(i int, value Node) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}

	s.items[i] = value

	return true
}

// Append adds items to the end of the sequence.
func (s *Sequence) Append(items ...Node) {
	s.items = append(s.items, items...)
}

// Items returns a copy of the items.
func (s *Sequence) Items() []Node {
	return slices.Clone(s.items)
}

// Len returns the number of items.
func (s *Sequence) Len() int {
	return len(s.items)
}

// Scalar wraps a decoded leaf value: nil, a string, a bool, a number or any
// other value the document decoder produced.
type Scalar struct {
	value any
}

// NewScalar wraps value.
func NewScalar(value any) *Scalar {
	return &Scalar{value: value}
}

// Null returns a scalar holding no value.
func Null() *Scalar {
	return &Scalar{value: nil}
}

// Kind implements Node.
func (s *Scalar) Kind() Kind { return KindScalar }

// Value returns the wrapped value.
func (s *Scalar) Value() any {
	return s.value
}

// IsNull reports whether the scalar holds no value.
func (s *Scalar) IsNull() bool {
	return s.value == nil
}

// IsString reports whether the wrapped value is a string.
func (s *Scalar) IsString() bool {
	_, ok := s.value.(string)

	return ok
}

// String returns the text form of the value; null renders as "".
func (s *Scalar) String() string {
	switch value := s.value.(type) {
	case nil:
		return ""
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}

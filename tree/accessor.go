package tree

import (
	"strconv"

	"github.com/0xalexb/hjarta-conf/property"
)

// Accessor reads and writes one property of a Node. It implements
// property.Accessor for every node kind.
type Accessor struct{}

var _ property.Accessor[Node] = Accessor{}

// Get reads the property called name from value. Bracketed names address
// sequence indices and, on mappings and records, the key between the
// brackets. Null scalars count as absent.
func (Accessor) Get(value Node, name string) (Node, bool) {
	var (
		found Node
		ok    bool
	)

	if isAbsent(value) {
		return nil, false
	}

	switch typed := value.(type) {
	case *Mapping:
		found, ok = typed.Get(key(name))
	case *Sequence:
		index, valid := parseIndex(name)
		if !valid {
			return nil, false
		}

		found, ok = typed.Index(index)
	case Record:
		found, ok = typed.Field(key(name))
	default:
		return nil, false
	}

	if !ok || isAbsent(found) {
		return nil, false
	}

	return found, true
}

// Set writes newValue into the property called name of value. Mappings
// accept new keys; sequences only accept in-range indices; records decide
// for themselves.
func (Accessor) Set(value Node, name string, newValue Node) bool {
	if newValue == nil {
		newValue = Null()
	}

	switch typed := value.(type) {
	case *Mapping:
		if typed == nil {
			return false
		}

		typed.Set(key(name), newValue)

		return true
	case *Sequence:
		index, valid := parseIndex(name)
		if !valid || typed == nil {
			return false
		}

		return typed.SetIndex(index, newValue)
	case Record:
		return typed.SetField(key(name), newValue)
	default:
		return false
	}
}

func key(name string) string {
	segment := property.Parse(name)
	if segment == nil || segment.HasNext() {
		return name
	}

	return segment.Index()
}

func parseIndex(name string) (int, bool) {
	segment := property.Parse(name)
	if segment == nil || segment.HasNext() || !segment.IsIndex() {
		return 0, false
	}

	index, err := strconv.Atoi(segment.Index())
	if err != nil || index < 0 {
		return 0, false
	}

	return index, true
}

func isAbsent(node Node) bool {
	switch typed := node.(type) {
	case nil:
		return true
	case *Scalar:
		return typed == nil || typed.IsNull()
	case *Mapping:
		return typed == nil
	case *Sequence:
		return typed == nil
	default:
		return false
	}
}

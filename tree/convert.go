package tree

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
)

// FromValue converts a decoded document value into a Node. It understands
// the shapes produced by the YAML, TOML and JSON decoders: ordered and plain
// maps, slices and leaf values. Anything else becomes a Scalar.
func FromValue(value any) Node {
	switch typed := value.(type) {
	case nil:
		return Null()
	case Node:
		return typed
	case yaml.MapSlice:
		mapping := NewMapping()

		for _, item := range typed {
			mapping.Set(keyString(item.Key), FromValue(item.Value))
		}

		return mapping
	case map[string]any:
		mapping := NewMapping()

		for _, k := range slices.Sorted(maps.Keys(typed)) {
			mapping.Set(k, FromValue(typed[k]))
		}

		return mapping
	case map[string]string:
		mapping := NewMapping()

		for _, k := range slices.Sorted(maps.Keys(typed)) {
			mapping.Set(k, NewScalar(typed[k]))
		}

		return mapping
	case map[any]any:
		mapping := NewMapping()
		keyed := make(map[string]any, len(typed))

		for k, v := range typed {
			keyed[keyString(k)] = v
		}

		for _, k := range slices.Sorted(maps.Keys(keyed)) {
			mapping.Set(k, FromValue(keyed[k]))
		}

		return mapping
	case []any:
		sequence := NewSequence()

		for _, item := range typed {
			sequence.Append(FromValue(item))
		}

		return sequence
	case []map[string]any:
		sequence := NewSequence()

		for _, item := range typed {
			sequence.Append(FromValue(item))
		}

		return sequence
	case []string:
		sequence := NewSequence()

		for _, item := range typed {
			sequence.Append(NewScalar(item))
		}

		return sequence
	default:
		return NewScalar(value)
	}
}

// ToValue converts a Node into values the YAML encoder understands.
// Mappings and records become yaml.MapSlice so key order survives encoding.
func ToValue(node Node) any {
	switch typed := node.(type) {
	case nil:
		return nil
	case *Scalar:
		if typed == nil {
			return nil
		}

		return typed.Value()
	case *Mapping:
		result := make(yaml.MapSlice, 0, typed.Len())

		for _, k := range typed.keys {
			result = append(result, yaml.MapItem{Key: k, Value: ToValue(typed.values[k])})
		}

		return result
	case *Sequence:
		result := make([]any, 0, typed.Len())

		for _, item := range typed.items {
			result = append(result, ToValue(item))
		}

		return result
	case Record:
		fields := typed.Fields()
		result := make(yaml.MapSlice, 0, len(fields))

		for _, name := range fields {
			value, _ := typed.Field(name)
			result = append(result, yaml.MapItem{Key: name, Value: ToValue(value)})
		}

		return result
	default:
		return nil
	}
}

// ToPlain converts a Node into plain Go maps and slices for encoders that do
// not understand yaml.MapSlice. Null values inside mappings are dropped.
func ToPlain(node Node) any {
	switch typed := node.(type) {
	case *Mapping:
		result := make(map[string]any, typed.Len())

		for _, k := range typed.keys {
			if value := ToPlain(typed.values[k]); value != nil {
				result[k] = value
			}
		}

		return result
	case *Sequence:
		result := make([]any, 0, typed.Len())

		for _, item := range typed.items {
			result = append(result, ToPlain(item))
		}

		return result
	case Record:
		return ToPlain(Clone(typed))
	default:
		return ToValue(node)
	}
}

// Clone returns a deep copy of node. Records are copied into Mappings.
func Clone(node Node) Node {
	return Transform(node, func(scalar *Scalar) Node {
		return NewScalar(scalar.Value())
	})
}

// Transform returns a deep copy of node in which every scalar has been
// replaced by fn(scalar). Records are copied into Mappings.
func Transform(node Node, fn func(*Scalar) Node) Node {
	switch typed := node.(type) {
	case nil:
		return nil
	case *Scalar:
		if typed == nil {
			return fn(Null())
		}

		return fn(typed)
	case *Mapping:
		mapping := NewMapping()

		for _, k := range typed.keys {
			mapping.Set(k, Transform(typed.values[k], fn))
		}

		return mapping
	case *Sequence:
		sequence := NewSequence()

		for _, item := range typed.items {
			sequence.Append(Transform(item, fn))
		}

		return sequence
	case Record:
		mapping := NewMapping()

		for _, name := range typed.Fields() {
			value, _ := typed.Field(name)
			mapping.Set(name, Transform(value, fn))
		}

		return mapping
	default:
		return node
	}
}

// Render returns the text form of node. Scalars render their value;
// mappings, sequences and records render as flow-style YAML. Absent and
// null nodes report false.
func Render(node Node) (string, bool) {
	if isAbsent(node) {
		return "", false
	}

	if scalar, ok := node.(*Scalar); ok {
		return scalar.String(), true
	}

	encoded, err := yaml.MarshalWithOptions(ToValue(node), yaml.Flow(true))
	if err != nil {
		return "", false
	}

	return strings.TrimSpace(string(encoded)), true
}

func keyString(key any) string {
	if text, ok := key.(string); ok {
		return text
	}

	return fmt.Sprint(key)
}

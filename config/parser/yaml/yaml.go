package yaml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-conf/tree"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser reads and writes YAML documents as configuration trees.
// Mapping key order is preserved in both directions.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes YAML data into a tree. Placeholder tokens are kept as plain
// string scalars.
func (p *Parser) Parse(data []byte) (tree.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var decoded any

	err := yaml.UnmarshalWithOptions(data, &decoded, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return tree.FromValue(decoded), nil
}

// Encode renders root as a block-style YAML document.
func (p *Parser) Encode(root tree.Node) ([]byte, error) {
	encoded, err := yaml.MarshalWithOptions(tree.ToValue(root), yaml.Indent(2))
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return encoded, nil
}

// Decode renders node as YAML and unmarshals it into target, so tagged Go
// structs can be filled from any part of a tree.
func Decode(node tree.Node, target any) error {
	encoded, err := yaml.Marshal(tree.ToValue(node))
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	err = yaml.Unmarshal(encoded, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

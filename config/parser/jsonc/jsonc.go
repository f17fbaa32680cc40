package jsonc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-conf/tree"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/jsonc"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser reads JSON documents that may carry comments and trailing commas,
// and writes plain indented JSON.
type Parser struct {
	indent string
}

// NewParser creates a new JSONC parser instance.
func NewParser() *Parser {
	return &Parser{indent: "  "}
}

// Parse strips comments and trailing commas, then decodes the remaining JSON
// into a tree. Object key order is preserved.
func (p *Parser) Parse(data []byte) (tree.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	clean := jsonc.ToJSON(data)

	var raw json.RawMessage

	err := json.Unmarshal(clean, &raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	// JSON is a subset of YAML; the YAML decoder keeps object key order.
	var decoded any

	err = yaml.UnmarshalWithOptions(clean, &decoded, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return tree.FromValue(decoded), nil
}

// Encode renders root as indented JSON, keeping mapping key order.
func (p *Parser) Encode(root tree.Node) ([]byte, error) {
	flow, err := yaml.MarshalWithOptions(tree.ToValue(root), yaml.JSON())
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	var buf bytes.Buffer

	err = json.Indent(&buf, bytes.TrimSpace(flow), "", p.indent)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

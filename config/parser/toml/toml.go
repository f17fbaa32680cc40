package toml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-conf/tree"

	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrEmptyData is returned when the input data is empty.
	ErrEmptyData = errors.New("empty data")
	// ErrUnsupportedValue is returned when a tree cannot be expressed as a
	// TOML document, for example a root that is not a table.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// Parser reads and writes TOML documents as configuration trees.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes TOML data into a tree. Table keys come out sorted because
// the decoder does not report source order.
func (p *Parser) Parse(data []byte) (tree.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var decoded map[string]any

	err := toml.Unmarshal(data, &decoded)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return tree.FromValue(decoded), nil
}

// Encode renders root as a TOML document. Null values are skipped since
// TOML has no null.
func (p *Parser) Encode(root tree.Node) ([]byte, error) {
	plain, ok := tree.ToPlain(root).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: root must be a table, got %v", ErrUnsupportedValue, kindOf(root))
	}

	var buf bytes.Buffer

	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)

	err := encoder.Encode(plain)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return buf.Bytes(), nil
}

func kindOf(node tree.Node) string {
	if node == nil {
		return "nothing"
	}

	return node.Kind().String()
}

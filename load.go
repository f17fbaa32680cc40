package conf

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	filefetcher "github.com/0xalexb/hjarta-conf/config/fetcher/file"
	streamfetcher "github.com/0xalexb/hjarta-conf/config/fetcher/stream"
	"github.com/0xalexb/hjarta-conf/config/parser/jsonc"
	"github.com/0xalexb/hjarta-conf/config/parser/toml"
	"github.com/0xalexb/hjarta-conf/config/parser/yaml"
	"github.com/0xalexb/hjarta-conf/tree"
)

// Parser converts raw document bytes to a tree and back.
// See config/parser/yaml, config/parser/toml and config/parser/jsonc.
type Parser interface {
	Parse(data []byte) (tree.Node, error)
	Encode(root tree.Node) ([]byte, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// ParserFor returns the parser for a file extension, with or without the
// leading dot: toml for "toml", jsonc for "json" and "jsonc", yaml for
// anything else.
func ParserFor(extension string) Parser {
	switch strings.ToLower(strings.TrimPrefix(extension, ".")) {
	case "toml":
		return toml.NewParser()
	case "json", "jsonc":
		return jsonc.NewParser()
	default:
		return yaml.NewParser()
	}
}

// Load fetches a document, parses it and binds it to a new Configuration.
// The parser is also used by ResolveBytes unless WithParser says otherwise.
func Load(fetcher DataFetcher, parser Parser, opts ...Option) (*Configuration, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	root, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	return New(root, append([]Option{WithParser(parser)}, opts...)...), nil
}

// LoadFile loads the document at path, choosing the parser from the file
// extension.
func LoadFile(path string, opts ...Option) (*Configuration, error) {
	fetcher, err := filefetcher.New(path)
	if err != nil {
		return nil, err
	}

	configuration, err := Load(fetcher, ParserFor(fetcher.Extension()), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", fetcher.Path(), err)
	}

	slog.Debug("configuration loaded", slog.String("path", fetcher.Path()))

	return configuration, nil
}

// LoadReader loads a document from r. It is parsed as YAML unless
// WithParser selects another parser.
func LoadReader(r io.Reader, opts ...Option) (*Configuration, error) {
	fetcher, err := streamfetcher.New(r)
	if err != nil {
		return nil, err
	}

	return Load(fetcher, newOptions(opts).Parser, opts...)
}

package document

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/barfmt/pkg/errors"
	"github.com/arthur-debert/barfmt/pkg/format"
	"github.com/arthur-debert/barfmt/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Syntax is the encoding of a document file
type Syntax int

const (
	SyntaxYAML Syntax = iota
	SyntaxTOML
)

func (s Syntax) String() string {
	switch s {
	case SyntaxYAML:
		return "yaml"
	case SyntaxTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseSyntax parses "yaml"/"yml" or "toml"
func ParseSyntax(s string) (Syntax, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return SyntaxYAML, nil
	case "toml":
		return SyntaxTOML, nil
	default:
		return SyntaxYAML, errors.Newf(errors.ErrInvalidInput, "unknown document syntax: %s", s)
	}
}

// SyntaxFromPath picks the syntax from the file extension, defaulting to YAML
func SyntaxFromPath(path string) Syntax {
	if s, err := ParseSyntax(filepath.Ext(path)); err == nil {
		return s
	}
	return SyntaxYAML
}

// Load reads and builds the document at path
func Load(path string) (format.Format, error) {
	logger := logging.GetLogger("document")
	defer logging.LogOperationStart(logger, "load "+path)()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDocumentRead, "failed to read document").
			WithDetail("path", path)
	}

	doc, err := Parse(data, SyntaxFromPath(path))
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("Document rejected")
		return nil, err
	}
	return doc, nil
}

// Parse decodes data and builds the document
func Parse(data []byte, syntax Syntax) (format.Format, error) {
	node, err := Decode(data, syntax)
	if err != nil {
		return nil, err
	}
	return node.Build()
}

// Decode decodes data into a node tree without building it. Unknown keys are
// rejected.
func Decode(data []byte, syntax Syntax) (Node, error) {
	var node Node
	switch syntax {
	case SyntaxTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&node); err != nil {
			return Node{}, errors.Wrap(err, errors.ErrDocumentParse, "failed to parse TOML document")
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&node); err != nil {
			return Node{}, errors.Wrap(err, errors.ErrDocumentParse, "failed to parse YAML document")
		}
	}
	return node, nil
}

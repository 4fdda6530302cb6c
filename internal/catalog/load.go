package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue/token"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Load error codes (E210-E219).
const (
	ErrCodeReadFailed        = "E210" // catalog file could not be read
	ErrCodeUnsupportedFormat = "E211" // unknown file extension
	ErrCodeDecodeFailed      = "E212" // YAML/TOML syntax or unknown field
	ErrCodeCUEFailed         = "E213" // CUE compile or schema unification failed
)

// LoadError is a failure to read or decode a catalog document.
type LoadError struct {
	Code    string
	Path    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Format is a catalog document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatCUE  Format = "cue"
)

// FormatForPath picks the encoding from a file extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	case ".cue":
		return FormatCUE, true
	default:
		return "", false
	}
}

// Load reads a catalog document. The result is decoded but not validated.
func Load(path string) (*Catalog, error) {
	format, ok := FormatForPath(path)
	if !ok {
		return nil, &LoadError{
			Code:    ErrCodeUnsupportedFormat,
			Path:    path,
			Message: fmt.Sprintf("unsupported catalog extension %q (want .yaml, .yml, .toml or .cue)", filepath.Ext(path)),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Path: path, Message: err.Error()}
	}
	return Parse(data, format, path)
}

// Parse decodes a catalog document. filename is used in diagnostics only.
func Parse(data []byte, format Format, filename string) (*Catalog, error) {
	switch format {
	case FormatYAML:
		return parseYAML(data, filename)
	case FormatTOML:
		return parseTOML(data, filename)
	case FormatCUE:
		return parseCUE(data, filename)
	default:
		return nil, &LoadError{Code: ErrCodeUnsupportedFormat, Path: filename, Message: fmt.Sprintf("unsupported format %q", format)}
	}
}

func parseYAML(data []byte, filename string) (*Catalog, error) {
	var c Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&c); err != nil {
		return nil, &LoadError{Code: ErrCodeDecodeFailed, Path: filename, Message: fmt.Sprintf("failed to parse YAML: %v", err)}
	}
	return &c, nil
}

func parseTOML(data []byte, filename string) (*Catalog, error) {
	var c Catalog
	decoder := toml.NewDecoder(bytes.NewReader(data)).Strict(true)
	if err := decoder.Decode(&c); err != nil {
		return nil, &LoadError{Code: ErrCodeDecodeFailed, Path: filename, Message: fmt.Sprintf("failed to parse TOML: %v", err)}
	}
	return &c, nil
}

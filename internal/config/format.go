package config

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
)

// Format is a supported config file format and the extensions that select it.
type Format struct {
	Name       string
	Extensions []string // without the leading dot, in probing order
	parser     func() koanf.Parser
}

// Parser returns a fresh koanf parser for the format.
func (f Format) Parser() koanf.Parser {
	return f.parser()
}

// IsZero reports whether f is the zero Format.
func (f Format) IsZero() bool {
	return f.Name == ""
}

var (
	FormatJSON = Format{
		Name:       "json",
		Extensions: []string{"json"},
		parser:     func() koanf.Parser { return json.Parser() },
	}
	FormatTOML = Format{
		Name:       "toml",
		Extensions: []string{"toml"},
		parser:     func() koanf.Parser { return toml.Parser() },
	}
	FormatYAML = Format{
		Name:       "yaml",
		Extensions: []string{"yaml", "yml"},
		parser:     func() koanf.Parser { return yaml.Parser() },
	}
)

// SupportedFormats returns the formats in canonical tie-break order:
// JSON, then TOML, then YAML (.yaml before .yml).
func SupportedFormats() []Format {
	return []Format{FormatJSON, FormatTOML, FormatYAML}
}

// FormatForPath picks the format matching path's extension (case-insensitive).
func FormatForPath(path string) (Format, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return Format{}, false
	}
	for _, f := range SupportedFormats() {
		for _, e := range f.Extensions {
			if e == ext {
				return f, true
			}
		}
	}
	return Format{}, false
}

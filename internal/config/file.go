package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ReadFileLayer parses the config file at loc into the file layer.
//
// The layer's CfgFilePath is always loc.Path, the file actually read; a cfg
// key inside the file is ignored. A file that cannot be parsed leaves every
// value absent and is reported as a single *LayerReadError. Fields with the
// wrong type are dropped individually.
func ReadFileLayer(loc Candidate) (RawLayer, []error) {
	layer := RawLayer{CfgFilePath: Some(loc.Path)}

	if loc.Format.IsZero() {
		return layer, []error{&LayerReadError{
			Layer: SourceFile,
			Path:  loc.Path,
			Err:   ErrUnsupportedFormat,
		}}
	}

	if loc.Format.Name == FormatYAML.Name {
		if err := ValidateYAMLSyntax(loc.Path); err != nil {
			return layer, []error{&LayerReadError{
				Layer: SourceFile,
				Path:  loc.Path,
				Err:   fmt.Errorf("validating YAML syntax: %w", err),
			}}
		}
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(loc.Path), loc.Format.Parser()); err != nil {
		return layer, []error{&LayerReadError{
			Layer: SourceFile,
			Path:  loc.Path,
			Err:   fmt.Errorf("failed to load %s config: %w", loc.Format.Name, err),
		}}
	}

	values, errs := layerFromKoanf(k, SourceFile, loc.Path)
	values.CfgFilePath = layer.CfgFilePath
	return values, errs
}

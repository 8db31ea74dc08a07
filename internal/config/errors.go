package config

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for a config file whose extension
	// maps to none of the supported formats.
	ErrUnsupportedFormat = errors.New("unsupported config file format")

	// ErrCfgKeyInFile is reported when a config file names another config file.
	ErrCfgKeyInFile = errors.New("config file cannot set its own location (key ignored)")
)

// LayerReadError reports a value a layer could not produce.
// It is always recovered: the field (or, with an empty Key, the whole layer)
// is treated as absent and resolution falls through to lower layers.
type LayerReadError struct {
	Layer ConfigSource
	Key   string // empty when the whole layer failed
	Path  string // config file path for the file layer
	Err   error
}

func (e *LayerReadError) Error() string {
	var where string
	switch {
	case e.Path != "" && e.Key != "":
		where = fmt.Sprintf("%s layer (%s) key %q", e.Layer, e.Path, e.Key)
	case e.Path != "":
		where = fmt.Sprintf("%s layer (%s)", e.Layer, e.Path)
	case e.Key != "":
		where = fmt.Sprintf("%s layer key %q", e.Layer, e.Key)
	default:
		where = fmt.Sprintf("%s layer", e.Layer)
	}
	return fmt.Sprintf("%s: %v", where, e.Err)
}

func (e *LayerReadError) Unwrap() error {
	return e.Err
}

package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks fizzy's environment variables. Matching ignores case.
const EnvPrefix = "FIZZY_"

// ReadEnvLayer builds the environment layer from the process environment.
//
// Each recognised variable maps to exactly one key (FIZZY_CFG -> cfg,
// FIZZY_VERBOSITY -> verbosity, FIZZY_SIMULATE -> simulate). Empty values
// are absent. A value that cannot be coerced leaves only that field absent
// and is reported as a *LayerReadError; the rest of the layer is kept.
func ReadEnvLayer() (RawLayer, []error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return RawLayer{}, []error{&LayerReadError{
			Layer: SourceEnv,
			Err:   fmt.Errorf("failed to load environment config: %w", err),
		}}
	}
	return layerFromKoanf(k, SourceEnv, "")
}

// envTransform converts environment variable names to config keys.
// Variables outside the prefix map to "" and are skipped by the provider.
// Example: FIZZY_VERBOSITY -> verbosity, fizzy_simulate -> simulate
func envTransform(s string) string {
	if len(s) <= len(EnvPrefix) || !strings.EqualFold(s[:len(EnvPrefix)], EnvPrefix) {
		return ""
	}
	return strings.ToLower(s[len(EnvPrefix):])
}

// layerFromKoanf decodes every loaded key into a RawLayer, collecting
// field-level failures instead of aborting.
func layerFromKoanf(k *koanf.Koanf, source ConfigSource, path string) (RawLayer, []error) {
	var (
		layer RawLayer
		errs  []error
	)
	for _, key := range k.Keys() {
		raw := k.Get(key)
		// explicit null in a file means "not set"
		if raw == nil {
			continue
		}
		if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" && source == SourceEnv {
			continue
		}

		schema, err := GetKeySchema(key)
		if err != nil {
			errs = append(errs, &LayerReadError{Layer: source, Key: key, Path: path, Err: err})
			continue
		}
		if source == SourceFile && key == KeyCfg {
			errs = append(errs, &LayerReadError{Layer: source, Key: key, Path: path, Err: ErrCfgKeyInFile})
			continue
		}
		if err := setField(&layer, schema, raw); err != nil {
			errs = append(errs, &LayerReadError{Layer: source, Key: key, Path: path, Err: err})
		}
	}
	return layer, errs
}

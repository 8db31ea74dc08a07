package config

import (
	"fmt"
	"strings"
)

const (
	// DefaultVerbosityLevel keeps the logger at warnings only.
	DefaultVerbosityLevel uint64 = 0
	// DefaultSimulate disables dry-run mode.
	DefaultSimulate = false
)

// Defaults returns the compiled-in layer, the lowest precedence source.
// It never carries a config file path.
func Defaults() RawLayer {
	return RawLayer{
		CfgFilePath:    None[string](),
		VerbosityLevel: Some(DefaultVerbosityLevel),
		Simulate:       Some(DefaultSimulate),
	}
}

// GetDefaultConfigTemplate returns a commented YAML config file
// documenting every key a config file may set, at its default value.
func GetDefaultConfigTemplate() string {
	var sb strings.Builder
	sb.WriteString("# fizzy configuration\n")
	sb.WriteString("# Precedence (highest first): command-line flags > FIZZY_* env vars > this file > defaults\n")

	for _, key := range SortedKeys() {
		schema := KnownKeys[key]
		// the file location cannot be set from inside the file
		if key == KeyCfg {
			continue
		}
		fmt.Fprintf(&sb, "\n# %s (%s, env: %s)\n", schema.Description, schema.Type, schema.EnvVar)
		fmt.Fprintf(&sb, "%s: %v\n", key, schema.Default)
	}
	return sb.String()
}

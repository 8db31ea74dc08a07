package config

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Configuration keys shared by the file and environment layers.
const (
	KeyCfg       = "cfg"
	KeyVerbosity = "verbosity"
	KeySimulate  = "simulate"
)

// ConfigValueType defines the expected type for a configuration value.
type ConfigValueType int

const (
	TypeBool ConfigValueType = iota
	TypeUint
	TypePath
)

// String returns the string representation of ConfigValueType.
func (t ConfigValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeUint:
		return "unsigned integer"
	case TypePath:
		return "path"
	default:
		return "unknown"
	}
}

// ConfigKeySchema defines a known configuration key with its expected type.
type ConfigKeySchema struct {
	Key         string          // Key as written in config files
	EnvVar      string          // Environment variable carrying the key
	Type        ConfigValueType // Expected value type for coercion
	Description string          // Human-readable description for help text
	Default     interface{}     // Default value (nil when there is none)
}

// KnownKeys is the registry of all known configuration keys with their schemas.
var KnownKeys = map[string]ConfigKeySchema{
	KeyCfg: {
		Key:         KeyCfg,
		EnvVar:      EnvPrefix + "CFG",
		Type:        TypePath,
		Description: "Configuration file path",
		Default:     nil,
	},
	KeyVerbosity: {
		Key:         KeyVerbosity,
		EnvVar:      EnvPrefix + "VERBOSITY",
		Type:        TypeUint,
		Description: "Logging verbosity: 0 warn, 1 info, 2 debug, 3 or more trace",
		Default:     DefaultVerbosityLevel,
	},
	KeySimulate: {
		Key:         KeySimulate,
		EnvVar:      EnvPrefix + "SIMULATE",
		Type:        TypeBool,
		Description: "Dry run in simulation mode, the system is left untouched",
		Default:     DefaultSimulate,
	},
}

// SortedKeys returns the known keys in alphabetical order.
func SortedKeys() []string {
	keys := make([]string, 0, len(KnownKeys))
	for k := range KnownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ErrUnknownKey is returned when a layer carries a key fizzy does not know.
type ErrUnknownKey struct {
	Key string
}

func (e ErrUnknownKey) Error() string {
	return "unknown configuration key: " + e.Key
}

// GetKeySchema returns the schema for a known configuration key.
// Returns ErrUnknownKey if the key is not in the registry.
func GetKeySchema(key string) (ConfigKeySchema, error) {
	schema, ok := KnownKeys[key]
	if !ok {
		return ConfigKeySchema{}, ErrUnknownKey{Key: key}
	}
	return schema, nil
}

// setField coerces raw according to the key's schema and stores it in layer.
// The layer is left untouched when coercion fails.
func setField(layer *RawLayer, schema ConfigKeySchema, raw interface{}) error {
	switch schema.Key {
	case KeySimulate:
		v, err := parseBoolValue(raw)
		if err != nil {
			return err
		}
		layer.Simulate = Some(v)
	case KeyVerbosity:
		v, err := parseUintValue(raw)
		if err != nil {
			return err
		}
		layer.VerbosityLevel = Some(v)
	case KeyCfg:
		v, err := parsePathValue(raw)
		if err != nil {
			return err
		}
		layer.CfgFilePath = Some(v)
	default:
		return ErrUnknownKey{Key: schema.Key}
	}
	return nil
}

// parseBoolValue accepts native booleans and the strconv.ParseBool spellings.
func parseBoolValue(raw interface{}) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, fmt.Errorf("invalid boolean: %q (expected true or false)", v)
		}
		return b, nil
	default:
		return false, fmt.Errorf("invalid boolean: %v (got %T)", raw, raw)
	}
}

// parseUintValue accepts non-negative integers from any decoder.
// JSON numbers arrive as float64, TOML as int64, YAML as int, env as string.
func parseUintValue(raw interface{}) (uint64, error) {
	switch v := raw.(type) {
	case int:
		return intToUint(int64(v))
	case int64:
		return intToUint(v)
	case uint64:
		return v, nil
	case float64:
		if v < 0 || v != math.Trunc(v) || v >= math.MaxUint64 {
			return 0, fmt.Errorf("invalid unsigned integer: %v", v)
		}
		return uint64(v), nil
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid unsigned integer: %q", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("invalid unsigned integer: %v (got %T)", raw, raw)
	}
}

func intToUint(v int64) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("invalid unsigned integer: %d (must not be negative)", v)
	}
	return uint64(v), nil
}

// parsePathValue accepts non-empty strings, expanding a leading ~/.
func parsePathValue(raw interface{}) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("invalid path: %v (got %T)", raw, raw)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("invalid path: empty")
	}
	return expandHomePath(s), nil
}

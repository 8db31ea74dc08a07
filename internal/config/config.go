// fizzy - layered configuration
// Source: https://github.com/alem0lars/fizzy

// Package config resolves fizzy's effective configuration from layers.
// Priority: command-line flags > environment variables (FIZZY_*) > config file
// (~/.config/fizzy/config.{json,toml,yaml,yml}) > defaults. Each layer is read
// by its own collaborator into a RawLayer of optional values; Resolve merges
// them field by field and cannot fail.
package config

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/alem0lars-svcuser/fizzy/internal/logger"
)

// ConfigSource tracks where a configuration value came from
type ConfigSource string

const (
	SourceDefault ConfigSource = "default"
	SourceFile    ConfigSource = "file"
	SourceEnv     ConfigSource = "env"
	SourceCLI     ConfigSource = "cli"
)

// RawLayer is one source's opinion on the configuration.
// An absent field means the layer expresses no opinion.
type RawLayer struct {
	CfgFilePath    Optional[string]
	VerbosityLevel Optional[uint64]
	Simulate       Optional[bool]
}

// IsEmpty reports whether the layer sets no field at all.
func (l RawLayer) IsEmpty() bool {
	return !l.CfgFilePath.IsSet() && !l.VerbosityLevel.IsSet() && !l.Simulate.IsSet()
}

// Sources records which layer supplied each effective value.
type Sources struct {
	CfgFilePath    ConfigSource `json:"cfg" yaml:"cfg"`
	VerbosityLevel ConfigSource `json:"verbosity" yaml:"verbosity"`
	Simulate       ConfigSource `json:"simulate" yaml:"simulate"`
}

// EffectiveConfig is the merged configuration consumed by the rest of fizzy.
// It is built once per invocation and passed by value.
type EffectiveConfig struct {
	// CfgFilePath is the config file location that was specified or found.
	CfgFilePath Optional[string] `json:"cfg" yaml:"cfg"`
	// VerbosityLevel controls logging; higher is more verbose.
	VerbosityLevel uint64 `json:"verbosity" yaml:"verbosity"`
	// Simulate requests a dry run: no real side effects.
	Simulate bool `json:"simulate" yaml:"simulate"`

	Sources Sources `json:"sources" yaml:"sources"`
}

// MarshalZerologObject lets the configuration be logged with EmbedObject.
func (c EffectiveConfig) MarshalZerologObject(e *zerolog.Event) {
	if path, ok := c.CfgFilePath.Get(); ok {
		e.Str("cfg", path)
	}
	e.Uint64("verbosity", c.VerbosityLevel).
		Bool("simulate", c.Simulate).
		Str("cfg_source", string(c.Sources.CfgFilePath)).
		Str("verbosity_source", string(c.Sources.VerbosityLevel)).
		Str("simulate_source", string(c.Sources.Simulate))
}

type sourcedLayer struct {
	source ConfigSource
	layer  RawLayer
}

// Resolve merges the three layers with the compiled-in defaults.
// For each field the first present value in the order CLI, env, file wins;
// otherwise the default is used. Resolve is pure and cannot fail.
func Resolve(cli, env, file RawLayer) EffectiveConfig {
	layers := []sourcedLayer{
		{SourceCLI, cli},
		{SourceEnv, env},
		{SourceFile, file},
		{SourceDefault, Defaults()},
	}

	var cfg EffectiveConfig
	cfg.CfgFilePath, cfg.Sources.CfgFilePath = pick(layers, func(l RawLayer) Optional[string] {
		return l.CfgFilePath
	})

	verbosity, src := pick(layers, func(l RawLayer) Optional[uint64] { return l.VerbosityLevel })
	cfg.VerbosityLevel, cfg.Sources.VerbosityLevel = verbosity.OrElse(DefaultVerbosityLevel), src

	simulate, src := pick(layers, func(l RawLayer) Optional[bool] { return l.Simulate })
	cfg.Simulate, cfg.Sources.Simulate = simulate.OrElse(DefaultSimulate), src

	return cfg
}

// pick returns the first present value across layers, in order.
func pick[T any](layers []sourcedLayer, field func(RawLayer) Optional[T]) (Optional[T], ConfigSource) {
	for _, l := range layers {
		if v := field(l.layer); v.IsSet() {
			return v, l.source
		}
	}
	return None[T](), SourceDefault
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// CLI is the layer built from the flags the user actually passed.
	CLI RawLayer
	// DefaultBasePath overrides the conventional config base path
	// (default: DefaultBasePath()).
	DefaultBasePath string
	// Logger receives layer diagnostics. Pass the bootstrap logger, since
	// the resolved verbosity is not known yet. Defaults to a no-op logger.
	Logger *logger.Logger
}

// Load reads the environment and file layers and resolves them together
// with opts.CLI. Every layer failure is logged and recovered, so Load
// always returns a configuration.
func Load(opts LoadOptions) EffectiveConfig {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	envLayer, errs := ReadEnvLayer()
	ReportLayerErrors(log, errs)

	fileLayer := loadFileLayer(opts, envLayer, log)

	return Resolve(opts.CLI, envLayer, fileLayer)
}

// loadFileLayer locates and reads the config file.
func loadFileLayer(opts LoadOptions, envLayer RawLayer, log *logger.Logger) RawLayer {
	base, origin := FileBasePath(opts.CLI, envLayer, opts.DefaultBasePath)
	if base == "" {
		log.Debug().Msg("no config file base path available, skipping config file")
		return RawLayer{}
	}

	loc, found := Locate(base)
	if !found {
		event := log.Debug()
		if origin != SourceDefault {
			event = log.Warn()
		}
		event.Str("base", base).Str("origin", string(origin)).Msg("no config file found")
		return RawLayer{}
	}

	layer, errs := ReadFileLayer(loc)
	ReportLayerErrors(log, errs)
	return layer
}

// FileBasePath picks the config file base path and the layer it came from:
// the CLI path, then the env path, then override, then DefaultBasePath().
// It returns "" when no base path can be determined.
func FileBasePath(cli, env RawLayer, override string) (string, ConfigSource) {
	if p, ok := cli.CfgFilePath.Get(); ok {
		return p, SourceCLI
	}
	if p, ok := env.CfgFilePath.Get(); ok {
		return p, SourceEnv
	}
	if override != "" {
		return override, SourceDefault
	}
	p, err := DefaultBasePath()
	if err != nil {
		return "", SourceDefault
	}
	return p, SourceDefault
}

// ReportLayerErrors emits one warning per recovered layer failure.
func ReportLayerErrors(log *logger.Logger, errs []error) {
	for _, err := range errs {
		event := log.Warn().Err(err)
		var lre *LayerReadError
		if errors.As(err, &lre) {
			event = event.Str("layer", string(lre.Layer))
			if lre.Key != "" {
				event = event.Str("key", lre.Key)
			}
			if lre.Path != "" {
				event = event.Str("path", lre.Path)
			}
		}
		event.Msg("ignoring unreadable configuration value")
	}
}

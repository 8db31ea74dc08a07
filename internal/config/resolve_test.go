package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_AllLayersEmptyYieldsDefaults(t *testing.T) {
	t.Parallel()

	cfg := Resolve(RawLayer{}, RawLayer{}, RawLayer{})

	assert.False(t, cfg.CfgFilePath.IsSet())
	assert.Equal(t, DefaultVerbosityLevel, cfg.VerbosityLevel)
	assert.Equal(t, DefaultSimulate, cfg.Simulate)
	assert.Equal(t, Sources{
		CfgFilePath:    SourceDefault,
		VerbosityLevel: SourceDefault,
		Simulate:       SourceDefault,
	}, cfg.Sources)
}

// TestResolve_Precedence walks every presence combination across the three
// layers and checks that the highest layer supplying a field wins.
func TestResolve_Precedence(t *testing.T) {
	t.Parallel()

	type values struct {
		path      string
		verbosity uint64
		simulate  bool
	}
	byLayer := map[ConfigSource]values{
		SourceCLI:  {path: "/cli.json", verbosity: 2, simulate: true},
		SourceEnv:  {path: "/env.toml", verbosity: 0, simulate: false},
		SourceFile: {path: "/file.yaml", verbosity: 5, simulate: true},
	}
	build := func(src ConfigSource, present bool) RawLayer {
		if !present {
			return RawLayer{}
		}
		v := byLayer[src]
		return RawLayer{
			CfgFilePath:    Some(v.path),
			VerbosityLevel: Some(v.verbosity),
			Simulate:       Some(v.simulate),
		}
	}

	for mask := 0; mask < 8; mask++ {
		cliSet, envSet, fileSet := mask&1 != 0, mask&2 != 0, mask&4 != 0

		want := SourceDefault
		switch {
		case cliSet:
			want = SourceCLI
		case envSet:
			want = SourceEnv
		case fileSet:
			want = SourceFile
		}

		cfg := Resolve(build(SourceCLI, cliSet), build(SourceEnv, envSet), build(SourceFile, fileSet))

		assert.Equal(t, want, cfg.Sources.CfgFilePath, "mask %03b", mask)
		assert.Equal(t, want, cfg.Sources.VerbosityLevel, "mask %03b", mask)
		assert.Equal(t, want, cfg.Sources.Simulate, "mask %03b", mask)

		if want == SourceDefault {
			assert.False(t, cfg.CfgFilePath.IsSet(), "mask %03b", mask)
			assert.Equal(t, DefaultVerbosityLevel, cfg.VerbosityLevel, "mask %03b", mask)
			assert.Equal(t, DefaultSimulate, cfg.Simulate, "mask %03b", mask)
			continue
		}
		exp := byLayer[want]
		assert.Equal(t, exp.path, cfg.CfgFilePath.OrElse(""), "mask %03b", mask)
		assert.Equal(t, exp.verbosity, cfg.VerbosityLevel, "mask %03b", mask)
		assert.Equal(t, exp.simulate, cfg.Simulate, "mask %03b", mask)
	}
}

func TestResolve_Scenarios(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		cli, env, file RawLayer
		check          func(t *testing.T, cfg EffectiveConfig)
	}{
		"cli wins over env and file": {
			cli:  RawLayer{VerbosityLevel: Some(uint64(2))},
			env:  RawLayer{VerbosityLevel: Some(uint64(0))},
			file: RawLayer{VerbosityLevel: Some(uint64(5))},
			check: func(t *testing.T, cfg EffectiveConfig) {
				assert.Equal(t, uint64(2), cfg.VerbosityLevel)
				assert.Equal(t, SourceCLI, cfg.Sources.VerbosityLevel)
			},
		},
		"explicit zero in env beats file": {
			env:  RawLayer{VerbosityLevel: Some(uint64(0))},
			file: RawLayer{VerbosityLevel: Some(uint64(5))},
			check: func(t *testing.T, cfg EffectiveConfig) {
				assert.Equal(t, uint64(0), cfg.VerbosityLevel)
				assert.Equal(t, SourceEnv, cfg.Sources.VerbosityLevel)
			},
		},
		"fallback to default": {
			check: func(t *testing.T, cfg EffectiveConfig) {
				assert.False(t, cfg.Simulate)
				assert.Equal(t, SourceDefault, cfg.Sources.Simulate)
			},
		},
		"environment fills gap": {
			cli:  RawLayer{VerbosityLevel: Some(uint64(1))},
			env:  RawLayer{CfgFilePath: Some("/etc/app/cfg.toml")},
			file: RawLayer{CfgFilePath: Some("/home/user/.config/fizzy/config.json")},
			check: func(t *testing.T, cfg EffectiveConfig) {
				assert.Equal(t, "/etc/app/cfg.toml", cfg.CfgFilePath.OrElse(""))
				assert.Equal(t, SourceEnv, cfg.Sources.CfgFilePath)
			},
		},
		"explicit false on cli beats env true": {
			cli: RawLayer{Simulate: Some(false)},
			env: RawLayer{Simulate: Some(true)},
			check: func(t *testing.T, cfg EffectiveConfig) {
				assert.False(t, cfg.Simulate)
				assert.Equal(t, SourceCLI, cfg.Sources.Simulate)
			},
		},
		"fields resolve independently": {
			cli:  RawLayer{Simulate: Some(true)},
			env:  RawLayer{VerbosityLevel: Some(uint64(3))},
			file: RawLayer{CfgFilePath: Some("/f.yaml"), Simulate: Some(false), VerbosityLevel: Some(uint64(9))},
			check: func(t *testing.T, cfg EffectiveConfig) {
				assert.True(t, cfg.Simulate)
				assert.Equal(t, uint64(3), cfg.VerbosityLevel)
				assert.Equal(t, "/f.yaml", cfg.CfgFilePath.OrElse(""))
				assert.Equal(t, Sources{
					CfgFilePath:    SourceFile,
					VerbosityLevel: SourceEnv,
					Simulate:       SourceCLI,
				}, cfg.Sources)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, Resolve(tt.cli, tt.env, tt.file))
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	cli := RawLayer{Simulate: Some(true)}
	env := RawLayer{VerbosityLevel: Some(uint64(4))}
	file := RawLayer{CfgFilePath: Some("/x.json")}

	first := Resolve(cli, env, file)
	second := Resolve(cli, env, file)
	assert.Equal(t, first, second)
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	d := Defaults()
	assert.False(t, d.CfgFilePath.IsSet())
	assert.Equal(t, DefaultVerbosityLevel, d.VerbosityLevel.OrElse(99))
	assert.Equal(t, DefaultSimulate, d.Simulate.OrElse(true))
	assert.True(t, RawLayer{}.IsEmpty())
	assert.False(t, d.IsEmpty())
}

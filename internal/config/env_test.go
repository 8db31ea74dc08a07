package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem0lars-svcuser/fizzy/internal/testutil"
)

func TestEnvTransform(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want string
	}{
		"upper case":       {in: "FIZZY_VERBOSITY", want: "verbosity"},
		"lower case":       {in: "fizzy_simulate", want: "simulate"},
		"mixed case":       {in: "Fizzy_Cfg", want: "cfg"},
		"other prefix":     {in: "PATH", want: ""},
		"prefix only":      {in: "FIZZY_", want: ""},
		"prefix substring": {in: "XFIZZY_CFG", want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, envTransform(tt.in))
		})
	}
}

func TestReadEnvLayer_AllFields(t *testing.T) {
	testutil.ClearFizzyEnv(t)
	t.Setenv("FIZZY_CFG", "/etc/app/cfg.toml")
	t.Setenv("FIZZY_VERBOSITY", "2")
	t.Setenv("FIZZY_SIMULATE", "true")

	layer, errs := ReadEnvLayer()
	require.Empty(t, errs)

	assert.Equal(t, "/etc/app/cfg.toml", layer.CfgFilePath.OrElse(""))
	assert.Equal(t, uint64(2), layer.VerbosityLevel.OrElse(0))
	assert.True(t, layer.Simulate.OrElse(false))
}

func TestReadEnvLayer_CaseInsensitiveName(t *testing.T) {
	testutil.ClearFizzyEnv(t)
	t.Setenv("fizzy_verbosity", "3")

	layer, errs := ReadEnvLayer()
	require.Empty(t, errs)
	assert.Equal(t, uint64(3), layer.VerbosityLevel.OrElse(0))
}

func TestReadEnvLayer_MalformedValueIsFieldLevel(t *testing.T) {
	testutil.ClearFizzyEnv(t)
	t.Setenv("FIZZY_VERBOSITY", "notanumber")
	t.Setenv("FIZZY_SIMULATE", "1")

	layer, errs := ReadEnvLayer()

	require.Len(t, errs, 1)
	var lre *LayerReadError
	require.True(t, errors.As(errs[0], &lre))
	assert.Equal(t, SourceEnv, lre.Layer)
	assert.Equal(t, KeyVerbosity, lre.Key)
	assert.Contains(t, lre.Error(), "notanumber")

	assert.False(t, layer.VerbosityLevel.IsSet(), "malformed field must be absent")
	assert.True(t, layer.Simulate.OrElse(false), "other fields survive")
}

func TestReadEnvLayer_EmptyValueIsAbsent(t *testing.T) {
	testutil.ClearFizzyEnv(t)
	t.Setenv("FIZZY_SIMULATE", "")

	layer, errs := ReadEnvLayer()
	require.Empty(t, errs)
	assert.False(t, layer.Simulate.IsSet())
}

func TestReadEnvLayer_UnknownVariable(t *testing.T) {
	testutil.ClearFizzyEnv(t)
	t.Setenv("FIZZY_COLOUR", "blue")

	_, errs := ReadEnvLayer()
	require.Len(t, errs, 1)
	var unknown ErrUnknownKey
	require.True(t, errors.As(errs[0], &unknown))
	assert.Equal(t, "colour", unknown.Key)
}

func TestReadEnvLayer_NegativeVerbosity(t *testing.T) {
	testutil.ClearFizzyEnv(t)
	t.Setenv("FIZZY_VERBOSITY", "-1")

	layer, errs := ReadEnvLayer()
	require.Len(t, errs, 1)
	assert.False(t, layer.VerbosityLevel.IsSet())
}

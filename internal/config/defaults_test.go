package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem0lars-svcuser/fizzy/internal/testutil"
)

func TestDefaultConfigTemplate_ReadsAsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	testutil.WriteFile(t, path, GetDefaultConfigTemplate())

	layer, errs := ReadFileLayer(Candidate{Path: path, Format: FormatYAML})
	require.Empty(t, errs)

	assert.Equal(t, DefaultVerbosityLevel, layer.VerbosityLevel.OrElse(99))
	assert.Equal(t, DefaultSimulate, layer.Simulate.OrElse(true))
}

func TestDefaultConfigTemplate_DocumentsEnvVars(t *testing.T) {
	t.Parallel()

	tmpl := GetDefaultConfigTemplate()
	assert.Contains(t, tmpl, "env: FIZZY_VERBOSITY")
	assert.Contains(t, tmpl, "env: FIZZY_SIMULATE")
	assert.NotContains(t, tmpl, "\ncfg:")
}

func TestSortedKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{KeyCfg, KeySimulate, KeyVerbosity}, SortedKeys())
}

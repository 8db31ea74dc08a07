// Package testutil provides test utilities and helpers for fizzy tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// EnvPrefix is the prefix of every variable fizzy reads from the environment.
const EnvPrefix = "FIZZY_"

// ClearFizzyEnv unsets every FIZZY_* variable (in any letter case) for the
// duration of the test, so the developer's shell cannot leak into it.
// Like t.Setenv it must not be used in parallel tests.
func ClearFizzyEnv(t *testing.T) {
	t.Helper()

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(strings.ToUpper(name), EnvPrefix) {
			continue
		}
		// t.Setenv records the original value and restores it on cleanup.
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("unsetting %s: %v", name, err)
		}
	}
}

// SetEnv sets each variable for the duration of the test on top of a
// cleared FIZZY_* environment.
func SetEnv(t *testing.T, vars map[string]string) {
	t.Helper()

	ClearFizzyEnv(t)
	for name, value := range vars {
		t.Setenv(name, value)
	}
}

// WriteFile creates path with content, creating parent directories as needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

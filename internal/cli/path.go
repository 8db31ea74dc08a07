package cli

import (
	"fmt"
	"os/user"
	"path/filepath"
	"strings"
)

// resolvePath converts a raw path argument to an absolute path.
// It handles the following cases:
//   - "~" or "~/...": expands tilde to user home directory
//   - Relative path: resolves against current working directory
//   - Absolute path: returns unchanged
func resolvePath(rawPath string) (string, error) {
	if strings.HasPrefix(rawPath, "~") {
		expanded, err := expandTilde(rawPath)
		if err != nil {
			return "", fmt.Errorf("expanding tilde in path: %w", err)
		}
		rawPath = expanded
	}

	absPath, err := filepath.Abs(rawPath)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return absPath, nil
}

// expandTilde expands a leading tilde (~) to the user's home directory.
// Supports both "~" alone and "~/path" forms.
func expandTilde(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("getting current user: %w", err)
	}
	if path == "~" {
		return u.HomeDir, nil
	}
	return filepath.Join(u.HomeDir, path[2:]), nil
}

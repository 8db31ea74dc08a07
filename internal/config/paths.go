package config

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName names the per-user config directory.
const AppName = "fizzy"

// DefaultBasePath returns the conventional config file base path, without
// extension. This follows the XDG Base Directory Specification:
// - Linux: ~/.config/fizzy/config
// - macOS: ~/Library/Application Support/fizzy/config
// - Windows: %APPDATA%\fizzy\config
func DefaultBasePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppName, "config"), nil
}

// Candidate is one path probed during config file discovery.
type Candidate struct {
	Path   string
	Format Format
}

// Candidates lists the paths probed for base, in canonical order.
func Candidates(base string) []Candidate {
	var out []Candidate
	for _, f := range SupportedFormats() {
		for _, ext := range f.Extensions {
			out = append(out, Candidate{Path: base + "." + ext, Format: f})
		}
	}
	return out
}

// Locate finds the config file for base.
//
// When base is itself a regular file it is used directly and its format is
// taken from the extension; an unknown extension yields a Candidate with a
// zero Format, which ReadFileLayer reports. Otherwise every candidate from
// Candidates is stat'ed once, in order, and the first regular file wins.
// found is false when nothing exists, which is not an error.
func Locate(base string) (loc Candidate, found bool) {
	if base == "" {
		return Candidate{}, false
	}

	if isRegularFile(base) {
		f, _ := FormatForPath(base)
		return Candidate{Path: base, Format: f}, true
	}

	for _, c := range Candidates(base) {
		if isRegularFile(c.Path) {
			return c, true
		}
	}
	return Candidate{}, false
}

// isRegularFile returns true if path exists and is not a directory
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}

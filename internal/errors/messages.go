package errors

import "fmt"

// Common error messages for the fizzy CLI.

// InvalidCfgFile creates an error for a --cfg path that is not an existing file.
func InvalidCfgFile(path string, err error) *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  fmt.Sprintf("invalid value %q for --cfg: the configuration file doesn't exist", path),
		Usage:    "fizzy --cfg <CONFIGURATION_FILE>",
		Remediation: []string{
			"Check the path: ls -la " + path,
			"Or omit --cfg to use ~/.config/fizzy/config.{json,toml,yaml,yml}",
		},
		Err: err,
	}
}

// InvalidFlag creates an error for a flag the parser rejected.
func InvalidFlag(err error) *CLIError {
	return WrapWithMessage(err, Argument,
		"invalid command-line flag",
		"Run 'fizzy --help' to see valid options",
	)
}

// LoggerInitFailed creates an error when the process-wide logger cannot be set up.
func LoggerInitFailed(err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		"failed to initialize logging",
	)
}

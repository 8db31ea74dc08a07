package cli

import clierrors "github.com/alem0lars-svcuser/fizzy/internal/errors"

// Exit codes for the fizzy CLI
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates an internal or runtime error
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if cliErr := clierrors.AsCLIError(err); cliErr != nil && cliErr.IsUsage() {
		return ExitInvalidArguments
	}
	return ExitFailure
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alem0lars-svcuser/fizzy/internal/build"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display version, commit, build date, and Go version information for fizzy",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), build.Info())
			if build.IsDevBuild() {
				fmt.Fprintln(cmd.ErrOrStderr(), "note: development build, release versions are set with -ldflags")
			}
		},
	}
}
